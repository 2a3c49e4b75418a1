package nbt

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/pierrec/lz4/v4"
)

// lz4FrameMagic is the little-endian LZ4 frame magic number.
var lz4FrameMagic = []byte{0x04, 0x22, 0x4d, 0x18}

// Decompress turns a raw schematic payload into a flat NBT byte stream.
// The codec is sniffed from the leading bytes: gzip (the common case for
// schematic files), zlib, LZ4 frame, or none at all when the payload
// already starts with a bare compound tag. Anything else, or a stream
// that fails its codec's checksum, is a *DecompressionError.
func Decompress(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, &DecompressionError{Message: "empty input"}
	}

	var r io.Reader
	switch {
	case len(raw) >= 2 && raw[0] == 0x1f && raw[1] == 0x8b:
		gr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, &DecompressionError{Message: "bad gzip header", Cause: err}
		}
		defer gr.Close()
		r = gr

	case raw[0] == 0x78:
		zr, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, &DecompressionError{Message: "bad zlib header", Cause: err}
		}
		defer zr.Close()
		r = zr

	case bytes.HasPrefix(raw, lz4FrameMagic):
		r = lz4.NewReader(bytes.NewReader(raw))

	case TagType(raw[0]) == TagCompound:
		// Already flat.
		return raw, nil

	default:
		return nil, &DecompressionError{Message: "unrecognized compression format"}
	}

	flat, err := io.ReadAll(r)
	if err != nil {
		return nil, &DecompressionError{Message: "corrupt compressed stream", Cause: err}
	}
	return flat, nil
}
