// Package schem ties the decode pipeline together: compressed schematic
// bytes in, player-head profiles out.
package schem

import (
	"fmt"

	"github.com/headpick/headpick/heads"
	"github.com/headpick/headpick/nbt"
)

// Load runs the full pipeline on the raw contents of a schematic file:
// decompress, decode the tag tree, extract head profiles.
//
// The two failure kinds stay distinguishable through errors.As:
// *nbt.DecompressionError for a stream that is not valid compressed data,
// *nbt.FormatError for bytes that are not a valid tag-tree document. A
// document with no matching records is not an error; the result is an
// empty slice.
func Load(raw []byte) ([]heads.Profile, error) {
	_, root, err := LoadDocument(raw)
	if err != nil {
		return nil, err
	}
	return heads.Extract(root), nil
}

// LoadDocument decompresses and decodes without extracting, for callers
// that want the whole tag tree.
func LoadDocument(raw []byte) (string, *nbt.Tag, error) {
	flat, err := nbt.Decompress(raw)
	if err != nil {
		return "", nil, fmt.Errorf("decompress schematic: %w", err)
	}
	name, root, err := nbt.Decode(flat)
	if err != nil {
		return "", nil, fmt.Errorf("decode schematic: %w", err)
	}
	return name, root, nil
}
