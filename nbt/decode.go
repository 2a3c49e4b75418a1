package nbt

import (
	"encoding/binary"
	"math"
)

// Decode parses a flat (decompressed) NBT byte stream into its named root
// compound. It fails with *FormatError when the stream is truncated, the
// root discriminant is not TagCompound, or an unrecognized discriminant
// appears anywhere in the tree.
//
// Each call owns its own cursor; Decode is safe to call concurrently on
// independent buffers.
func Decode(flat []byte) (string, *Tag, error) {
	d := &decoder{buf: flat}

	id, err := d.readByte()
	if err != nil {
		return "", nil, err
	}
	if TagType(id) != TagCompound {
		return "", nil, errBadRoot(0, id)
	}
	name, err := d.readString()
	if err != nil {
		return "", nil, err
	}
	root, err := d.readPayload(TagCompound)
	if err != nil {
		return "", nil, err
	}
	return name, root, nil
}

// decoder is a monotonic cursor over a flat buffer. All multi-byte reads
// are big-endian. Not reentrant: one decoder per Decode call.
type decoder struct {
	buf []byte
	pos int
}

// need fails with a truncation error when fewer than n bytes remain.
func (d *decoder) need(n int) error {
	if len(d.buf)-d.pos < n {
		return errTruncated(d.pos, n, len(d.buf)-d.pos)
	}
	return nil
}

func (d *decoder) readByte() (uint8, error) {
	if err := d.need(1); err != nil {
		return 0, err
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

func (d *decoder) readUint16() (uint16, error) {
	if err := d.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(d.buf[d.pos:])
	d.pos += 2
	return v, nil
}

func (d *decoder) readUint32() (uint32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(d.buf[d.pos:])
	d.pos += 4
	return v, nil
}

func (d *decoder) readUint64() (uint64, error) {
	if err := d.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(d.buf[d.pos:])
	d.pos += 8
	return v, nil
}

// readString reads a 16-bit length prefix and that many UTF-8 bytes. A
// zero length consumes no payload bytes.
func (d *decoder) readString() (string, error) {
	n, err := d.readUint16()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	if err := d.need(int(n)); err != nil {
		return "", err
	}
	s := string(d.buf[d.pos : d.pos+int(n)])
	d.pos += int(n)
	return s, nil
}

// readCount reads a 32-bit signed element count. Negative counts are
// clamped to zero: historical writers emit 0, but a negative count must
// not turn into a huge allocation.
func (d *decoder) readCount() (int, error) {
	v, err := d.readUint32()
	if err != nil {
		return 0, err
	}
	n := int(int32(v))
	if n < 0 {
		return 0, nil
	}
	return n, nil
}

// readPayload decodes one tag payload of the given type. One case per
// wire discriminant.
func (d *decoder) readPayload(t TagType) (*Tag, error) {
	switch t {
	case TagByte:
		b, err := d.readByte()
		if err != nil {
			return nil, err
		}
		return Byte(int8(b)), nil

	case TagShort:
		v, err := d.readUint16()
		if err != nil {
			return nil, err
		}
		return Short(int16(v)), nil

	case TagInt:
		v, err := d.readUint32()
		if err != nil {
			return nil, err
		}
		return Int(int32(v)), nil

	case TagLong:
		v, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		return Long(int64(v)), nil

	case TagFloat:
		v, err := d.readUint32()
		if err != nil {
			return nil, err
		}
		return Float(math.Float32frombits(v)), nil

	case TagDouble:
		v, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		return Double(math.Float64frombits(v)), nil

	case TagByteArray:
		n, err := d.readCount()
		if err != nil {
			return nil, err
		}
		if err := d.need(n); err != nil {
			return nil, err
		}
		arr := make([]byte, n)
		copy(arr, d.buf[d.pos:d.pos+n])
		d.pos += n
		return ByteArray(arr), nil

	case TagString:
		s, err := d.readString()
		if err != nil {
			return nil, err
		}
		return String(s), nil

	case TagList:
		return d.readList()

	case TagCompound:
		return d.readCompound()

	case TagIntArray:
		n, err := d.readCount()
		if err != nil {
			return nil, err
		}
		// Check the bytes exist before allocating: a hostile count must
		// fail as a truncation, not exhaust memory.
		if err := d.need(4 * n); err != nil {
			return nil, err
		}
		arr := make([]int32, n)
		for i := range arr {
			v, err := d.readUint32()
			if err != nil {
				return nil, err
			}
			arr[i] = int32(v)
		}
		return IntArray(arr), nil

	case TagLongArray:
		n, err := d.readCount()
		if err != nil {
			return nil, err
		}
		if err := d.need(8 * n); err != nil {
			return nil, err
		}
		arr := make([]int64, n)
		for i := range arr {
			v, err := d.readUint64()
			if err != nil {
				return nil, err
			}
			arr[i] = int64(v)
		}
		return LongArray(arr), nil

	default:
		return nil, errBadTag(d.pos, uint8(t))
	}
}

// readList decodes a homogeneous list: one element-type byte, a 32-bit
// count, then that many payloads of the element type. An empty list still
// carries the type byte and count.
func (d *decoder) readList() (*Tag, error) {
	elemOff := d.pos
	elem, err := d.readByte()
	if err != nil {
		return nil, err
	}
	et := TagType(elem)
	if et > maxTagType {
		return nil, errBadTag(elemOff, elem)
	}
	n, err := d.readCount()
	if err != nil {
		return nil, err
	}
	// TagEnd is the conventional element type for empty lists; elements
	// of type TagEnd cannot exist.
	if et == TagEnd && n > 0 {
		return nil, errBadTag(elemOff, elem)
	}
	list := List(et)
	for i := 0; i < n; i++ {
		v, err := d.readPayload(et)
		if err != nil {
			return nil, err
		}
		list.Append(v)
	}
	return list, nil
}

// readCompound decodes entries until the end marker. A duplicate key
// overwrites the earlier value (last-write-wins), never an error.
func (d *decoder) readCompound() (*Tag, error) {
	c := Compound()
	for {
		id, err := d.readByte()
		if err != nil {
			return nil, err
		}
		t := TagType(id)
		if t == TagEnd {
			return c, nil
		}
		if t > maxTagType {
			return nil, errBadTag(d.pos-1, id)
		}
		key, err := d.readString()
		if err != nil {
			return nil, err
		}
		val, err := d.readPayload(t)
		if err != nil {
			return nil, err
		}
		c.Set(key, val)
	}
}
