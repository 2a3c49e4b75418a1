package nbt

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Reference encoder used by round-trip tests. The public API is
// decode-only, so the encoder lives in the test build.

func encodeDocument(name string, root *Tag) []byte {
	var b bytes.Buffer
	b.WriteByte(byte(TagCompound))
	writeTestString(&b, name)
	writeTestPayload(&b, root)
	return b.Bytes()
}

func writeTestString(b *bytes.Buffer, s string) {
	var n [2]byte
	binary.BigEndian.PutUint16(n[:], uint16(len(s)))
	b.Write(n[:])
	b.WriteString(s)
}

func writeTestU32(b *bytes.Buffer, v uint32) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], v)
	b.Write(n[:])
}

func writeTestU64(b *bytes.Buffer, v uint64) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], v)
	b.Write(n[:])
}

func writeTestPayload(b *bytes.Buffer, t *Tag) {
	switch t.Type() {
	case TagByte:
		v, _ := t.AsByte()
		b.WriteByte(byte(v))
	case TagShort:
		v, _ := t.AsShort()
		var n [2]byte
		binary.BigEndian.PutUint16(n[:], uint16(v))
		b.Write(n[:])
	case TagInt:
		v, _ := t.AsInt()
		writeTestU32(b, uint32(v))
	case TagLong:
		v, _ := t.AsLong()
		writeTestU64(b, uint64(v))
	case TagFloat:
		v, _ := t.AsFloat()
		writeTestU32(b, math.Float32bits(v))
	case TagDouble:
		v, _ := t.AsDouble()
		writeTestU64(b, math.Float64bits(v))
	case TagByteArray:
		v, _ := t.AsByteArray()
		writeTestU32(b, uint32(len(v)))
		b.Write(v)
	case TagString:
		v, _ := t.AsString()
		writeTestString(b, v)
	case TagList:
		elem, _ := t.ElemType()
		items, _ := t.AsList()
		b.WriteByte(byte(elem))
		writeTestU32(b, uint32(len(items)))
		for _, item := range items {
			writeTestPayload(b, item)
		}
	case TagCompound:
		entries, _ := t.Entries()
		for _, e := range entries {
			b.WriteByte(byte(e.Value.Type()))
			writeTestString(b, e.Key)
			writeTestPayload(b, e.Value)
		}
		b.WriteByte(byte(TagEnd))
	case TagIntArray:
		v, _ := t.AsIntArray()
		writeTestU32(b, uint32(len(v)))
		for _, x := range v {
			writeTestU32(b, uint32(x))
		}
	case TagLongArray:
		v, _ := t.AsLongArray()
		writeTestU32(b, uint32(len(v)))
		for _, x := range v {
			writeTestU64(b, uint64(x))
		}
	}
}

// entry is a shorthand for building compounds in tests.
func entry(key string, val *Tag) CompoundEntry {
	return CompoundEntry{Key: key, Value: val}
}
