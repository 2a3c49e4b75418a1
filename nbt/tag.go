package nbt

// TagType identifies one NBT tag kind. The numeric values are the wire
// discriminants and must not be reordered.
type TagType uint8

const (
	TagEnd TagType = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

// maxTagType is the highest valid wire discriminant.
const maxTagType = TagLongArray

// String returns the tag type name.
func (t TagType) String() string {
	switch t {
	case TagEnd:
		return "End"
	case TagByte:
		return "Byte"
	case TagShort:
		return "Short"
	case TagInt:
		return "Int"
	case TagLong:
		return "Long"
	case TagFloat:
		return "Float"
	case TagDouble:
		return "Double"
	case TagByteArray:
		return "ByteArray"
	case TagString:
		return "String"
	case TagList:
		return "List"
	case TagCompound:
		return "Compound"
	case TagIntArray:
		return "IntArray"
	case TagLongArray:
		return "LongArray"
	default:
		return "unknown"
	}
}

// Tag represents one node of a decoded NBT tree.
type Tag struct {
	kind TagType

	// Scalar values (only one valid based on kind). Integral kinds share
	// intVal at full 64-bit width; Long payloads must round-trip bit-exact.
	intVal   int64
	floatVal float64
	strVal   string

	// Array values
	byteArr []byte
	intArr  []int32
	longArr []int64

	// List: homogeneous elements plus the declared element type. The
	// element type is kept even for empty lists.
	listElem TagType
	listVal  []*Tag

	// Compound: insertion-ordered entries with a key index for lookup.
	entries []CompoundEntry
	index   map[string]int
}

// CompoundEntry is one key-value pair in a compound.
type CompoundEntry struct {
	Key   string
	Value *Tag
}

// ============================================================
// Constructors
// ============================================================

// Byte creates a signed 8-bit tag.
func Byte(v int8) *Tag {
	return &Tag{kind: TagByte, intVal: int64(v)}
}

// Short creates a signed 16-bit tag.
func Short(v int16) *Tag {
	return &Tag{kind: TagShort, intVal: int64(v)}
}

// Int creates a signed 32-bit tag.
func Int(v int32) *Tag {
	return &Tag{kind: TagInt, intVal: int64(v)}
}

// Long creates a signed 64-bit tag.
func Long(v int64) *Tag {
	return &Tag{kind: TagLong, intVal: v}
}

// Float creates a 32-bit float tag.
func Float(v float32) *Tag {
	return &Tag{kind: TagFloat, floatVal: float64(v)}
}

// Double creates a 64-bit float tag.
func Double(v float64) *Tag {
	return &Tag{kind: TagDouble, floatVal: v}
}

// String creates a string tag.
func String(v string) *Tag {
	return &Tag{kind: TagString, strVal: v}
}

// ByteArray creates a byte-array tag.
func ByteArray(v []byte) *Tag {
	return &Tag{kind: TagByteArray, byteArr: v}
}

// IntArray creates an int-array tag.
func IntArray(v []int32) *Tag {
	return &Tag{kind: TagIntArray, intArr: v}
}

// LongArray creates a long-array tag.
func LongArray(v []int64) *Tag {
	return &Tag{kind: TagLongArray, longArr: v}
}

// List creates a homogeneous list tag with the given element type.
func List(elem TagType, values ...*Tag) *Tag {
	return &Tag{kind: TagList, listElem: elem, listVal: values}
}

// Compound creates a compound tag from key-value pairs in order.
// A repeated key overwrites the earlier value in place.
func Compound(entries ...CompoundEntry) *Tag {
	t := &Tag{kind: TagCompound, index: make(map[string]int, len(entries))}
	for _, e := range entries {
		t.Set(e.Key, e.Value)
	}
	return t
}

// ============================================================
// Accessors
// ============================================================

// Type returns the tag type. A nil tag reports TagEnd.
func (t *Tag) Type() TagType {
	if t == nil {
		return TagEnd
	}
	return t.kind
}

// AsByte returns the signed 8-bit value.
func (t *Tag) AsByte() (int8, bool) {
	if t == nil || t.kind != TagByte {
		return 0, false
	}
	return int8(t.intVal), true
}

// AsShort returns the signed 16-bit value.
func (t *Tag) AsShort() (int16, bool) {
	if t == nil || t.kind != TagShort {
		return 0, false
	}
	return int16(t.intVal), true
}

// AsInt returns the signed 32-bit value.
func (t *Tag) AsInt() (int32, bool) {
	if t == nil || t.kind != TagInt {
		return 0, false
	}
	return int32(t.intVal), true
}

// AsLong returns the signed 64-bit value.
func (t *Tag) AsLong() (int64, bool) {
	if t == nil || t.kind != TagLong {
		return 0, false
	}
	return t.intVal, true
}

// AsFloat returns the 32-bit float value.
func (t *Tag) AsFloat() (float32, bool) {
	if t == nil || t.kind != TagFloat {
		return 0, false
	}
	return float32(t.floatVal), true
}

// AsDouble returns the 64-bit float value.
func (t *Tag) AsDouble() (float64, bool) {
	if t == nil || t.kind != TagDouble {
		return 0, false
	}
	return t.floatVal, true
}

// AsString returns the string value.
func (t *Tag) AsString() (string, bool) {
	if t == nil || t.kind != TagString {
		return "", false
	}
	return t.strVal, true
}

// AsByteArray returns the byte-array elements.
func (t *Tag) AsByteArray() ([]byte, bool) {
	if t == nil || t.kind != TagByteArray {
		return nil, false
	}
	return t.byteArr, true
}

// AsIntArray returns the int-array elements.
func (t *Tag) AsIntArray() ([]int32, bool) {
	if t == nil || t.kind != TagIntArray {
		return nil, false
	}
	return t.intArr, true
}

// AsLongArray returns the long-array elements.
func (t *Tag) AsLongArray() ([]int64, bool) {
	if t == nil || t.kind != TagLongArray {
		return nil, false
	}
	return t.longArr, true
}

// AsList returns the list elements.
func (t *Tag) AsList() ([]*Tag, bool) {
	if t == nil || t.kind != TagList {
		return nil, false
	}
	return t.listVal, true
}

// ElemType returns the declared element type of a list.
func (t *Tag) ElemType() (TagType, bool) {
	if t == nil || t.kind != TagList {
		return TagEnd, false
	}
	return t.listElem, true
}

// Num returns any integral tag (Byte, Short, Int, Long) widened to int64.
// Schema variants store nominally 32-bit fields under differing integral
// kinds, so numeric consumers probe with Num rather than a single kind.
func (t *Tag) Num() (int64, bool) {
	if t == nil {
		return 0, false
	}
	switch t.kind {
	case TagByte, TagShort, TagInt, TagLong:
		return t.intVal, true
	default:
		return 0, false
	}
}

// Entries returns a compound's entries in insertion order.
func (t *Tag) Entries() ([]CompoundEntry, bool) {
	if t == nil || t.kind != TagCompound {
		return nil, false
	}
	return t.entries, true
}

// Get returns the value under key in a compound, or nil when the tag is
// not a compound or the key is absent.
func (t *Tag) Get(key string) *Tag {
	if t == nil || t.kind != TagCompound {
		return nil
	}
	i, ok := t.index[key]
	if !ok {
		return nil
	}
	return t.entries[i].Value
}

// Len returns the length of a list, array, or compound.
func (t *Tag) Len() int {
	if t == nil {
		return 0
	}
	switch t.kind {
	case TagList:
		return len(t.listVal)
	case TagCompound:
		return len(t.entries)
	case TagByteArray:
		return len(t.byteArr)
	case TagIntArray:
		return len(t.intArr)
	case TagLongArray:
		return len(t.longArr)
	default:
		return 0
	}
}

// ============================================================
// Mutators
// ============================================================

// Set inserts or overwrites a compound entry. A duplicate key keeps its
// original position and takes the new value (last-write-wins, matching
// the decoder's duplicate-key rule). Set is a no-op on non-compounds.
func (t *Tag) Set(key string, val *Tag) {
	if t == nil || t.kind != TagCompound {
		return
	}
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if i, ok := t.index[key]; ok {
		t.entries[i].Value = val
		return
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, CompoundEntry{Key: key, Value: val})
}

// Append adds an element to a list. The caller is responsible for keeping
// the element type consistent with the list's declared type.
func (t *Tag) Append(val *Tag) {
	if t == nil || t.kind != TagList {
		return
	}
	t.listVal = append(t.listVal, val)
}
