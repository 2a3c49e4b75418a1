package heads

import (
	"encoding/binary"
	"strconv"

	"github.com/google/uuid"

	"github.com/headpick/headpick/nbt"
)

// NormalizeUUID reduces the historical identifier encodings to one
// canonical string. Four encodings exist in the wild:
//
//   - a string, already hyphenated: used verbatim, no validation
//   - a 4-element int array (the modern form)
//   - a compound keyed "0".."3" holding four integers (an old exporter's
//     rendering of the same array)
//   - a lone integer: degrades to bare lowercase hex, not a real UUID
//
// The 4-part forms pack each signed 32-bit value as its unsigned
// big-endian representation into 16 bytes and render the standard
// 8-4-4-4-12 grouping. Anything else yields "".
func NormalizeUUID(id *nbt.Tag) string {
	if id == nil {
		return ""
	}

	if s, ok := id.AsString(); ok {
		return s
	}

	if arr, ok := id.AsIntArray(); ok && len(arr) == 4 {
		return formatUUID([4]int32{arr[0], arr[1], arr[2], arr[3]})
	}

	if items, ok := id.AsList(); ok && len(items) == 4 {
		var parts [4]int32
		for i, item := range items {
			v, ok := item.Num()
			if !ok {
				return ""
			}
			parts[i] = int32(v)
		}
		return formatUUID(parts)
	}

	if id.Type() == nbt.TagCompound {
		var parts [4]int32
		for i := 0; i < 4; i++ {
			v, ok := id.Get(strconv.Itoa(i)).Num()
			if !ok {
				return ""
			}
			parts[i] = int32(v)
		}
		return formatUUID(parts)
	}

	if v, ok := id.Num(); ok {
		// Degraded fallback preserved from older exporters: a lone
		// scalar renders as bare hex, not an RFC 4122 string.
		return strconv.FormatUint(uint64(v), 16)
	}
	return ""
}

// formatUUID renders four signed 32-bit words as the canonical lowercase
// hyphenated UUID string. The two's-complement-to-unsigned reduction must
// be bit-exact; the words travel through uint32, never a float.
func formatUUID(parts [4]int32) string {
	var b [16]byte
	for i, p := range parts {
		binary.BigEndian.PutUint32(b[i*4:], uint32(p))
	}
	return uuid.UUID(b).String()
}
