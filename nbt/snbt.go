package nbt

import (
	"fmt"
	"strconv"
	"strings"
)

// Snbt renders a tag in stringified-NBT form, the compact inline syntax
// used for values embedded in commands and tooling output: compounds as
// {key:value}, lists as [a,b], typed numbers with their suffix letters.
// It is a rendering of the raw tree, not an interpretation of it.
func Snbt(t *Tag) string {
	var sb strings.Builder
	writeSnbt(&sb, t)
	return sb.String()
}

func writeSnbt(sb *strings.Builder, t *Tag) {
	switch t.Type() {
	case TagByte:
		fmt.Fprintf(sb, "%db", t.intVal)

	case TagShort:
		fmt.Fprintf(sb, "%ds", t.intVal)

	case TagInt:
		fmt.Fprintf(sb, "%d", t.intVal)

	case TagLong:
		fmt.Fprintf(sb, "%dL", t.intVal)

	case TagFloat:
		fmt.Fprintf(sb, "%gf", t.floatVal)

	case TagDouble:
		fmt.Fprintf(sb, "%gd", t.floatVal)

	case TagString:
		sb.WriteString(strconv.Quote(t.strVal))

	case TagByteArray:
		sb.WriteString("[B;")
		for i, v := range t.byteArr {
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(sb, "%db", int8(v))
		}
		sb.WriteByte(']')

	case TagIntArray:
		sb.WriteString("[I;")
		for i, v := range t.intArr {
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(sb, "%d", v)
		}
		sb.WriteByte(']')

	case TagLongArray:
		sb.WriteString("[L;")
		for i, v := range t.longArr {
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(sb, "%dL", v)
		}
		sb.WriteByte(']')

	case TagList:
		sb.WriteByte('[')
		for i, v := range t.listVal {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeSnbt(sb, v)
		}
		sb.WriteByte(']')

	case TagCompound:
		sb.WriteByte('{')
		for i, e := range t.entries {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(snbtKey(e.Key))
			sb.WriteByte(':')
			writeSnbt(sb, e.Value)
		}
		sb.WriteByte('}')
	}
}

// snbtKey leaves simple keys bare and quotes the rest.
func snbtKey(key string) string {
	if key == "" {
		return `""`
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-' || c == '.' || c == '+':
		default:
			return strconv.Quote(key)
		}
	}
	return key
}
