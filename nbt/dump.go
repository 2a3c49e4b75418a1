package nbt

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders a decoded document as indented human-readable text, one
// line per tag. Intended for inspection tooling, not for re-encoding.
func Dump(name string, root *Tag) string {
	d := &dumper{}
	d.dump(name, root, 0)
	return d.sb.String()
}

type dumper struct {
	sb strings.Builder
}

func (d *dumper) dump(name string, t *Tag, depth int) {
	indent := strings.Repeat("  ", depth)
	d.sb.WriteString(indent)
	d.sb.WriteString(t.Type().String())
	if name != "" {
		fmt.Fprintf(&d.sb, "(%s)", strconv.Quote(name))
	}

	switch t.Type() {
	case TagByte, TagShort, TagInt, TagLong:
		fmt.Fprintf(&d.sb, ": %d\n", t.intVal)

	case TagFloat, TagDouble:
		fmt.Fprintf(&d.sb, ": %g\n", t.floatVal)

	case TagString:
		fmt.Fprintf(&d.sb, ": %s\n", strconv.Quote(t.strVal))

	case TagByteArray, TagIntArray, TagLongArray:
		fmt.Fprintf(&d.sb, ": %d elements\n", t.Len())

	case TagList:
		elem, _ := t.ElemType()
		fmt.Fprintf(&d.sb, ": %d entries of type %s\n", t.Len(), elem)
		items, _ := t.AsList()
		for _, item := range items {
			d.dump("", item, depth+1)
		}

	case TagCompound:
		fmt.Fprintf(&d.sb, ": %d entries\n", t.Len())
		entries, _ := t.Entries()
		for _, e := range entries {
			d.dump(e.Key, e.Value, depth+1)
		}

	default:
		d.sb.WriteString("\n")
	}
}
