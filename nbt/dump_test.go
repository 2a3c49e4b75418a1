package nbt

import (
	"strings"
	"testing"
)

func TestDump(t *testing.T) {
	root := Compound(
		entry("Version", Int(6)),
		entry("Regions", Compound(
			entry("main", Compound(
				entry("TileEntities", List(TagCompound,
					Compound(entry("SkullOwner", String("Notch"))),
				)),
			)),
		)),
	)

	out := Dump("Schematic", root)

	for _, want := range []string{
		`Compound("Schematic"): 2 entries`,
		`Int("Version"): 6`,
		`List("TileEntities"): 1 entries of type Compound`,
		`String("SkullOwner"): "Notch"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output missing %q:\n%s", want, out)
		}
	}

	// Nesting shows as indentation.
	if !strings.Contains(out, `    Compound("main")`) {
		t.Errorf("dump output not indented:\n%s", out)
	}
}
