package schem

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/headpick/headpick/nbt"
)

// Wire-level builder for a minimal schematic document. The nbt package
// keeps its reference encoder test-local, so the bytes are written by
// hand here; the document is small enough for that to stay readable.

func writeStr(b *bytes.Buffer, s string) {
	var n [2]byte
	binary.BigEndian.PutUint16(n[:], uint16(len(s)))
	b.Write(n[:])
	b.WriteString(s)
}

func writeNamedStr(b *bytes.Buffer, key, val string) {
	b.WriteByte(byte(nbt.TagString))
	writeStr(b, key)
	writeStr(b, val)
}

// schematicBytes encodes {Regions:{main:{TileEntities:[{SkullOwner:name}...]}}}
// with one skull block entity per owner name.
func schematicBytes(owners ...string) []byte {
	var b bytes.Buffer
	b.WriteByte(byte(nbt.TagCompound))
	writeStr(&b, "Schematic")

	b.WriteByte(byte(nbt.TagCompound))
	writeStr(&b, "Regions")
	b.WriteByte(byte(nbt.TagCompound))
	writeStr(&b, "main")

	b.WriteByte(byte(nbt.TagList))
	writeStr(&b, "TileEntities")
	b.WriteByte(byte(nbt.TagCompound))
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(owners)))
	b.Write(n[:])
	for _, owner := range owners {
		writeNamedStr(&b, "SkullOwner", owner)
		b.WriteByte(byte(nbt.TagEnd))
	}

	b.WriteByte(byte(nbt.TagEnd)) // main
	b.WriteByte(byte(nbt.TagEnd)) // Regions
	b.WriteByte(byte(nbt.TagEnd)) // root
	return b.Bytes()
}

func gzipped(t *testing.T, flat []byte) []byte {
	t.Helper()
	var b bytes.Buffer
	w := gzip.NewWriter(&b)
	if _, err := w.Write(flat); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

func TestLoad(t *testing.T) {
	raw := gzipped(t, schematicBytes("Notch", "jeb_"))

	profiles, err := Load(raw)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("Load returned %d profiles, want 2", len(profiles))
	}
	if profiles[0].Name != "Notch" || profiles[1].Name != "jeb_" {
		t.Errorf("profiles = %+v", profiles)
	}
}

func TestLoad_FlatInput(t *testing.T) {
	// Uncompressed payloads pass straight through the sniffer.
	profiles, err := Load(schematicBytes("Notch"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(profiles) != 1 {
		t.Errorf("Load returned %d profiles, want 1", len(profiles))
	}
}

func TestLoad_NoHeadsIsSuccess(t *testing.T) {
	profiles, err := Load(gzipped(t, schematicBytes()))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if profiles == nil || len(profiles) != 0 {
		t.Errorf("Load = %+v, want empty non-nil slice", profiles)
	}
}

func TestLoad_ErrorKinds(t *testing.T) {
	var de *nbt.DecompressionError
	if _, err := Load([]byte{0xde, 0xad}); !errors.As(err, &de) {
		t.Errorf("garbage input: error %v is not a *DecompressionError", err)
	}

	flat := schematicBytes("Notch")
	var fe *nbt.FormatError
	if _, err := Load(gzipped(t, flat[:len(flat)-1])); !errors.As(err, &fe) {
		t.Errorf("truncated document: error %v is not a *FormatError", err)
	}
}

func TestLoadDocument(t *testing.T) {
	name, root, err := LoadDocument(gzipped(t, schematicBytes("Notch")))
	if err != nil {
		t.Fatalf("LoadDocument failed: %v", err)
	}
	if name != "Schematic" {
		t.Errorf("root name = %q, want Schematic", name)
	}
	if root.Get("Regions") == nil {
		t.Error("decoded root has no Regions entry")
	}
}
