// headpick - extract player-head profiles from schematic files
//
// Usage:
//
//	headpick [flags] [file]
//
// Reads a schematic (gzip, zlib, lz4, or uncompressed NBT) from the file
// argument, or stdin when no file is given, and lists the player heads
// found on skull block entities.
//
// Flags:
//
//	--json       emit profiles as a JSON array
//	--dump       pretty-print the decoded tag tree instead of extracting
//	--textures   resolve and print skin URLs from texture values
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/headpick/headpick/heads"
	"github.com/headpick/headpick/nbt"
	"github.com/headpick/headpick/schem"
)

func main() {
	jsonOut := flag.Bool("json", false, "emit profiles as a JSON array")
	dump := flag.Bool("dump", false, "pretty-print the decoded tag tree")
	textures := flag.Bool("textures", false, "resolve skin URLs from texture values")
	flag.Parse()

	var input io.Reader = os.Stdin
	if flag.NArg() > 0 && flag.Arg(0) != "-" {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		input = f
	}

	raw, err := io.ReadAll(input)
	if err != nil {
		fatal("read input: %v", err)
	}

	if *dump {
		name, root, err := schem.LoadDocument(raw)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Print(nbt.Dump(name, root))
		return
	}

	profiles, err := schem.Load(raw)
	if err != nil {
		fatal("%v", err)
	}

	if *jsonOut {
		out, err := json.MarshalIndent(profiles, "", "  ")
		if err != nil {
			fatal("encode result: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	if len(profiles) == 0 {
		fmt.Println("no player heads found")
		return
	}
	for _, p := range profiles {
		printProfile(p, *textures)
	}
}

func printProfile(p heads.Profile, textures bool) {
	name := p.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Printf("%s\n", name)
	if p.CustomName != "" {
		fmt.Printf("  custom name: %s\n", p.CustomName)
	}
	if p.UUID != "" {
		fmt.Printf("  uuid:        %s\n", p.UUID)
	}
	if p.TextureValue == "" {
		return
	}
	if !textures {
		fmt.Printf("  texture:     %d bytes of texture data\n", len(p.TextureValue))
		return
	}
	info, err := heads.DecodeTexture(p.TextureValue)
	if err != nil {
		fmt.Printf("  texture:     (unreadable: %v)\n", err)
		return
	}
	fmt.Printf("  texture:     %s\n", info.ID)
	fmt.Printf("  skin url:    %s\n", info.URL)
	if info.Model != "" {
		fmt.Printf("  model:       %s\n", info.Model)
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "headpick: "+format+"\n", args...)
	os.Exit(1)
}
