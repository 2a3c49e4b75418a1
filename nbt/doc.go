// Package nbt implements a decoder for the NBT binary tag format as used
// by voxel-world schematic files.
//
// NBT is a self-describing tree of typed tags: fixed-width big-endian
// scalars, byte/int/long arrays, UTF-8 strings, homogeneous lists, and
// compounds (ordered string-keyed mappings terminated by an end marker).
// A document is a single named root tag, which must be a compound.
//
// # Pipeline
//
// Schematic files arrive compressed. The package handles both stages:
//
//	flat, err := nbt.Decompress(raw)   // gzip / zlib / lz4 / already flat
//	name, root, err := nbt.Decode(flat)
//
// Decompress fails with *DecompressionError, Decode with *FormatError.
// Both are fatal for the whole document: there is no partial decode.
//
// # Data Model
//
// Tags are represented by the Tag sum type, one variant per wire tag kind.
// Accessors return (value, ok) pairs so consumers can probe heterogeneous
// schema variants without type assertions or error plumbing. Compounds
// preserve wire insertion order; a duplicate key overwrites the earlier
// value in place.
//
// The package is decode-only. Encoding is not part of the public API.
package nbt
