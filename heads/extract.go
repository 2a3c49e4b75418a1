package heads

import "github.com/headpick/headpick/nbt"

// Aliased key spellings, consulted in fixed priority order. Each list is
// the schema-variant policy for one field: current spelling first, then
// legacy spellings.
var (
	regionKeys      = []string{"Regions", "regions"}
	blockEntityKeys = []string{"TileEntities", "BlockEntities"}
	ownerKeys       = []string{"SkullOwner", "Owner", "profile"}
	customNameKeys  = []string{"CustomName", "custom_name"}
	nameKeys        = []string{"Name", "name"}
	idKeys          = []string{"Id", "id"}
	propertyKeys    = []string{"Properties", "properties"}
	texturesKeys    = []string{"textures", "Textures"}
	propNameKeys    = []string{"name", "Name"}
	valueKeys       = []string{"Value", "value"}
	signatureKeys   = []string{"Signature", "signature"}
)

// lookup returns the first value present under any of the aliased keys.
func lookup(c *nbt.Tag, keys []string) *nbt.Tag {
	for _, k := range keys {
		if v := c.Get(k); v != nil {
			return v
		}
	}
	return nil
}

// Extract walks a decoded schematic root and returns the player-head
// profiles found on skull block entities, in encounter order (regions in
// document order, block entities in list order), deduplicated by texture
// value, UUID, or name.
//
// Extract never fails. Missing or differently-shaped structures are
// skipped; the result for a document with no qualifying records is an
// empty slice.
func Extract(root *nbt.Tag) []Profile {
	result := []Profile{}
	seen := make(map[string]bool)

	regions := lookup(root, regionKeys)
	entries, ok := regions.Entries()
	if !ok {
		return result
	}

	for _, region := range entries {
		list, _ := lookup(region.Value, blockEntityKeys).AsList()
		for _, be := range list {
			owner := lookup(be, ownerKeys)
			if owner == nil {
				continue // not a head block
			}

			p := normalizeOwner(owner)
			if cn := lookup(be, customNameKeys); cn != nil {
				// Carried raw: a bare string as-is, a structured text
				// component in its SNBT form. Neither is interpreted.
				if s, ok := cn.AsString(); ok {
					p.CustomName = s
				} else {
					p.CustomName = nbt.Snbt(cn)
				}
			}
			if p.IsEmpty() {
				continue
			}

			key := p.dedupKey()
			if seen[key] {
				continue
			}
			seen[key] = true
			result = append(result, p)
		}
	}
	return result
}

// normalizeOwner reduces the heterogeneous skull-owner encodings to one
// Profile. A bare string is the oldest form: a player name and nothing
// else. Every later form is a compound.
func normalizeOwner(owner *nbt.Tag) Profile {
	if name, ok := owner.AsString(); ok {
		return Profile{Name: name}
	}

	var p Profile
	if name, ok := lookup(owner, nameKeys).AsString(); ok {
		p.Name = name
	}
	p.UUID = NormalizeUUID(lookup(owner, idKeys))
	p.TextureValue, p.TextureSignature = textureProperty(lookup(owner, propertyKeys))
	return p
}

// textureProperty pulls the first "textures" property entry out of either
// properties encoding: a flat list of {name, value, signature} entries, or
// a compound holding a "textures" list whose first element carries the
// value and signature.
func textureProperty(props *nbt.Tag) (value, signature string) {
	if props == nil {
		return "", ""
	}

	if items, ok := props.AsList(); ok {
		for _, item := range items {
			name, _ := lookup(item, propNameKeys).AsString()
			if name != "textures" {
				continue
			}
			value, _ = lookup(item, valueKeys).AsString()
			signature, _ = lookup(item, signatureKeys).AsString()
			return value, signature
		}
		return "", ""
	}

	items, ok := lookup(props, texturesKeys).AsList()
	if !ok || len(items) == 0 {
		return "", ""
	}
	value, _ = lookup(items[0], valueKeys).AsString()
	signature, _ = lookup(items[0], signatureKeys).AsString()
	return value, signature
}
