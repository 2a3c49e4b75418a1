package heads

// Profile is the canonical extraction result for one player head.
// Constructed once per qualifying block entity and immutable afterwards.
//
// UUID is a canonical 36-character hyphenated string when the source
// carried a 4-part identifier; a lone scalar identifier degrades to bare
// lowercase hex (see NormalizeUUID). CustomName is carried raw: a string
// tag verbatim (which may itself hold a JSON text component), any other
// shape in its SNBT rendering. It is not interpreted here.
type Profile struct {
	Name             string `json:"name,omitempty"`
	CustomName       string `json:"custom_name,omitempty"`
	UUID             string `json:"uuid,omitempty"`
	TextureValue     string `json:"texture_value,omitempty"`
	TextureSignature string `json:"texture_signature,omitempty"`
}

// IsEmpty reports whether the profile carries no identifying data at all.
// Empty profiles are discarded during extraction.
func (p Profile) IsEmpty() bool {
	return p.Name == "" && p.UUID == "" && p.TextureValue == ""
}

// dedupKey returns the identity used for result deduplication: texture
// value when present, else UUID, else name.
func (p Profile) dedupKey() string {
	switch {
	case p.TextureValue != "":
		return p.TextureValue
	case p.UUID != "":
		return p.UUID
	default:
		return p.Name
	}
}
