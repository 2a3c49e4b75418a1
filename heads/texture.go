package heads

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// TextureInfo is the decoded form of a profile's texture value: the skin
// URL and the trailing path segment that identifies the texture.
type TextureInfo struct {
	URL   string // skin URL, normalized to https
	ID    string // final path segment of the URL
	Model string // "slim" or "", from the optional metadata block
}

// texturePayload mirrors the JSON carried inside a base64 texture value.
type texturePayload struct {
	Textures struct {
		Skin struct {
			URL      string `json:"url"`
			Metadata struct {
				Model string `json:"model"`
			} `json:"metadata"`
		} `json:"SKIN"`
	} `json:"textures"`
}

// DecodeTexture base64-decodes a profile's texture value, parses the JSON
// payload, and returns the skin URL details. Errors here are local to the
// one profile: callers render a placeholder and move on, they never abort
// the pipeline.
func DecodeTexture(value string) (*TextureInfo, error) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		// Some exporters strip the padding.
		raw, err = base64.RawStdEncoding.DecodeString(value)
		if err != nil {
			return nil, fmt.Errorf("heads: texture value is not base64: %w", err)
		}
	}

	var payload texturePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("heads: texture payload is not JSON: %w", err)
	}

	url := payload.Textures.Skin.URL
	if url == "" {
		return nil, fmt.Errorf("heads: texture payload has no skin URL")
	}
	if rest, ok := strings.CutPrefix(url, "http://"); ok {
		url = "https://" + rest
	}

	info := &TextureInfo{
		URL:   url,
		Model: payload.Textures.Skin.Metadata.Model,
	}
	if i := strings.LastIndexByte(url, '/'); i >= 0 {
		info.ID = url[i+1:]
	}
	return info, nil
}
