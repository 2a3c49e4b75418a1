package heads

import (
	"encoding/base64"
	"strings"
	"testing"
)

const skinURL = "http://textures.minecraft.net/texture/292009a4925b58f02c77dadc3ecef07ea4c7472f64e0fdc32ce5522489362680"

func texturePayloadJSON(url string) string {
	return `{"timestamp":1600000000,"profileName":"Notch","textures":{"SKIN":{"url":"` + url + `"}}}`
}

func TestDecodeTexture(t *testing.T) {
	value := base64.StdEncoding.EncodeToString([]byte(texturePayloadJSON(skinURL)))

	info, err := DecodeTexture(value)
	if err != nil {
		t.Fatalf("DecodeTexture failed: %v", err)
	}
	if !strings.HasPrefix(info.URL, "https://") {
		t.Errorf("URL %q not normalized to https", info.URL)
	}
	wantID := "292009a4925b58f02c77dadc3ecef07ea4c7472f64e0fdc32ce5522489362680"
	if info.ID != wantID {
		t.Errorf("ID = %q, want %q", info.ID, wantID)
	}
}

func TestDecodeTexture_UnpaddedBase64(t *testing.T) {
	value := base64.RawStdEncoding.EncodeToString([]byte(texturePayloadJSON(skinURL)))

	info, err := DecodeTexture(value)
	if err != nil {
		t.Fatalf("DecodeTexture failed on unpadded input: %v", err)
	}
	if info.ID == "" {
		t.Error("ID is empty")
	}
}

func TestDecodeTexture_SlimModel(t *testing.T) {
	payload := `{"textures":{"SKIN":{"url":"` + skinURL + `","metadata":{"model":"slim"}}}}`
	value := base64.StdEncoding.EncodeToString([]byte(payload))

	info, err := DecodeTexture(value)
	if err != nil {
		t.Fatalf("DecodeTexture failed: %v", err)
	}
	if info.Model != "slim" {
		t.Errorf("Model = %q, want slim", info.Model)
	}
}

func TestDecodeTexture_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not base64", "!!! definitely not base64 !!!"},
		{"not json", base64.StdEncoding.EncodeToString([]byte("hello"))},
		{"no skin url", base64.StdEncoding.EncodeToString([]byte(`{"textures":{}}`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTexture(tt.value); err == nil {
				t.Error("DecodeTexture succeeded on malformed input")
			}
		})
	}
}
