package utils

import (
	"encoding/base64"
	"errors"
	"testing"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestDecodeImagePayload(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(pngHeader)

	tests := []struct {
		name    string
		payload string
		wantExt string
		wantErr bool
	}{
		{name: "data url", payload: "data:image/png;base64," + encoded, wantExt: "png"},
		{name: "bare base64", payload: encoded, wantExt: "png"},
		{name: "declared type is ignored", payload: "data:image/jpeg;base64," + encoded, wantExt: "png"},
		{name: "empty", payload: "  ", wantErr: true},
		{name: "broken data url", payload: "data:image/png,abc", wantErr: true},
		{name: "not base64", payload: "%%%", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, ext, err := DecodeImagePayload(tt.payload)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeImagePayload: %v", err)
			}
			if ext != tt.wantExt {
				t.Errorf("ext = %q, want %q", ext, tt.wantExt)
			}
			if string(data) != string(pngHeader) {
				t.Errorf("unexpected decoded bytes")
			}
		})
	}
}

func TestDecodeImagePayloadRejectsNonImages(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("just some text"))
	if _, _, err := DecodeImagePayload(payload); !errors.Is(err, ErrNotImage) {
		t.Fatalf("expected ErrNotImage, got %v", err)
	}
	if _, _, err := DecodeImagePayload("data:image/webp;base64," + payload); !errors.Is(err, ErrNotImage) {
		t.Fatalf("expected declared type not to rescue text, got %v", err)
	}
}
