package ingest

import (
	"strings"
	"testing"
)

func TestDecodeUploadStripsBOM(t *testing.T) {
	input := "\xEF\xBB\xBF0669290601|MARTIN Jean|1980|a@b.fr|rue|Paris (75001)|FR76|X"
	content, err := decodeUpload(strings.NewReader(input), 1<<20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.HasPrefix(content, "\xEF\xBB\xBF") {
		t.Fatal("expected BOM to be stripped")
	}
	if !strings.HasPrefix(content, "0669290601|") {
		t.Fatalf("unexpected content prefix: %q", content[:12])
	}
}

func TestDecodeUploadPlainUTF8(t *testing.T) {
	input := "0669290601|MARTIN Jean|1980|a@b.fr|rue|Paris (75001)|FR76|X"
	content, err := decodeUpload(strings.NewReader(input), 1<<20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != input {
		t.Fatalf("expected passthrough, got %q", content)
	}
}
