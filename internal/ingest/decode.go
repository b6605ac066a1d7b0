package ingest

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeUpload reads the export as UTF-8, stripping a leading byte-order
// marker when present (Windows exports regularly carry one).
func decodeUpload(r io.Reader, maxBytes int64) (string, error) {
	decoder := unicode.UTF8BOM.NewDecoder()
	content, err := io.ReadAll(transform.NewReader(io.LimitReader(r, maxBytes+1), decoder))
	if err != nil {
		return "", err
	}
	return string(content), nil
}
