// Package imaging inspects inline image payloads. Items store their photos
// as base64 data URLs; Probe recovers the metadata (MIME type, byte size,
// pixel dimensions) the UI needs without keeping a decoded copy around.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"net/http"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Info describes an inline image payload.
type Info struct {
	MimeType string
	Size     int64
	Width    int
	Height   int
}

// Probe parses a base64 data URL and returns the payload's metadata.
// The MIME type is sniffed from the decoded bytes rather than trusted from
// the URL header. Dimensions are zero for formats the decoders don't know;
// that is not an error, only a malformed data URL or base64 payload is.
func Probe(dataURL string) (*Info, error) {
	payload, declared, err := splitDataURL(dataURL)
	if err != nil {
		return nil, err
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decoding base64 payload: %w", err)
	}

	mime := http.DetectContentType(raw)
	if !strings.HasPrefix(mime, "image/") && declared != "" {
		mime = declared
	}

	info := &Info{
		MimeType: mime,
		Size:     int64(len(raw)),
	}

	if cfg, _, err := image.DecodeConfig(bytes.NewReader(raw)); err == nil {
		info.Width = cfg.Width
		info.Height = cfg.Height
	}

	return info, nil
}

// splitDataURL returns the base64 payload and the declared MIME type of a
// "data:<mime>;base64,<payload>" URL.
func splitDataURL(dataURL string) (payload, mime string, err error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", "", fmt.Errorf("not a data URL")
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", "", fmt.Errorf("malformed data URL: missing payload")
	}
	mime, encoding, ok := strings.Cut(header, ";")
	if !ok || encoding != "base64" {
		return "", "", fmt.Errorf("malformed data URL: only base64 encoding is supported")
	}
	return payload, mime, nil
}
