package api

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"
)

// parseDataURI splits a "data:<mediatype>;base64,<payload>" string as
// sent by the frontend file pickers.
func parseDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URI")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URI")
	}

	contentType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("data URI is not base64 encoded")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data URI: %w", err)
	}

	return contentType, data, nil
}

func extFromContentType(contentType string) string {
	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return ".bin"
	}

	return exts[0]
}

// uploadDataURI decodes an inline attachment and stores it, returning
// the public URL of the stored object.
func (s *CampusChatApp) uploadDataURI(ctx context.Context, baseName, uri string) (string, error) {
	contentType, data, err := parseDataURI(uri)
	if err != nil {
		return "", err
	}

	objectName := baseName + extFromContentType(contentType)
	return s.store.Upload(ctx, objectName, contentType, data)
}
