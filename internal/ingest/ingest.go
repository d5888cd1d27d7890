// Package ingest turns an uploaded résumé file into a self-contained data
// URL: the declared media type plus the base64-encoded bytes, storable as a
// single string and renderable later without the original file.
package ingest

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
)

const fallbackMediaType = "application/octet-stream"

// ReadDataURL reads the whole file from r and returns its data-URL encoding.
// The media type is inferred from the filename extension. A read failure or
// an already-cancelled context returns an error and no partial result; once
// the read has started it runs to completion.
func ReadDataURL(ctx context.Context, r io.Reader, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", filename, err)
	}

	return Encode(b, MediaType(filename)), nil
}

// Encode builds a data URL from raw bytes and a media type.
func Encode(b []byte, mediaType string) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(b)
}

// MediaType maps a filename to its declared media type, defaulting to
// octet-stream for unknown extensions. Charset parameters are stripped so
// the data URL stays compact.
func MediaType(filename string) string {
	mt := mime.TypeByExtension(filepath.Ext(filename))
	if mt == "" {
		return fallbackMediaType
	}
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}

	return mt
}
