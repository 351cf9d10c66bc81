package storage

import (
	"context"
	"encoding/json"
	"io"

	"envlinks/internal/types"
)

type (
	Type string

	// Source provides the default configuration document. Implementations do
	// not cache: every call re-reads the underlying document.
	Source interface {
		LoadDefault(ctx context.Context) (types.Configuration, error)
	}
)

const (
	TypeEmbedded Type = "Embedded"
	TypeFS       Type = "File"
	TypeS3       Type = "S3"

	maxDocumentSize int64 = 4 * 1024 * 1024 // 4MB
)

func (t Type) String() string {
	return string(t)
}

func decode(raw []byte) (types.Configuration, error) {
	var cfg types.Configuration
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return types.Configuration{}, types.NewError(types.ErrParse, "default configuration", err)
	}
	return cfg.Normalize(), nil
}

// readDocument reads at most maxDocumentSize bytes and fails with ErrFetch
// rather than truncating a larger document.
func readDocument(r io.Reader, location string) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxDocumentSize+1))
	if err != nil {
		return nil, types.NewError(types.ErrFetch, location, err)
	}
	if int64(len(raw)) > maxDocumentSize {
		return nil, types.NewError(types.ErrFetch, location+": document too large", nil)
	}
	return raw, nil
}
