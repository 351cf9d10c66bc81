package storage

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"envlinks/assets"
	"envlinks/internal/types"
)

type fileSource struct {
	fsys fs.FS
	path string
}

// NewFileSource reads the document at path inside fsys.
func NewFileSource(fsys fs.FS, path string) Source {
	return &fileSource{fsys: fsys, path: path}
}

// NewEmbeddedSource reads the urls.json bundled into the binary.
func NewEmbeddedSource() Source {
	return NewFileSource(assets.FS, assets.DefaultConfigPath)
}

// NewLocalSource reads a document from the local filesystem.
func NewLocalSource(path string) Source {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return NewFileSource(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
}

func (f *fileSource) LoadDefault(ctx context.Context) (types.Configuration, error) {
	if err := ctx.Err(); err != nil {
		return types.Configuration{}, types.NewError(types.ErrFetch, f.path, err)
	}

	file, err := f.fsys.Open(f.path)
	if err != nil {
		return types.Configuration{}, types.NewError(types.ErrFetch, f.path, err)
	}

	defer func() {
		_ = file.Close()
	}()

	raw, err := readDocument(file, f.path)
	if err != nil {
		return types.Configuration{}, err
	}

	return decode(raw)
}
