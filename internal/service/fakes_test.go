package service

import (
	"context"
	"testing/fstest"

	"github.com/pkg/errors"

	"envlinks/internal/database"
	"envlinks/internal/storage"
)

const defaultDoc = `{"environments":[{"name":"Production","class":"cetacean-blue","urls":[{"name":"Web","url":"https://app.example.com"}]}]}`

// faultyKV wraps a memory repository and fails the operations that are switched on.
type faultyKV struct {
	database.KVRepository
	failGet, failSet, failRemove bool
}

func newFaultyKV() *faultyKV {
	return &faultyKV{KVRepository: database.NewMemoryRepository()}
}

func (f *faultyKV) Get(ctx context.Context, keys ...string) (map[string][]byte, error) {
	if f.failGet {
		return nil, errors.New("get failed")
	}
	return f.KVRepository.Get(ctx, keys...)
}

func (f *faultyKV) Set(ctx context.Context, values map[string][]byte) error {
	if f.failSet {
		return errors.New("set failed")
	}
	return f.KVRepository.Set(ctx, values)
}

func (f *faultyKV) Remove(ctx context.Context, keys ...string) error {
	if f.failRemove {
		return errors.New("remove failed")
	}
	return f.KVRepository.Remove(ctx, keys...)
}

func defaultSource() storage.Source {
	return storage.NewFileSource(fstest.MapFS{"urls.json": {Data: []byte(defaultDoc)}}, "urls.json")
}

func missingSource() storage.Source {
	return storage.NewFileSource(fstest.MapFS{}, "urls.json")
}
