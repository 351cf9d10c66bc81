package database

import "context"

// KVRepository is the host key-value capability the configuration store is
// built on. Missing keys are absent from the map returned by Get.
type KVRepository interface {
	Get(ctx context.Context, keys ...string) (map[string][]byte, error)
	Set(ctx context.Context, values map[string][]byte) error
	Remove(ctx context.Context, keys ...string) error
}
