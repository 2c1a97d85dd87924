package storage

import (
	"context"
	"errors"
	"fmt"

	"canvas-arcade/config"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Store is a string key/value store. Get returns ErrNotFound for a key that
// was never set.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open builds the store selected by conf.Driver.
func Open(ctx context.Context, conf config.Storage) (Store, error) {
	var (
		store Store
		err   error
	)

	switch conf.Driver {
	case "memory":
		store = NewMemoryStore()
	case "file", "":
		store, err = NewFileStore(conf.Path)
	case "sqlite":
		store, err = NewSQLiteStore(ctx, conf.Path)
	case "redis":
		store, err = NewRedisStore(ctx, conf.Redis.GetRedisAddr(), conf.Redis.Password, conf.Redis.DB)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, conf.Driver)
	}
	if err != nil {
		return nil, err
	}

	return store, nil
}
