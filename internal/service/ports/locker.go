package ports

import "context"

type IdempotencyLocker interface {
	Acquire(ctx context.Context, key, owner string) (bool, error)
	Release(ctx context.Context, key, owner string) error
}
