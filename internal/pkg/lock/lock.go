// Package lock serializes work on a single key, across instances through
// redsync or inside one process through keyed channels.
package lock

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	goredislib "github.com/redis/go-redis/v9"
)

var ErrNotAcquired = stderrors.New("lock not acquired")

// Unlock releases a held lock. Calling it more than once is a no-op.
type Unlock func(ctx context.Context) error

type Locker interface {
	Lock(ctx context.Context, key string) (Unlock, error)
}

type redisLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
	tries  int
}

func NewRedisLocker(client *goredislib.Client, expiry time.Duration, tries int) Locker {
	return &redisLocker{
		rs:     redsync.New(goredis.NewPool(client)),
		expiry: expiry,
		tries:  tries,
	}
}

func (l *redisLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	mutex := l.rs.NewMutex(key, redsync.WithExpiry(l.expiry), redsync.WithTries(l.tries))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotAcquired, key, err)
	}

	var once sync.Once
	return func(ctx context.Context) error {
		var err error
		once.Do(func() {
			_, err = mutex.UnlockContext(ctx)
		})
		return err
	}, nil
}

type entry struct {
	ch   chan struct{}
	refs int
}

type localLocker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

func NewLocalLocker() Locker {
	return &localLocker{locks: make(map[string]*entry)}
}

func (l *localLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(key, e)
		return nil, fmt.Errorf("%w: %s: %v", ErrNotAcquired, key, ctx.Err())
	}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			<-e.ch
			l.release(key, e)
		})
		return nil
	}, nil
}

func (l *localLocker) release(key string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
}
