package service

import (
	"context"
	"fmt"
	"math/rand"
)

const slugAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	slugLength      = 5
	minRequestedLen = 5
	maxSlugAttempts = 10
)

// SlugAllocator hands out short codes unique within a domain. The
// existence pre-check plus bounded retry is an optimization; the store's
// unique constraint remains the final arbiter under concurrency.
type SlugAllocator struct {
	store   LinkStore
	randInt func(n int) int
}

// NewSlugAllocator builds an allocator. randInt may be nil for the default
// uniform source; tests inject a scripted one.
func NewSlugAllocator(store LinkStore, randInt func(n int) int) *SlugAllocator {
	if randInt == nil {
		randInt = rand.Intn
	}
	return &SlugAllocator{store: store, randInt: randInt}
}

// Allocate returns a free code for the domain. A requested code must be at
// least 5 characters and untaken; a generated one is retried up to 10
// times before giving up. Hitting the bound is a signal to widen the
// alphabet or length, not to loop forever.
func (a *SlugAllocator) Allocate(ctx context.Context, domainID int64, requested string) (string, error) {
	if requested != "" {
		if len(requested) < minRequestedLen {
			return "", fmt.Errorf("%w: slug must be at least %d characters", ErrValidation, minRequestedLen)
		}
		taken, err := a.store.LinkCodeExists(ctx, domainID, requested)
		if err != nil {
			return "", err
		}
		if taken {
			return "", ErrSlugTaken
		}
		return requested, nil
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		code := a.generate()
		taken, err := a.store.LinkCodeExists(ctx, domainID, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrSlugExhausted
}

func (a *SlugAllocator) generate() string {
	b := make([]byte, slugLength)
	for i := range b {
		b[i] = slugAlphabet[a.randInt(len(slugAlphabet))]
	}
	return string(b)
}
