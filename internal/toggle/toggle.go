// Package toggle implements the source/translated display cache used by every view.
package toggle

import (
	"context"
	"errors"
	"sync"
)

type State string

const (
	Source     State = "source"
	Translated State = "translated"
)

var (
	ErrEmpty = errors.New("nothing to translate")
	// ErrStale means a new result replaced the source while a translation was running.
	ErrStale = errors.New("result changed during translation")
)

// TranslateFunc produces a translated copy of v with the same shape.
type TranslateFunc[T any] func(ctx context.Context, v T) (T, error)

// Toggle holds the source-language object and, while in the Translated state,
// its translated copy. Switching back never calls the translator.
type Toggle[T any] struct {
	mu         sync.Mutex
	source     T
	translated T
	state      State
	loaded     bool
	generation uint64
}

// Reset installs a new source object and discards any translation.
func (t *Toggle[T]) Reset(v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var zero T
	t.source = v
	t.translated = zero
	t.state = Source
	t.loaded = true
	t.generation++
}

// Clear drops the displayed object, e.g. when a new request starts.
func (t *Toggle[T]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	var zero T
	t.source = zero
	t.translated = zero
	t.state = Source
	t.loaded = false
	t.generation++
}

// Current returns the displayed object and state; ok is false when empty.
func (t *Toggle[T]) Current() (v T, state State, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.loaded {
		return v, Source, false
	}
	if t.state == Translated {
		return t.translated, Translated, true
	}
	return t.source, Source, true
}

// Flip moves Source to Translated by calling translate, or Translated back to
// Source from the cache. On translate failure the state stays Source.
func (t *Toggle[T]) Flip(ctx context.Context, translate TranslateFunc[T]) (T, State, error) {
	t.mu.Lock()
	if !t.loaded {
		t.mu.Unlock()
		var zero T
		return zero, Source, ErrEmpty
	}
	if t.state == Translated {
		var zero T
		t.translated = zero
		t.state = Source
		v := t.source
		t.mu.Unlock()
		return v, Source, nil
	}
	src, gen := t.source, t.generation
	t.mu.Unlock()

	translated, err := translate(ctx, src)
	if err != nil {
		return src, Source, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.generation {
		return t.source, t.state, ErrStale
	}
	t.translated = translated
	t.state = Translated
	return translated, Translated, nil
}
