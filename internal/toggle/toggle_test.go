package toggle

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Title string
	Tags  []string
}

func upper(calls *int) TranslateFunc[doc] {
	return func(_ context.Context, v doc) (doc, error) {
		*calls++
		tags := make([]string, len(v.Tags))
		for i, t := range v.Tags {
			tags[i] = strings.ToUpper(t)
		}
		return doc{Title: strings.ToUpper(v.Title), Tags: tags}, nil
	}
}

func TestFlipRoundTrip(t *testing.T) {
	var tg Toggle[doc]
	original := doc{Title: "solar", Tags: []string{"pv", "ict"}}
	tg.Reset(original)

	calls := 0
	v, state, err := tg.Flip(context.Background(), upper(&calls))
	require.NoError(t, err)
	assert.Equal(t, Translated, state)
	assert.Equal(t, "SOLAR", v.Title)

	v, state, err = tg.Flip(context.Background(), upper(&calls))
	require.NoError(t, err)
	assert.Equal(t, Source, state)
	assert.Equal(t, original, v)
	assert.Equal(t, 1, calls, "switching back does not translate")

	cur, state, ok := tg.Current()
	require.True(t, ok)
	assert.Equal(t, Source, state)
	assert.Equal(t, original, cur)
}

func TestFlipTranslatesAgainEachTime(t *testing.T) {
	var tg Toggle[doc]
	tg.Reset(doc{Title: "a"})
	calls := 0
	for i := 0; i < 4; i++ {
		_, _, err := tg.Flip(context.Background(), upper(&calls))
		require.NoError(t, err)
	}
	assert.Equal(t, 2, calls)
}

func TestFlipFailureStaysSource(t *testing.T) {
	var tg Toggle[doc]
	original := doc{Title: "solar"}
	tg.Reset(original)

	boom := errors.New("boom")
	_, state, err := tg.Flip(context.Background(), func(context.Context, doc) (doc, error) {
		return doc{}, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Source, state)

	cur, state, ok := tg.Current()
	require.True(t, ok)
	assert.Equal(t, Source, state)
	assert.Equal(t, original, cur)
}

func TestFlipEmpty(t *testing.T) {
	var tg Toggle[doc]
	_, _, err := tg.Flip(context.Background(), upper(new(int)))
	assert.ErrorIs(t, err, ErrEmpty)

	tg.Reset(doc{Title: "x"})
	tg.Clear()
	_, _, ok := tg.Current()
	assert.False(t, ok)
}

func TestResetDiscardsTranslation(t *testing.T) {
	var tg Toggle[doc]
	tg.Reset(doc{Title: "first"})
	_, _, err := tg.Flip(context.Background(), upper(new(int)))
	require.NoError(t, err)

	tg.Reset(doc{Title: "second"})
	cur, state, ok := tg.Current()
	require.True(t, ok)
	assert.Equal(t, Source, state)
	assert.Equal(t, "second", cur.Title)
}

func TestFlipStaleResult(t *testing.T) {
	var tg Toggle[doc]
	tg.Reset(doc{Title: "first"})

	_, _, err := tg.Flip(context.Background(), func(_ context.Context, v doc) (doc, error) {
		tg.Reset(doc{Title: "second"})
		return doc{Title: "FIRST"}, nil
	})
	assert.ErrorIs(t, err, ErrStale)

	cur, state, _ := tg.Current()
	assert.Equal(t, Source, state)
	assert.Equal(t, "second", cur.Title)
}
