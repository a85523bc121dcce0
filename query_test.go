package quorum

import (
	"testing"

	"github.com/iov-one/quorum/errors"
	"github.com/stretchr/testify/assert"
)

type countingQuery struct{ calls *int }

func (q countingQuery) Query(ReadOnlyKVStore, string, []byte) ([]Model, error) {
	*q.calls++
	return []Model{Pair([]byte("k"), []byte("v"))}, nil
}

func TestQueryRouter(t *testing.T) {
	var calls int
	r := NewQueryRouter()
	r.RegisterAll(func(qr QueryRouter) {
		qr.Register("/items", countingQuery{calls: &calls})
	})

	assert.Nil(t, r.Handler("/missing"))
	h := r.Handler("/items")
	if assert.NotNil(t, h) {
		models, err := h.Query(nil, KeyQueryMod, nil)
		assert.NoError(t, err)
		assert.Equal(t, []Model{{Key: []byte("k"), Value: []byte("v")}}, models)
		assert.Equal(t, 1, calls)
	}

	assert.Panics(t, func() {
		r.Register("/items", countingQuery{calls: &calls})
	})
}

func TestParseQueryPath(t *testing.T) {
	cases := map[string]struct {
		raw      string
		wantPath string
		wantMod  string
		wantErr  *errors.Error
	}{
		"key query":       {raw: "/groups", wantPath: "/groups", wantMod: KeyQueryMod},
		"prefix query":    {raw: "/groups?prefix", wantPath: "/groups", wantMod: PrefixQueryMod},
		"index query":     {raw: "/holding/owner", wantPath: "/holding/owner", wantMod: KeyQueryMod},
		"unknown modifer": {raw: "/groups?range", wantErr: errors.ErrInvalidInput},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path, mod, err := ParseQueryPath(tc.raw)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			assert.Equal(t, tc.wantPath, path)
			assert.Equal(t, tc.wantMod, mod)
		})
	}
}
