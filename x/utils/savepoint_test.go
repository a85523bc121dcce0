package utils

import (
	"context"
	"fmt"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavepoint(t *testing.T) {
	nk, nv := []byte{1, 2, 3}, []byte{4, 5, 6}
	derr := fmt.Errorf("something went wrong")

	cases := map[string]struct {
		save    Savepoint
		handler quorum.Handler
		check   bool
		wantErr bool
		written bool
	}{
		"disabled, error keeps the write": {
			save:    NewSavepoint(),
			handler: writeHandler{key: nk, value: nv, err: derr},
			check:   true,
			wantErr: true,
			written: true,
		},
		"check, error rolls back": {
			save:    NewSavepoint().OnCheck(),
			handler: writeHandler{key: nk, value: nv, err: derr},
			check:   true,
			wantErr: true,
		},
		"deliver, error rolls back": {
			save:    NewSavepoint().OnDeliver(),
			handler: writeHandler{key: nk, value: nv, err: derr},
			wantErr: true,
		},
		"both activations are kept": {
			save:    NewSavepoint().OnDeliver().OnCheck(),
			handler: writeHandler{key: nk, value: nv, err: derr},
			wantErr: true,
		},
		"check savepoint does not affect deliver": {
			save:    NewSavepoint().OnCheck(),
			handler: writeHandler{key: nk, value: nv, err: derr},
			wantErr: true,
			written: true,
		},
		"success is written": {
			save:    NewSavepoint().OnCheck().OnDeliver(),
			handler: writeHandler{key: nk, value: nv},
			written: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			kv := store.MemStore()
			tx := &quorumtest.Tx{}

			var err error
			if tc.check {
				_, err = tc.save.Check(ctx, kv, tx, tc.handler)
			} else {
				_, err = tc.save.Deliver(ctx, kv, tx, tc.handler)
			}
			assert.Equal(t, tc.wantErr, err != nil, "%+v", err)

			has, err := kv.Has(nk)
			require.NoError(t, err)
			assert.Equal(t, tc.written, has)
		})
	}
}
