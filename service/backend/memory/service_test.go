package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/namepool/service/backend"
)

func TestService_ConditionalWrite(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	first := New(store)
	second := New(store)
	assert.True(t, first.SupportsConditionalWrite())
	assert.True(t, first.Shared())

	data, err := first.Read(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)

	_, err = second.Read(ctx)
	require.NoError(t, err)

	require.NoError(t, first.Write(ctx, []byte("a")))
	err = second.Write(ctx, []byte("b"))
	assert.True(t, errors.Is(err, backend.ErrConflict))
	assert.True(t, backend.IsConflict(err))
	assert.Equal(t, []byte("a"), store.Blob())

	data, err = second.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), data)
	require.NoError(t, second.Write(ctx, []byte("b")))
	assert.Equal(t, []byte("b"), store.Blob())
	assert.Equal(t, 2, store.Writes())

	// consecutive writes by the same handle do not conflict with themselves
	require.NoError(t, second.Write(ctx, []byte("c")))
}

func TestService_Put(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	srv := New(store)
	_, _ = srv.Read(ctx)
	store.Put([]byte("external"))
	assert.True(t, errors.Is(srv.Write(ctx, []byte("mine")), backend.ErrConflict))
	assert.Equal(t, []byte("external"), store.Blob())
	assert.Equal(t, 0, store.Writes())
}
