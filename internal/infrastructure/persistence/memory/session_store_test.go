package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krrish-maji/Campus-Connect/internal/domain/session"
	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
)

func TestSessionStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	require.NoError(t, store.Set(ctx, session.KeyToken, "tok"))
	require.NoError(t, store.Set(ctx, session.KeyTheme, "dark"))

	val, err := store.Get(ctx, session.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok", val)

	require.NoError(t, store.Delete(ctx, session.KeyToken, session.KeyUser))

	_, err = store.Get(ctx, session.KeyToken)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	// Theme untouched by the delete.
	val, err = store.Get(ctx, session.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", val)
	assert.Equal(t, 1, store.Len())
}

func TestSessionStore_MissingKeyIsNotFound(t *testing.T) {
	_, err := NewSessionStore().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestSessionStore_DeleteMissingIsNoError(t *testing.T) {
	assert.NoError(t, NewSessionStore().Delete(context.Background(), "nope"))
}
