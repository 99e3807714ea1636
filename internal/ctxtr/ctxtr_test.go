package ctxtr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserID(t *testing.T) {
	_, err := UserID(context.Background())
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = UserID(WithUserID(context.Background(), 0))
	assert.ErrorIs(t, err, ErrUserNotFound)

	id, err := UserID(WithUserID(context.Background(), 5))
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}
