package converter

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"

	notesrepo "github.com/evgeniy-krivenko/smart-notes/internal/repository/notes/gen"
)

func TestConvertNotesToEntity(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	notes := ConvertNotesToEntity([]notesrepo.Note{{
		ID:        1,
		UserID:    2,
		Title:     "t",
		Content:   "c",
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	}})

	assert.Len(t, notes, 1)
	assert.Equal(t, int64(2), notes[0].UserID)
	assert.Equal(t, now, notes[0].CreatedAt)

	assert.NotNil(t, ConvertNotesToEntity(nil))
	assert.Empty(t, ConvertNotesToEntity(nil))
}

func TestConvertUserToEntity(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	user := ConvertUserToEntity(notesrepo.User{
		ID:           7,
		Username:     "alice",
		PasswordHash: []byte("hash"),
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	})

	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, []byte("hash"), user.PasswordHash)
	assert.Equal(t, now, user.CreatedAt)
}
