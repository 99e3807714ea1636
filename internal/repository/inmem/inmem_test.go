package inmem

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/smart-notes/internal/entity"
)

func save(t *testing.T, r *Repo, owner int64, title string) entity.Note {
	t.Helper()

	n := entity.NewNote(entity.NoteDraft{Title: title})
	n.AssignOwner(owner)

	saved, err := r.SaveNote(context.Background(), n)
	require.NoError(t, err)
	return saved
}

func TestNotesScopedByOwner(t *testing.T) {
	r := New()
	ctx := context.Background()

	a1 := save(t, r, 1, "a1")
	save(t, r, 2, "b1")
	a2 := save(t, r, 1, "a2")

	notes, err := r.GetNotesByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, a1.ID, notes[0].ID)
	assert.Equal(t, a2.ID, notes[1].ID)

	empty, err := r.GetNotesByUserID(ctx, 3)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestUpdateKeepsOwner(t *testing.T) {
	r := New()
	ctx := context.Background()

	n := save(t, r, 1, "old")

	updated, err := r.UpdateNote(ctx, n.ID, entity.NoteDraft{Title: "new", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.UserID)
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, n.CreatedAt, updated.CreatedAt)

	_, err = r.UpdateNote(ctx, 99, entity.NoteDraft{Title: "x"})
	assert.ErrorIs(t, err, entity.ErrNoteNotFound)
}

func TestDeleteNote(t *testing.T) {
	r := New()
	ctx := context.Background()

	n := save(t, r, 1, "gone")
	require.NoError(t, r.DeleteNote(ctx, n.ID))

	_, err := r.GetNote(ctx, n.ID)
	assert.ErrorIs(t, err, entity.ErrNoteNotFound)
	assert.ErrorIs(t, r.DeleteNote(ctx, n.ID), entity.ErrNoteNotFound)
}

func TestUsers(t *testing.T) {
	r := New()
	ctx := context.Background()

	u, err := r.CreateUser(ctx, "alice", []byte("hash"))
	require.NoError(t, err)

	_, err = r.CreateUser(ctx, "alice", []byte("other"))
	assert.ErrorIs(t, err, entity.ErrUserExists)

	got, err := r.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got, err = r.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = r.GetUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
	_, err = r.GetUser(ctx, 42)
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestNotesOrderedByIDAcrossFullRange(t *testing.T) {
	r := New()
	for _, id := range []int64{math.MaxInt64, 5, math.MinInt64 + 1} {
		r.notes[id] = entity.Note{ID: id, UserID: 1}
	}

	notes, err := r.GetNotesByUserID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, int64(math.MinInt64+1), notes[0].ID)
	assert.Equal(t, int64(5), notes[1].ID)
	assert.Equal(t, int64(math.MaxInt64), notes[2].ID)
}
