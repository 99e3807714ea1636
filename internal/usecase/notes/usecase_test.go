package notes

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/smart-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/smart-notes/internal/entity"
	"github.com/evgeniy-krivenko/smart-notes/internal/repository/inmem"
)

type countingRepo struct {
	*inmem.Repo
	listCalls atomic.Int32
}

func (r *countingRepo) GetNotesByUserID(ctx context.Context, userID int64) ([]entity.Note, error) {
	r.listCalls.Add(1)
	return r.Repo.GetNotesByUserID(ctx, userID)
}

func newUsecase(t *testing.T, opts ...OptOptionsSetter) (*Usecase, *countingRepo) {
	t.Helper()

	repo := &countingRepo{Repo: inmem.New()}
	uc, err := New(NewOptions(repo, repo, opts...))
	require.NoError(t, err)

	return uc, repo
}

func as(userID int64) context.Context {
	return ctxtr.WithUserID(context.Background(), userID)
}

func TestNewRequiresRepo(t *testing.T) {
	_, err := New(NewOptions(nil, inmem.New()))
	assert.Error(t, err)
}

func TestListIsScopedToOwner(t *testing.T) {
	uc, _ := newUsecase(t)

	n1, err := uc.CreateNote(as(1), entity.NoteDraft{Title: "mine"})
	require.NoError(t, err)
	n2, err := uc.CreateNote(as(2), entity.NoteDraft{Title: "theirs"})
	require.NoError(t, err)

	notes, err := uc.ListNotes(as(1))
	require.NoError(t, err)

	ids := make([]int64, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	assert.Contains(t, ids, n1.ID)
	assert.NotContains(t, ids, n2.ID)
}

func TestListEmptyForUserWithoutNotes(t *testing.T) {
	uc, _ := newUsecase(t)

	notes, err := uc.ListNotes(as(5))
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestListAnonymousSkipsQuery(t *testing.T) {
	uc, repo := newUsecase(t)

	_, err := uc.ListNotes(context.Background())
	assert.ErrorIs(t, err, entity.ErrUnauthenticated)
	assert.Zero(t, repo.listCalls.Load())
}

func TestCreateThenGet(t *testing.T) {
	uc, _ := newUsecase(t)

	created, err := uc.CreateNote(as(7), entity.NoteDraft{Title: "T", Content: "B"})
	require.NoError(t, err)

	got, err := uc.GetNote(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, "B", got.Content)
}

func TestCreateRequiresUser(t *testing.T) {
	uc, _ := newUsecase(t)

	_, err := uc.CreateNote(context.Background(), entity.NoteDraft{Title: "T"})
	assert.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestCreateInvalidDraft(t *testing.T) {
	uc, repo := newUsecase(t)

	_, err := uc.CreateNote(as(1), entity.NoteDraft{Title: ""})

	var verr *entity.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "title")

	notes, err := repo.Repo.GetNotesByUserID(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestUpdateKeepsOwner(t *testing.T) {
	uc, _ := newUsecase(t)

	n, err := uc.CreateNote(as(3), entity.NoteDraft{Title: "T", Content: "B"})
	require.NoError(t, err)

	// another user edits; the open policy lets it through but ownership stays
	updated, err := uc.UpdateNote(as(4), n.ID, entity.NoteDraft{Title: "T2"})
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, int64(3), updated.UserID)

	got, err := uc.GetNote(context.Background(), n.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.UserID)
	assert.Equal(t, "T2", got.Title)
}

func TestUpdateErrors(t *testing.T) {
	uc, _ := newUsecase(t)

	_, err := uc.UpdateNote(as(1), 404, entity.NoteDraft{Title: "x"})
	assert.ErrorIs(t, err, entity.ErrNoteNotFound)

	n, err := uc.CreateNote(as(1), entity.NoteDraft{Title: "T"})
	require.NoError(t, err)

	_, err = uc.UpdateNote(as(1), n.ID, entity.NoteDraft{})
	var verr *entity.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDeleteThenGetNotFound(t *testing.T) {
	uc, _ := newUsecase(t)

	n, err := uc.CreateNote(as(1), entity.NoteDraft{Title: "T"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteNote(as(1), n.ID))

	_, err = uc.GetNote(as(1), n.ID)
	assert.ErrorIs(t, err, entity.ErrNoteNotFound)

	assert.ErrorIs(t, uc.DeleteNote(as(1), n.ID), entity.ErrNoteNotFound)
}

func TestGetMissingRegardlessOfCaller(t *testing.T) {
	uc, _ := newUsecase(t)

	for _, ctx := range []context.Context{context.Background(), as(1)} {
		_, err := uc.GetNote(ctx, 12345)
		assert.ErrorIs(t, err, entity.ErrNoteNotFound)
	}
}

func TestStrictOwnership(t *testing.T) {
	uc, _ := newUsecase(t, WithStrictOwnership(true))

	n, err := uc.CreateNote(as(1), entity.NoteDraft{Title: "private"})
	require.NoError(t, err)

	_, err = uc.GetNote(as(1), n.ID)
	require.NoError(t, err)

	_, err = uc.GetNote(as(2), n.ID)
	assert.ErrorIs(t, err, entity.ErrNoteNotFound)
	_, err = uc.GetNote(context.Background(), n.ID)
	assert.ErrorIs(t, err, entity.ErrNoteNotFound)

	_, err = uc.UpdateNote(as(2), n.ID, entity.NoteDraft{Title: "hijack"})
	assert.ErrorIs(t, err, entity.ErrNoteNotFound)
	assert.ErrorIs(t, uc.DeleteNote(as(2), n.ID), entity.ErrNoteNotFound)

	got, err := uc.GetNote(as(1), n.ID)
	require.NoError(t, err)
	assert.Equal(t, "private", got.Title)

	require.NoError(t, uc.DeleteNote(as(1), n.ID))
}
