package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/evgeniy-krivenko/smart-notes/internal/entity"
	"github.com/evgeniy-krivenko/smart-notes/internal/repository/converter"
	notesrepo "github.com/evgeniy-krivenko/smart-notes/internal/repository/notes/gen"
	"github.com/evgeniy-krivenko/smart-notes/pkg/logger/slogx"
)

// SaveNote inserts a new note. The owner must already be assigned.
func (r *Repo) SaveNote(ctx context.Context, note entity.Note) (entity.Note, error) {
	row, err := r.notesDB.CreateNote(ctx, notesrepo.CreateNoteParams{
		UserID:  note.UserID,
		Title:   note.Title,
		Content: note.Content,
	})
	if err != nil {
		return entity.Note{}, fmt.Errorf("create note: %v", err)
	}

	slogx.Debug(ctx, "success to create note", slogx.UserId(note.UserID), slogx.NoteId(row.ID))

	return converter.ConvertNoteToEntity(row), nil
}

func (r *Repo) GetNote(ctx context.Context, id int64) (entity.Note, error) {
	row, err := r.notesDB.GetNote(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Note{}, entity.ErrNoteNotFound
		}
		return entity.Note{}, fmt.Errorf("get note: %v", err)
	}

	return converter.ConvertNoteToEntity(row), nil
}

func (r *Repo) GetNotesByUserID(ctx context.Context, userID int64) ([]entity.Note, error) {
	rows, err := r.notesDB.GetNotesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get notes by user: %v", err)
	}

	return converter.ConvertNotesToEntity(rows), nil
}

// UpdateNote rewrites title and content only.
func (r *Repo) UpdateNote(ctx context.Context, id int64, draft entity.NoteDraft) (entity.Note, error) {
	row, err := r.notesDB.UpdateNote(ctx, notesrepo.UpdateNoteParams{
		ID:      id,
		Title:   draft.Title,
		Content: draft.Content,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Note{}, entity.ErrNoteNotFound
		}
		return entity.Note{}, fmt.Errorf("update note: %v", err)
	}

	return converter.ConvertNoteToEntity(row), nil
}

func (r *Repo) DeleteNote(ctx context.Context, id int64) error {
	n, err := r.notesDB.DeleteNote(ctx, id)
	if err != nil {
		return fmt.Errorf("delete note: %v", err)
	}

	if n == 0 {
		return entity.ErrNoteNotFound
	}

	return nil
}
