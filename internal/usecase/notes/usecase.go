package notes

import (
	"context"
	"fmt"

	"github.com/evgeniy-krivenko/smart-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/smart-notes/internal/entity"
	"github.com/evgeniy-krivenko/smart-notes/pkg/logger/slogx"
)

type notesRepository interface {
	SaveNote(ctx context.Context, note entity.Note) (entity.Note, error)
	GetNote(ctx context.Context, id int64) (entity.Note, error)
	GetNotesByUserID(ctx context.Context, userID int64) ([]entity.Note, error)
	UpdateNote(ctx context.Context, id int64, draft entity.NoteDraft) (entity.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo notesRepository `option:"mandatory" validate:"required"`
	tx   txManager       `option:"mandatory" validate:"required"`

	// strictOwnership limits get, update and delete to the note owner.
	strictOwnership bool
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

// ListNotes returns the notes owned by the acting user.
func (u *Usecase) ListNotes(ctx context.Context) ([]entity.Note, error) {
	userID, err := ctxtr.UserID(ctx)
	if err != nil {
		return nil, entity.ErrUnauthenticated
	}

	notes, err := u.repo.GetNotesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase get notes by user: %w", err)
	}

	return notes, nil
}

func (u *Usecase) GetNote(ctx context.Context, id int64) (entity.Note, error) {
	note, err := u.repo.GetNote(ctx, id)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase get note: %w", err)
	}

	if err := u.checkAccess(ctx, note); err != nil {
		return entity.Note{}, fmt.Errorf("usecase get note: %w", err)
	}

	return note, nil
}

// CreateNote persists a note owned by the acting user. The owner never
// comes from the draft.
func (u *Usecase) CreateNote(ctx context.Context, draft entity.NoteDraft) (entity.Note, error) {
	userID, err := ctxtr.UserID(ctx)
	if err != nil {
		return entity.Note{}, entity.ErrUnauthenticated
	}

	if err := draft.Validate(); err != nil {
		return entity.Note{}, fmt.Errorf("usecase create note: %w", err)
	}

	note := entity.NewNote(draft)
	note.AssignOwner(userID)

	note, err = u.repo.SaveNote(ctx, note)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase create note: %w", err)
	}

	slogx.Info(ctx, "success to create note", slogx.UserId(userID), slogx.NoteId(note.ID))
	return note, nil
}

// UpdateNote replaces title and content. The owner is left as is.
func (u *Usecase) UpdateNote(ctx context.Context, id int64, draft entity.NoteDraft) (entity.Note, error) {
	if err := draft.Validate(); err != nil {
		return entity.Note{}, fmt.Errorf("usecase update note: %w", err)
	}

	var note entity.Note
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := u.guard(ctx, id); err != nil {
			return err
		}

		var err error
		note, err = u.repo.UpdateNote(ctx, id, draft)
		return err
	})
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase update note: %w", err)
	}

	slogx.Info(ctx, "success to update note", slogx.NoteId(id))
	return note, nil
}

func (u *Usecase) DeleteNote(ctx context.Context, id int64) error {
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := u.guard(ctx, id); err != nil {
			return err
		}

		return u.repo.DeleteNote(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("usecase delete note: %w", err)
	}

	slogx.Info(ctx, "success to delete note", slogx.NoteId(id))
	return nil
}

// guard loads the note and checks access when ownership is strict.
func (u *Usecase) guard(ctx context.Context, id int64) error {
	if !u.strictOwnership {
		return nil
	}

	note, err := u.repo.GetNote(ctx, id)
	if err != nil {
		return err
	}

	return u.checkAccess(ctx, note)
}

// checkAccess hides notes of other users behind ErrNoteNotFound.
func (u *Usecase) checkAccess(ctx context.Context, note entity.Note) error {
	if !u.strictOwnership {
		return nil
	}

	userID, err := ctxtr.UserID(ctx)
	if err != nil || !note.OwnedBy(userID) {
		return entity.ErrNoteNotFound
	}

	return nil
}
