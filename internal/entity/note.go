package entity

import (
	"errors"
	"time"
)

var (
	ErrNoteNotFound    = errors.New("note not found")
	ErrUnauthenticated = errors.New("unauthenticated")
)

type Note struct {
	ID        int64
	UserID    int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteDraft holds the fields a client may edit.
type NoteDraft struct {
	Title   string `validate:"required,notblank,max=200"`
	Content string `validate:"max=10000"`
}

// NewNote builds an unsaved note from the draft. The note has no owner
// until AssignOwner is called.
func NewNote(draft NoteDraft) Note {
	return Note{
		Title:   draft.Title,
		Content: draft.Content,
	}
}

func (n *Note) AssignOwner(userID int64) {
	n.UserID = userID
}

func (n Note) OwnedBy(userID int64) bool {
	return n.UserID != 0 && n.UserID == userID
}
