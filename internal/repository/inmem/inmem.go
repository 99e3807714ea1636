// Package inmem keeps notes and users in process memory. It backs local
// runs with APP_STORAGE=memory and the service tests.
package inmem

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/evgeniy-krivenko/smart-notes/internal/entity"
)

type Repo struct {
	mu sync.RWMutex

	notes      map[int64]entity.Note
	users      map[int64]entity.User
	nextNoteID int64
	nextUserID int64

	now func() time.Time
}

func New() *Repo {
	return &Repo{
		notes: make(map[int64]entity.Note),
		users: make(map[int64]entity.User),
		now:   time.Now,
	}
}

func (r *Repo) SaveNote(_ context.Context, note entity.Note) (entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextNoteID++
	now := r.now()

	note.ID = r.nextNoteID
	note.CreatedAt = now
	note.UpdatedAt = now
	r.notes[note.ID] = note

	return note, nil
}

func (r *Repo) GetNote(_ context.Context, id int64) (entity.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, ok := r.notes[id]
	if !ok {
		return entity.Note{}, entity.ErrNoteNotFound
	}

	return note, nil
}

func (r *Repo) GetNotesByUserID(_ context.Context, userID int64) ([]entity.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]entity.Note, 0)
	for _, n := range r.notes {
		if n.UserID == userID {
			notes = append(notes, n)
		}
	}

	slices.SortFunc(notes, func(a, b entity.Note) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return notes, nil
}

func (r *Repo) UpdateNote(_ context.Context, id int64, draft entity.NoteDraft) (entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.notes[id]
	if !ok {
		return entity.Note{}, entity.ErrNoteNotFound
	}

	note.Title = draft.Title
	note.Content = draft.Content
	note.UpdatedAt = r.now()
	r.notes[id] = note

	return note, nil
}

func (r *Repo) DeleteNote(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[id]; !ok {
		return entity.ErrNoteNotFound
	}

	delete(r.notes, id)
	return nil
}

func (r *Repo) CreateUser(_ context.Context, username string, passwordHash []byte) (entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return entity.User{}, entity.ErrUserExists
		}
	}

	r.nextUserID++
	u := entity.User{
		ID:           r.nextUserID,
		Username:     username,
		PasswordHash: slices.Clone(passwordHash),
		CreatedAt:    r.now(),
	}
	r.users[u.ID] = u

	return u, nil
}

func (r *Repo) GetUser(_ context.Context, id int64) (entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return entity.User{}, entity.ErrUserNotFound
	}

	return u, nil
}

func (r *Repo) GetUserByUsername(_ context.Context, username string) (entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}

	return entity.User{}, entity.ErrUserNotFound
}

// RunInTx runs f directly. Each operation is atomic on its own; there is
// no rollback.
func (r *Repo) RunInTx(ctx context.Context, f func(context.Context) error) error {
	return f(ctx)
}

func (r *Repo) Ping(context.Context) error {
	return nil
}
