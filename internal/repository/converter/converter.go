package converter

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/evgeniy-krivenko/smart-notes/internal/entity"
	notesrepo "github.com/evgeniy-krivenko/smart-notes/internal/repository/notes/gen"
)

func ConvertNoteToEntity(row notesrepo.Note) entity.Note {
	return entity.Note{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Content:   row.Content,
		CreatedAt: ConvertTimestampzToTime(row.CreatedAt),
		UpdatedAt: ConvertTimestampzToTime(row.UpdatedAt),
	}
}

func ConvertNotesToEntity(rows []notesrepo.Note) []entity.Note {
	notes := make([]entity.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, ConvertNoteToEntity(row))
	}

	return notes
}

func ConvertUserToEntity(row notesrepo.User) entity.User {
	return entity.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    ConvertTimestampzToTime(row.CreatedAt),
	}
}

func ConvertTimestampzToTime(t pgtype.Timestamptz) time.Time {
	return t.Time
}
