package repository

import (
	notesrepo "github.com/evgeniy-krivenko/smart-notes/internal/repository/notes/gen"
	"github.com/evgeniy-krivenko/smart-notes/pkg/database"
)

type Repo struct {
	notesDB notesrepo.Querier
}

func New(db database.Tx) *Repo {
	return &Repo{
		notesDB: notesrepo.New(db),
	}
}
