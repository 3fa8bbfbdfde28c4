package repository

//go:generate go run go.uber.org/mock/mockgen -source=./note.go -destination=../mocks/note_mock.go -package=mocks

import (
	"context"

	"github.com/GitMovi52027/movi5/infras/otel"
	"github.com/GitMovi52027/movi5/infras/postgres"
	"github.com/GitMovi52027/movi5/internal/domains/request/model"
	gDto "github.com/GitMovi52027/movi5/shared/dto"
	gRepo "github.com/GitMovi52027/movi5/shared/repository"
)

type Note interface {
	Insert(ctx context.Context, model model.RequestNote) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RequestNote, error)
}

type noteRepositoryImpl struct {
	gRepo.Repository[model.RequestNote]
	db   *postgres.Connection
	otel otel.Otel
}

func NewNote(db *postgres.Connection, otel otel.Otel) Note {
	return &noteRepositoryImpl{
		Repository: gRepo.NewRepository[model.RequestNote](model.NoteEntityName, model.NoteTableName, model.NoteFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
