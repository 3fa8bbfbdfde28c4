package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/GitMovi52027/movi5/infras/otel"
	"github.com/GitMovi52027/movi5/infras/postgres"
	"github.com/GitMovi52027/movi5/internal/domains/request/model"
	"github.com/GitMovi52027/movi5/shared/constant"
	gDto "github.com/GitMovi52027/movi5/shared/dto"
	"github.com/GitMovi52027/movi5/shared/logger"
	gRepo "github.com/GitMovi52027/movi5/shared/repository"
	"github.com/GitMovi52027/movi5/shared/timezone"
)

type Request interface {
	Insert(ctx context.Context, model model.Request) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Request, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Request, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	SetStatusWithNote(ctx context.Context, requestID, status string, note model.RequestNote) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Request]
	notes gRepo.Repository[model.RequestNote]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Request {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Request](model.EntityName, model.TableName, model.FieldID, db, otel),
		notes:      gRepo.NewRepository[model.RequestNote](model.NoteEntityName, model.NoteTableName, model.NoteFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SetStatusWithNote persists a status change and its transition note in
// one transaction, so the note trail never drifts from the status column.
func (repo *repositoryImpl) SetStatusWithNote(ctx context.Context, requestID, status string, note model.RequestNote) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".SetStatusWithNote")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	fields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: note.CreatedBy,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    requestID,
				Table:    model.TableName,
			},
		},
	}

	if err = repo.UpdateTx(ctx, tx, fields, filter); err != nil {
		return err
	}

	if err = repo.notes.InsertTx(ctx, tx, note); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}
