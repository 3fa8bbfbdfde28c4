package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/GitMovi52027/movi5/infras/otel"
	"github.com/GitMovi52027/movi5/infras/postgres"
	"github.com/GitMovi52027/movi5/internal/domains/configuration/model"
	"github.com/GitMovi52027/movi5/shared/constant"
	gDto "github.com/GitMovi52027/movi5/shared/dto"
	"github.com/GitMovi52027/movi5/shared/logger"
	gRepo "github.com/GitMovi52027/movi5/shared/repository"
)

type Configuration interface {
	Upsert(ctx context.Context, model model.Configuration) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Configuration, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Configuration, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Configuration]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Configuration {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Configuration](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert inserts the configuration or, when the key already exists, overwrites
// its value in place. The description only changes when one is supplied.
// Uniqueness of the key column is arbitrated by the database, so concurrent
// writers resolve to last-write-wins with exactly one row per key.
func (repo *repositoryImpl) Upsert(ctx context.Context, mod model.Configuration) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Upsert")
	defer scope.End()

	query := fmt.Sprintf(`INSERT INTO %s (id, key, value, description, created_at, modified_at, created_by, modified_by)
		VALUES (:id, :key, :value, :description, :created_at, :modified_at, :created_by, :modified_by)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			description = COALESCE(EXCLUDED.description, %s.description),
			modified_at = EXCLUDED.modified_at,
			modified_by = EXCLUDED.modified_by`, model.TableName, model.TableName)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, mod)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert data (%s): %w", model.EntityName, err)
	}

	return nil
}
