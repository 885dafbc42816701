package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/rate/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"
)

type Rate interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Rate, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Rate, error)
	ReplaceAll(ctx context.Context, rates []model.Rate) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Rate]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Rate {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Rate](model.EntityName, model.TableName, model.FieldRoomType, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ReplaceAll swaps the whole rate table inside one transaction.
func (r *repositoryImpl) ReplaceAll(ctx context.Context, rates []model.Rate) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rate.ReplaceAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := r.BeginTx(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	defer func() {
		if err == nil {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil {
			logger.ErrorWithStack(rbErr)
		}
	}()

	all := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldRoomType, Operator: gDto.FilterIsNotNull, Table: model.TableName},
		},
	}

	if err = r.DeleteTx(ctx, tx, all); err != nil {
		return err //nolint:wrapcheck
	}

	if err = r.InsertBulkTx(ctx, tx, rates); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rate replacement: %w", err)
	}

	return nil
}
