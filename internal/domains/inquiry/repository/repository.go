package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/inquiry/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Inquiry interface {
	Insert(ctx context.Context, model model.Inquiry) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Inquiry, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Inquiry, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateAffected(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Inquiry]
}

func New(db *postgres.Connection, otel otel.Otel) Inquiry {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Inquiry](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
