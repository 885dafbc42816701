package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
	"time"
)

const argExpectedStatus = "expected_status"

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	// GetInRange returns every booking matching the report range rule, oldest check-in first.
	GetInRange(ctx context.Context, from, to time.Time) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	// Transition writes fields only while the booking is still in the expected status
	// and returns the number of rows changed.
	Transition(ctx context.Context, id string, expected model.Status, fields map[string]any) (int64, error)
	DeleteAffected(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	NextReference(ctx context.Context, prefix string) (string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetInRange(ctx context.Context, from, to time.Time) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetInRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: model.FieldCheckIn, SortDir: gDto.SortDirAsc}

	return r.GetAll(ctx, params, model.InRangeFilter(from, to)) //nolint:wrapcheck
}

func (r *repositoryImpl) Transition(ctx context.Context, id string, expected model.Status, fields map[string]any) (affected int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	filter.Operator = gDto.FilterGroupOperatorAnd
	filter.Filters = append(filter.Filters, gDto.Filter{
		ArgName:  argExpectedStatus,
		Field:    model.FieldBookingStatus,
		Operator: gDto.FilterOperatorEq,
		Value:    expected,
		Table:    model.TableName,
	})

	return r.UpdateAffected(ctx, fields, filter) //nolint:wrapcheck
}

// NextReference draws the next human readable reference, e.g. HKH-000042.
func (r *repositoryImpl) NextReference(ctx context.Context, prefix string) (string, error) {
	sequence, err := r.NextSequenceValue(ctx, model.ReferenceSequence)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to draw booking reference: %w", err)
	}

	return model.FormatReference(prefix, sequence), nil
}
