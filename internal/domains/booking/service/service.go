package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/event"
	"hotel/internal/domains/booking/lifecycle"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	pricingService "hotel/internal/domains/pricing/service"
	roomModel "hotel/internal/domains/room/model"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = constant.CachePrefixBooking + ":get"
	cacheGetAllBooking = constant.CachePrefixBooking + ":gets"
	cacheCountBooking  = constant.CachePrefixBooking + ":count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	Confirm(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckIn(ctx context.Context, req dto.CheckInRequest, id string) (dto.BookingResponse, error)
	CheckOut(ctx context.Context, req dto.CheckOutRequest, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, req dto.CancelRequest, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	rooms     roomRepository.Room
	pricing   pricingService.Pricing
	publisher event.Publisher
	lifecycle *lifecycle.Controller
	cfg       *config.Config
	cache     cache.RedisCache
	metrics   metrics.Metrics
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	rooms roomRepository.Room,
	pricing pricingService.Pricing,
	publisher event.Publisher,
	controller *lifecycle.Controller,
	cfg *config.Config,
	cache cache.RedisCache,
	metrics metrics.Metrics,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		rooms:     rooms,
		pricing:   pricing,
		publisher: publisher,
		lifecycle: controller,
		cfg:       cfg,
		cache:     cache,
		metrics:   metrics,
		otel:      otel,
	}
}

// Create stores a booking from the wizard or the walk-in form. Without an explicit
// total the stay is quoted by the pricing service.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut := req.Dates()
	if timezone.DaysBetween(checkIn, checkOut) <= 0 {
		return res, failure.InvalidDateRange("check-out must be after check-in") // nolint:wrapcheck
	}

	total, currency := req.TotalAmount, req.Currency
	if total == nil {
		quote, err := s.pricing.Quote(ctx, req.RoomType, checkIn, checkOut)
		if err != nil {
			return res, fmt.Errorf("failed to quote booking: %w", err)
		}

		total, currency = &quote.Total, quote.Currency
	}

	if currency == constant.Empty {
		currency = s.cfg.App.Currency
	}

	if req.RoomNumber != constant.Empty {
		if _, err = s.assignableRoom(ctx, req.RoomNumber); err != nil {
			return res, err
		}
	}

	reference, err := s.repo.NextReference(ctx, s.cfg.App.BookingPrefix)
	if err != nil {
		log.Error().Err(err).Msg("failed to draw booking reference")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking := req.ToModel(user, reference, *total, currency)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	s.invalidate(ctx, booking.ID)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update applies a staff edit. The write is conditional on the status read, so a
// concurrent lifecycle change makes the edit fail instead of silently reverting it.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, func(ctx context.Context, current model.Booking) (model.Booking, error) {
		next, err := s.lifecycle.ApplyPatch(current, req.ToPatch())
		if err != nil {
			return next, err //nolint:wrapcheck
		}

		if next.RoomNumber != constant.Empty && next.RoomNumber != current.RoomNumber {
			if _, err := s.assignableRoom(ctx, next.RoomNumber); err != nil {
				return next, err
			}
		}

		return next, nil
	})
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	affected, err := s.repo.DeleteAffected(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if affected == 0 {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, func(_ context.Context, current model.Booking) (model.Booking, error) {
		return s.lifecycle.Confirm(current) //nolint:wrapcheck
	})
}

func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, func(ctx context.Context, current model.Booking) (model.Booking, error) {
		next, err := s.lifecycle.CheckIn(current, req.Notes, req.RoomNumber)
		if err != nil {
			return next, err //nolint:wrapcheck
		}

		if next.RoomNumber != constant.Empty {
			if _, err := s.assignableRoom(ctx, next.RoomNumber); err != nil {
				return next, err
			}
		}

		return next, nil
	})
}

func (s *serviceImpl) CheckOut(ctx context.Context, req dto.CheckOutRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, func(_ context.Context, current model.Booking) (model.Booking, error) {
		return s.lifecycle.CheckOut(current, req.Notes) //nolint:wrapcheck
	})
}

func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, func(_ context.Context, current model.Booking) (model.Booking, error) {
		return s.lifecycle.Cancel(current, req.Reason) //nolint:wrapcheck
	})
}

type applyFunc func(ctx context.Context, current model.Booking) (model.Booking, error)

// transition reads the booking, lets apply compute the next state and persists it
// only if the status is still the one that was read.
func (s *serviceImpl) transition(ctx context.Context, id string, apply applyFunc) (res dto.BookingResponse, err error) {
	current, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	next, err := apply(ctx, current)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	next.ModifiedBy = user

	affected, err := s.repo.Transition(ctx, id, current.BookingStatus, mutableFields(next))
	if err != nil {
		log.Error().Err(err).Str("booking", id).Msg("failed to persist booking change")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	if affected == 0 {
		return res, s.missingOrConflict(ctx, id)
	}

	if next.BookingStatus != current.BookingStatus {
		s.metrics.BookingTransition(string(current.BookingStatus), string(next.BookingStatus))
		s.publish(ctx, event.NewStatusChanged(next, current.BookingStatus))
	}

	s.invalidate(ctx, id)

	res.FromModel(next)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) missingOrConflict(ctx context.Context, id string) error {
	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return failure.StateConflict("booking status was changed by someone else, reload and try again") // nolint:wrapcheck
}

// assignableRoom checks that the room exists and nobody is staying in it.
func (s *serviceImpl) assignableRoom(ctx context.Context, number string) (roomModel.Room, error) {
	room, err := s.rooms.GetByNumber(ctx, number)
	if err != nil {
		log.Error().Err(err).Str("room", number).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.Validation("room " + number + " does not exist") // nolint:wrapcheck
	}

	if room.Status == roomModel.StatusOccupied {
		return room, failure.StateConflict("room " + number + " is occupied") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) publish(ctx context.Context, evt event.StatusChanged) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.PublishStatusChanged(c, evt); err != nil {
			log.Error().Err(err).Str("booking", evt.BookingID).Msg("booking status change not delivered")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixAnalytics)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixGuest)
	}()
}

func mutableFields(booking model.Booking) map[string]any {
	return map[string]any{
		model.FieldCheckIn:            booking.CheckIn,
		model.FieldCheckOut:           booking.CheckOut,
		model.FieldGuestName:          booking.GuestName,
		model.FieldGuestEmail:         booking.GuestEmail,
		model.FieldGuestPhone:         booking.GuestPhone,
		model.FieldNationality:        booking.Nationality,
		model.FieldGuestCount:         booking.GuestCount,
		model.FieldRoomType:           booking.RoomType,
		model.FieldRoomNumber:         booking.RoomNumber,
		model.FieldTotalAmount:        booking.TotalAmount,
		model.FieldBookingStatus:      booking.BookingStatus,
		model.FieldPaymentStatus:      booking.PaymentStatus,
		model.FieldSpecialRequests:    booking.SpecialRequests,
		model.FieldPurposeOfVisit:     booking.PurposeOfVisit,
		model.FieldCancellationReason: booking.CancellationReason,
		constant.FieldModifiedAt:      booking.ModifiedAt,
		constant.FieldModifiedBy:      booking.ModifiedBy,
	}
}
