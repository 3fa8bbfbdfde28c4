package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/GitMovi52027/movi5/config"
	"github.com/GitMovi52027/movi5/infras/otel"
	"github.com/GitMovi52027/movi5/internal/domains/route/model"
	"github.com/GitMovi52027/movi5/internal/domains/route/model/dto"
	"github.com/GitMovi52027/movi5/internal/domains/route/repository"
	"github.com/GitMovi52027/movi5/shared"
	"github.com/GitMovi52027/movi5/shared/constant"
	gDto "github.com/GitMovi52027/movi5/shared/dto"
	"github.com/GitMovi52027/movi5/shared/failure"
	"github.com/GitMovi52027/movi5/shared/timezone"
)

type Route interface {
	Create(ctx context.Context, req dto.CreateRouteRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoutesResponse, error)
	Get(ctx context.Context, id string) (dto.RouteResponse, error)
	Update(ctx context.Context, req dto.UpdateRouteRequest, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	Reseed(ctx context.Context, routes []model.Route) error
}

type serviceImpl struct {
	repo repository.Route
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Route, cfg *config.Config, otel otel.Otel) Route {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// validate enforces the fare and frequency rules that every persisted route
// must satisfy, on create and on the merged result of an update.
func validate(route model.Route) error {
	if route.BusPrice == nil && route.BoatPrice == nil {
		return failure.BadRequestFromString("at least one of busPrice or boatPrice must be set")
	}

	if route.BusPrice != nil && *route.BusPrice <= 0 {
		return failure.BadRequestFromString("busPrice must be a positive amount")
	}

	if route.BoatPrice != nil && *route.BoatPrice <= 0 {
		return failure.BadRequestFromString("boatPrice must be a positive amount")
	}

	switch route.FrequencyType {
	case model.FrequencyTypeInterval:
		if route.IntervalMinutes == nil || *route.IntervalMinutes <= 0 {
			return failure.BadRequestFromString("intervalMinutes is required for INTERVAL frequency")
		}

		if len(route.SpecificTimes) > 0 {
			return failure.BadRequestFromString("specificTimes must be empty for INTERVAL frequency")
		}
	case model.FrequencyTypeSpecific:
		if len(route.SpecificTimes) == 0 {
			return failure.BadRequestFromString("specificTimes is required for SPECIFIC frequency")
		}

		if route.IntervalMinutes != nil {
			return failure.BadRequestFromString("intervalMinutes must be absent for SPECIFIC frequency")
		}
	default:
		return failure.BadRequestFromString("frequencyType must be one of INTERVAL SPECIFIC")
	}

	if len(route.OperatingDays) == 0 {
		return failure.BadRequestFromString("operatingDays must not be empty")
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRouteRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	route := req.ToModel(user)
	if err = validate(route); err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, route); err != nil {
		log.Error().Err(err).Msg("failed to create route")

		return fmt.Errorf("failed to create route: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoutesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count routes")

		return res, fmt.Errorf("failed to count routes: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get routes")

		return res, fmt.Errorf("failed to get routes: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RouteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	route, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get route")

		return res, fmt.Errorf("failed to get route: %w", err)
	}

	if route.ID == "" {
		return res, failure.NotFound("route not found") // nolint:wrapcheck
	}

	res.FromModel(route)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRouteRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	route, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get route")

		return fmt.Errorf("failed to get route: %w", err)
	}

	if route.ID == "" {
		return failure.NotFound("route not found") // nolint:wrapcheck
	}

	req.MergeInto(&route)

	if err = validate(route); err != nil {
		return err
	}

	updatedFields := map[string]any{
		model.FieldOrigin:          route.Origin,
		model.FieldDestination:     route.Destination,
		model.FieldBusPrice:        route.BusPrice,
		model.FieldBoatPrice:       route.BoatPrice,
		model.FieldStartTime:       route.StartTime,
		model.FieldEndTime:         route.EndTime,
		model.FieldFrequencyType:   route.FrequencyType,
		model.FieldIntervalMinutes: route.IntervalMinutes,
		model.FieldSpecificTimes:   route.SpecificTimes,
		model.FieldOperatingDays:   route.OperatingDays,
		model.FieldTripType:        route.TripType,
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update route")

		return fmt.Errorf("failed to update route: %w", err)
	}

	return nil
}

func (s *serviceImpl) SetActive(ctx context.Context, id string, active bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if route exists")

		return fmt.Errorf("failed to check if route exists: %w", err)
	}

	if !exist {
		return failure.NotFound("route not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldActive:        active,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to toggle route")

		return fmt.Errorf("failed to toggle route: %w", err)
	}

	return nil
}

// Reseed drops every route and bulk inserts the given replacements. This is
// the only path that removes routes.
func (s *serviceImpl) Reseed(ctx context.Context, routes []model.Route) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reseed")
	defer scope.End()
	defer scope.TraceIfError(err)

	for _, route := range routes {
		if err = validate(route); err != nil {
			return err
		}
	}

	if err = s.repo.DeleteAll(ctx); err != nil {
		log.Error().Err(err).Msg("failed to clear routes")

		return fmt.Errorf("failed to clear routes: %w", err)
	}

	if err = s.repo.InsertBulk(ctx, routes); err != nil {
		log.Error().Err(err).Msg("failed to insert seed routes")

		return fmt.Errorf("failed to insert seed routes: %w", err)
	}

	return nil
}
