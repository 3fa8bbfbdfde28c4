package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/GitMovi52027/movi5/infras/otel"
	"github.com/GitMovi52027/movi5/internal/domains/dashboard/model/dto"
	requestModel "github.com/GitMovi52027/movi5/internal/domains/request/model"
	requestRepo "github.com/GitMovi52027/movi5/internal/domains/request/repository"
	routeModel "github.com/GitMovi52027/movi5/internal/domains/route/model"
	routeRepo "github.com/GitMovi52027/movi5/internal/domains/route/repository"
	"github.com/GitMovi52027/movi5/shared/constant"
	gDto "github.com/GitMovi52027/movi5/shared/dto"
)

type Dashboard interface {
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	routes   routeRepo.Route
	requests requestRepo.Request
	otel     otel.Otel
}

func New(routes routeRepo.Route, requests requestRepo.Request, otel otel.Otel) Dashboard {
	return &serviceImpl{
		routes:   routes,
		requests: requests,
		otel:     otel,
	}
}

func equalsFilter(table, field string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    table,
			},
		},
	}
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	if res.TotalRoutes, err = s.routes.Count(ctx, gDto.FilterGroup{}); err != nil {
		log.Error().Err(err).Msg("failed to count routes")

		return res, fmt.Errorf("failed to count routes: %w", err)
	}

	if res.ActiveRoutes, err = s.routes.Count(ctx, equalsFilter(routeModel.TableName, routeModel.FieldActive, true)); err != nil {
		log.Error().Err(err).Msg("failed to count active routes")

		return res, fmt.Errorf("failed to count active routes: %w", err)
	}

	if res.PendingRequests, err = s.requests.Count(ctx, equalsFilter(requestModel.TableName, requestModel.FieldStatus, requestModel.StatusPending)); err != nil {
		log.Error().Err(err).Msg("failed to count pending requests")

		return res, fmt.Errorf("failed to count pending requests: %w", err)
	}

	if res.CompletedRequests, err = s.requests.Count(ctx, equalsFilter(requestModel.TableName, requestModel.FieldStatus, requestModel.StatusCompleted)); err != nil {
		log.Error().Err(err).Msg("failed to count completed requests")

		return res, fmt.Errorf("failed to count completed requests: %w", err)
	}

	return res, nil
}
