package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/GitMovi52027/movi5/config"
	"github.com/GitMovi52027/movi5/infras/otel"
	"github.com/GitMovi52027/movi5/internal/domains/configuration/model"
	"github.com/GitMovi52027/movi5/internal/domains/configuration/model/dto"
	"github.com/GitMovi52027/movi5/internal/domains/configuration/repository"
	"github.com/GitMovi52027/movi5/shared/cache"
	"github.com/GitMovi52027/movi5/shared/constant"
	gDto "github.com/GitMovi52027/movi5/shared/dto"
)

const cacheKeyPrefix = "config:"

type Configuration interface {
	Set(ctx context.Context, req dto.SetConfigurationRequest) error
	Get(ctx context.Context, key string) (dto.ConfigurationResponse, error)
	GetValue(ctx context.Context, key string) (string, error)
	GetAll(ctx context.Context) (dto.GetConfigurationsResponse, error)
}

type serviceImpl struct {
	repo  repository.Configuration
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Configuration, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Configuration {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func filterByKey(key string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldKey,
				Operator: gDto.FilterOperatorEq,
				Value:    key,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Set(ctx context.Context, req dto.SetConfigurationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	if err = s.repo.Upsert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Str("key", req.Key).Msg("failed to set configuration")

		return fmt.Errorf("failed to set configuration: %w", err)
	}

	if err := s.cache.Delete(ctx, cacheKeyPrefix+req.Key); err != nil {
		log.Warn().Err(err).Str("key", req.Key).Msg("failed to invalidate configuration cache")
	}

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, key string) (res dto.ConfigurationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	configuration, err := s.repo.Get(ctx, filterByKey(key))
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to get configuration")

		return res, fmt.Errorf("failed to get configuration: %w", err)
	}

	res.FromModel(configuration)
	res.Key = key

	return res, nil
}

// GetValue resolves a configuration value, serving from the cache when
// possible. An absent key yields an empty string, not an error.
func (s *serviceImpl) GetValue(ctx context.Context, key string) (value string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetValue")
	defer scope.End()
	defer scope.TraceIfError(err)

	if cacheErr := s.cache.Get(ctx, cacheKeyPrefix+key, &value); cacheErr == nil {
		return value, nil
	}

	configuration, err := s.repo.Get(ctx, filterByKey(key))
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to get configuration value")

		return "", fmt.Errorf("failed to get configuration value: %w", err)
	}

	if configuration.ID != "" {
		if cacheErr := s.cache.Save(ctx, cacheKeyPrefix+key, configuration.Value, s.cfg.Cache.TTL); cacheErr != nil {
			log.Warn().Err(cacheErr).Str("key", key).Msg("failed to cache configuration value")
		}
	}

	return configuration.Value, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetConfigurationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: model.FieldKey, SortDir: gDto.SortDirAsc}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get configurations")

		return res, fmt.Errorf("failed to get configurations: %w", err)
	}

	res.FromModels(models)

	return res, nil
}
