package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GitMovi52027/movi5/config"
	"github.com/GitMovi52027/movi5/infras/otel/mocks"
	configurationMocks "github.com/GitMovi52027/movi5/internal/domains/configuration/mocks"
	"github.com/GitMovi52027/movi5/internal/domains/configuration/model"
	"github.com/GitMovi52027/movi5/internal/domains/configuration/model/dto"
	"github.com/GitMovi52027/movi5/internal/domains/configuration/service"
	cacheMocks "github.com/GitMovi52027/movi5/shared/cache/mocks"
	"github.com/GitMovi52027/movi5/shared/constant"
)

func TestConfigurationService_Set(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := configurationMocks.NewMockConfiguration(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mockOtel)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@test.com")

	tests := []struct {
		name      string
		req       dto.SetConfigurationRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful upsert invalidates cache",
			req:  dto.SetConfigurationRequest{Key: constant.ConfigKeyWebhookURL, Value: "https://example.com/hook"},
			setupMock: func() {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Configuration) error {
						assert.Equal(t, constant.ConfigKeyWebhookURL, m.Key)
						assert.Equal(t, "https://example.com/hook", m.Value)
						assert.Equal(t, "admin@test.com", m.Metadata.CreatedBy)
						return nil
					})
				mockCache.EXPECT().
					Delete(gomock.Any(), "config:"+constant.ConfigKeyWebhookURL).
					Return(nil)
			},
		},
		{
			name: "cache invalidation failure does not fail the set",
			req:  dto.SetConfigurationRequest{Key: constant.ConfigKeyCompanyName, Value: "Movi"},
			setupMock: func() {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(nil)
				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("redis down"))
			},
		},
		{
			name: "repository failure",
			req:  dto.SetConfigurationRequest{Key: constant.ConfigKeyCompanyName, Value: "Movi"},
			setupMock: func() {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Set(ctx, tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfigurationService_GetValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := configurationMocks.NewMockConfiguration(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		key       string
		setupMock func()
		want      string
		wantErr   bool
	}{
		{
			name: "served from cache",
			key:  constant.ConfigKeyWebhookURL,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "config:"+constant.ConfigKeyWebhookURL, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*string) = "https://cached.example.com"
						return nil
					})
			},
			want: "https://cached.example.com",
		},
		{
			name: "cache miss falls back to repository and caches",
			key:  constant.ConfigKeyWebhookURL,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Configuration{
						ID:    "cfg-1",
						Key:   constant.ConfigKeyWebhookURL,
						Value: "https://db.example.com",
					}, nil)
				mockCache.EXPECT().
					Save(gomock.Any(), "config:"+constant.ConfigKeyWebhookURL, "https://db.example.com", 300).
					Return(nil)
			},
			want: "https://db.example.com",
		},
		{
			name: "absent key yields empty value without error",
			key:  "unknown_key",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Configuration{}, nil)
			},
			want: "",
		},
		{
			name: "repository failure",
			key:  constant.ConfigKeyWebhookURL,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Configuration{}, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.GetValue(context.Background(), tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigurationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := configurationMocks.NewMockConfiguration(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mockOtel)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Configuration{
			{ID: "1", Key: constant.ConfigKeyCompanyName, Value: "Movi"},
			{ID: "2", Key: constant.ConfigKeyWebhookURL, Value: "https://example.com/hook"},
		}, nil)

	res, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, res.Configurations, 2)
	assert.Equal(t, constant.ConfigKeyCompanyName, res.Configurations[0].Key)
}
