package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GitMovi52027/movi5/config"
	"github.com/GitMovi52027/movi5/infras/otel/mocks"
	routeMocks "github.com/GitMovi52027/movi5/internal/domains/route/mocks"
	"github.com/GitMovi52027/movi5/internal/domains/route/model"
	"github.com/GitMovi52027/movi5/internal/domains/route/model/dto"
	"github.com/GitMovi52027/movi5/internal/domains/route/service"
	"github.com/GitMovi52027/movi5/shared/failure"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func allWeek() []string {
	return []string{"lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo"}
}

func TestRouteService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := routeMocks.NewMockRoute(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	validInterval := dto.CreateRouteRequest{
		Origin:          "Cali",
		Destination:     "Buenaventura",
		BusPrice:        int64Ptr(42500),
		StartTime:       "04:08",
		EndTime:         "19:52",
		FrequencyType:   model.FrequencyTypeInterval,
		IntervalMinutes: intPtr(8),
		OperatingDays:   allWeek(),
		TripType:        model.TripTypeBus,
	}

	tests := []struct {
		name      string
		req       dto.CreateRouteRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful interval route",
			req:  validInterval,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "successful specific route",
			req: dto.CreateRouteRequest{
				Origin:        "Cali",
				Destination:   "Juanchaco",
				BusPrice:      int64Ptr(42500),
				BoatPrice:     int64Ptr(140000),
				StartTime:     "04:08",
				EndTime:       "23:00",
				FrequencyType: model.FrequencyTypeSpecific,
				SpecificTimes: []string{"06:00", "14:30"},
				OperatingDays: allWeek(),
				TripType:      model.TripTypeBusBoat,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "neither price set",
			req: func() dto.CreateRouteRequest {
				req := validInterval
				req.BusPrice = nil
				req.BoatPrice = nil

				return req
			}(),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "interval frequency without minutes",
			req: func() dto.CreateRouteRequest {
				req := validInterval
				req.IntervalMinutes = nil

				return req
			}(),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "interval frequency carrying specific times",
			req: func() dto.CreateRouteRequest {
				req := validInterval
				req.SpecificTimes = []string{"06:00"}

				return req
			}(),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "specific frequency without times",
			req: func() dto.CreateRouteRequest {
				req := validInterval
				req.FrequencyType = model.FrequencyTypeSpecific
				req.SpecificTimes = nil

				return req
			}(),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "specific frequency carrying interval minutes",
			req: func() dto.CreateRouteRequest {
				req := validInterval
				req.FrequencyType = model.FrequencyTypeSpecific
				req.SpecificTimes = []string{"06:00"}

				return req
			}(),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "empty operating days",
			req: func() dto.CreateRouteRequest {
				req := validInterval
				req.OperatingDays = nil

				return req
			}(),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  validInterval,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), tt.req)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestRouteService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := routeMocks.NewMockRoute(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	existing := model.Route{
		ID:              "route-1",
		Origin:          "Cali",
		Destination:     "Buenaventura",
		BusPrice:        int64Ptr(42500),
		StartTime:       "04:08",
		EndTime:         "19:52",
		FrequencyType:   model.FrequencyTypeInterval,
		IntervalMinutes: intPtr(8),
		OperatingDays:   allWeek(),
		TripType:        model.TripTypeBus,
		Active:          true,
	}

	t.Run("switch to specific frequency clears interval", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existing, nil)

		frequencyType := model.FrequencyTypeSpecific

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, model.FrequencyTypeSpecific, fields[model.FieldFrequencyType])
				assert.Nil(t, fields[model.FieldIntervalMinutes])

				return nil
			})

		err := svc.Update(context.Background(), dto.UpdateRouteRequest{
			FrequencyType: &frequencyType,
			SpecificTimes: []string{"06:00", "14:30"},
		}, "route-1")
		assert.NoError(t, err)
	})

	t.Run("specific times on interval route are rejected", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existing, nil)

		// frequency type untouched, so the mismatched times must surface
		// as a validation error instead of being dropped
		err := svc.Update(context.Background(), dto.UpdateRouteRequest{
			SpecificTimes: []string{"06:00", "14:30"},
		}, "route-1")
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("merged result failing validation is rejected", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existing, nil)

		frequencyType := model.FrequencyTypeSpecific

		// no specific times supplied for the new frequency
		err := svc.Update(context.Background(), dto.UpdateRouteRequest{
			FrequencyType: &frequencyType,
		}, "route-1")
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("route not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Route{}, nil)

		origin := "Cartagena"

		err := svc.Update(context.Background(), dto.UpdateRouteRequest{Origin: &origin}, "missing")
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRouteService_SetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := routeMocks.NewMockRoute(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	t.Run("toggles existing route", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, false, fields[model.FieldActive])

				return nil
			})

		assert.NoError(t, svc.SetActive(context.Background(), "route-1", false))
	})

	t.Run("missing route", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.SetActive(context.Background(), "missing", true)
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRouteService_Reseed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := routeMocks.NewMockRoute(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	seed := []model.Route{
		{
			ID:              "seed-1",
			Origin:          "Cali",
			Destination:     "Buenaventura",
			BusPrice:        int64Ptr(42500),
			StartTime:       "04:08",
			EndTime:         "19:52",
			FrequencyType:   model.FrequencyTypeInterval,
			IntervalMinutes: intPtr(8),
			OperatingDays:   allWeek(),
			TripType:        model.TripTypeBus,
			Active:          true,
		},
	}

	t.Run("replaces all routes", func(t *testing.T) {
		mockRepo.EXPECT().DeleteAll(gomock.Any()).Return(nil)
		mockRepo.EXPECT().InsertBulk(gomock.Any(), seed).Return(nil)

		assert.NoError(t, svc.Reseed(context.Background(), seed))
	})

	t.Run("invalid seed route aborts before delete", func(t *testing.T) {
		bad := []model.Route{{ID: "seed-2", FrequencyType: model.FrequencyTypeInterval}}

		err := svc.Reseed(context.Background(), bad)
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
