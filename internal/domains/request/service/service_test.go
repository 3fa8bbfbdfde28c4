package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GitMovi52027/movi5/config"
	otelMocks "github.com/GitMovi52027/movi5/infras/otel/mocks"
	requestMocks "github.com/GitMovi52027/movi5/internal/domains/request/mocks"
	"github.com/GitMovi52027/movi5/internal/domains/request/model"
	"github.com/GitMovi52027/movi5/internal/domains/request/model/dto"
	"github.com/GitMovi52027/movi5/internal/domains/request/service"
	webhookMocks "github.com/GitMovi52027/movi5/internal/domains/webhook/mocks"
	webhookModel "github.com/GitMovi52027/movi5/internal/domains/webhook/model"
	"github.com/GitMovi52027/movi5/shared/constant"
	gDto "github.com/GitMovi52027/movi5/shared/dto"
	"github.com/GitMovi52027/movi5/shared/failure"
)

type fixture struct {
	repo    *requestMocks.MockRequest
	notes   *requestMocks.MockNote
	webhook *webhookMocks.MockWebhook
	svc     service.Request
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := requestMocks.NewMockRequest(ctrl)
	notes := requestMocks.NewMockNote(ctrl)
	webhook := webhookMocks.NewMockWebhook(ctrl)

	return &fixture{
		repo:    repo,
		notes:   notes,
		webhook: webhook,
		svc:     service.New(repo, notes, webhook, &config.Config{}, otelMocks.NewOtel()),
	}
}

func validSubmit() dto.SubmitRequestRequest {
	return dto.SubmitRequestRequest{
		Origin:        "Cali",
		Destination:   "Buenaventura",
		DepartureDate: "2026-09-15",
		Passengers:    2,
		TotalPrice:    85000,
		CustomerName:  "Ana Pérez",
		CustomerEmail: "ana@test.com",
		CustomerPhone: "3001234567",
	}
}

func storedRequest(status string) model.Request {
	req := model.Request{
		ID:            "req-1",
		Origin:        "Cali",
		Destination:   "Buenaventura",
		DepartureDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Passengers:    2,
		TotalPrice:    85000,
		Status:        status,
		PaymentStatus: model.PaymentStatusPending,
		CustomerName:  "Ana Pérez",
		CustomerEmail: "ana@test.com",
		CustomerPhone: "3001234567",
	}

	return req
}

func TestRequestService_Submit(t *testing.T) {
	t.Run("creates pending request and notifies webhook", func(t *testing.T) {
		f := newFixture(t)

		var inserted model.Request
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req model.Request) error {
				inserted = req
				return nil
			})
		var notifiedRequestID string
		f.webhook.EXPECT().
			Dispatch(gomock.Any(), webhookModel.EventRequestCreated, gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, _, requestID string, _ any) {
				notifiedRequestID = requestID
			})

		res, err := f.svc.Submit(context.Background(), validSubmit())

		assert.NoError(t, err)
		assert.Equal(t, inserted.ID, notifiedRequestID)
		assert.Equal(t, model.StatusPending, inserted.Status)
		assert.Equal(t, model.PaymentStatusPending, inserted.PaymentStatus)
		assert.NotEmpty(t, inserted.ID)
		assert.Equal(t, model.StatusPending, res.Status)
		assert.Equal(t, "Pendiente", res.StatusLabel)
		assert.Equal(t, "2026-09-15", res.DepartureDate)
	})

	t.Run("invalid departure date", func(t *testing.T) {
		f := newFixture(t)

		req := validSubmit()
		req.DepartureDate = "15/09/2026"

		_, err := f.svc.Submit(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("repository failure skips webhook", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		_, err := f.svc.Submit(context.Background(), validSubmit())

		assert.Error(t, err)
	})
}

func TestRequestService_SetStatus(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		status    string
		setupMock func(f *fixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "pending to approved writes transition note",
			id:     "req-1",
			status: model.StatusApproved,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedRequest(model.StatusPending), nil)
				f.repo.EXPECT().
					SetStatusWithNote(gomock.Any(), "req-1", model.StatusApproved, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, note model.RequestNote) error {
						assert.Equal(t, "Estado cambiado de: Pendiente a Aprobada", note.Content)
						assert.Equal(t, "Sistema", note.CreatedBy)
						assert.Equal(t, "req-1", note.RequestID)
						return nil
					})
			},
		},
		{
			name:   "same status is a no-op",
			id:     "req-1",
			status: model.StatusPending,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedRequest(model.StatusPending), nil)
			},
		},
		{
			name:   "completed request rejects changes",
			id:     "req-1",
			status: model.StatusPending,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedRequest(model.StatusCompleted), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "rejected request rejects changes",
			id:     "req-1",
			status: model.StatusApproved,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedRequest(model.StatusRejected), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "unknown request",
			id:     "missing",
			status: model.StatusApproved,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Request{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:      "invalid status value",
			id:        "req-1",
			status:    "ARCHIVED",
			setupMock: func(f *fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.SetStatus(context.Background(), tt.id, tt.status)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.status, res.Status)
		})
	}
}

func TestRequestService_SetPaymentStatus(t *testing.T) {
	t.Run("pending to paid", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedRequest(model.StatusApproved), nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.PaymentStatusPaid, fields[model.FieldPaymentStatus])
				return nil
			})

		res, err := f.svc.SetPaymentStatus(context.Background(), "req-1", model.PaymentStatusPaid)

		assert.NoError(t, err)
		assert.Equal(t, model.PaymentStatusPaid, res.PaymentStatus)
	})

	t.Run("same payment status is a no-op", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedRequest(model.StatusApproved), nil)

		res, err := f.svc.SetPaymentStatus(context.Background(), "req-1", model.PaymentStatusPending)

		assert.NoError(t, err)
		assert.Equal(t, model.PaymentStatusPending, res.PaymentStatus)
	})

	t.Run("invalid payment status", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SetPaymentStatus(context.Background(), "req-1", "REFUNDED")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Request{}, nil)

		_, err := f.svc.SetPaymentStatus(context.Background(), "missing", model.PaymentStatusPaid)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRequestService_AddNote(t *testing.T) {
	t.Run("appends note with explicit author", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		var inserted model.RequestNote
		f.notes.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, note model.RequestNote) error {
				inserted = note
				return nil
			})

		res, err := f.svc.AddNote(context.Background(), "req-1", dto.AddNoteRequest{
			Content:   "Cliente confirmó el pago",
			CreatedBy: "admin@test.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Cliente confirmó el pago", inserted.Content)
		assert.Equal(t, "admin@test.com", inserted.CreatedBy)
		assert.Equal(t, "req-1", inserted.RequestID)
		assert.Equal(t, inserted.ID, res.ID)
	})

	t.Run("defaults author to authenticated user", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.notes.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, note model.RequestNote) error {
				assert.Equal(t, "admin@test.com", note.CreatedBy)
				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@test.com")

		_, err := f.svc.AddNote(ctx, "req-1", dto.AddNoteRequest{Content: "nota"})

		assert.NoError(t, err)
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := f.svc.AddNote(context.Background(), "missing", dto.AddNoteRequest{Content: "nota"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRequestService_GetNotes(t *testing.T) {
	t.Run("returns notes in creation order", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.notes.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.RequestNote, error) {
				assert.Equal(t, constant.FieldCreatedAt, params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)
				return []model.RequestNote{
					{ID: "note-1", Content: "Estado cambiado de: Pendiente a Aprobada"},
					{ID: "note-2", Content: "Cliente confirmó el pago"},
				}, nil
			})

		res, err := f.svc.GetNotes(context.Background(), "req-1")

		assert.NoError(t, err)
		assert.Len(t, res.Notes, 2)
		assert.Equal(t, "note-1", res.Notes[0].ID)
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := f.svc.GetNotes(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRequestService_GetAll(t *testing.T) {
	t.Run("filters by status", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Request, error) {
				if assert.Len(t, filter.Filters, 1) {
					f, ok := filter.Filters[0].(gDto.Filter)
					assert.True(t, ok)
					assert.Equal(t, model.FieldStatus, f.Field)
					assert.Equal(t, model.StatusPending, f.Value)
				}
				return []model.Request{storedRequest(model.StatusPending)}, nil
			})

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, model.StatusPending)

		assert.NoError(t, err)
		assert.Len(t, res.Requests, 1)
		assert.Equal(t, 1, res.TotalData)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{}, "ARCHIVED")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
