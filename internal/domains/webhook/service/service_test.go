package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GitMovi52027/movi5/config"
	otelMocks "github.com/GitMovi52027/movi5/infras/otel/mocks"
	webhookMocks "github.com/GitMovi52027/movi5/internal/domains/webhook/mocks"
	"github.com/GitMovi52027/movi5/internal/domains/webhook/model"
	"github.com/GitMovi52027/movi5/internal/domains/webhook/service"
	"github.com/GitMovi52027/movi5/shared/constant"
	gDto "github.com/GitMovi52027/movi5/shared/dto"
)

type dispatchFixture struct {
	ctrl     *gomock.Controller
	repo     *webhookMocks.MockWebhookLog
	resolver *webhookMocks.MockURLResolver
	svc      service.Webhook
}

func newDispatchFixture(t *testing.T) *dispatchFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := webhookMocks.NewMockWebhookLog(ctrl)
	resolver := webhookMocks.NewMockURLResolver(ctrl)

	cfg := &config.Config{}
	cfg.Webhook.TimeoutSeconds = 2

	return &dispatchFixture{
		ctrl:     ctrl,
		repo:     repo,
		resolver: resolver,
		svc:      service.New(repo, resolver, cfg, otelMocks.NewOtel()),
	}
}

func TestWebhookService_Dispatch_Success(t *testing.T) {
	var received struct {
		method      string
		contentType string
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.method = r.Method
		received.contentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	f := newDispatchFixture(t)

	f.resolver.EXPECT().
		GetValue(gomock.Any(), constant.ConfigKeyWebhookURL).
		Return(server.URL, nil)

	var logged model.WebhookLog
	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry model.WebhookLog) error {
			logged = entry
			return nil
		})

	f.svc.Dispatch(context.Background(), model.EventRequestCreated, "req-1", map[string]string{"id": "req-1"})

	assert.Equal(t, http.MethodPost, received.method)
	assert.Equal(t, "application/json", received.contentType)
	assert.True(t, logged.Success)
	if assert.NotNil(t, logged.StatusCode) {
		assert.Equal(t, http.StatusOK, *logged.StatusCode)
	}
	assert.Equal(t, model.EventRequestCreated, logged.Event)
	assert.Equal(t, "req-1", logged.RequestID)
	assert.Equal(t, server.URL, logged.URL)
	assert.JSONEq(t, `{"id":"req-1"}`, string(logged.Payload))
	assert.JSONEq(t, `{"ok":true}`, string(logged.Response))
	assert.Nil(t, logged.Error)
}

func TestWebhookService_Dispatch_NonJSONResponseStoredAsNull(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("plain text, not json"))
	}))
	defer server.Close()

	f := newDispatchFixture(t)

	f.resolver.EXPECT().
		GetValue(gomock.Any(), constant.ConfigKeyWebhookURL).
		Return(server.URL, nil)

	var logged model.WebhookLog
	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry model.WebhookLog) error {
			logged = entry
			return nil
		})

	f.svc.Dispatch(context.Background(), model.EventRequestCreated, "req-1", map[string]string{"id": "req-1"})

	assert.True(t, logged.Success)
	assert.Nil(t, logged.Response)
	assert.Nil(t, logged.Error)
}

func TestWebhookService_Dispatch_Non2xxLogsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	f := newDispatchFixture(t)

	f.resolver.EXPECT().
		GetValue(gomock.Any(), constant.ConfigKeyWebhookURL).
		Return(server.URL, nil)

	var logged model.WebhookLog
	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry model.WebhookLog) error {
			logged = entry
			return nil
		})

	f.svc.Dispatch(context.Background(), model.EventRequestCreated, "req-1", map[string]string{"id": "req-1"})

	assert.False(t, logged.Success)
	if assert.NotNil(t, logged.StatusCode) {
		assert.Equal(t, http.StatusInternalServerError, *logged.StatusCode)
	}
	if assert.NotNil(t, logged.Error) {
		assert.Contains(t, *logged.Error, "500")
	}
}

func TestWebhookService_Dispatch_TransportFailureLogged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	// Closed before dispatching so the connection is refused.
	url := server.URL
	server.Close()

	f := newDispatchFixture(t)

	f.resolver.EXPECT().
		GetValue(gomock.Any(), constant.ConfigKeyWebhookURL).
		Return(url, nil)

	var logged model.WebhookLog
	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry model.WebhookLog) error {
			logged = entry
			return nil
		})

	f.svc.Dispatch(context.Background(), model.EventRequestCreated, "req-1", map[string]string{"id": "req-1"})

	assert.False(t, logged.Success)
	assert.Nil(t, logged.StatusCode)
	assert.NotNil(t, logged.Error)
}

func TestWebhookService_Dispatch_NoURLSkipsSilently(t *testing.T) {
	f := newDispatchFixture(t)

	f.resolver.EXPECT().
		GetValue(gomock.Any(), constant.ConfigKeyWebhookURL).
		Return("", nil)

	// No Insert expectation: nothing is logged when the endpoint is unset.
	f.svc.Dispatch(context.Background(), model.EventRequestCreated, "req-1", map[string]string{"id": "req-1"})
}

func TestWebhookService_Dispatch_ResolverFailureSkips(t *testing.T) {
	f := newDispatchFixture(t)

	f.resolver.EXPECT().
		GetValue(gomock.Any(), constant.ConfigKeyWebhookURL).
		Return("", errors.New("db down"))

	f.svc.Dispatch(context.Background(), model.EventRequestCreated, "req-1", map[string]string{"id": "req-1"})
}

func TestWebhookService_GetLogs(t *testing.T) {
	f := newDispatchFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.WebhookLog, error) {
			assert.Equal(t, constant.FieldCreatedAt, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)
			return []model.WebhookLog{{ID: "log-1"}, {ID: "log-2"}}, nil
		})
	f.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	res, err := f.svc.GetLogs(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, res.Logs, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}
