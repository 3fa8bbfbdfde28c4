package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/GitMovi52027/movi5/config"
	"github.com/GitMovi52027/movi5/infras/otel"
	"github.com/GitMovi52027/movi5/internal/domains/webhook/model"
	"github.com/GitMovi52027/movi5/internal/domains/webhook/model/dto"
	"github.com/GitMovi52027/movi5/internal/domains/webhook/repository"
	"github.com/GitMovi52027/movi5/shared/constant"
	gDto "github.com/GitMovi52027/movi5/shared/dto"
	gModel "github.com/GitMovi52027/movi5/shared/model"
	"github.com/GitMovi52027/movi5/shared/timezone"
)

const maxResponseBytes = 64 * 1024

// URLResolver yields the currently configured endpoint. An empty URL
// means deliveries are disabled.
type URLResolver interface {
	GetValue(ctx context.Context, key string) (string, error)
}

type Webhook interface {
	Dispatch(ctx context.Context, event, requestID string, payload any)
	GetLogs(ctx context.Context, params gDto.QueryParams) (dto.GetWebhookLogsResponse, error)
}

type serviceImpl struct {
	repo     repository.WebhookLog
	resolver URLResolver
	client   *http.Client
	otel     otel.Otel
}

func New(repo repository.WebhookLog, resolver URLResolver, cfg *config.Config, otel otel.Otel) Webhook {
	return &serviceImpl{
		repo:     repo,
		resolver: resolver,
		client: &http.Client{
			Timeout: time.Duration(cfg.Webhook.TimeoutSeconds) * time.Second,
		},
		otel: otel,
	}
}

// Dispatch posts the payload to the configured endpoint, best effort.
// One delivery attempt, one audit row. Failures are logged and swallowed
// so the caller's flow is never affected.
func (s *serviceImpl) Dispatch(ctx context.Context, event, requestID string, payload any) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dispatch")
	defer scope.End()

	url, err := s.resolver.GetValue(ctx, constant.ConfigKeyWebhookURL)
	if err != nil {
		log.Warn().Err(err).Str("event", event).Msg("webhook url lookup failed, skipping dispatch")

		return
	}

	if url == "" {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Warn().Err(err).Str("event", event).Msg("webhook payload not serializable, skipping dispatch")

		return
	}

	entry := model.WebhookLog{
		ID:        uuid.NewString(),
		Event:     event,
		RequestID: requestID,
		URL:       url,
		Payload:   gModel.JSONB(body),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextSystem,
			ModifiedBy: constant.ContextSystem,
		},
	}

	s.deliver(ctx, &entry, body)

	if err := s.repo.Insert(ctx, entry); err != nil {
		log.Error().Err(err).Str("event", event).Str("requestID", requestID).Msg("failed to persist webhook log")
	}
}

func (s *serviceImpl) deliver(ctx context.Context, entry *model.WebhookLog, body []byte) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, entry.URL, bytes.NewReader(body))
	if err != nil {
		entry.Error = errString(err)
		log.Warn().Err(err).Str("event", entry.Event).Msg("failed to build webhook request")

		return
	}
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := s.client.Do(req)
	if err != nil {
		entry.Error = errString(err)
		log.Warn().Err(err).Str("event", entry.Event).Str("url", entry.URL).Msg("webhook delivery failed")

		return
	}
	defer resp.Body.Close()

	entry.StatusCode = &resp.StatusCode
	entry.Success = resp.StatusCode >= 200 && resp.StatusCode < 300

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		entry.Error = errString(err)

		return
	}

	if len(respBody) > 0 && json.Valid(respBody) {
		entry.Response = gModel.JSONB(respBody)
	}

	if !entry.Success {
		entry.Error = errString(fmt.Errorf("endpoint returned status %d", resp.StatusCode))
	}
}

func (s *serviceImpl) GetLogs(ctx context.Context, params gDto.QueryParams) (res dto.GetWebhookLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLogs")
	defer scope.End()
	defer scope.TraceIfError(err)

	if params.SortBy == "" {
		params.SortBy = constant.FieldCreatedAt
		params.SortDir = gDto.SortDirDesc
	}

	logs, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get webhook logs")

		return res, fmt.Errorf("failed to get webhook logs: %w", err)
	}

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count webhook logs")

		return res, fmt.Errorf("failed to count webhook logs: %w", err)
	}

	res.FromModels(logs, total, params.Limit)

	return res, nil
}

func errString(err error) *string {
	msg := err.Error()

	return &msg
}
