package configuration

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/GitMovi52027/movi5/infras/otel"
	"github.com/GitMovi52027/movi5/internal/domains/configuration/model/dto"
	"github.com/GitMovi52027/movi5/internal/domains/configuration/service"
	webhookDto "github.com/GitMovi52027/movi5/internal/domains/webhook/model/dto"
	webhookService "github.com/GitMovi52027/movi5/internal/domains/webhook/service"
	"github.com/GitMovi52027/movi5/shared/constant"
	gDto "github.com/GitMovi52027/movi5/shared/dto"
	"github.com/GitMovi52027/movi5/shared/validator"
	"github.com/GitMovi52027/movi5/transport/http/response"
)

type Handler struct {
	service service.Configuration
	webhook webhookService.Webhook
	otel    otel.Otel
}

func New(service service.Configuration, webhook webhookService.Webhook, otel otel.Otel) Handler {
	return Handler{
		service: service,
		webhook: webhook,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/config", func(routerGroup chi.Router) {
		routerGroup.Get("/webhook", handler.GetWebhook)
		routerGroup.Put("/webhook", handler.SetWebhook)
		routerGroup.Get("/webhook/logs", handler.GetWebhookLogs)
		routerGroup.Get("/general", handler.GetGeneral)
		routerGroup.Put("/general", handler.SetGeneral)
	})
}

// GetWebhook returns the configured notification endpoint.
// @Summary Get the webhook endpoint
// @Tags Configuration
// @Produce json
// @Success 200 {object} dto.WebhookResponse "Current webhook URL, empty when unset"
// @Failure 500 {object} response.Error
// @Router /v1/config/webhook [get]
// @Security BearerAuth
func (handler *Handler) GetWebhook(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWebhook")
	defer scope.End()

	url, err := handler.service.GetValue(ctx, constant.ConfigKeyWebhookURL)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get webhook configuration")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.WebhookResponse{URL: url})
}

// SetWebhook stores the notification endpoint. An empty URL disables
// deliveries.
// @Summary Set the webhook endpoint
// @Tags Configuration
// @Accept json
// @Produce json
// @Param request body dto.SetWebhookRequest true "Set Webhook Request"
// @Success 200 {object} response.Message "Webhook configuration updated"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/config/webhook [put]
// @Security BearerAuth
func (handler *Handler) SetWebhook(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetWebhook")
	defer scope.End()

	req := dto.SetWebhookRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	set := dto.SetConfigurationRequest{
		Key:   constant.ConfigKeyWebhookURL,
		Value: req.URL,
	}

	if err := handler.service.Set(ctx, set); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set webhook configuration")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Webhook configuration updated")
}

// GetWebhookLogs lists delivery attempts, newest first.
// @Summary Get webhook delivery logs
// @Tags Configuration
// @Produce json
// @Success 200 {object} webhookDto.GetWebhookLogsResponse "Delivery log entries"
// @Failure 500 {object} response.Error
// @Router /v1/config/webhook/logs [get]
// @Security BearerAuth
func (handler *Handler) GetWebhookLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWebhookLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	var logs webhookDto.GetWebhookLogsResponse

	logs, err := handler.webhook.GetLogs(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get webhook logs")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, logs)
}

// GetGeneral lists every stored configuration entry.
// @Summary Get general configuration
// @Tags Configuration
// @Produce json
// @Success 200 {object} dto.GetConfigurationsResponse "Configuration entries"
// @Failure 500 {object} response.Error
// @Router /v1/config/general [get]
// @Security BearerAuth
func (handler *Handler) GetGeneral(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGeneral")
	defer scope.End()

	configurations, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get configurations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, configurations)
}

// SetGeneral upserts one configuration entry by key.
// @Summary Set a configuration entry
// @Tags Configuration
// @Accept json
// @Produce json
// @Param request body dto.SetConfigurationRequest true "Set Configuration Request"
// @Success 200 {object} response.Message "Configuration updated"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/config/general [put]
// @Security BearerAuth
func (handler *Handler) SetGeneral(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetGeneral")
	defer scope.End()

	req := dto.SetConfigurationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Set(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set configuration")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Configuration updated")
}
