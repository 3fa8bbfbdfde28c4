package dto

import (
	"encoding/json"

	"github.com/GitMovi52027/movi5/internal/domains/webhook/model"
	"github.com/GitMovi52027/movi5/shared"
	gDto "github.com/GitMovi52027/movi5/shared/dto"
)

type WebhookLogResponse struct {
	ID         string          `json:"id"`
	Event      string          `json:"event"`
	RequestID  string          `json:"requestId"`
	URL        string          `json:"url"`
	Payload    json.RawMessage `json:"payload"`
	StatusCode *int            `json:"statusCode"`
	Success    bool            `json:"success"`
	Response   json.RawMessage `json:"response"`
	Error      *string         `json:"error"`
	gDto.Metadata
}

func (r *WebhookLogResponse) FromModel(mod model.WebhookLog) {
	r.ID = mod.ID
	r.Event = mod.Event
	r.RequestID = mod.RequestID
	r.URL = mod.URL
	r.Payload = json.RawMessage(mod.Payload)
	r.StatusCode = mod.StatusCode
	r.Success = mod.Success
	r.Response = json.RawMessage(mod.Response)
	r.Error = mod.Error
	r.Metadata.FromModel(mod.Metadata)
}

type GetWebhookLogsResponse struct {
	Logs      []WebhookLogResponse `json:"logs"`
	TotalPage int                  `json:"total_page"`
	TotalData int                  `json:"total_data"`
}

func (r *GetWebhookLogsResponse) FromModels(models []model.WebhookLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Logs = make([]WebhookLogResponse, len(models))
	for i, mod := range models {
		r.Logs[i].FromModel(mod)
	}
}
