package model

import "github.com/GitMovi52027/movi5/shared/model"

const (
	TableName  = "webhook_logs"
	EntityName = "webhook_log"

	FieldID         = "id"
	FieldEvent      = "event"
	FieldRequestID  = "request_id"
	FieldURL        = "url"
	FieldPayload    = "payload"
	FieldStatusCode = "status_code"
	FieldSuccess    = "success"
	FieldResponse   = "response"
	FieldError      = "error"
)

const (
	EventRequestCreated = "solicitud_creada"
)

// WebhookLog records one delivery attempt against the configured endpoint.
// StatusCode is nil when the request never reached the endpoint.
type WebhookLog struct {
	ID         string      `db:"id"`
	Event      string      `db:"event"`
	RequestID  string      `db:"request_id"`
	URL        string      `db:"url"`
	Payload    model.JSONB `db:"payload"`
	StatusCode *int        `db:"status_code"`
	Success    bool        `db:"success"`
	Response   model.JSONB `db:"response"`
	Error      *string     `db:"error"`
	model.Metadata
}
