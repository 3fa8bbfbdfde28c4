package model

import "github.com/GitMovi52027/movi5/shared/model"

const (
	NoteTableName  = "request_notes"
	NoteEntityName = "request_note"

	NoteFieldID        = "id"
	NoteFieldRequestID = "request_id"
	NoteFieldContent   = "content"
)

// RequestNote is an append-only annotation on a booking request. The
// parent request owns its notes; deleting the request removes them.
type RequestNote struct {
	ID        string `db:"id"`
	RequestID string `db:"request_id"`
	Content   string `db:"content"`
	model.Metadata
}
