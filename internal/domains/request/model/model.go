package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/GitMovi52027/movi5/shared/model"
)

const (
	TableName  = "booking_requests"
	EntityName = "booking_request"

	FieldID            = "id"
	FieldOrigin        = "origin"
	FieldDestination   = "destination"
	FieldDepartureDate = "departure_date"
	FieldReturnDate    = "return_date"
	FieldPassengers    = "passengers"
	FieldPassengerData = "passenger_data"
	FieldTotalPrice    = "total_price"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldCustomerPhone = "customer_phone"
	FieldDepartureTime = "departure_time"
	FieldReturnTime    = "return_time"
	FieldTicketType    = "ticket_type"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCompleted = "COMPLETED"

	PaymentStatusPending   = "PENDING"
	PaymentStatusPaid      = "PAID"
	PaymentStatusCancelled = "CANCELLED"
)

var statusLabels = map[string]string{
	StatusPending:   "Pendiente",
	StatusApproved:  "Aprobada",
	StatusRejected:  "Rechazada",
	StatusCompleted: "Completada",
}

// StatusLabel returns the Spanish display label used in note trails.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}

	return status
}

// IsTerminalStatus reports whether no further transition is allowed.
func IsTerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusRejected
}

func IsValidStatus(status string) bool {
	_, ok := statusLabels[status]

	return ok
}

func IsValidPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusCancelled:
		return true
	}

	return false
}

type Request struct {
	ID            string            `db:"id"`
	Origin        string            `db:"origin"`
	Destination   string            `db:"destination"`
	DepartureDate time.Time         `db:"departure_date"`
	ReturnDate    *time.Time        `db:"return_date"`
	Passengers    int               `db:"passengers"`
	PassengerData PassengerManifest `db:"passenger_data"`
	TotalPrice    int64             `db:"total_price"`
	Status        string            `db:"status"`
	PaymentStatus string            `db:"payment_status"`
	CustomerName  string            `db:"customer_name"`
	CustomerEmail string            `db:"customer_email"`
	CustomerPhone string            `db:"customer_phone"`
	DepartureTime *string           `db:"departure_time"`
	ReturnTime    *string           `db:"return_time"`
	TicketType    *string           `db:"ticket_type"`
	model.Metadata
}

// PassengerRecord is one traveller entry. Stored payloads drifted over
// time between Spanish and English key names; decoding coalesces the
// known aliases into the canonical Spanish fields.
type PassengerRecord struct {
	Nombre        string `json:"nombre,omitempty"`
	Apellido      string `json:"apellido,omitempty"`
	TipoDocumento string `json:"tipoDocumento,omitempty"`
	Cedula        string `json:"cedula,omitempty"`
	PaisPasaporte string `json:"paisPasaporte,omitempty"`
	Edad          string `json:"edad,omitempty"`
	Email         string `json:"email,omitempty"`
	Telefono      string `json:"telefono,omitempty"`
}

func (p *PassengerRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Nombre = coalesceString(raw, "nombre", "firstName", "fullName")
	p.Apellido = coalesceString(raw, "apellido", "lastName")
	p.TipoDocumento = coalesceString(raw, "tipoDocumento", "documentType")
	p.Cedula = coalesceString(raw, "cedula", "documentNumber")
	p.PaisPasaporte = coalesceString(raw, "paisPasaporte", "paisEmision")
	p.Edad = coalesceString(raw, "edad")
	p.Email = coalesceString(raw, "email")
	p.Telefono = coalesceString(raw, "telefono", "phone")

	return nil
}

func coalesceString(raw map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		val, ok := raw[key]
		if !ok {
			continue
		}

		var s string
		if err := json.Unmarshal(val, &s); err == nil && s != "" {
			return s
		}

		var n float64
		if err := json.Unmarshal(val, &n); err == nil {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
	}

	return ""
}

// PassengerManifest holds the traveller details of a request. Two payload
// shapes exist in stored data: a flat list of records, and an object with
// a holder (titular) plus a passenger list. Reads accept both; writes
// always produce the structured shape.
type PassengerManifest struct {
	Titular   *PassengerRecord  `json:"titular,omitempty"`
	Pasajeros []PassengerRecord `json:"pasajeros"`
}

func (m *PassengerManifest) UnmarshalJSON(data []byte) error {
	trimmed := firstNonSpace(data)

	if trimmed == '[' {
		var flat []PassengerRecord
		if err := json.Unmarshal(data, &flat); err != nil {
			return err
		}

		m.Titular = nil
		m.Pasajeros = flat

		return nil
	}

	type structured PassengerManifest

	var s structured
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*m = PassengerManifest(s)

	return nil
}

func firstNonSpace(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}

		return b
	}

	return 0
}

// Count returns the number of traveller entries, holder included.
func (m PassengerManifest) Count() int {
	count := len(m.Pasajeros)
	if m.Titular != nil {
		count++
	}

	return count
}

func (m PassengerManifest) Value() (driver.Value, error) {
	if m.Titular == nil && m.Pasajeros == nil {
		return nil, nil
	}

	return json.Marshal(m)
}

func (m *PassengerManifest) Scan(src any) error {
	if src == nil {
		*m = PassengerManifest{}
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return m.UnmarshalJSON(v)
	case string:
		return m.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("unsupported passenger manifest source type %T", src)
	}
}
