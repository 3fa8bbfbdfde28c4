package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/GitMovi52027/movi5/internal/domains/request/model"
	"github.com/GitMovi52027/movi5/shared"
	"github.com/GitMovi52027/movi5/shared/constant"
	gDto "github.com/GitMovi52027/movi5/shared/dto"
	gModel "github.com/GitMovi52027/movi5/shared/model"
	"github.com/GitMovi52027/movi5/shared/timezone"
)

type SubmitRequestRequest struct {
	Origin        string                   `json:"origin" validate:"required,max=255"`
	Destination   string                   `json:"destination" validate:"required,max=255"`
	DepartureDate string                   `json:"departureDate" validate:"required,datetime=2006-01-02"`
	ReturnDate    *string                  `json:"returnDate" validate:"omitempty,datetime=2006-01-02"`
	Passengers    int                      `json:"passengers" validate:"required,min=1"`
	PassengerData *model.PassengerManifest `json:"passengerData" validate:"omitempty"`
	TotalPrice    int64                    `json:"totalPrice" validate:"min=0"`
	CustomerName  string                   `json:"customerName" validate:"required,max=255"`
	CustomerEmail string                   `json:"customerEmail" validate:"required,email,max=255"`
	CustomerPhone string                   `json:"customerPhone" validate:"required,max=50"`
	DepartureTime *string                  `json:"departureTime" validate:"omitempty,clock"`
	ReturnTime    *string                  `json:"returnTime" validate:"omitempty,clock"`
	TicketType    *string                  `json:"ticketType" validate:"omitempty,max=100"`
}

// ToModel builds a new request. Status and payment status always start
// as pending, whatever the caller sent.
func (r *SubmitRequestRequest) ToModel() (model.Request, error) {
	departureDate, err := timezone.Parse(constant.DayFormat, r.DepartureDate)
	if err != nil {
		return model.Request{}, err
	}

	var returnDate *time.Time
	if r.ReturnDate != nil {
		parsed, err := timezone.Parse(constant.DayFormat, *r.ReturnDate)
		if err != nil {
			return model.Request{}, err
		}
		returnDate = &parsed
	}

	var manifest model.PassengerManifest
	if r.PassengerData != nil {
		manifest = *r.PassengerData
	}

	return model.Request{
		ID:            uuid.NewString(),
		Origin:        r.Origin,
		Destination:   r.Destination,
		DepartureDate: departureDate,
		ReturnDate:    returnDate,
		Passengers:    r.Passengers,
		PassengerData: manifest,
		TotalPrice:    r.TotalPrice,
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentStatusPending,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		DepartureTime: r.DepartureTime,
		ReturnTime:    r.ReturnTime,
		TicketType:    r.TicketType,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  r.CustomerEmail,
			ModifiedBy: r.CustomerEmail,
		},
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED COMPLETED"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=PENDING PAID CANCELLED"`
}

type AddNoteRequest struct {
	Content   string `json:"content" validate:"required"`
	CreatedBy string `json:"createdBy" validate:"omitempty,max=255"`
}

type RequestResponse struct {
	ID            string                  `json:"id"`
	Origin        string                  `json:"origin"`
	Destination   string                  `json:"destination"`
	DepartureDate string                  `json:"departureDate"`
	ReturnDate    *string                 `json:"returnDate"`
	Passengers    int                     `json:"passengers"`
	PassengerData model.PassengerManifest `json:"passengerData"`
	TotalPrice    int64                   `json:"totalPrice"`
	Status        string                  `json:"status"`
	StatusLabel   string                  `json:"statusLabel"`
	PaymentStatus string                  `json:"paymentStatus"`
	CustomerName  string                  `json:"customerName"`
	CustomerEmail string                  `json:"customerEmail"`
	CustomerPhone string                  `json:"customerPhone"`
	DepartureTime *string                 `json:"departureTime"`
	ReturnTime    *string                 `json:"returnTime"`
	TicketType    *string                 `json:"ticketType"`
	gDto.Metadata
}

func (r *RequestResponse) FromModel(mod model.Request) {
	r.ID = mod.ID
	r.Origin = mod.Origin
	r.Destination = mod.Destination
	r.DepartureDate = timezone.Format(mod.DepartureDate, constant.DayFormat)
	if mod.ReturnDate != nil {
		formatted := timezone.Format(*mod.ReturnDate, constant.DayFormat)
		r.ReturnDate = &formatted
	}
	r.Passengers = mod.Passengers
	r.PassengerData = mod.PassengerData
	r.TotalPrice = mod.TotalPrice
	r.Status = mod.Status
	r.StatusLabel = model.StatusLabel(mod.Status)
	r.PaymentStatus = mod.PaymentStatus
	r.CustomerName = mod.CustomerName
	r.CustomerEmail = mod.CustomerEmail
	r.CustomerPhone = mod.CustomerPhone
	r.DepartureTime = mod.DepartureTime
	r.ReturnTime = mod.ReturnTime
	r.TicketType = mod.TicketType
	r.Metadata.FromModel(mod.Metadata)
}

type GetRequestsResponse struct {
	Requests  []RequestResponse `json:"requests"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetRequestsResponse) FromModels(models []model.Request, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Requests = make([]RequestResponse, len(models))
	for i, mod := range models {
		r.Requests[i].FromModel(mod)
	}
}

type NoteResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	CreatedBy string `json:"createdBy"`
	CreatedAt string `json:"createdAt"`
}

func (r *NoteResponse) FromModel(mod model.RequestNote) {
	r.ID = mod.ID
	r.Content = mod.Content
	r.CreatedBy = mod.CreatedBy
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

type GetNotesResponse struct {
	Notes []NoteResponse `json:"notes"`
}

func (r *GetNotesResponse) FromModels(models []model.RequestNote) {
	r.Notes = make([]NoteResponse, len(models))
	for i, mod := range models {
		r.Notes[i].FromModel(mod)
	}
}
