package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/GitMovi52027/movi5/config"
	"github.com/GitMovi52027/movi5/infras/otel"
	"github.com/GitMovi52027/movi5/internal/domains/request/model"
	"github.com/GitMovi52027/movi5/internal/domains/request/model/dto"
	"github.com/GitMovi52027/movi5/internal/domains/request/repository"
	webhookModel "github.com/GitMovi52027/movi5/internal/domains/webhook/model"
	webhookService "github.com/GitMovi52027/movi5/internal/domains/webhook/service"
	"github.com/GitMovi52027/movi5/shared/constant"
	gDto "github.com/GitMovi52027/movi5/shared/dto"
	"github.com/GitMovi52027/movi5/shared/failure"
	gModel "github.com/GitMovi52027/movi5/shared/model"
	"github.com/GitMovi52027/movi5/shared/timezone"
)

type Request interface {
	Submit(ctx context.Context, req dto.SubmitRequestRequest) (dto.RequestResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, status string) (dto.GetRequestsResponse, error)
	Get(ctx context.Context, id string) (dto.RequestResponse, error)
	SetStatus(ctx context.Context, id, status string) (dto.RequestResponse, error)
	SetPaymentStatus(ctx context.Context, id, paymentStatus string) (dto.RequestResponse, error)
	AddNote(ctx context.Context, id string, req dto.AddNoteRequest) (dto.NoteResponse, error)
	GetNotes(ctx context.Context, id string) (dto.GetNotesResponse, error)
}

type serviceImpl struct {
	repo    repository.Request
	notes   repository.Note
	webhook webhookService.Webhook
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.Request, notes repository.Note, webhook webhookService.Webhook, cfg *config.Config, otel otel.Otel) Request {
	return &serviceImpl{
		repo:    repo,
		notes:   notes,
		webhook: webhook,
		cfg:     cfg,
		otel:    otel,
	}
}

func filterByID(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
		},
	}
}

func filterNotesByRequestID(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.NoteFieldRequestID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.NoteTableName,
			},
		},
	}
}

// Submit stores a new booking request and notifies the configured webhook
// endpoint. The notification is best effort; its outcome never changes the
// submission result.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitRequestRequest) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := req.ToModel()
	if err != nil {
		return res, failure.BadRequest(err)
	}

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to create booking request")

		return res, fmt.Errorf("failed to create booking request: %w", err)
	}

	res.FromModel(request)

	s.webhook.Dispatch(ctx, webhookModel.EventRequestCreated, request.ID, res)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, status string) (res dto.GetRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}
	if status != "" {
		if !model.IsValidStatus(status) {
			return res, failure.BadRequestFromString("status must be one of PENDING APPROVED REJECTED COMPLETED")
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count booking requests")

		return res, fmt.Errorf("failed to count booking requests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking requests")

		return res, fmt.Errorf("failed to get booking requests: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.repo.Get(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking request")

		return res, fmt.Errorf("failed to get booking request: %w", err)
	}

	if request.ID == "" {
		return res, failure.NotFound(model.EntityName)
	}

	res.FromModel(request)

	return res, nil
}

// SetStatus moves a request through its lifecycle. Setting the current
// status again is a no-op, terminal states reject any further change, and
// every real transition appends a note recording it.
func (s *serviceImpl) SetStatus(ctx context.Context, id, status string) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !model.IsValidStatus(status) {
		return res, failure.BadRequestFromString("status must be one of PENDING APPROVED REJECTED COMPLETED")
	}

	request, err := s.repo.Get(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking request")

		return res, fmt.Errorf("failed to get booking request: %w", err)
	}

	if request.ID == "" {
		return res, failure.NotFound(model.EntityName)
	}

	if request.Status == status {
		res.FromModel(request)

		return res, nil
	}

	if model.IsTerminalStatus(request.Status) {
		return res, failure.BadRequestFromString(fmt.Sprintf(
			"a %s request does not allow further status changes", model.StatusLabel(request.Status),
		))
	}

	note := model.RequestNote{
		ID:        uuid.NewString(),
		RequestID: id,
		Content:   fmt.Sprintf("Estado cambiado de: %s a %s", model.StatusLabel(request.Status), model.StatusLabel(status)),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextSystem,
			ModifiedBy: constant.ContextSystem,
		},
	}

	if err = s.repo.SetStatusWithNote(ctx, id, status, note); err != nil {
		log.Error().Err(err).Str("id", id).Str("status", status).Msg("failed to update booking request status")

		return res, fmt.Errorf("failed to update booking request status: %w", err)
	}

	request.Status = status
	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) SetPaymentStatus(ctx context.Context, id, paymentStatus string) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetPaymentStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !model.IsValidPaymentStatus(paymentStatus) {
		return res, failure.BadRequestFromString("paymentStatus must be one of PENDING PAID CANCELLED")
	}

	request, err := s.repo.Get(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking request")

		return res, fmt.Errorf("failed to get booking request: %w", err)
	}

	if request.ID == "" {
		return res, failure.NotFound(model.EntityName)
	}

	if request.PaymentStatus == paymentStatus {
		res.FromModel(request)

		return res, nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	if user == "" {
		user = constant.ContextSystem
	}

	fields := map[string]any{
		model.FieldPaymentStatus: paymentStatus,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, filterByID(id)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update booking request payment status")

		return res, fmt.Errorf("failed to update booking request payment status: %w", err)
	}

	request.PaymentStatus = paymentStatus
	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) AddNote(ctx context.Context, id string, req dto.AddNoteRequest) (res dto.NoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddNote")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to check booking request")

		return res, fmt.Errorf("failed to check booking request: %w", err)
	}

	if !exists {
		return res, failure.NotFound(model.EntityName)
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		if user, _ := ctx.Value(constant.ContextKeyUserEmail).(string); user != "" {
			createdBy = user
		} else {
			createdBy = constant.ContextSystem
		}
	}

	note := model.RequestNote{
		ID:        uuid.NewString(),
		RequestID: id,
		Content:   req.Content,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}

	if err = s.notes.Insert(ctx, note); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to add booking request note")

		return res, fmt.Errorf("failed to add booking request note: %w", err)
	}

	res.FromModel(note)

	return res, nil
}

func (s *serviceImpl) GetNotes(ctx context.Context, id string) (res dto.GetNotesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetNotes")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to check booking request")

		return res, fmt.Errorf("failed to check booking request: %w", err)
	}

	if !exists {
		return res, failure.NotFound(model.EntityName)
	}

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	notes, err := s.notes.GetAll(ctx, params, filterNotesByRequestID(id))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking request notes")

		return res, fmt.Errorf("failed to get booking request notes: %w", err)
	}

	res.FromModels(notes)

	return res, nil
}
