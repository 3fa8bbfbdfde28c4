package route

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/GitMovi52027/movi5/infras/otel"
	"github.com/GitMovi52027/movi5/internal/domains/route/model"
	"github.com/GitMovi52027/movi5/internal/domains/route/model/dto"
	"github.com/GitMovi52027/movi5/internal/domains/route/service"
	"github.com/GitMovi52027/movi5/shared"
	"github.com/GitMovi52027/movi5/shared/constant"
	gDto "github.com/GitMovi52027/movi5/shared/dto"
	"github.com/GitMovi52027/movi5/shared/validator"
	"github.com/GitMovi52027/movi5/transport/http/response"
)

type Handler struct {
	service service.Route
	otel    otel.Otel
}

func New(service service.Route, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/routes", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRoutes)
		routerGroup.Post("/", handler.CreateRoute)
		routerGroup.Get("/{id}", handler.GetRouteByID)
		routerGroup.Patch("/{id}", handler.UpdateRoute)
		routerGroup.Patch("/{id}/active", handler.SetRouteActive)
	})
}

// CreateRoute registers a new route with its fare and frequency rules.
// @Summary Create a new route
// @Tags Route
// @Accept json
// @Produce json
// @Param request body dto.CreateRouteRequest true "Create Route Request"
// @Success 201 {object} response.Message "Route created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/routes [post]
// @Security BearerAuth
func (handler *Handler) CreateRoute(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoute")
	defer scope.End()

	req := dto.CreateRouteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create route")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Route created successfully")
}

// GetRoutes lists routes, public side of the booking flow.
// @Summary Get all routes
// @Tags Route
// @Accept json
// @Produce json
// @Param origin query string false "Filter by origin"
// @Param destination query string false "Filter by destination"
// @Param active query boolean false "Filter by active flag"
// @Success 200 {object} dto.GetRoutesResponse "List of routes"
// @Failure 500 {object} response.Error
// @Router /v1/routes [get]
func (handler *Handler) GetRoutes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoutes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if origin := r.URL.Query().Get(model.FieldOrigin); origin != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldOrigin,
			Operator: gDto.FilterOperatorLike,
			Value:    origin,
			Table:    model.TableName,
		})
	}

	if destination := r.URL.Query().Get(model.FieldDestination); destination != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDestination,
			Operator: gDto.FilterOperatorLike,
			Value:    destination,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	routes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get routes")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, routes)
}

// GetRouteByID returns one route.
// @Summary Get a route by ID
// @Tags Route
// @Accept json
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} dto.RouteResponse "Route details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/routes/{id} [get]
func (handler *Handler) GetRouteByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRouteByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	route, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get route by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, route)
}

// UpdateRoute applies a partial update to a route.
// @Summary Update a route by ID
// @Tags Route
// @Accept json
// @Produce json
// @Param id path string true "Route ID"
// @Param request body dto.UpdateRouteRequest true "Update Route Request"
// @Success 200 {object} response.Message "Route updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/routes/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoute(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoute")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRouteRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update route")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Route updated successfully")
}

// SetRouteActive toggles a route's visibility in the public booking flow.
// @Summary Activate or deactivate a route
// @Tags Route
// @Accept json
// @Produce json
// @Param id path string true "Route ID"
// @Param request body dto.SetActiveRequest true "Set Active Request"
// @Success 200 {object} response.Message "Route active flag updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/routes/{id}/active [patch]
// @Security BearerAuth
func (handler *Handler) SetRouteActive(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetRouteActive")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SetActiveRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetActive(ctx, id, *req.Active); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set route active flag")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Route active flag updated")
}
