package datetime

import (
	"net/http"
	"tempo/infras/otel"
	"tempo/internal/domains/datetime/model/dto"
	"tempo/internal/domains/datetime/service"
	"tempo/shared/constant"
	"tempo/shared/validator"
	"tempo/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.DateTime
	otel    otel.Otel
}

func New(service service.DateTime, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/datetime", func(routerGroup chi.Router) {
		routerGroup.Get("/now", handler.Now)
		routerGroup.Post("/", handler.Build)
	})

	router.Get("/zones", handler.Zone)
}

// Now returns the current instant in a zone.
// @Summary Current datetime
// @Description Current instant in the requested IANA zone, or in the application zone when none is given.
// @Tags DateTime
// @Produce json
// @Param zone query string false "IANA zone identifier" example(America/Sao_Paulo)
// @Param format query string false "long or short, defaults to long" Enums(long, short)
// @Success 200 {object} response.Data[dto.DateTimeResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/datetime/now [get]
func (handler *Handler) Now(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Now")
	defer scope.End()

	req := dto.NowRequest{}
	req.FromRequest(request)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Now(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get current datetime")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Current datetime resolved in " + res.Zone)

	response.WithJSON(writer, http.StatusOK, res)
}

// Build returns the instant described by explicit calendar fields.
// @Summary Build a datetime
// @Description Build an instant from calendar fields in an IANA zone and render it.
// @Tags DateTime
// @Accept json
// @Produce json
// @Param request body dto.BuildRequest true "Build DateTime Request"
// @Success 200 {object} response.Data[dto.DateTimeResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/datetime [post]
func (handler *Handler) Build(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Build")
	defer scope.End()

	req := dto.BuildRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Build(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build datetime")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Datetime built in " + res.Zone)

	response.WithJSON(writer, http.StatusOK, res)
}

// Zone reports the current abbreviation and offset of a zone.
// @Summary Zone details
// @Description Resolve an IANA zone identifier and report the offset currently in effect.
// @Tags DateTime
// @Produce json
// @Param id query string true "IANA zone identifier" example(Europe/Paris)
// @Success 200 {object} response.Data[dto.ZoneResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/zones [get]
func (handler *Handler) Zone(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Zone")
	defer scope.End()

	req := dto.ZoneRequest{}
	req.FromRequest(request)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Zone(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve zone")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
