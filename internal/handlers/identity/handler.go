package identity

import (
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"zonetag/config"
	"zonetag/infras/otel"
	"zonetag/internal/domains/registry/model/dto"
	registry "zonetag/internal/domains/registry/service"
	renderModel "zonetag/internal/domains/render/model"
	render "zonetag/internal/domains/render/service"
	"zonetag/shared"
	"zonetag/shared/constant"
	"zonetag/shared/failure"
	"zonetag/shared/validator"
	"zonetag/transport/http/response"
)

type Handler struct {
	registry registry.Registry
	renderer render.Renderer
	config   *config.Config
	otel     otel.Otel
	now      func() time.Time
}

func New(registry registry.Registry, renderer render.Renderer, config *config.Config, otel otel.Otel) Handler {
	return Handler{
		registry: registry,
		renderer: renderer,
		config:   config,
		otel:     otel,
		now:      time.Now,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/identities", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetIdentities)
		routerGroup.Delete("/", handler.DeleteIdentities)
		routerGroup.Get("/{id}/timezone", handler.GetTimezone)
		routerGroup.Put("/{id}/timezone", handler.PutTimezone)
		routerGroup.Delete("/{id}/timezone", handler.DeleteTimezone)
		routerGroup.Get("/{id}/time", handler.GetTime)
	})
}

// GetIdentities lists every registered identity.
// @Summary Get registered timezones
// @Tags Identity
// @Produce json
// @Success 200 {object} response.Data[[]dto.TimezoneResponse]
// @Router /v1/identities [get]
func (handler *Handler) GetIdentities(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetIdentities")
	defer scope.End()

	res := dto.NewTimezoneResponses(handler.registry.Entries())
	scope.SetAttribute("registry.size", len(res))

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteIdentities removes every registered timezone.
// @Summary Remove all timezones
// @Tags Identity
// @Produce json
// @Success 200 {object} response.Message
// @Failure 500 {object} response.Error
// @Router /v1/identities [delete]
func (handler *Handler) DeleteIdentities(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteIdentities")
	defer scope.End()

	if err := handler.registry.RemoveAll(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove all timezones")

		response.WithError(writer, failure.InternalError(err))

		return
	}

	response.WithMessage(writer, http.StatusOK, "All timezones removed")
}

// GetTimezone returns the timezone registered for an identity.
// @Summary Get timezone
// @Tags Identity
// @Produce json
// @Param id path string true "Identity ID"
// @Success 200 {object} response.Data[dto.TimezoneResponse]
// @Failure 404 {object} response.Error
// @Router /v1/identities/{id}/timezone [get]
func (handler *Handler) GetTimezone(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimezone")
	defer scope.End()

	identityID, err := identityParam(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	zone, ok := handler.registry.Get(identityID)
	if !ok {
		response.WithError(writer, failure.TimezoneNotSet)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.NewTimezoneResponse(identityID, zone))
}

// PutTimezone registers the timezone of an identity.
// @Summary Set timezone
// @Tags Identity
// @Accept json
// @Produce json
// @Param id path string true "Identity ID"
// @Param request body dto.SetTimezoneRequest true "Timezone"
// @Success 200 {object} response.Data[dto.TimezoneResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/identities/{id}/timezone [put]
func (handler *Handler) PutTimezone(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PutTimezone")
	defer scope.End()

	identityID, err := identityParam(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	var req dto.SetTimezoneRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("identity", identityID).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.registry.Set(ctx, identityID, req.Timezone); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("identity", identityID).Msg("failed to save timezone")

		response.WithError(writer, failure.InternalError(err))

		return
	}

	log.Info().
		Str("identity", identityID).
		Str("name", req.Name).
		Str("zone", req.Timezone).
		Msg("timezone registered")

	response.WithJSON(writer, http.StatusOK, dto.NewTimezoneResponse(identityID, req.Timezone))
}

// DeleteTimezone forgets the timezone of an identity.
// @Summary Remove timezone
// @Tags Identity
// @Produce json
// @Param id path string true "Identity ID"
// @Param name query string false "Display name for the audit log"
// @Success 200 {object} response.Message
// @Failure 500 {object} response.Error
// @Router /v1/identities/{id}/timezone [delete]
func (handler *Handler) DeleteTimezone(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTimezone")
	defer scope.End()

	identityID, err := identityParam(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	if err := handler.registry.Remove(ctx, identityID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("identity", identityID).Msg("failed to remove timezone")

		response.WithError(writer, failure.InternalError(err))

		return
	}

	log.Info().
		Str("identity", identityID).
		Str("name", request.URL.Query().Get(constant.QueryParamName)).
		Msg("timezone removed")

	response.WithMessage(writer, http.StatusOK, "Timezone removed")
}

// GetTime renders an instant in the identity's timezone.
// @Summary Get local time
// @Tags Identity
// @Produce json
// @Param id path string true "Identity ID"
// @Param at query string false "RFC3339 instant, defaults to now"
// @Param locale query string false "Display locale"
// @Param use_24_hour query boolean false "24-hour clock"
// @Param show_offset query boolean false "Append UTC offset"
// @Param show_time_inline query boolean false "Include the inline short form"
// @Success 200 {object} response.Data[dto.TimeResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/identities/{id}/time [get]
func (handler *Handler) GetTime(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTime")
	defer scope.End()

	identityID, err := identityParam(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	query := request.URL.Query()

	instant, err := shared.ParseInstant(query.Get(constant.QueryParamAt), handler.now)
	if err != nil {
		response.WithError(writer, failure.InvalidInstant)

		return
	}

	annotation, ok, err := handler.renderer.Decorate(ctx, identityID, instant, handler.preferences(request))
	if err != nil {
		scope.TraceError(err)

		if errors.Is(err, render.ErrRenderFailed) {
			response.WithError(writer, failure.Unprocessable(err))

			return
		}

		response.WithError(writer, failure.InternalError(err))

		return
	}

	if !ok {
		response.WithError(writer, failure.TimezoneNotSet)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.TimeResponse{
		IdentityID: identityID,
		Timezone:   annotation.Zone,
		At:         instant.UTC(),
		Annotation: annotation,
	})
}

// preferences starts from the configured display settings, read per request,
// and applies query overrides.
func (handler *Handler) preferences(request *http.Request) renderModel.Preferences {
	display := handler.config.Display
	query := request.URL.Query()

	return renderModel.Preferences{
		Locale:         query.Get(constant.QueryParamLocale),
		Use24Hour:      shared.BoolOrDefault(query.Get(constant.QueryParamUse24Hour), display.Use24Hour),
		ShowTimeInline: shared.BoolOrDefault(query.Get(constant.QueryParamShowTimeInline), display.ShowTimeInline),
		ShowOffset:     shared.BoolOrDefault(query.Get(constant.QueryParamShowOffset), display.ShowOffset),
	}
}

func identityParam(request *http.Request) (string, error) {
	identityID := strings.TrimSpace(chi.URLParam(request, constant.RequestParamID))
	if identityID == "" {
		return "", failure.MissingIdentity
	}

	if !utf8.ValidString(identityID) {
		return "", failure.InvalidIdentity
	}

	return identityID, nil
}
