package zone

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"zonetag/infras/otel"
	"zonetag/shared/constant"
	"zonetag/shared/timezone"
	"zonetag/transport/http/response"
)

type Handler struct {
	otel otel.Otel
}

type entryResponse struct {
	Label    string `json:"label"`
	Timezone string `json:"timezone"`
}

type regionResponse struct {
	Name    string          `json:"name"`
	Entries []entryResponse `json:"entries"`
}

func New(otel otel.Otel) Handler {
	return Handler{
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/zones", handler.GetZones)
}

// GetZones lists the selectable timezones grouped by region.
// @Summary Get timezone catalog
// @Tags Zone
// @Produce json
// @Success 200 {object} response.Data[[]regionResponse]
// @Router /v1/zones [get]
func (handler *Handler) GetZones(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetZones")
	defer scope.End()

	catalog := timezone.Catalog()

	res := make([]regionResponse, len(catalog))
	for i, region := range catalog {
		entries := make([]entryResponse, len(region.Entries))
		for j, entry := range region.Entries {
			entries[j] = entryResponse{Label: entry.Label, Timezone: entry.Zone}
		}

		res[i] = regionResponse{Name: region.Name, Entries: entries}
	}

	scope.SetAttribute("zone.regions", len(res))

	response.WithJSON(writer, http.StatusOK, res)
}
