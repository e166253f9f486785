package dto

import (
	"sort"
	"time"

	"zonetag/internal/domains/registry/model"
	renderModel "zonetag/internal/domains/render/model"
	"zonetag/shared/timezone"
)

type SetTimezoneRequest struct {
	Timezone string `json:"timezone" validate:"required,catalogzone"`
	// Name is the display name of the identity, used in log lines only.
	Name string `json:"name" validate:"omitempty,max=100"`
}

type TimezoneResponse struct {
	IdentityID string   `json:"identity_id"`
	Timezone   string   `json:"timezone"`
	Labels     []string `json:"labels,omitempty"`
}

func NewTimezoneResponse(identityID, zone string) TimezoneResponse {
	return TimezoneResponse{
		IdentityID: identityID,
		Timezone:   zone,
		Labels:     timezone.Labels(zone),
	}
}

// NewTimezoneResponses lists entries ordered by identity id.
func NewTimezoneResponses(entries model.Entries) []TimezoneResponse {
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	res := make([]TimezoneResponse, len(ids))
	for i, id := range ids {
		res[i] = NewTimezoneResponse(id, entries[id])
	}

	return res
}

type TimeResponse struct {
	IdentityID string                 `json:"identity_id"`
	Timezone   string                 `json:"timezone"`
	At         time.Time              `json:"at"`
	Annotation renderModel.Annotation `json:"annotation"`
}
