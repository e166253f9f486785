package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zonetag/shared/failure"
	"zonetag/shared/validator"
)

type zoneRequest struct {
	Timezone string `json:"timezone" validate:"required,catalogzone"`
	Name     string `json:"name" validate:"omitempty,max=10"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    zoneRequest
		wantMsg string
	}{
		{name: "cataloged zone", data: zoneRequest{Timezone: "Europe/Berlin"}},
		{name: "cataloged zone with name", data: zoneRequest{Timezone: "Asia/Tokyo", Name: "Alice"}},
		{name: "missing zone", data: zoneRequest{}, wantMsg: "timezone is required"},
		{name: "real but uncataloged zone", data: zoneRequest{Timezone: "America/Nuuk"}, wantMsg: "timezone must be one of the offered timezones"},
		{name: "unknown zone", data: zoneRequest{Timezone: "Mars/Olympus_Mons"}, wantMsg: "timezone must be one of the offered timezones"},
		{name: "name too long", data: zoneRequest{Timezone: "UTC", Name: "Bartholomew"}, wantMsg: "name must be at most 10 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name      string
		field     any
		tag       string
		wantError bool
	}{
		{name: "loadable zone", field: "America/Nuuk", tag: "tzid"},
		{name: "unloadable zone", field: "Nowhere/Town", tag: "tzid", wantError: true},
		{name: "local is not a zone id", field: "Local", tag: "tzid", wantError: true},
		{name: "cataloged zone", field: "UTC", tag: "catalogzone"},
		{name: "non string", field: 12, tag: "catalogzone", wantError: true},
		{name: "empty", field: "", tag: "empty"},
		{name: "not empty", field: "x", tag: "empty", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError bool
	}{
		{name: "valid body", body: `{"timezone":"Europe/Paris","name":"Bob"}`},
		{name: "invalid zone", body: `{"timezone":"Europe/Atlantis"}`, wantError: true},
		{name: "malformed json", body: `{"timezone":}`, wantError: true},
		{name: "empty object", body: `{}`, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data zoneRequest
			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.wantError {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
