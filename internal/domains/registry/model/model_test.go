package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zonetag/internal/domains/registry/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		blob    string
		want    model.Entries
		wantErr bool
	}{
		{name: "object", blob: `{"u1":"Europe/Berlin","u2":"Asia/Tokyo"}`, want: model.Entries{"u1": "Europe/Berlin", "u2": "Asia/Tokyo"}},
		{name: "empty object", blob: `{}`, want: model.Entries{}},
		{name: "null", blob: `null`, want: model.Entries{}},
		{name: "not json", blob: `not json`, want: model.Entries{}, wantErr: true},
		{name: "empty string", blob: ``, want: model.Entries{}, wantErr: true},
		{name: "array", blob: `["Europe/Berlin"]`, want: model.Entries{}, wantErr: true},
		{name: "non string value", blob: `{"u1":1}`, want: model.Entries{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.Parse(tt.blob)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSerialize_Canonical(t *testing.T) {
	a := model.Entries{"b": "Asia/Tokyo", "a": "Europe/Berlin"}
	b := model.Entries{"a": "Europe/Berlin", "b": "Asia/Tokyo"}

	assert.Equal(t, `{"a":"Europe/Berlin","b":"Asia/Tokyo"}`, a.Serialize())
	assert.Equal(t, a.Serialize(), b.Serialize())
	assert.Equal(t, "{}", model.Entries{}.Serialize())
	assert.Equal(t, "{}", model.Entries(nil).Serialize())
}

func TestSerialize_EscapesOpaqueIDs(t *testing.T) {
	entries := model.Entries{`we"ird<id>`: "UTC"}

	got, err := model.Parse(entries.Serialize())
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestClone(t *testing.T) {
	original := model.Entries{"u1": "UTC"}
	clone := original.Clone()
	clone["u2"] = "Europe/Paris"

	assert.Len(t, original, 1)
	assert.Equal(t, model.Entries{}, model.Entries(nil).Clone())
}
