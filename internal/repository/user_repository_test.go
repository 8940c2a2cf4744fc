package repository

import (
	"database/sql"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestDecodePreferences(t *testing.T) {
	tests := []struct {
		name string
		raw  sql.NullString
		want []string
	}{
		{
			name: "valid array",
			raw:  sql.NullString{String: `["Technology","Sports"]`, Valid: true},
			want: []string{"Technology", "Sports"},
		},
		{
			name: "empty array",
			raw:  sql.NullString{String: `[]`, Valid: true},
			want: []string{},
		},
		{
			name: "null column",
			raw:  sql.NullString{},
			want: []string{},
		},
		{
			name: "empty string",
			raw:  sql.NullString{String: "", Valid: true},
			want: []string{},
		},
		{
			name: "malformed json",
			raw:  sql.NullString{String: `{"not":"an array"`, Valid: true},
			want: []string{},
		},
		{
			name: "json null",
			raw:  sql.NullString{String: `null`, Valid: true},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodePreferences(tt.raw)
			assert.Equal(t, tt.want, got)
		})
	}
}
