package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"tour-booking-api/exception"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    uint
		wantErr bool
	}{
		{"plain number", "42", 42, false},
		{"surrounding spaces", " 7 ", 7, false},
		{"zero", "0", 0, true},
		{"negative", "-1", 0, true},
		{"not a number", "abc", 0, true},
		{"empty", "", 0, true},
		{"float", "1.5", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.raw, "id")
			if tt.wantErr {
				appErr := exception.As(err)
				if assert.NotNil(t, appErr) {
					assert.Equal(t, 400, appErr.StatusCode())
					assert.Equal(t, "invalid id", appErr.Message)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
