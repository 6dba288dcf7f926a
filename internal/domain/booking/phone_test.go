package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berberhaus/barbershop-api/internal/httperr"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		countryCode string
		want        string
	}{
		{
			name:        "local number with leading zero",
			raw:         "0176 1234567",
			countryCode: "+49",
			want:        "+491761234567",
		},
		{
			name:        "local number without leading zero",
			raw:         "176 1234567",
			countryCode: "+49",
			want:        "+491761234567",
		},
		{
			name:        "already international",
			raw:         "+49 176 1234567",
			countryCode: "+90",
			want:        "+491761234567",
		},
		{
			name:        "tabs and unicode spaces stripped",
			raw:         "0176\t123 45 67",
			countryCode: "+49",
			want:        "+491761234567",
		},
		{
			name:        "turkish calling code",
			raw:         "0532 1234567",
			countryCode: "+90",
			want:        "+905321234567",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.raw, tt.countryCode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhone_Errors(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		countryCode string
		code        string
	}{
		{name: "empty", raw: "", countryCode: "+49", code: "missing_phone"},
		{name: "only whitespace", raw: "   ", countryCode: "+49", code: "missing_phone"},
		{name: "letters", raw: "call me", countryCode: "+49", code: "invalid_phone"},
		{name: "too short", raw: "12345", countryCode: "+49", code: "invalid_phone"},
		{name: "too long", raw: "+4912345678901234567", countryCode: "+49", code: "invalid_phone"},
		{name: "double zero kept", raw: "00176 1234567", countryCode: "", code: "invalid_phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizePhone(tt.raw, tt.countryCode)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tt.code), "expected code %q, got %v", tt.code, err)
		})
	}
}
