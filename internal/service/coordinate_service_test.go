package service

import (
	"context"
	"testing"

	"dms-converter/internal/dms"

	"github.com/stretchr/testify/assert"
)

func TestCoordinateService_Convert(t *testing.T) {
	tests := []struct {
		name        string
		strict      bool
		text        string
		hemisphere  string
		expected    dms.Decimal
		expectedErr error
	}{
		{
			name:       "longitude",
			text:       `116°23'29"`,
			hemisphere: "E",
			expected:   dms.Decimal{Degrees: 116 + 23.0/60 + 29.0/3600, Valid: true},
		},
		{
			name:       "south latitude lower case hint",
			text:       `10°0'0"`,
			hemisphere: "s",
			expected:   dms.Decimal{Degrees: -10, Valid: true},
		},
		{
			name:       "blank text",
			text:       " ",
			hemisphere: "N",
			expected:   dms.Decimal{},
		},
		{
			name:        "invalid hemisphere",
			text:        `10°0'0"`,
			hemisphere:  "Q",
			expectedErr: dms.ErrHemisphere,
		},
		{
			name:        "malformed text",
			text:        "123 45 6",
			hemisphere:  "E",
			expectedErr: dms.ErrFormat,
		},
		{
			name:        "strict rejects trailing text",
			strict:      true,
			text:        `10°0'0"N`,
			hemisphere:  "N",
			expectedErr: dms.ErrFormat,
		},
		{
			name:       "lenient accepts trailing text",
			text:       `10°0'0"N`,
			hemisphere: "N",
			expected:   dms.Decimal{Degrees: 10, Valid: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewCoordinateService(tt.strict)

			result, err := service.Convert(context.Background(), tt.text, tt.hemisphere)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected.Valid, result.Valid)
			assert.InDelta(t, tt.expected.Degrees, result.Degrees, 1e-9)
		})
	}
}
