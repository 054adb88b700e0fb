package utils

import (
	"appointment-booking-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReformatExternalDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "09/04/2025", expected: "2025-04-09"},
		{input: "31/12/1999", expected: "1999-12-31"},
		{input: "05/1/2025", expected: "2025-1-05"},
		{input: "31/02/2025", expected: "2025-02-31"},
		{input: "1/1/25", expected: "25-1-1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ReformatExternalDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReformatExternalDateWrongShape(t *testing.T) {
	for _, input := range []string{"", "2025-04-09", "09/04", "09/04/2025/1"} {
		t.Run(input, func(t *testing.T) {
			_, err := ReformatExternalDate(input)
			assert.True(t, exceptions.IsKind(err, exceptions.KindInvalidInput))
		})
	}
}
