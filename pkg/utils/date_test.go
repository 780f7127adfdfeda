package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSankhyaDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Data ISO vira DD/MM/YYYY",
			input:    "2025-03-10",
			expected: "10/03/2025",
		},
		{
			name:     "Data malformada volta como chegou",
			input:    "10/03/2025",
			expected: "10/03/2025",
		},
		{
			name:     "Vazio volta vazio",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToSankhyaDate(tt.input))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 0.3, RoundWithTwoDecimalPlace(0.1+0.2))
	assert.Equal(t, 10.56, RoundWithTwoDecimalPlace(10.556))
	assert.Equal(t, 10.55, RoundWithTwoDecimalPlace(10.554))
	assert.Equal(t, 250.0, RoundWithTwoDecimalPlace(250))
}
