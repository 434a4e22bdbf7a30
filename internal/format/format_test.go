package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"john", "John"},
		{"  jOHN   smith-jones ", "John Smith-Jones"},
		{"123 main street", "123 Main Street"},
		{"HALIFAX", "Halifax"},
		{"o'brien", "O'Brien"},
		{"d'arcy street", "D'Arcy Street"},
		{"O'NEIL-SMITH", "O'Neil-Smith"},
		{"mary-kate", "Mary-Kate"},
		{"don't stop", "Don't Stop"},
		{"smith's lane", "Smith's Lane"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleCase(tt.in))
		})
	}
}

func TestPostalCode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"b3h4r2", "B3H 4R2"},
		{"B3H 4R2", "B3H 4R2"},
		{"b3h-4r2-extra", "B3H 4R2"},
		{"b3h", "B3H"},
		{"b3h4", "B3H 4"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, PostalCode(tt.in))
		})
	}
}

func TestNormalizePostalCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"b3h4r2", "B3H 4R2", true},
		{" B3H 4R2 ", "B3H 4R2", true},
		{"b3h-4r2", "B3H 4R2", true},
		{"b3h4r2x", "", false},
		{"b3h-4r2-extra", "", false},
		{"b3h4", "", false},
		{"123456", "123 456", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizePostalCode(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPhoneNumber(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"9", "9"},
		{"902", "902"},
		{"9025", "902-5"},
		{"902555", "902-555"},
		{"9025550123", "902-555-0123"},
		{"(902) 555-0123", "902-555-0123"},
		{"902555012399", "902-555-0123"},
		{"abc", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, PhoneNumber(tt.in))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"9025550123", "902-555-0123", true},
		{"(902) 555-0123", "902-555-0123", true},
		{"+1 902 555 0123", "902-555-0123", true},
		{"1-902-555-0123", "902-555-0123", true},
		{"+1 902 555 0123 4", "", false},
		{"902555012399", "", false},
		{"2902555012", "290-255-5012", true},
		{"29025550123", "", false},
		{"555-0123", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizePhone(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1.4, "$1.40"},
		{17.685, "$17.69"},
		{1.6506, "$1.65"},
		{137.2356, "$137.24"},
		{686.178, "$686.18"},
		{1234567.891, "$1,234,567.89"},
		{-3.5, "-$3.50"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.in))
		})
	}
}

func TestArea(t *testing.T) {
	assert.Equal(t, "1,000 sq ft", Area(1000))
	assert.Equal(t, "12,500.5 sq ft", Area(12500.5))
	assert.Equal(t, "850 sq ft", Area(850))
}

func TestRate(t *testing.T) {
	assert.Equal(t, "15%", Rate(0.15))
	assert.Equal(t, "1.4%", Rate(0.014))
}

func TestUnitPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.035, "$0.035"},
		{0.07, "$0.07"},
		{0.5, "$0.50"},
		{2, "$2.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, UnitPrice(tt.in))
	}
}
