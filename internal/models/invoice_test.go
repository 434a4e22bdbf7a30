package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomer_FullName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Jane", "Doe", "Jane Doe"},
		{"Jane", "", "Jane"},
		{"", "Doe", "Doe"},
		{"", "", ""},
	}
	for _, tt := range tests {
		c := Customer{FirstName: tt.first, LastName: tt.last}
		assert.Equal(t, tt.want, c.FullName())
	}
}
