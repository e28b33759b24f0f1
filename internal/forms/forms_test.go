package forms_test

import (
	"testing"

	"github.com/nikolayk812/storefront-cart/internal/forms"
	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{email: "jane@example.com", want: true},
		{email: "a@b.co", want: true},
		{email: "jane.example.com", want: false},
		{email: "jane@example", want: false},
		{email: "jane @example.com", want: false},
		{email: "@example.com", want: false},
		{email: "jane@@example.com", want: false},
		{email: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, forms.IsValidEmail(tt.email))
		})
	}
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{password: "Passw0rd", want: true},
		{password: "longer-Secret-42", want: true},
		{password: "Pass0rd", want: false},
		{password: "password1", want: false},
		{password: "PASSWORD1", want: false},
		{password: "Password", want: false},
		{password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, forms.IsStrongPassword(tt.password))
		})
	}
}
