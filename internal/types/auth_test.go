package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Validate(t *testing.T) {
	valid := &RegisterRequest{Email: "jane@example.com", Password: "password123"}
	assert.NoError(t, valid.Validate())

	badEmail := &RegisterRequest{Email: "not-an-email", Password: "password123"}
	assert.Error(t, badEmail.Validate())

	shortPassword := &RegisterRequest{Email: "jane@example.com", Password: "short"}
	assert.Error(t, shortPassword.Validate())

	empty := &RegisterRequest{}
	assert.Error(t, empty.Validate())
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := &LoginRequest{Email: "jane@example.com", Password: "x"}
	assert.NoError(t, valid.Validate())

	missingPassword := &LoginRequest{Email: "jane@example.com"}
	assert.Error(t, missingPassword.Validate())

	missingEmail := &LoginRequest{Password: "x"}
	assert.Error(t, missingEmail.Validate())
}
