package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	withOp := &Error{Code: EINVALID, Op: "ContactService.Create", Message: "Name is required"}
	assert.Equal(t, "ContactService.Create: Name is required", withOp.Error())

	noOp := &Error{Code: EINVALID, Message: "Name is required"}
	assert.Equal(t, "Name is required", noOp.Error())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause, "ContactStore.Create", "Failed to save contact form")

	assert.ErrorIs(t, err, cause)
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"domain error", Invalid("op", "bad input"), EINVALID},
		{"wrapped domain error", fmt.Errorf("outer: %w", NotFound("op", "Project", "9")), ENOTFOUND},
		{"plain error", errors.New("boom"), EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorCode(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"client-facing message passes through", Invalid("op", "Name is required"), "Name is required"},
		{"internal detail is hidden", Internal(errors.New("pq: relation missing"), "op", "query failed"), "An internal error occurred. Please try again later."},
		{"plain error is hidden", errors.New("pq: relation missing"), "An internal error occurred. Please try again later."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}

func TestConstructors(t *testing.T) {
	nf := NotFound("ProjectService.Get", "Project", "42")
	assert.Equal(t, ENOTFOUND, nf.Code)
	assert.Contains(t, nf.Message, `Project with ID "42" not found`)

	rl := RateLimit("ContactHandler.Submit")
	assert.Equal(t, ERATELIMIT, rl.Code)
	assert.NotEmpty(t, rl.Message)

	ef := Errorf(ECONFLICT, "UserStore.CreateUser", "username %q taken", "admin")
	assert.Equal(t, ECONFLICT, ef.Code)
	assert.Equal(t, `username "admin" taken`, ef.Message)
}
