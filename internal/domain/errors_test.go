package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{nil, ""},
		{NotFound("member", 3), "NOT_FOUND"},
		{Conflict("member", "email", "a@b.c"), "CONFLICT"},
		{Invalidf("budget must be positive"), "VALIDATION"},
		{fmt.Errorf("login: %w", ErrUnauthorized), "UNAUTHENTICATED"},
		{ErrForbidden, "FORBIDDEN"},
		{errors.New("boom"), "INTERNAL"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, Code(tc.err))
	}
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "member 3: not found", NotFound("member", 3).Error())
	assert.Equal(t, `equipment with serial number "SN-1" already exists`, Conflict("equipment", "serial number", "SN-1").Error())
	assert.Nil(t, Invalid(nil))
	assert.Equal(t, "validation failed: name: cannot be blank.", Invalid(errors.New("name: cannot be blank.")).Error())
}
