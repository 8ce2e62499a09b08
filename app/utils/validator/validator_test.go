package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	Role      string `json:"role" validate:"omitempty,role_name"`
}

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       sampleRequest
		wantField string
	}{
		{
			name: "valid request",
			req:  sampleRequest{Email: "a@b.com", FirstName: "A", Role: "admin"},
		},
		{
			name:      "missing email",
			req:       sampleRequest{FirstName: "A"},
			wantField: "email",
		},
		{
			name:      "malformed email",
			req:       sampleRequest{Email: "not-an-email", FirstName: "A"},
			wantField: "email",
		},
		{
			name:      "role with uppercase rejected",
			req:       sampleRequest{Email: "a@b.com", FirstName: "A", Role: "Admin"},
			wantField: "role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			vErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Contains(t, vErr.Errors, tt.wantField)
		})
	}
}

func TestIsValidRoleName(t *testing.T) {
	assert.True(t, IsValidRoleName("user"))
	assert.True(t, IsValidRoleName("read-only_2"))
	assert.False(t, IsValidRoleName(""))
	assert.False(t, IsValidRoleName("Admin"))
	assert.False(t, IsValidRoleName("role name"))
}
