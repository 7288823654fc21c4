package provisioning

import (
	"testing"

	"github.com/aws/smithy-go/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itops-tools/user-provisioning/global"
)

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		reasons []string
	}{
		{
			name:   "valid request",
			mutate: func(r *Request) {},
		},
		{
			name:    "missing first name",
			mutate:  func(r *Request) { r.FirstName = "" },
			reasons: []string{"firstname is required"},
		},
		{
			name:    "missing last name",
			mutate:  func(r *Request) { r.LastName = "" },
			reasons: []string{"lastname is required"},
		},
		{
			name:    "malformed email",
			mutate:  func(r *Request) { r.Email = "ana.garcia" },
			reasons: []string{"email format is not valid"},
		},
		{
			name:    "short password",
			mutate:  func(r *Request) { r.Password = "short" },
			reasons: []string{"password must be at least 8 characters"},
		},
		{
			name:    "no licenses selected",
			mutate:  func(r *Request) { r.Licenses[0].IsSelected = false },
			reasons: []string{"at least one license must be selected"},
		},
		{
			name:    "selected license without sku",
			mutate:  func(r *Request) { r.Licenses[0].SkuID = "" },
			reasons: []string{"has no SKU identifier"},
		},
		{
			name:    "sync without roles",
			mutate:  func(r *Request) { r.Roles = nil },
			reasons: []string{"at least one role must be selected"},
		},
		{
			name: "every violation reported at once",
			mutate: func(r *Request) {
				r.FirstName = ""
				r.Email = "nope"
				r.Licenses = nil
			},
			reasons: []string{
				"firstname is required",
				"email format is not valid",
				"at least one license must be selected",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := req.Validate()

			if len(tt.reasons) == 0 {
				require.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)

			for _, reason := range tt.reasons {
				assert.Contains(t, validationErr.Error(), reason)
			}
		})
	}
}

func TestRequest_Active(t *testing.T) {
	req := validRequest()
	assert.True(t, req.Active())

	req.IsActive = ptr.Bool(false)
	assert.False(t, req.Active())
}

func TestRequest_NewUser(t *testing.T) {
	req := validRequest()
	req.Licenses = append(req.Licenses, global.License{ID: "x", Name: "Unselected", SkuID: "sku-x"})
	req.Roles = append(req.Roles, global.Role{ID: "y", Name: "Unselected"})

	user := req.newUser()

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ana.garcia@example.com", user.UserName)
	assert.Equal(t, "Ana García", user.DisplayName)
	assert.True(t, user.IsActive)
	require.Len(t, user.Licenses, 1)
	require.Len(t, user.Roles, 1)
	assert.Equal(t, "sku-basic", user.Licenses[0].SkuID)

	// the snapshot is independent of the request
	req.Licenses[0].IsSelected = false
	assert.True(t, user.Licenses[0].IsSelected)
}

func TestRequest_NewUserKeepsExplicitNames(t *testing.T) {
	req := validRequest()
	req.UserName = "agarcia"
	req.DisplayName = "Ana G."

	user := req.newUser()

	assert.Equal(t, "agarcia", user.UserName)
	assert.Equal(t, "Ana G.", user.DisplayName)
}
