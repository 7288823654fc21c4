package bc

import "github.com/itops-tools/user-provisioning/global"

// Wire shapes for the Business Central endpoints this client touches.

type listResponse[T any] struct {
	Value []T `json:"value"`
}

type bcUser struct {
	ID                  string `json:"id,omitempty"`
	UserName            string `json:"userName,omitempty"`
	DisplayName         string `json:"displayName,omitempty"`
	Email               string `json:"email,omitempty"`
	ContactEmail        string `json:"contactEmail,omitempty"`
	AuthenticationEmail string `json:"authenticationEmail,omitempty"`
	State               string `json:"state,omitempty"`
}

type bcPermissionSet struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type bcUserPermission struct {
	PermissionSetID   string `json:"permissionSetId"`
	PermissionSetName string `json:"permissionSetName"`
}

const (
	stateEnabled  = "Enabled"
	stateDisabled = "Disabled"
)

func stateFor(active bool) string {
	if active {
		return stateEnabled
	}

	return stateDisabled
}

func (u *bcUser) toUser() *global.User {
	return &global.User{
		BCUserID:    u.ID,
		UserName:    u.UserName,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		IsActive:    u.State == stateEnabled,
		ExistsInBC:  u.ID != "",
	}
}
