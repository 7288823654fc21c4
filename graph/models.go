package graph

import "github.com/itops-tools/user-provisioning/global"

// Wire shapes for the Graph endpoints this client touches.

type listResponse[T any] struct {
	Value []T `json:"value"`
}

type organizationResource struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

type graphUser struct {
	ID                string `json:"id,omitempty"`
	UserPrincipalName string `json:"userPrincipalName,omitempty"`
	DisplayName       string `json:"displayName,omitempty"`
	MailNickname      string `json:"mailNickname,omitempty"`
	GivenName         string `json:"givenName,omitempty"`
	Surname           string `json:"surname,omitempty"`
	JobTitle          string `json:"jobTitle,omitempty"`
	Department        string `json:"department,omitempty"`
	MobilePhone       string `json:"mobilePhone,omitempty"`

	AccountEnabled  *bool            `json:"accountEnabled,omitempty"`
	PasswordProfile *passwordProfile `json:"passwordProfile,omitempty"`

	AssignedLicenses []assignedLicense `json:"assignedLicenses,omitempty"`
}

type passwordProfile struct {
	ForceChangePasswordNextSignIn bool   `json:"forceChangePasswordNextSignIn"`
	Password                      string `json:"password"`
}

type assignedLicense struct {
	SkuID string `json:"skuId"`
}

type subscribedSku struct {
	ID            string       `json:"id"`
	SkuID         string       `json:"skuId"`
	SkuPartNumber string       `json:"skuPartNumber"`
	ConsumedUnits int          `json:"consumedUnits"`
	PrepaidUnits  prepaidUnits `json:"prepaidUnits"`
}

type prepaidUnits struct {
	Enabled   int `json:"enabled"`
	Suspended int `json:"suspended"`
	Warning   int `json:"warning"`
}

type assignLicenseRequest struct {
	AddLicenses    []assignedLicense `json:"addLicenses"`
	RemoveLicenses []string          `json:"removeLicenses"`
}

func (u *graphUser) toUser() *global.User {
	user := &global.User{
		AzureADID:       u.ID,
		UserName:        u.UserPrincipalName,
		Email:           u.UserPrincipalName,
		FirstName:       u.GivenName,
		LastName:        u.Surname,
		DisplayName:     u.DisplayName,
		JobTitle:        u.JobTitle,
		Department:      u.Department,
		PhoneNumber:     u.MobilePhone,
		ExistsInAzureAD: u.ID != "",
	}

	if u.AccountEnabled != nil {
		user.IsActive = *u.AccountEnabled
	}

	return user
}
