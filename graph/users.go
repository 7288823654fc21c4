package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/aws/smithy-go/ptr"

	"github.com/itops-tools/user-provisioning/global"
)

// ListOptions map onto the $top/$skip/$filter OData query options.
type ListOptions struct {
	Top    *int
	Skip   *int
	Filter string
}

// CreateUser creates the identity in Azure AD with the given initial
// password. On success the user gains its Azure AD id. Whether the password
// must be changed at next sign-in comes from the client configuration.
func (c *Client) CreateUser(ctx context.Context, user *global.User, password string) error {
	body := graphUser{
		UserPrincipalName: user.Email,
		DisplayName:       user.EffectiveDisplayName(),
		MailNickname:      user.MailNickname(),
		GivenName:         user.FirstName,
		Surname:           user.LastName,
		JobTitle:          user.JobTitle,
		Department:        user.Department,
		MobilePhone:       user.PhoneNumber,
		AccountEnabled:    ptr.Bool(user.IsActive),
		PasswordProfile: &passwordProfile{
			ForceChangePasswordNextSignIn: c.requirePasswordChange,
			Password:                      password,
		},
	}

	status, data, err := c.rest.Post(ctx, "users", &body)
	if err != nil {
		return err
	}

	if !global.IsSuccess(status) {
		return &global.BackendCreateError{Backend: global.BackendAzureAD, StatusCode: status, Body: string(data)}
	}

	var created graphUser
	if err = json.Unmarshal(data, &created); err != nil {
		return fmt.Errorf("parsing create user response: %w", err)
	}

	user.AzureADID = created.ID
	user.ExistsInAzureAD = created.ID != ""

	logger.Info(fmt.Sprintf("user created in Azure AD: %s", user.Email))

	return nil
}

// GetUser reads one user by Azure AD id. A 404 yields nil without error.
func (c *Client) GetUser(ctx context.Context, userID string) (*global.User, error) {
	status, data, err := c.rest.Get(ctx, "users/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		return nil, nil
	}

	if !global.IsSuccess(status) {
		return nil, &global.BackendQueryError{Backend: global.BackendAzureAD, Op: "get user", StatusCode: status, Body: string(data)}
	}

	var raw graphUser
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	user := raw.toUser()

	if licenses, lerr := c.GetUserLicenses(ctx, user.AzureADID); lerr == nil {
		user.Licenses = licenses
	}

	return user, nil
}

// GetUserByEmail looks a user up by exact user principal name. A user that is
// not there yields nil without error; transport or backend failures do not.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*global.User, error) {
	query := url.Values{}
	query.Set("$filter", fmt.Sprintf("userPrincipalName eq '%s'", escapeODataString(email)))

	status, data, err := c.rest.Get(ctx, "users", query)
	if err != nil {
		return nil, err
	}

	if !global.IsSuccess(status) {
		return nil, &global.BackendQueryError{Backend: global.BackendAzureAD, Op: "find user by email", StatusCode: status, Body: string(data)}
	}

	var page listResponse[graphUser]
	if err = json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("parsing user lookup response: %w", err)
	}

	if len(page.Value) == 0 {
		return nil, nil
	}

	user := page.Value[0].toUser()

	if licenses, lerr := c.GetUserLicenses(ctx, user.AzureADID); lerr == nil {
		user.Licenses = licenses
	}

	return user, nil
}

// GetUsers lists directory users with optional paging and filter.
func (c *Client) GetUsers(ctx context.Context, opts ListOptions) ([]global.User, error) {
	query := url.Values{}

	if opts.Top != nil {
		query.Set("$top", strconv.Itoa(*opts.Top))
	}

	if opts.Skip != nil {
		query.Set("$skip", strconv.Itoa(*opts.Skip))
	}

	if opts.Filter != "" {
		query.Set("$filter", opts.Filter)
	}

	status, data, err := c.rest.Get(ctx, "users", query)
	if err != nil {
		return nil, err
	}

	if !global.IsSuccess(status) {
		return nil, &global.BackendQueryError{Backend: global.BackendAzureAD, Op: "list users", StatusCode: status, Body: string(data)}
	}

	var page listResponse[graphUser]
	if err = json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("parsing user list response: %w", err)
	}

	users := make([]global.User, 0, len(page.Value))
	for i := range page.Value {
		users = append(users, *page.Value[i].toUser())
	}

	return users, nil
}

// UpdateUser patches the mutable profile fields of an existing user.
func (c *Client) UpdateUser(ctx context.Context, user *global.User) error {
	if user.AzureADID == "" {
		return fmt.Errorf("an Azure AD user id is required for update")
	}

	body := graphUser{
		DisplayName: user.EffectiveDisplayName(),
		GivenName:   user.FirstName,
		Surname:     user.LastName,
		JobTitle:    user.JobTitle,
		Department:  user.Department,
		MobilePhone: user.PhoneNumber,

		AccountEnabled: ptr.Bool(user.IsActive),
	}

	status, data, err := c.rest.Patch(ctx, "users/"+url.PathEscape(user.AzureADID), &body)
	if err != nil {
		return err
	}

	if !global.IsSuccess(status) {
		return &global.BackendMutationError{Backend: global.BackendAzureAD, Op: "update user", StatusCode: status, Body: string(data)}
	}

	logger.Info(fmt.Sprintf("user updated in Azure AD: %s", user.Email))

	return nil
}

// DeleteUser removes the user from the directory.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	status, data, err := c.rest.Delete(ctx, "users/"+url.PathEscape(userID))
	if err != nil {
		return err
	}

	if !global.IsSuccess(status) {
		return &global.BackendMutationError{Backend: global.BackendAzureAD, Op: "delete user", StatusCode: status, Body: string(data)}
	}

	logger.Info(fmt.Sprintf("user deleted from Azure AD: %s", userID))

	return nil
}

// escapeODataString doubles single quotes so an email cannot break out of the
// filter literal.
func escapeODataString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
