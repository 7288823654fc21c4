package bc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/itops-tools/user-provisioning/global"
)

// ListOptions map onto the $top/$skip/$filter OData query options.
type ListOptions struct {
	Top    *int
	Skip   *int
	Filter string
}

// CreateUser creates the user record in the configured company. On success
// the user gains its Business Central id.
func (c *Client) CreateUser(ctx context.Context, user *global.User) error {
	body := bcUser{
		UserName:            user.UserName,
		DisplayName:         user.EffectiveDisplayName(),
		Email:               user.Email,
		ContactEmail:        user.Email,
		AuthenticationEmail: user.Email,
		State:               stateFor(user.IsActive),
	}

	status, data, err := c.rest.Post(ctx, c.companyPath("users"), &body)
	if err != nil {
		return err
	}

	if !global.IsSuccess(status) {
		return &global.BackendCreateError{Backend: global.BackendBusinessCentral, StatusCode: status, Body: string(data)}
	}

	var created bcUser
	if err = json.Unmarshal(data, &created); err != nil {
		return fmt.Errorf("parsing create user response: %w", err)
	}

	user.BCUserID = created.ID
	user.ExistsInBC = created.ID != ""

	logger.Info(fmt.Sprintf("user created in Business Central: %s", user.Email))

	return nil
}

// GetUser reads one user by Business Central id. A 404 yields nil without
// error.
func (c *Client) GetUser(ctx context.Context, userID string) (*global.User, error) {
	status, data, err := c.rest.Get(ctx, c.companyPath(fmt.Sprintf("users(%s)", url.PathEscape(userID))), nil)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		return nil, nil
	}

	if !global.IsSuccess(status) {
		return nil, &global.BackendQueryError{Backend: global.BackendBusinessCentral, Op: "get user", StatusCode: status, Body: string(data)}
	}

	var raw bcUser
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	user := raw.toUser()

	if roles, rerr := c.GetUserRoles(ctx, user.BCUserID); rerr == nil {
		user.Roles = roles
	}

	return user, nil
}

// GetUserByEmail looks a user up by exact email. A user that is not there
// yields nil without error; transport or backend failures do not.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*global.User, error) {
	query := url.Values{}
	query.Set("$filter", fmt.Sprintf("email eq '%s'", escapeODataString(email)))

	status, data, err := c.rest.Get(ctx, c.companyPath("users"), query)
	if err != nil {
		return nil, err
	}

	if !global.IsSuccess(status) {
		return nil, &global.BackendQueryError{Backend: global.BackendBusinessCentral, Op: "find user by email", StatusCode: status, Body: string(data)}
	}

	var page listResponse[bcUser]
	if err = json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("parsing user lookup response: %w", err)
	}

	if len(page.Value) == 0 {
		return nil, nil
	}

	user := page.Value[0].toUser()

	if roles, rerr := c.GetUserRoles(ctx, user.BCUserID); rerr == nil {
		user.Roles = roles
	}

	return user, nil
}

// GetUsers lists company users with optional paging and filter.
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

	status, data, err := c.rest.Get(ctx, c.companyPath("users"), query)
	if err != nil {
		return nil, err
	}

	if !global.IsSuccess(status) {
		return nil, &global.BackendQueryError{Backend: global.BackendBusinessCentral, Op: "list users", StatusCode: status, Body: string(data)}
	}

	var page listResponse[bcUser]
	if err = json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("parsing user list response: %w", err)
	}

	users := make([]global.User, 0, len(page.Value))
	for i := range page.Value {
		users = append(users, *page.Value[i].toUser())
	}

	return users, nil
}

// UpdateUser patches the mutable fields of an existing user record.
func (c *Client) UpdateUser(ctx context.Context, user *global.User) error {
	if user.BCUserID == "" {
		return fmt.Errorf("a Business Central user id is required for update")
	}

	body := bcUser{
		DisplayName:  user.EffectiveDisplayName(),
		Email:        user.Email,
		ContactEmail: user.Email,
		State:        stateFor(user.IsActive),
	}

	status, data, err := c.rest.Patch(ctx, c.companyPath(fmt.Sprintf("users(%s)", url.PathEscape(user.BCUserID))), &body)
	if err != nil {
		return err
	}

	if !global.IsSuccess(status) {
		return &global.BackendMutationError{Backend: global.BackendBusinessCentral, Op: "update user", StatusCode: status, Body: string(data)}
	}

	logger.Info(fmt.Sprintf("user updated in Business Central: %s", user.Email))

	return nil
}

// DeleteUser removes the user record from the company.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	status, data, err := c.rest.Delete(ctx, c.companyPath(fmt.Sprintf("users(%s)", url.PathEscape(userID))))
	if err != nil {
		return err
	}

	if !global.IsSuccess(status) {
		return &global.BackendMutationError{Backend: global.BackendBusinessCentral, Op: "delete user", StatusCode: status, Body: string(data)}
	}

	logger.Info(fmt.Sprintf("user deleted from Business Central: %s", userID))

	return nil
}

func escapeODataString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
