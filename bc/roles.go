package bc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/itops-tools/user-provisioning/global"
)

// GetRoles reads the permission set catalog. When the backend call fails,
// the locally configured fallback roles are returned instead of an error,
// mirroring the license catalog fallback on the directory side.
func (c *Client) GetRoles(ctx context.Context) ([]global.Role, error) {
	status, data, err := c.rest.Get(ctx, c.companyPath("userPermissionSets"), nil)
	if err != nil || !global.IsSuccess(status) {
		if err == nil {
			err = &global.BackendQueryError{Backend: global.BackendBusinessCentral, Op: "permission sets", StatusCode: status, Body: string(data)}
		}

		logger.Warn(fmt.Sprintf("could not read permission sets, using %d configured fallback roles: %s", len(c.fallbackRoles), err.Error()))

		fallback := make([]global.Role, len(c.fallbackRoles))
		copy(fallback, c.fallbackRoles)

		return fallback, nil
	}

	var page listResponse[bcPermissionSet]
	if err = json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("parsing permission set response: %w", err)
	}

	roles := make([]global.Role, 0, len(page.Value))

	for _, ps := range page.Value {
		roles = append(roles, global.Role{
			ID:          ps.ID,
			Name:        ps.Name,
			Description: ps.Description,
		})
	}

	return roles, nil
}

// GetUserRoles reads the permission sets assigned to one user.
func (c *Client) GetUserRoles(ctx context.Context, userID string) ([]global.Role, error) {
	status, data, err := c.rest.Get(ctx, c.companyPath(fmt.Sprintf("users(%s)/userPermissions", url.PathEscape(userID))), nil)
	if err != nil {
		return nil, err
	}

	if !global.IsSuccess(status) {
		return nil, &global.BackendQueryError{Backend: global.BackendBusinessCentral, Op: "user permissions", StatusCode: status, Body: string(data)}
	}

	var page listResponse[bcUserPermission]
	if err = json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("parsing user permission response: %w", err)
	}

	roles := make([]global.Role, 0, len(page.Value))

	for _, p := range page.Value {
		roles = append(roles, global.Role{
			ID:         p.PermissionSetID,
			Name:       p.PermissionSetName,
			IsSelected: true,
		})
	}

	return roles, nil
}

// AssignRole grants one permission set to the user. Granting a permission
// set the user already holds is not fatal to callers; failures are reported
// as normalized mutation errors.
func (c *Client) AssignRole(ctx context.Context, userID, roleID string) error {
	body := bcUserPermission{PermissionSetID: roleID}

	status, data, err := c.rest.Post(ctx, c.companyPath(fmt.Sprintf("users(%s)/userPermissions", url.PathEscape(userID))), &body)
	if err != nil {
		return err
	}

	if !global.IsSuccess(status) {
		return &global.BackendMutationError{Backend: global.BackendBusinessCentral, Op: "assign role", StatusCode: status, Body: string(data)}
	}

	logger.Info(fmt.Sprintf("role assigned in Business Central: user %s, role %s", userID, roleID))

	return nil
}

// RemoveRole revokes one permission set from the user. Revoking a permission
// set the user does not hold is reported as a normalized mutation error,
// never as a panic.
func (c *Client) RemoveRole(ctx context.Context, userID, roleID string) error {
	path := c.companyPath(fmt.Sprintf("users(%s)/userPermissions(permissionSetId=%s)", url.PathEscape(userID), url.PathEscape(roleID)))

	status, data, err := c.rest.Delete(ctx, path)
	if err != nil {
		return err
	}

	if !global.IsSuccess(status) {
		return &global.BackendMutationError{Backend: global.BackendBusinessCentral, Op: "remove role", StatusCode: status, Body: string(data)}
	}

	logger.Info(fmt.Sprintf("role removed in Business Central: user %s, role %s", userID, roleID))

	return nil
}
