package provisioning

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/itops-tools/user-provisioning/global"
)

var validate = validator.New()

// Request is the immutable input of a provisioning run. It carries a
// snapshot of everything the run needs. Changes made to the source data
// after a run has started do not affect that run.
type Request struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	UserName    string `json:"user_name"`
	DisplayName string `json:"display_name"`
	JobTitle    string `json:"job_title"`
	Department  string `json:"department"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password" validate:"required,min=8"`

	// IsActive defaults to true when omitted.
	IsActive *bool `json:"is_active,omitempty"`

	Licenses []global.License `json:"licenses"`
	Roles    []global.Role    `json:"roles"`

	CreateMailbox  bool `json:"create_mailbox"`
	SyncToBusiness bool `json:"sync_to_business"`
}

// Active reports whether the new account should be enabled.
func (r *Request) Active() bool {
	return r.IsActive == nil || *r.IsActive
}

// ValidationError aggregates every reason a request was rejected, so a
// caller can surface all of them at once instead of one per attempt.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid provisioning request: %s", strings.Join(e.Reasons, "; "))
}

// Validate checks the request against the entry conditions of a
// provisioning run. It returns a *ValidationError listing every violation,
// or nil when the request is acceptable.
func (r *Request) Validate() error {
	var result *multierror.Error

	if err := validate.Struct(r); err != nil {
		var fieldErrors validator.ValidationErrors

		if errors.As(err, &fieldErrors) {
			for _, fieldError := range fieldErrors {
				result = multierror.Append(result, errors.New(reasonFor(fieldError)))
			}
		} else {
			result = multierror.Append(result, err)
		}
	}

	selected := global.SelectedLicenses(r.Licenses)
	if len(selected) == 0 {
		result = multierror.Append(result, errors.New("at least one license must be selected"))
	}

	for _, license := range selected {
		if license.SkuID == "" {
			result = multierror.Append(result, fmt.Errorf("license %q has no SKU identifier", license.Name))
		}
	}

	if r.SyncToBusiness && len(global.SelectedRoles(r.Roles)) == 0 {
		result = multierror.Append(result, errors.New("at least one role must be selected when syncing to Business Central"))
	}

	if result == nil {
		return nil
	}

	reasons := make([]string, 0, len(result.Errors))
	for _, err := range result.Errors {
		reasons = append(reasons, err.Error())
	}

	return &ValidationError{Reasons: reasons}
}

func reasonFor(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", strings.ToLower(fieldError.Field()))
	case "email":
		return "email format is not valid"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", strings.ToLower(fieldError.Field()), fieldError.Param())
	default:
		return fmt.Sprintf("%s is not valid", strings.ToLower(fieldError.Field()))
	}
}

// newUser builds the user record the backends will be asked to create.
func (r *Request) newUser() *global.User {
	user := &global.User{
		ID:          uuid.NewString(),
		UserName:    r.UserName,
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DisplayName: r.DisplayName,
		JobTitle:    r.JobTitle,
		Department:  r.Department,
		PhoneNumber: r.PhoneNumber,
		IsActive:    r.Active(),
		Roles:       append([]global.Role(nil), global.SelectedRoles(r.Roles)...),
		Licenses:    append([]global.License(nil), global.SelectedLicenses(r.Licenses)...),
		CreatedAt:   time.Now(),
	}

	if user.UserName == "" {
		user.UserName = user.Email
	}

	if user.DisplayName == "" {
		user.DisplayName = user.FullName()
	}

	return user
}
