package provisioning

import (
	"context"
	"fmt"

	"github.com/raito-io/golang-set/set"

	"github.com/itops-tools/user-provisioning/global"
)

// DirectoryClient is the subset of the Azure AD client a provisioning run
// needs.
//
//go:generate go run github.com/vektra/mockery/v2 --name=DirectoryClient --with-expecter --inpackage
type DirectoryClient interface {
	GetUserByEmail(ctx context.Context, email string) (*global.User, error)
	CreateUser(ctx context.Context, user *global.User, password string) error
	CreateMailbox(ctx context.Context, userID string) error
	AssignLicense(ctx context.Context, userID, skuID string) error
	GetAvailableLicenses(ctx context.Context) ([]global.License, error)
}

// BusinessClient is the subset of the Business Central client a provisioning
// run needs.
//
//go:generate go run github.com/vektra/mockery/v2 --name=BusinessClient --with-expecter --inpackage
type BusinessClient interface {
	GetUserByEmail(ctx context.Context, email string) (*global.User, error)
	CreateUser(ctx context.Context, user *global.User) error
	AssignRole(ctx context.Context, userID, roleID string) error
}

// Logger is the audit log a run reports its transitions to.
type Logger interface {
	LogInfo(message string)
	LogWarning(message string)
	LogError(message string, cause error)
}

// Orchestrator drives a provisioning run through its stages. It never
// retries and never compensates: every side effect it managed to make is
// left in place and reported through the Outcome.
type Orchestrator struct {
	directory DirectoryClient
	business  BusinessClient
	log       Logger
}

func NewOrchestrator(directory DirectoryClient, business BusinessClient, log Logger) *Orchestrator {
	return &Orchestrator{
		directory: directory,
		business:  business,
		log:       log,
	}
}

// Provision runs the full workflow for one request. The returned Outcome is
// never nil. The error return is non-nil only when the run aborted before
// the directory account existed: validation failure, a directory duplicate,
// or the directory create itself failing. Failures after that point touch
// only the affected backend and are reported through the Outcome, see
// Outcome.Err.
func (o *Orchestrator) Provision(ctx context.Context, req *Request) (*Outcome, error) {
	out := &Outcome{
		Email:            req.Email,
		Stage:            StageValidated,
		SyncRequested:    req.SyncToBusiness,
		MailboxRequested: req.CreateMailbox,
	}

	if err := req.Validate(); err != nil {
		out.fail(StageValidated)
		o.log.LogError(fmt.Sprintf("Provisioning of %s rejected", req.Email), err)

		return out, err
	}

	o.log.LogInfo(fmt.Sprintf("Provisioning of %s validated", req.Email))

	user := req.newUser()

	out.Stage = StageDirectoryCreating
	if err := o.checkDirectoryDuplicate(ctx, req, out); err != nil {
		return out, err
	}

	if err := o.directory.CreateUser(ctx, user, req.Password); err != nil {
		out.fail(StageDirectoryCreating)
		o.log.LogError(fmt.Sprintf("Azure AD account creation for %s failed", req.Email), err)

		return out, err
	}

	out.Stage = StageDirectoryCreated
	out.DirectoryCreated = true
	out.DirectoryID = user.AzureADID
	o.log.LogInfo(fmt.Sprintf("Azure AD account %s created for %s", user.AzureADID, req.Email))

	if req.CreateMailbox {
		if err := o.directory.CreateMailbox(ctx, user.AzureADID); err != nil {
			out.MailboxErr = err
			out.note("mailbox setup failed: %v", err)
			o.log.LogWarning(fmt.Sprintf("Mailbox setup for %s failed: %v", req.Email, err))
		}
	}

	if req.SyncToBusiness {
		out.Stage = StageBusinessCreating
		o.createBusinessUser(ctx, user, out)
	}

	out.Stage = StageLicensesAssigning
	o.assignLicenses(ctx, user, out)

	if out.BusinessCreated {
		out.Stage = StageRolesAssigning
		o.assignRoles(ctx, user, out)
	}

	out.Stage = StageComplete
	if out.Succeeded() {
		o.log.LogInfo(fmt.Sprintf("Provisioning of %s complete", req.Email))
	} else {
		o.log.LogWarning(fmt.Sprintf("Provisioning of %s complete with unfinished steps", req.Email))
	}

	return out, nil
}

// checkDirectoryDuplicate rejects the run when the directory already knows
// the email. A lookup failure aborts as well: creating an account without
// knowing whether it already exists is worse than failing the run.
func (o *Orchestrator) checkDirectoryDuplicate(ctx context.Context, req *Request, out *Outcome) error {
	existing, err := o.directory.GetUserByEmail(ctx, req.Email)
	if err != nil {
		out.fail(StageDirectoryCreating)
		o.log.LogError(fmt.Sprintf("Azure AD duplicate check for %s failed", req.Email), err)

		return err
	}

	if existing != nil {
		out.fail(StageDirectoryCreating)
		dup := &global.DuplicateIdentityError{Backend: global.BackendAzureAD, Email: req.Email}
		o.log.LogError(fmt.Sprintf("Provisioning of %s rejected", req.Email), dup)

		return dup
	}

	return nil
}

// createBusinessUser runs the Business Central side: duplicate check, then
// create. Every failure here, the duplicate check included, stops only this
// backend's steps; the directory work already done stays in place and the
// run carries on as a partial outcome.
func (o *Orchestrator) createBusinessUser(ctx context.Context, user *global.User, out *Outcome) {
	existing, err := o.business.GetUserByEmail(ctx, user.Email)
	if err != nil {
		out.BusinessErr = err
		out.note("business central account was not created: %v", err)
		o.log.LogError(fmt.Sprintf("Business Central duplicate check for %s failed", user.Email), err)

		return
	}

	if existing != nil {
		dup := &global.DuplicateIdentityError{Backend: global.BackendBusinessCentral, Email: user.Email}
		out.BusinessErr = dup
		out.note("business central account was not created: %v", dup)
		o.log.LogWarning(fmt.Sprintf("Business Central account for %s skipped: %v", user.Email, dup))

		return
	}

	if err := o.business.CreateUser(ctx, user); err != nil {
		out.BusinessErr = err
		out.note("business central account was not created: %v", err)
		o.log.LogError(fmt.Sprintf("Business Central account creation for %s failed", user.Email), err)

		return
	}

	out.Stage = StageBusinessCreated
	out.BusinessCreated = true
	out.BusinessID = user.BCUserID
	o.log.LogInfo(fmt.Sprintf("Business Central account %s created for %s", user.BCUserID, user.Email))
}

// assignLicenses fans out over the selected licenses, deduplicated by SKU.
// Each assignment is attempted exactly once; one failing does not stop the
// rest.
func (o *Orchestrator) assignLicenses(ctx context.Context, user *global.User, out *Outcome) {
	seen := set.NewSet[string]()

	for _, license := range user.Licenses {
		if seen.Contains(license.SkuID) {
			continue
		}

		seen.Add(license.SkuID)

		err := o.directory.AssignLicense(ctx, user.AzureADID, license.SkuID)
		out.Licenses = append(out.Licenses, AssignmentResult{ID: license.SkuID, Name: license.Name, Err: err})

		if err != nil {
			out.note("license %s was not assigned: %v", license.Name, err)
			o.log.LogWarning(fmt.Sprintf("License %s for %s failed: %v", license.Name, user.Email, err))
		} else {
			o.log.LogInfo(fmt.Sprintf("License %s assigned to %s", license.Name, user.Email))
		}
	}
}

// assignRoles fans out over the selected roles. Only reached when the
// Business Central account exists.
func (o *Orchestrator) assignRoles(ctx context.Context, user *global.User, out *Outcome) {
	seen := set.NewSet[string]()

	for _, role := range user.Roles {
		if seen.Contains(role.ID) {
			continue
		}

		seen.Add(role.ID)

		err := o.business.AssignRole(ctx, user.BCUserID, role.ID)
		out.Roles = append(out.Roles, AssignmentResult{ID: role.ID, Name: role.Name, Err: err})

		if err != nil {
			out.note("role %s was not assigned: %v", role.Name, err)
			o.log.LogWarning(fmt.Sprintf("Role %s for %s failed: %v", role.Name, user.Email, err))
		} else {
			o.log.LogInfo(fmt.Sprintf("Role %s assigned to %s", role.Name, user.Email))
		}
	}
}

// Catalog returns the assignable license catalog. An empty catalog is a hard
// failure: without it nothing can be selected for a request.
func (o *Orchestrator) Catalog(ctx context.Context) ([]global.License, error) {
	catalog, err := o.directory.GetAvailableLicenses(ctx)
	if err != nil {
		return nil, err
	}

	if len(catalog) == 0 {
		return nil, fmt.Errorf("no licenses available for assignment")
	}

	return catalog, nil
}
