package provisioning

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// AssignmentResult records the outcome of one license or role assignment
// during the fan-out stages.
type AssignmentResult struct {
	ID   string
	Name string
	Err  error
}

func (r AssignmentResult) OK() bool {
	return r.Err == nil
}

// Outcome is the full report of a provisioning run. A run that aborted
// carries Failed plus the stage it failed at; a run that reached
// StageComplete may still be partial, see Partial and Err.
type Outcome struct {
	Email string

	Stage       Stage
	Failed      bool
	FailedStage Stage

	SyncRequested    bool
	MailboxRequested bool

	DirectoryID      string
	DirectoryCreated bool

	BusinessID      string
	BusinessCreated bool
	BusinessErr     error

	MailboxErr error

	Licenses []AssignmentResult
	Roles    []AssignmentResult

	Notes []string
}

func (o *Outcome) note(format string, args ...any) {
	o.Notes = append(o.Notes, fmt.Sprintf(format, args...))
}

func (o *Outcome) fail(stage Stage) {
	o.Failed = true
	o.FailedStage = stage
	o.Stage = stage
}

// Partial reports whether the directory account exists but the requested
// business account does not.
func (o *Outcome) Partial() bool {
	return o.DirectoryCreated && o.SyncRequested && !o.BusinessCreated
}

// FailedAssignments returns the license and role assignments that did not
// succeed, licenses first.
func (o *Outcome) FailedAssignments() []AssignmentResult {
	var failed []AssignmentResult

	for _, r := range o.Licenses {
		if !r.OK() {
			failed = append(failed, r)
		}
	}

	for _, r := range o.Roles {
		if !r.OK() {
			failed = append(failed, r)
		}
	}

	return failed
}

// Succeeded reports whether every requested step of the run worked.
func (o *Outcome) Succeeded() bool {
	if o.Failed || o.Partial() {
		return false
	}

	if o.MailboxRequested && o.MailboxErr != nil {
		return false
	}

	return len(o.FailedAssignments()) == 0
}

// Err returns a *PartialProvisioningError when the run completed but some
// requested step failed, and nil when everything succeeded. Runs that
// aborted report their failure through the error return of Provision, not
// through Err.
func (o *Outcome) Err() error {
	if o.Failed || o.Succeeded() {
		return nil
	}

	return &PartialProvisioningError{Outcome: o}
}

// PartialProvisioningError reports a run that created the primary account
// but could not finish everything that was asked for. Nothing is rolled
// back; the error describes what remains to be done by hand.
type PartialProvisioningError struct {
	Outcome *Outcome
}

func (e *PartialProvisioningError) Error() string {
	var result *multierror.Error

	if e.Outcome.Partial() {
		result = multierror.Append(result, fmt.Errorf("business central account was not created: %w", e.Outcome.BusinessErr))
	}

	if e.Outcome.MailboxRequested && e.Outcome.MailboxErr != nil {
		result = multierror.Append(result, fmt.Errorf("mailbox was not configured: %w", e.Outcome.MailboxErr))
	}

	for _, assignment := range e.Outcome.FailedAssignments() {
		result = multierror.Append(result, fmt.Errorf("%s: %w", assignment.Name, assignment.Err))
	}

	reasons := make([]string, 0, len(result.Errors))
	for _, err := range result.Errors {
		reasons = append(reasons, err.Error())
	}

	return fmt.Sprintf("provisioning of %s completed partially: %s", e.Outcome.Email, strings.Join(reasons, "; "))
}

func (e *PartialProvisioningError) Unwrap() error {
	return e.Outcome.BusinessErr
}
