package global

import "fmt"

// AuthenticationError indicates that no token could be obtained for a
// backend. It aborts that backend's portion of a provisioning run.
type AuthenticationError struct {
	Backend string
	Err     error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication against %s failed: %v", e.Backend, e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// DuplicateIdentityError indicates that the email is already present in a
// backend. The creation step for that backend is aborted; nothing is mutated.
type DuplicateIdentityError struct {
	Backend string
	Email   string
}

func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("a user with email %s already exists in %s", e.Email, e.Backend)
}

// BackendCreateError is a non-2xx response to a create call. It carries the
// backend status and raw error body for diagnostics.
type BackendCreateError struct {
	Backend    string
	StatusCode int
	Body       string
}

func (e *BackendCreateError) Error() string {
	return fmt.Sprintf("creating user in %s failed: status %d: %s", e.Backend, e.StatusCode, e.Body)
}

// BackendQueryError is a non-2xx response to a read call. A not-found lookup
// is not an error; clients translate 404 into a nil result instead.
type BackendQueryError struct {
	Backend    string
	Op         string
	StatusCode int
	Body       string
}

func (e *BackendQueryError) Error() string {
	return fmt.Sprintf("%s query %q failed: status %d: %s", e.Backend, e.Op, e.StatusCode, e.Body)
}

// BackendMutationError is a non-2xx response to an update, delete or
// assignment call.
type BackendMutationError struct {
	Backend    string
	Op         string
	StatusCode int
	Body       string
}

func (e *BackendMutationError) Error() string {
	return fmt.Sprintf("%s mutation %q failed: status %d: %s", e.Backend, e.Op, e.StatusCode, e.Body)
}
