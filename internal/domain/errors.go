package domain

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// MissingScopeFieldError reports a malformed scope: a sub-field required by
// the scope type is absent, or the type itself is unknown.
type MissingScopeFieldError struct {
	Field string
}

func (e MissingScopeFieldError) Error() string {
	if e.Field == "" {
		return "scope is malformed"
	}
	return fmt.Sprintf("scope is missing required field %s", e.Field)
}

func (e MissingScopeFieldError) Is(target error) bool {
	_, ok := target.(MissingScopeFieldError)
	if ok {
		return true
	}
	_, ok = target.(*MissingScopeFieldError)
	return ok
}

var ErrMissingScopeField = MissingScopeFieldError{}

// TierInsufficientError reports that the requester's tier does not satisfy
// the minimum tier of the requested capability.
type TierInsufficientError struct {
	Required Tier
	Actual   Tier
}

func (e TierInsufficientError) Error() string {
	return fmt.Sprintf("tier %s required, requester has %s", e.Required, e.Actual)
}

func (e TierInsufficientError) Is(target error) bool {
	_, ok := target.(TierInsufficientError)
	if ok {
		return true
	}
	_, ok = target.(*TierInsufficientError)
	return ok
}

var ErrTierInsufficient = TierInsufficientError{}

// FolderNotOwnedError reports that a folder exists but belongs to another
// user.
type FolderNotOwnedError struct {
	FolderID string
}

func (e FolderNotOwnedError) Error() string {
	return fmt.Sprintf("folder %s is not owned by requester", e.FolderID)
}

func (e FolderNotOwnedError) Is(target error) bool {
	_, ok := target.(FolderNotOwnedError)
	if ok {
		return true
	}
	_, ok = target.(*FolderNotOwnedError)
	return ok
}

var ErrFolderNotOwned = FolderNotOwnedError{}
