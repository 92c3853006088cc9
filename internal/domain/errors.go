package domain

import "errors"

// Sentinel errors shared across the service. Callers match them with
// errors.Is; the HTTP layer maps each to a distinct status code so that
// "log in", "finish onboarding", "not allowed" and "something broke" never
// collapse into one generic failure.
var (
	// ErrUnauthenticated means no valid session was presented. Recoverable
	// by logging in; never logged as an application fault.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNoTenant means the principal is authenticated but has never
	// completed onboarding. Callers route this to onboarding, not to an
	// error page.
	ErrNoTenant = errors.New("no tenant membership")

	// ErrConflict means a uniqueness constraint (tenant slug) was violated.
	// The caller may retry with a different value.
	ErrConflict = errors.New("conflict")

	// ErrScope means the store rejected the tenant binding. The wrapped
	// operation must not run; surfaced as an infrastructure fault.
	ErrScope = errors.New("tenant scope binding failed")

	// ErrForbidden means an authorization check failed.
	ErrForbidden = errors.New("forbidden")

	ErrNotFound = errors.New("not found")
)
