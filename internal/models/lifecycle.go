package models

import (
	"fmt"
	"time"
)

// FetchState is the lifecycle of one read or one submission.
type FetchState string

const (
	StatePending   FetchState = "pending"
	StateSuccess   FetchState = "success"
	StateFailure   FetchState = "failure"
	StateDiscarded FetchState = "discarded"
)

// FailureKind classifies why a fetch or a submission did not succeed.
type FailureKind string

const (
	// FailureMissingSession: an authenticated operation ran with no stored credential.
	FailureMissingSession FailureKind = "missing_session"
	// FailureAuthorization: the remote API rejected the credential; it has been cleared.
	FailureAuthorization FailureKind = "authorization"
	// FailureRequest: the remote API answered with a non-success result.
	FailureRequest FailureKind = "request"
	// FailureTransport: the remote API could not be reached or answered garbage.
	FailureTransport FailureKind = "transport"
	// FailureDuplicateSubmission: the same form already has a submission in flight.
	FailureDuplicateSubmission FailureKind = "duplicate_submission"
)

// Failure carries a user-facing message. Status is the remote HTTP status
// when there was one.
type Failure struct {
	Kind    FailureKind `json:"kind"`
	Message string      `json:"message"`
	Status  int         `json:"status,omitempty"`
}

func (f *Failure) Error() string {
	if f.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", f.Kind, f.Status, f.Message)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// ClearsSession reports whether this failure invalidated the stored credential.
func (f *Failure) ClearsSession() bool {
	return f != nil && f.Kind == FailureAuthorization
}

// Redirect is a navigation outcome. A zero After means navigate immediately.
type Redirect struct {
	To    string        `json:"to"`
	After time.Duration `json:"-"`
}

// AfterMillis is the delay in milliseconds, for JSON view models.
func (r *Redirect) AfterMillis() int64 {
	if r == nil {
		return 0
	}
	return r.After.Milliseconds()
}

// FetchResult is the outcome of one view-activation read.
type FetchResult[T any] struct {
	State    FetchState
	Payload  *T
	Failure  *Failure
	Redirect *Redirect
}

// Succeeded reports whether a payload is available.
func (r FetchResult[T]) Succeeded() bool {
	return r.State == StateSuccess && r.Payload != nil
}

// SubmitResult is the outcome of one user-initiated mutation.
type SubmitResult struct {
	State    FetchState
	Message  string
	Failure  *Failure
	Redirect *Redirect
}

// Succeeded reports whether the mutation went through.
func (r SubmitResult) Succeeded() bool {
	return r.State == StateSuccess
}

// DisplayMessage is the text the user sees for this outcome.
func (r SubmitResult) DisplayMessage() string {
	if r.Failure != nil {
		return r.Failure.Message
	}
	return r.Message
}

// SessionStatus is the result of a session check. A zero value is the
// unauthenticated state.
type SessionStatus struct {
	Present bool
	Token   string
}
