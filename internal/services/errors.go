// Package services holds the engagement-graph core: edge toggling, the
// watch-history tracker, the view counter, playlist membership, and channel
// stats. Handlers stay thin; everything with an invariant lives here.
package services

import "errors"

// Kind classifies a service failure for the HTTP boundary.
type Kind int

const (
	KindInvalidReference Kind = iota + 1 // malformed identifier
	KindNotFound                         // referenced entity absent where presence was required
	KindForbidden                        // requester is not the resource owner
	KindInvalidOperation                 // e.g. self-subscription, duplicate playlist membership
)

// Error is a typed service failure. Validation errors are raised before any
// mutation is attempted; store conflicts from concurrent toggle creation are
// absorbed and never appear here.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func invalidRef(msg string) error { return &Error{Kind: KindInvalidReference, Message: msg} }
func notFound(msg string) error   { return &Error{Kind: KindNotFound, Message: msg} }
func forbidden(msg string) error  { return &Error{Kind: KindForbidden, Message: msg} }
func invalidOp(msg string) error  { return &Error{Kind: KindInvalidOperation, Message: msg} }

// ErrorKind extracts the Kind from err if it is a service error.
func ErrorKind(err error) (Kind, bool) {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind, true
	}
	return 0, false
}
