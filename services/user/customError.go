package user

import "errors"

// ErrUnknownUser signals that a token was requested for an email with no
// matching user record.
var ErrUnknownUser = errors.New("no user registered with this email")
