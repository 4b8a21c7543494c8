package request

import "encoding/json"

// ValidateCompletionRequest is a party's sign-off on the finished work.
// Photos is an opaque JSON blob (the mobile apps send provider-specific
// upload references); it is stored on the action record untouched.
type ValidateCompletionRequest struct {
	Notes  string          `json:"notes"`
	Photos json.RawMessage `json:"photos"`
}
