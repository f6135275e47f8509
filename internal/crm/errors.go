package crm

import "fmt"

// AuthError means the client could not exchange its credentials for a
// session with the CRM, either because the endpoint was unreachable or
// because the CRM rejected them.
type AuthError struct {
	message string
	cause   error
}

func (e *AuthError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("crm authentication failed: %s - %v", e.message, e.cause)
	}
	return fmt.Sprintf("crm authentication failed: %s", e.message)
}

func (e *AuthError) Unwrap() error {
	return e.cause
}

// CallError is a failed remote method invocation. Message carries the text
// the CRM reported, or the transport failure when the call never reached it.
type CallError struct {
	Model   string
	Method  string
	Message string
	cause   error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("crm call %s.%s failed: %s", e.Model, e.Method, e.Message)
}

func (e *CallError) Unwrap() error {
	return e.cause
}
