package agents

import "fmt"

// APICallError represents an upstream LLM failure (transport, timeout,
// empty response).
type APICallError struct {
	Agent string
	Cause error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s agent call failed: %v", e.Agent, e.Cause)
	}
	return fmt.Sprintf("%s agent call failed", e.Agent)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents an agent response that is not valid JSON at all.
type ParseError struct {
	Agent string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s agent returned malformed JSON: %v", e.Agent, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
