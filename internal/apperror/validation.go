package apperror

import "strings"

// Issue is one field-level validation failure.
type Issue struct {
	Code    string   `json:"code"`
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, strings.Join(issue.Path, ".")+": "+issue.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidation(issues ...Issue) *ValidationError {
	return &ValidationError{Issues: issues}
}
