package services

import (
	"sort"
	"strings"
)

// ValidationError reports missing or malformed form fields. It is checked
// before any network call is issued so the handler can report inline,
// field-keyed messages instead of a generic failure.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func requireFields(fields map[string]string) *ValidationError {
	missing := make(map[string]string)
	for name, val := range fields {
		if strings.TrimSpace(val) == "" {
			missing[name] = name + " is required"
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Fields: missing}
}
