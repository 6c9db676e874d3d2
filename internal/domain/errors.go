package domain

import "fmt"

// ValidationError reports malformed caller input (oversized search text,
// and similar). The caller recovers with a safe fallback and a user-visible
// message; no partial filtering is applied.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a missing resource, e.g. a focus strategy absent
// from the loaded snapshot.
type NotFoundError struct {
	Resource string
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
}

// SchemaError reports a required dataset column missing from the snapshot.
// This is fatal at load time: silently coercing would corrupt filter and
// sort results downstream.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset missing required column %q", e.Column)
}
