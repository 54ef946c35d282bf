package management

import (
	"errors"
	"fmt"
)

// QueryError is returned when the management agent answers a request with
// a failure status.
type QueryError struct {
	// Operation is QUERY or GET-LOG.
	Operation string
	// EntityType is the queried type, empty for GET-LOG.
	EntityType string
	// StatusCode is the status reported by the agent.
	StatusCode int
	// Description is the agent's status description.
	Description string
}

func (e *QueryError) Error() string {
	target := e.Operation
	if e.EntityType != "" {
		target = fmt.Sprintf("%s %s", e.Operation, e.EntityType)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("management %s failed (%d): %s", target, e.StatusCode, e.Description)
	}
	return fmt.Sprintf("management %s failed: %s", target, e.Description)
}

// IsQueryError reports whether err wraps a QueryError.
func IsQueryError(err error) bool {
	var queryErr *QueryError
	return errors.As(err, &queryErr)
}
