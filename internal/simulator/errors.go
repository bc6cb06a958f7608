package simulator

import "fmt"

// NotFoundError indicates that no available simulator matched a query.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no simulator found matching '%s'", e.Query)
}

// BootTimeoutError indicates a device did not reach the Booted state in time.
type BootTimeoutError struct {
	UDID string
}

func (e *BootTimeoutError) Error() string {
	return fmt.Sprintf("timed out waiting for simulator %s to boot", e.UDID)
}
