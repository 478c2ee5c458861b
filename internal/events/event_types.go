package events

import (
	"time"

	"github.com/spec-kit/roster-service/internal/domain"
)

// EventType enumerates roster change notifications.
type EventType string

const (
	EventRosterLoaded    EventType = "roster_loaded"
	EventEmployeeAdded   EventType = "employee_added"
	EventEmployeeRemoved EventType = "employee_removed"
)

// Event is delivered to subscribers after the roster changes. Employees holds
// the full, unfiltered roster as of the change.
type Event struct {
	Type       EventType
	EmployeeID string
	Employees  []domain.Employee
	Timestamp  time.Time
}
