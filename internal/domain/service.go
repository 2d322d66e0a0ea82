// Package domain defines the core entities and value objects for hostwatch.
//
// The domain layer is independent of infrastructure concerns: no exec, no HTTP,
// no file access. Everything here is a plain value that the application layer
// passes between ports.
package domain

import "strings"

// ServiceStatus is the closed set of states a polled service can be in.
type ServiceStatus string

const (
	StatusActive   ServiceStatus = "active"
	StatusInactive ServiceStatus = "inactive"
	StatusFailed   ServiceStatus = "failed"
	StatusUnknown  ServiceStatus = "unknown"
	StatusError    ServiceStatus = "error"
)

// ParseServiceStatus maps the raw word printed by the service manager to a
// status. Only the exact words are recognised; everything else, including
// empty output, is Unknown. Error is never produced here since it describes a
// failed query rather than a reported state.
func ParseServiceStatus(raw string) ServiceStatus {
	switch strings.TrimSpace(raw) {
	case "active":
		return StatusActive
	case "inactive":
		return StatusInactive
	case "failed":
		return StatusFailed
	default:
		return StatusUnknown
	}
}

// IsActive reports whether no intervention is needed.
func (s ServiceStatus) IsActive() bool {
	return s == StatusActive
}

// DisplayName is the capitalised label used in alert messages.
func (s ServiceStatus) DisplayName() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusInactive:
		return "Inactive"
	case StatusFailed:
		return "Failed"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// HealingOutcome is the result of handing a status to the healing controller.
type HealingOutcome string

const (
	OutcomeNoActionNeeded   HealingOutcome = "no_action_needed"
	OutcomeRestartSucceeded HealingOutcome = "restart_succeeded"
	OutcomeRestartFailed    HealingOutcome = "restart_failed"
)

// RequiresAlert reports whether the outcome must be dispatched to the operator.
func (o HealingOutcome) RequiresAlert() bool {
	return o == OutcomeRestartSucceeded || o == OutcomeRestartFailed
}

// Observation is one poll of one service.
type Observation struct {
	Service string
	Status  ServiceStatus
	// Raw holds the trimmed manager output, or the error text when Status is Error.
	Raw string
}

// ServiceResult records what happened to a single service during a watchdog run.
type ServiceResult struct {
	Service     string
	Status      ServiceStatus
	Outcome     HealingOutcome
	Notified    bool
	NotifyError error
}

// WatchdogReport aggregates the per-service results in configuration order.
type WatchdogReport struct {
	Device  string
	Results []ServiceResult
}

// Restarted counts the services the controller tried to restart.
func (r WatchdogReport) Restarted() int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome.RequiresAlert() {
			n++
		}
	}
	return n
}

// Healed counts the services that came back after a restart.
func (r WatchdogReport) Healed() int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == OutcomeRestartSucceeded {
			n++
		}
	}
	return n
}
