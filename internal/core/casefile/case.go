// Package casefile defines the service-engagement domain model.
package casefile

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a case does not exist.
var ErrNotFound = errors.New("case not found")

// Well-known case status strings. The field is free text upstream, so these
// are display conventions rather than an enum.
const (
	StatusPendingIntake = "pending intake"
	StatusUnassigned    = "unassigned"
	StatusNoShow        = "no-show"
	StatusAssigned      = "assigned"
)

// Case represents one home-care service engagement. Cases are seeded at
// startup and read-only for the lifetime of the process.
type Case struct {
	ID          string `json:"id"` // human-assigned case number, unique
	PatientName string `json:"patient_name"`
	Hospital    string `json:"hospital"` // free-text location or site
	Status      string `json:"status"`
	Time        string `json:"time"`      // display timestamp
	CareType    string `json:"care_type"` // shift-length label, e.g. "full day"
}

// Store defines read access to the case collection.
type Store interface {
	// List returns all cases in seed order.
	List(ctx context.Context) ([]Case, error)

	// Get returns a single case by ID.
	// Returns ErrNotFound if the case does not exist.
	Get(ctx context.Context, id string) (Case, error)
}
