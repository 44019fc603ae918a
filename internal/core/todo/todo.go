// Package todo defines the to-do item domain model for case tracking.
package todo

import (
	"fmt"
	"time"
)

// Timestamp layouts used across the application. CreatedAt is minute
// precision; DueDate is a bare calendar date.
const (
	TimeLayout = "2006-01-02 15:04"
	DateLayout = "2006-01-02"
)

// Category classifies a to-do item for filtering and display.
type Category string

const (
	CategoryContact Category = "contact"
	CategoryRecord  Category = "record"
	CategoryBilling Category = "billing"
	CategoryInvoice Category = "invoice"
	CategoryCancel  Category = "cancel"
)

// Categories lists all categories in display order.
var Categories = []Category{
	CategoryContact,
	CategoryRecord,
	CategoryBilling,
	CategoryInvoice,
	CategoryCancel,
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryContact, CategoryRecord, CategoryBilling, CategoryInvoice, CategoryCancel:
		return true
	}
	return false
}

// Status represents the lifecycle state of a to-do item.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Item represents a single actionable note or log entry attached to one case.
type Item struct {
	ID          string   `json:"id"`
	CaseID      string   `json:"case_id"` // not referentially enforced; dangling refs degrade to a placeholder
	Content     string   `json:"content"`
	Category    Category `json:"category"`
	Status      Status   `json:"status"`
	CreatedAt   string   `json:"created_at"` // TimeLayout, fixed at creation
	CreatorName string   `json:"creator_name"`
	DueDate     string   `json:"due_date,omitempty"` // DateLayout, optional
}

// CreatedTime parses CreatedAt into a point in time. Items with a malformed
// timestamp sort last rather than failing the render.
func (i Item) CreatedTime() time.Time {
	t, err := time.ParseInLocation(TimeLayout, i.CreatedAt, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// CreatedDate returns the date portion of CreatedAt.
func (i Item) CreatedDate() string {
	if len(i.CreatedAt) < len(DateLayout) {
		return i.CreatedAt
	}
	return i.CreatedAt[:len(DateLayout)]
}

// Completed reports whether the item is done.
func (i Item) Completed() bool {
	return i.Status == StatusCompleted
}

// Validate checks the item's invariants.
func (i Item) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("item has no id")
	}
	if !i.Category.IsValid() {
		return fmt.Errorf("item %s: unknown category %q", i.ID, i.Category)
	}
	if !i.Status.IsValid() {
		return fmt.Errorf("item %s: unknown status %q", i.ID, i.Status)
	}
	if _, err := time.ParseInLocation(TimeLayout, i.CreatedAt, time.Local); err != nil {
		return fmt.Errorf("item %s: bad created_at %q: %w", i.ID, i.CreatedAt, err)
	}
	if i.DueDate != "" {
		if _, err := time.ParseInLocation(DateLayout, i.DueDate, time.Local); err != nil {
			return fmt.Errorf("item %s: bad due_date %q: %w", i.ID, i.DueDate, err)
		}
	}
	return nil
}
