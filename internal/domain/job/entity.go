// Package job holds the job-posting entity and the expiry overlay applied on
// every read path.
package job

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusOnHold   Status = "On Hold"
	StatusDraft    Status = "Draft"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusOnHold, StatusDraft:
		return true
	}
	return false
}

var (
	ErrNotFound  = errors.New("job not found")
	ErrSlugTaken = errors.New("job slug already exists")
)

type Job struct {
	ID           uuid.UUID
	Title        string
	Description  string
	DepartmentID *uuid.UUID
	TypeID       *uuid.UUID
	LocationID   *uuid.UUID
	ExpiryDate   *time.Time
	Status       Status
	Slug         string
	Views        int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EffectiveStatus overlays expiry on the stored status: an Active job whose
// expiry has passed reads as Inactive. The stored value is never rewritten.
func EffectiveStatus(stored Status, expiry *time.Time, now time.Time) Status {
	if stored == StatusActive && expiry != nil && expiry.Before(now) {
		return StatusInactive
	}
	return stored
}

func (j Job) Effective(now time.Time) Status {
	return EffectiveStatus(j.Status, j.ExpiryDate, now)
}
