// Package lookup covers the named reference tables jobs point at:
// departments, job types and locations. System rows are seed data and are
// protected from deletion.
package lookup

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindDepartment Kind = "departments"
	KindJobType    Kind = "job_types"
	KindLocation   Kind = "locations"
)

func (k Kind) Valid() bool {
	switch k {
	case KindDepartment, KindJobType, KindLocation:
		return true
	}
	return false
}

var (
	ErrNotFound    = errors.New("lookup entry not found")
	ErrNameTaken   = errors.New("lookup name already exists")
	ErrSystemEntry = errors.New("system lookup entry cannot be deleted")
	ErrInvalidKind = errors.New("invalid lookup kind")
)

type Entry struct {
	ID        uuid.UUID
	Name      string
	IsSystem  bool
	CreatedAt time.Time
}
