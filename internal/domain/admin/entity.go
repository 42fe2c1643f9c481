package admin

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleInterview Role = "interview"
)

type Admin struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// MarkingPermission lists the evaluation categories an interview admin may
// score.
type MarkingPermission struct {
	AdminID    uuid.UUID
	Categories []string
}
