// Package application holds candidate submissions. A row is created once at
// submission time; afterwards only its status changes.
package application

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNew         Status = "New"
	StatusViewed      Status = "Viewed"
	StatusShortlisted Status = "Shortlisted"
	StatusInterview   Status = "Interview"
	StatusSelected    Status = "Selected"
	StatusRejected    Status = "Rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusViewed, StatusShortlisted, StatusInterview, StatusSelected, StatusRejected:
		return true
	}
	return false
}

var ErrNotFound = errors.New("application not found")

type Application struct {
	ID    uuid.UUID
	JobID uuid.UUID

	FullName       string
	NID            string
	DOB            string
	Gender         string
	Mobile         string
	Email          string
	Experience     string
	Education      string
	Source         string
	Objective      string
	CurrentSalary  string
	ExpectedSalary string
	Achievements   string
	Message        string
	LinkedIn       string
	Facebook       string
	Portfolio      string
	ResumePath     string
	PhotoPath      string

	// Custom collects values of admin-defined non-system fields.
	Custom map[string]string

	Status    Status
	CreatedAt time.Time
}

// Assign routes a system-field value onto its fixed column. It returns false
// when name is not a system field, in which case the value belongs in Custom.
func (a *Application) Assign(name, value string) bool {
	switch name {
	case "full_name":
		a.FullName = value
	case "nid":
		a.NID = value
	case "dob":
		a.DOB = value
	case "gender":
		a.Gender = value
	case "mobile":
		a.Mobile = value
	case "email":
		a.Email = value
	case "experience":
		a.Experience = value
	case "education":
		a.Education = value
	case "source":
		a.Source = value
	case "objective":
		a.Objective = value
	case "current_salary":
		a.CurrentSalary = value
	case "expected_salary":
		a.ExpectedSalary = value
	case "achievements":
		a.Achievements = value
	case "message":
		a.Message = value
	case "linkedin":
		a.LinkedIn = value
	case "facebook":
		a.Facebook = value
	case "portfolio":
		a.Portfolio = value
	case "resume":
		a.ResumePath = value
	case "photo":
		a.PhotoPath = value
	default:
		return false
	}
	return true
}
