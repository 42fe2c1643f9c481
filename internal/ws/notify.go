package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

type ApplicationReceivedEvent struct {
	Type          string `json:"type"`
	JobSlug       string `json:"job_slug"`
	JobTitle      string `json:"job_title"`
	ApplicantName string `json:"applicant_name"`
	Timestamp     string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyApplicationReceived broadcasts a new-submission event to connected
// admin dashboards. Without a hub it is a no-op.
func NotifyApplicationReceived(jobSlug, jobTitle, applicantName string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := ApplicationReceivedEvent{
		Type:          "application_received",
		JobSlug:       jobSlug,
		JobTitle:      jobTitle,
		ApplicantName: applicantName,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
