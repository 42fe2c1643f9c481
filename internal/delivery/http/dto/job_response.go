package dto

type JobResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Department  string `json:"department"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	ExpiryDate  string `json:"expiry_date,omitempty"`
	Status      string `json:"status"`
	Slug        string `json:"slug"`
	Views       int64  `json:"views"`
	CreatedAt   string `json:"created_at"`
}

// AdminJobResponse additionally exposes the raw stored status so the
// dashboard can distinguish a soft-expired job from an explicitly
// deactivated one.
type AdminJobResponse struct {
	JobResponse
	StoredStatus string `json:"stored_status"`
}

// ExportJobResponse is the denormalized row shape of GET /api/jobs.
type ExportJobResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Type       string `json:"type"`
	Location   string `json:"location"`
	Slug       string `json:"slug"`
	ExpiryDate string `json:"expiry_date,omitempty"`
	CreatedAt  string `json:"created_at"`
}
