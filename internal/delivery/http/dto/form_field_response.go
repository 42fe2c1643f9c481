package dto

type FormFieldResponse struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Placeholder string   `json:"placeholder,omitempty"`
	Required    bool     `json:"required"`
	Options     []string `json:"options,omitempty"`
	SortOrder   int      `json:"sort_order"`
	IsSystem    bool     `json:"is_system"`
	IsActive    bool     `json:"is_active"`
}
