package form

import (
	"fmt"
	"strings"
	"time"
)

// Violation names the field that failed and why.
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Submission maps field name to the submitted raw value. For file fields the
// value is the stored upload path; an empty value means no upload was stored.
type Submission map[string]string

// Validate folds the active schema over a submission and collects every
// per-field violation. An empty result means the submission may be persisted;
// any violation must prevent persistence entirely.
func Validate(fields []Field, sub Submission) []Violation {
	var out []Violation

	for _, f := range fields {
		if !f.IsActive {
			continue
		}

		value := strings.TrimSpace(sub[f.Name])

		if value == "" {
			if f.Required {
				reason := "is required"
				if f.Type == FieldFile {
					reason = "upload is required"
				}
				out = append(out, Violation{Field: f.Name, Reason: reason})
			}
			continue
		}

		switch f.Type {
		case FieldSelect, FieldRadio:
			if !containsOption(f.OptionList(), value) {
				out = append(out, Violation{Field: f.Name, Reason: fmt.Sprintf("value %q is not an allowed option", value)})
			}
		case FieldEmail:
			if !looksLikeEmail(value) {
				out = append(out, Violation{Field: f.Name, Reason: "must be a valid email address"})
			}
		case FieldDate:
			if _, err := time.Parse("2006-01-02", value); err != nil {
				out = append(out, Violation{Field: f.Name, Reason: "must be a date in YYYY-MM-DD format"})
			}
		case FieldURL:
			if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
				out = append(out, Violation{Field: f.Name, Reason: "must be an http(s) URL"})
			}
		}
	}

	return out
}

func containsOption(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

func looksLikeEmail(v string) bool {
	at := strings.Index(v, "@")
	if at <= 0 || at == len(v)-1 {
		return false
	}
	if strings.ContainsAny(v, " \t") {
		return false
	}
	return strings.Contains(v[at+1:], ".")
}
