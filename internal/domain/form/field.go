// Package form holds the admin-configurable application-form schema: a
// closed set of field kinds, each record carrying its own constraint
// payload, consumed both for rendering and for validating submissions.
package form

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldTel      FieldType = "tel"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldRadio    FieldType = "radio"
	FieldTextarea FieldType = "textarea"
	FieldFile     FieldType = "file"
	FieldURL      FieldType = "url"
)

var fieldTypes = map[FieldType]struct{}{
	FieldText:     {},
	FieldEmail:    {},
	FieldTel:      {},
	FieldDate:     {},
	FieldSelect:   {},
	FieldRadio:    {},
	FieldTextarea: {},
	FieldFile:     {},
	FieldURL:      {},
}

func (t FieldType) Valid() bool {
	_, ok := fieldTypes[t]
	return ok
}

// HasOptions reports whether the type constrains values to an options list.
func (t FieldType) HasOptions() bool {
	return t == FieldSelect || t == FieldRadio
}

var (
	ErrNotFound    = errors.New("form field not found")
	ErrNameTaken   = errors.New("form field name already exists")
	ErrSystemField = errors.New("system form field cannot be deleted")
)

// Field is one entry of the application-form schema. Name is the globally
// unique submission key; system fields map onto fixed application columns
// and are protected from deletion. SortOrder drives display sequence and is
// not guaranteed contiguous.
type Field struct {
	ID          uuid.UUID
	Label       string
	Name        string
	Type        FieldType
	Placeholder string
	Required    bool
	Options     string
	SortOrder   int
	IsSystem    bool
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OptionList splits the comma-separated options, trimming whitespace and
// dropping empties.
func (f Field) OptionList() []string {
	if strings.TrimSpace(f.Options) == "" {
		return nil
	}
	parts := strings.Split(f.Options, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
