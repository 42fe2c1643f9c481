package seeder

import (
	"context"
	"fmt"

	"careerhub/internal/database"
)

// FormFieldsSeeder installs the baseline application form. It only runs
// against an empty form_fields table; once an admin has touched the schema
// the seeder never writes again.
type FormFieldsSeeder struct{}

func (FormFieldsSeeder) Name() string { return "form_fields" }

type seedField struct {
	Label       string
	FieldName   string
	Type        string
	Placeholder string
	Required    bool
	Options     string
}

var baselineFormFields = []seedField{
	{Label: "Full Name", FieldName: "full_name", Type: "text", Placeholder: "Your full name", Required: true},
	{Label: "Email", FieldName: "email", Type: "email", Placeholder: "you@example.com", Required: true},
	{Label: "Mobile", FieldName: "mobile", Type: "tel", Placeholder: "Mobile number", Required: true},
	{Label: "National ID", FieldName: "nid", Type: "text"},
	{Label: "Date of Birth", FieldName: "dob", Type: "date"},
	{Label: "Gender", FieldName: "gender", Type: "select", Options: "Male,Female,Other"},
	{Label: "Experience", FieldName: "experience", Type: "select",
		Options: "Fresher,1-2 years,3-5 years,6-10 years,10+ years"},
	{Label: "Education", FieldName: "education", Type: "select",
		Options: "SSC,HSC,Diploma,Bachelors,Masters,PhD"},
	{Label: "How did you hear about us?", FieldName: "source", Type: "select",
		Options: "LinkedIn,Facebook,Job Portal,Referral,Website,Other"},
	{Label: "Career Objective", FieldName: "objective", Type: "textarea"},
	{Label: "Current Salary", FieldName: "current_salary", Type: "text"},
	{Label: "Expected Salary", FieldName: "expected_salary", Type: "text"},
	{Label: "Achievements", FieldName: "achievements", Type: "textarea"},
	{Label: "Message", FieldName: "message", Type: "textarea"},
	{Label: "LinkedIn Profile", FieldName: "linkedin", Type: "url"},
	{Label: "Facebook Profile", FieldName: "facebook", Type: "url"},
	{Label: "Portfolio", FieldName: "portfolio", Type: "url"},
	{Label: "Resume", FieldName: "resume", Type: "file", Required: true},
	{Label: "Photo", FieldName: "photo", Type: "file"},
}

func (FormFieldsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "form_fields",
		"id", "label", "name", "type", "placeholder", "required", "options",
		"sort_order", "is_system", "is_active"); err != nil {
		return err
	}

	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM form_fields`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for i, f := range baselineFormFields {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO form_fields (id, label, name, type, placeholder, required, options, sort_order, is_system, is_active)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, TRUE, TRUE)
			 ON CONFLICT (name) DO NOTHING`,
			f.Label, f.FieldName, f.Type, f.Placeholder, f.Required, f.Options, i+1,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
