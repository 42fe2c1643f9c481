package form

import "testing"

func activeField(name string, typ FieldType, required bool, options string) Field {
	return Field{Name: name, Type: typ, Required: required, Options: options, IsActive: true}
}

func TestValidate_RequiredMissing(t *testing.T) {
	fields := []Field{
		activeField("full_name", FieldText, true, ""),
		activeField("resume", FieldFile, true, ""),
	}

	got := Validate(fields, Submission{})
	if len(got) != 2 {
		t.Fatalf("expected 2 violations, got %d: %v", len(got), got)
	}
	if got[0].Field != "full_name" || got[0].Reason != "is required" {
		t.Fatalf("unexpected first violation: %+v", got[0])
	}
	if got[1].Field != "resume" || got[1].Reason != "upload is required" {
		t.Fatalf("unexpected file violation: %+v", got[1])
	}
}

func TestValidate_OptionalEmptySkipsFormatCheck(t *testing.T) {
	fields := []Field{activeField("linkedin", FieldURL, false, "")}

	if got := Validate(fields, Submission{"linkedin": "  "}); len(got) != 0 {
		t.Fatalf("expected no violations for empty optional, got %v", got)
	}
}

func TestValidate_SelectOptionMembership(t *testing.T) {
	fields := []Field{activeField("gender", FieldSelect, false, "Male,Female,Other")}

	if got := Validate(fields, Submission{"gender": "Female"}); len(got) != 0 {
		t.Fatalf("expected allowed option to pass, got %v", got)
	}
	if got := Validate(fields, Submission{"gender": "Unknown"}); len(got) != 1 {
		t.Fatalf("expected disallowed option violation, got %v", got)
	}
}

func TestValidate_FormatChecks(t *testing.T) {
	fields := []Field{
		activeField("email", FieldEmail, true, ""),
		activeField("dob", FieldDate, false, ""),
		activeField("portfolio", FieldURL, false, ""),
	}

	got := Validate(fields, Submission{
		"email":     "not-an-email",
		"dob":       "31/12/1990",
		"portfolio": "ftp://example.com",
	})
	if len(got) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(got), got)
	}

	got = Validate(fields, Submission{
		"email":     "person@example.com",
		"dob":       "1990-12-31",
		"portfolio": "https://example.com/me",
	})
	if len(got) != 0 {
		t.Fatalf("expected clean submission, got %v", got)
	}
}

func TestValidate_InactiveFieldIgnored(t *testing.T) {
	f := activeField("source", FieldSelect, true, "LinkedIn,Referral")
	f.IsActive = false

	if got := Validate([]Field{f}, Submission{}); len(got) != 0 {
		t.Fatalf("inactive field must not validate, got %v", got)
	}
}
