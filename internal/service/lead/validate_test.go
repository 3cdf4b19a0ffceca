package lead

import "testing"

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		sub       Submission
		wantField string
	}{
		{
			name:      "missing name",
			sub:       Submission{Email: "john@example.com", Phone: "+91 98765 43210"},
			wantField: "name",
		},
		{
			name:      "whitespace name",
			sub:       Submission{Name: "   ", Email: "john@example.com", Phone: "+91 98765 43210"},
			wantField: "name",
		},
		{
			name:      "missing email",
			sub:       Submission{Name: "John Doe", Phone: "+91 98765 43210"},
			wantField: "email",
		},
		{
			name:      "missing phone",
			sub:       Submission{Name: "John Doe", Email: "john@example.com"},
			wantField: "phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.sub.Validate()
			if len(errs) == 0 {
				t.Fatal("expected validation errors, got none")
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("expected error for field %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestValidate_EmailPattern(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"john@example.com", true},
		{"a@b.c", true},
		{"not-an-email", false},
		{"a@b", false},
		{"@example.com", false},
		{"john@.com", false},
		{"john doe@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			sub := Submission{Name: "John Doe", Email: tt.email, Phone: "+91 98765 43210"}
			_, hasErr := sub.Validate()["email"]
			if tt.valid && hasErr {
				t.Errorf("expected %q to pass, got error", tt.email)
			}
			if !tt.valid && !hasErr {
				t.Errorf("expected %q to fail, got no error", tt.email)
			}
		})
	}
}

func TestValidate_PhonePattern(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+91 98765 43210", true},
		{"9876543210", true},
		{"987-654-3210", true},
		{"98765", false},              // too short
		{"12345678a0", false},         // letter
		{"(987) 654-3210", false},     // parentheses not allowed
		{"+91+98765+43210", false},    // + only allowed at the start
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			sub := Submission{Name: "John Doe", Email: "john@example.com", Phone: tt.phone}
			_, hasErr := sub.Validate()["phone"]
			if tt.valid && hasErr {
				t.Errorf("expected %q to pass, got error", tt.phone)
			}
			if !tt.valid && !hasErr {
				t.Errorf("expected %q to fail, got no error", tt.phone)
			}
		})
	}
}

func TestValidate_ResumeRequiredByKind(t *testing.T) {
	base := Submission{Name: "John Doe", Email: "john@example.com", Phone: "+91 98765 43210"}

	tests := []struct {
		name       string
		kind       Kind
		resume     string
		wantResume bool
	}{
		{"job application without resume", KindJobApplication, "", true},
		{"course enrollment without resume", KindCourseEnrollment, "", true},
		{"job application with resume", KindJobApplication, "https://res.cloudinary.com/x/resume.docx", false},
		{"contact without resume", KindContact, "", false},
		{"project purchase without resume", KindProjectPurchase, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := base
			sub.Kind = tt.kind
			if tt.resume != "" {
				sub.Extras = []Field{{Key: "resume", Value: tt.resume}}
			}
			_, hasErr := sub.Validate()["resume"]
			if hasErr != tt.wantResume {
				t.Errorf("resume error = %v, want %v", hasErr, tt.wantResume)
			}
		})
	}
}

func TestValidate_CleanSubmission(t *testing.T) {
	sub := Submission{
		Kind:  KindContact,
		Name:  "John Doe",
		Email: "john@example.com",
		Phone: "+91 98765 43210",
	}
	if errs := sub.Validate(); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}
