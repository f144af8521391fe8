package model

import "testing"

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Code: ErrNotFound, Message: "Project 'prj_123' not found"}
	want := "NOT_FOUND: Project 'prj_123' not found"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Post", "building-folio")
	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Message != "Post 'building-folio' not found" {
		t.Errorf("Message = %q, want %q", err.Message, "Post 'building-folio' not found")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("Invalid request",
		FieldError{Field: "title", Message: "required"},
		FieldError{Field: "slug", Message: "must be lowercase"},
	)
	if err.Code != ErrValidation {
		t.Errorf("Code = %q, want %q", err.Code, ErrValidation)
	}
	if len(err.Details) != 2 {
		t.Errorf("Details length = %d, want 2", len(err.Details))
	}
}

func TestAccount_IsAdmin(t *testing.T) {
	tests := []struct {
		role     AccountRole
		expected bool
	}{
		{RoleAdmin, true},
		{RoleSubscriber, false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			a := &Account{Role: tt.role}
			if got := a.IsAdmin(); got != tt.expected {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.expected)
			}
		})
	}
}
