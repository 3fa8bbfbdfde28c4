package validator_test

import (
	"strings"
	"testing"

	"github.com/GitMovi52027/movi5/shared/failure"
	"github.com/GitMovi52027/movi5/shared/validator"
)

type samplePayload struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Time  string `json:"time" validate:"omitempty,clock"`
}

func TestValidate_Success(t *testing.T) {
	body := strings.NewReader(`{"name":"Movi5","email":"info@movi5.co","time":"08:30"}`)

	payload := samplePayload{}
	if err := validator.Validate(body, &payload); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if payload.Name != "Movi5" {
		t.Errorf("expected name to be decoded, got %q", payload.Name)
	}
}

func TestValidate_InvalidJSON(t *testing.T) {
	body := strings.NewReader(`{"name":`)

	payload := samplePayload{}
	err := validator.Validate(body, &payload)

	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}

	if code := failure.GetCode(err); code != 400 {
		t.Errorf("expected status 400, got %d", code)
	}
}

func TestValidate_RequiredField(t *testing.T) {
	body := strings.NewReader(`{"email":"info@movi5.co"}`)

	payload := samplePayload{}
	err := validator.Validate(body, &payload)

	if err == nil {
		t.Fatal("expected error for missing required field")
	}

	if code := failure.GetCode(err); code != 400 {
		t.Errorf("expected status 400, got %d", code)
	}
}

func TestValidate_ClockTag(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{
			name:    "valid time",
			value:   "04:08",
			wantErr: false,
		},
		{
			name:    "valid late time",
			value:   "23:00",
			wantErr: false,
		},
		{
			name:    "out of range hour",
			value:   "25:00",
			wantErr: true,
		},
		{
			name:    "missing minutes",
			value:   "08",
			wantErr: true,
		},
		{
			name:    "not a time",
			value:   "morning",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.value, "clock")

			if tt.wantErr && err == nil {
				t.Errorf("expected error for %q", tt.value)
			}

			if !tt.wantErr && err != nil {
				t.Errorf("expected no error for %q, got %v", tt.value, err)
			}
		})
	}
}

func TestValidate_WeekdayTag(t *testing.T) {
	for _, valid := range []string{"lunes", "miércoles", "sábado", "domingo"} {
		if err := validator.ValidateVar(valid, "weekday_es"); err != nil {
			t.Errorf("expected %q to be a valid weekday, got %v", valid, err)
		}
	}

	for _, invalid := range []string{"monday", "Lunes", "feriado", ""} {
		if err := validator.ValidateVar(invalid, "weekday_es"); err == nil {
			t.Errorf("expected %q to be rejected", invalid)
		}
	}
}

func TestValidateStruct_EmailFormat(t *testing.T) {
	payload := samplePayload{Name: "Movi5", Email: "not-an-email"}

	err := validator.ValidateStruct(&payload)
	if err == nil {
		t.Fatal("expected error for invalid email")
	}

	if code := failure.GetCode(err); code != 400 {
		t.Errorf("expected status 400, got %d", code)
	}
}
