package normalize

import (
	"reflect"
	"testing"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user@example.com", "user@example.com"},
		{"USER@EXAMPLE.COM", "user@example.com"},
		{"  User@Example.Com  ", "user@example.com"},
		{"", ""},
		{"   ", ""},
		{"Mixed.Case@Domain.ORG", "mixed.case@domain.org"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Email(tt.input); got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Asha Rao", "Asha Rao"},
		{"  Asha Rao  ", "Asha Rao"},
		{"", ""},
		{"   ", ""},
		{"UPPERCASE NAME", "UPPERCASE NAME"}, // Name preserves case
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Name(tt.input); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRole(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"volunteer", "Volunteer"},
		{"VOLUNTEER", "Volunteer"},
		{" ngo ", "NGO"},
		{"Ngo", "NGO"},
		{"government", "Government"},
		{"Government", "Government"},
		{"admin", "admin"}, // unrecognized passes through for validation
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Role(tt.input); got != tt.want {
				t.Errorf("Role(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStringSlice(t *testing.T) {
	got := StringSlice([]string{" teaching ", "", "first aid", "   "})
	want := []string{"teaching", "first aid"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StringSlice = %v, want %v", got, want)
	}

	if got := StringSlice(nil); len(got) != 0 {
		t.Errorf("StringSlice(nil) = %v, want empty", got)
	}
}
