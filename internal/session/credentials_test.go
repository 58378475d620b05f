package session

import (
	"testing"

	"notewiki/internal/auth"
)

func TestValidateConfiguredPair(t *testing.T) {
	c := NewCredentials("operator", "hunter2", false)
	tests := []struct {
		user string
		pass string
		want bool
	}{
		{user: "operator", pass: "hunter2", want: true},
		{user: "operator", pass: "wrong", want: false},
		{user: "someone", pass: "hunter2", want: false},
		{user: "", pass: "", want: false},
		{user: "admin", pass: "password", want: false},
	}
	for _, tt := range tests {
		if got := c.Validate(tt.user, tt.pass); got != tt.want {
			t.Fatalf("Validate(%q,%q)=%v want %v", tt.user, tt.pass, got, tt.want)
		}
	}
}

func TestValidateDevFallback(t *testing.T) {
	c := NewCredentials("", "", true)
	if !c.Validate("admin", "password") {
		t.Fatalf("dev fallback pair rejected")
	}
	if c.Validate("admin", "wrong") {
		t.Fatalf("dev fallback accepted wrong password")
	}
}

func TestValidateUnconfiguredProduction(t *testing.T) {
	c := NewCredentials("", "", false)
	if c.Validate("admin", "password") {
		t.Fatalf("unconfigured production credentials accepted the dev pair")
	}
}

func TestValidatePartialConfig(t *testing.T) {
	c := NewCredentials("operator", "", false)
	if c.Validate("operator", "") {
		t.Fatalf("validation passed with empty configured password")
	}
}

func TestValidateHashedPassword(t *testing.T) {
	phc, err := auth.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	c := NewCredentials("operator", phc, false)
	if !c.Validate("operator", "hunter2") {
		t.Fatalf("hashed password rejected the matching plain value")
	}
	if c.Validate("operator", phc) {
		t.Fatalf("hashed password accepted the hash itself")
	}
}
