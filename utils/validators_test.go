// File: /utils/validators_test.go
package utils

import (
	"testing"
	"time"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last+tag@sub.domain.org"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "not-an-email", "missing@tld", "@example.com"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	if !IsValidPassword("Volunteer1") {
		t.Error("expected mixed-case password with a number to pass")
	}
	if IsValidPassword("short") {
		t.Error("expected short password to fail")
	}
	if IsValidPassword("alllowercase") {
		t.Error("expected single-class password to fail")
	}
}

func TestIsValidZipCode(t *testing.T) {
	for _, zip := range []int{1, 12345, 99999} {
		if !IsValidZipCode(zip) {
			t.Errorf("expected %d to be valid", zip)
		}
	}
	for _, zip := range []int{0, -1, 100000} {
		if IsValidZipCode(zip) {
			t.Errorf("expected %d to be invalid", zip)
		}
	}
}

func TestIsValidEventWindow(t *testing.T) {
	now := time.Now()

	if !IsValidEventWindow(now, now.Add(time.Hour)) {
		t.Error("expected end-after-start window to be valid")
	}
	if IsValidEventWindow(now, now) {
		t.Error("expected zero-length window to be invalid")
	}
	if IsValidEventWindow(now, now.Add(-time.Hour)) {
		t.Error("expected end-before-start window to be invalid")
	}
}
