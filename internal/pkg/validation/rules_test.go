package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"a.b+tag@sub.example.co",
		"x_y%z@example.io",
	}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("%q should be valid", email)
		}
	}

	invalid := []string{
		"",
		"alice",
		"alice@",
		"@example.com",
		"alice@example",
		"alice example@example.com",
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("%q should be invalid", email)
		}
	}
}
