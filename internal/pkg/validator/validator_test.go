package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", "not-a-date", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	invalid := []string{"24:00", "9:61", "0930", "morning", ""}
	for _, s := range valid {
		if _, ok := IsValidTimeOfDay(s); !ok {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidTimeOfDay(s); ok {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsValidLatitudeLongitude(t *testing.T) {
	if !IsValidLatitude(10.762622) || !IsValidLatitude(-90) || !IsValidLatitude(90) {
		t.Error("expected valid latitudes to pass")
	}
	if IsValidLatitude(90.0001) || IsValidLatitude(-91) {
		t.Error("expected out-of-range latitudes to fail")
	}
	if !IsValidLongitude(106.660172) || !IsValidLongitude(-180) || !IsValidLongitude(180) {
		t.Error("expected valid longitudes to pass")
	}
	if IsValidLongitude(180.5) || IsValidLongitude(-181) {
		t.Error("expected out-of-range longitudes to fail")
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"0912345678", "84912345678", "+84912345678", "091 234 5678"}
	invalid := []string{"12345", "abcdefghij", "1912345678", ""}
	for _, s := range valid {
		if !IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", s)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "a valid email is required"},
		{Field: "password", Message: "password is required"},
	}

	if errs.Error() != "email: a valid email is required; password: password is required" {
		t.Errorf("unexpected Error() output: %q", errs.Error())
	}

	m := errs.ToMap()
	if len(m) != 2 || m["email"] != "a valid email is required" {
		t.Errorf("unexpected ToMap() output: %v", m)
	}
}
