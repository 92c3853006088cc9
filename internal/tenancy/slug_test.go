package tenancy

import "testing"

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"alice@smith.law", "alicesmithlaw-firm"},
		{"jan.kowalski@kancelaria.pl", "jankowalskikancelariapl-firm"},
		{"UPPER@CASE.COM", "uppercasecom-firm"},
		{"a+b@c.io", "abcio-firm"},
		{"@", "tenant-firm"},
		{"", "tenant-firm"},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := DeriveSlug(tt.email); got != tt.want {
				t.Errorf("DeriveSlug(%q) = %q, want %q", tt.email, got, tt.want)
			}
		})
	}
}

func TestDeriveName(t *testing.T) {
	if got := DeriveName("alice@smith.law"); got != "alice's Firm" {
		t.Errorf("DeriveName = %q", got)
	}
	if got := DeriveName(""); got != "My Firm" {
		t.Errorf("DeriveName on empty email = %q", got)
	}
}
