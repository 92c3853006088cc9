package tenancy

import "strings"

// DeriveSlug derives the default tenant slug from the principal's email:
// lowercase, non-alphanumeric characters stripped, suffixed "-firm".
// "alice@smith.law" becomes "alicesmithlaw-firm".
func DeriveSlug(email string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(email) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	slug := b.String()
	if slug == "" {
		slug = "tenant"
	}
	return slug + "-firm"
}

// DeriveName derives the default tenant display name from the email local
// part.
func DeriveName(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		local = email[:at]
	}
	if local == "" {
		return "My Firm"
	}
	return local + "'s Firm"
}
