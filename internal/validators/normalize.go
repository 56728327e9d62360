package validators

import "strings"

// NormalizeEmail applies the storage form for email addresses:
// lowercased and trimmed.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeSubdomain applies the storage form for website subdomains,
// e.g. "MyRestaurant " => "myrestaurant" (=> myrestaurant.yourdomain.com).
func NormalizeSubdomain(subdomain string) string {
	return strings.ToLower(strings.TrimSpace(subdomain))
}
