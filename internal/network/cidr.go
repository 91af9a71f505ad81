package network

import (
	"net"
	"regexp"
)

// cidrPattern is a syntactic check only: octets above 255 and prefix
// lengths above 32 still match.
var cidrPattern = regexp.MustCompile(`^(?:[0-9]{1,3}\.){3}[0-9]{1,3}/[0-9]{1,2}$`)

// IsValidCIDR reports whether s has the shape a.b.c.d/n, with one to three
// digits per octet and one or two digits of prefix length.
// A value like "999.999.999.999/99" is accepted.
func IsValidCIDR(s string) bool {
	return cidrPattern.MatchString(s)
}

// IsStrictCIDR reports whether s has the shape accepted by IsValidCIDR and
// also parses as an IPv4 prefix with octets <= 255 and a prefix length <= 32.
func IsStrictCIDR(s string) bool {
	if !IsValidCIDR(s) {
		return false
	}
	ip, _, err := net.ParseCIDR(s)
	if err != nil {
		return false
	}
	return ip.To4() != nil
}
