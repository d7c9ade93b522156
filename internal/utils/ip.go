package utils

import "strings"

// NormalizeIP reduces a request source address to a plain IPv4/IPv6 string:
// the first entry of a comma-delimited forwarding chain, with any
// IPv4-mapped IPv6 prefix stripped.
func NormalizeIP(raw string) string {
	ip := strings.TrimSpace(raw)
	if i := strings.Index(ip, ","); i >= 0 {
		ip = strings.TrimSpace(ip[:i])
	}
	if i := strings.Index(ip, "::ffff:"); i >= 0 {
		ip = ip[i+len("::ffff:"):]
	}
	return ip
}

// IsLoopback reports whether the normalized address refers to the local host.
func IsLoopback(ip string) bool {
	return ip == "" || ip == "127.0.0.1" || ip == "::1" || ip == "localhost"
}
