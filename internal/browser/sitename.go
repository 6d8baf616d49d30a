package browser

import (
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// SiteName derives a short label for a URL, e.g. "golang" for
// "https://www.golang.org/doc". It drops the scheme, a leading "www." and
// the public suffix. Hosts without a registrable domain (IPs, localhost)
// are returned as-is; unparseable input is returned unchanged.
func SiteName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return rawURL
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if net.ParseIP(host) != nil {
		return host
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		label, _, _ := strings.Cut(host, ".")
		return label
	}

	suffix, _ := publicsuffix.PublicSuffix(domain)
	name := strings.TrimSuffix(domain, "."+suffix)
	if name == "" {
		return host
	}
	return name
}
