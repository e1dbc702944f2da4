// Package extractor turns an inbound login request into the UserContext
// the risk scorer works on.
package extractor

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-authgate/riskgate/internal/core"
	"github.com/go-authgate/riskgate/internal/models"
)

// Headers honoured when the extractor trusts the upstream proxy.
const (
	HeaderClientCountry = "X-Client-Country"
	HeaderClientVPN     = "X-Client-VPN"
)

var _ core.ContextExtractor = (*HeaderExtractor)(nil)

// browserMarkers is checked in order. Chrome UAs also contain "Safari",
// so Chrome must come first.
var browserMarkers = []struct {
	marker  string
	browser string
}{
	{"Chrome", "chrome"},
	{"Firefox", "firefox"},
	{"Safari", "safari"},
}

// HeaderExtractor derives device and browser from the User-Agent. Without
// geo-IP or VPN detection the country is the configured default and VPN is
// false, unless trusted headers override them.
type HeaderExtractor struct {
	defaultCountry string
	trustHeaders   bool
}

func NewHeaderExtractor(defaultCountry string, trustHeaders bool) *HeaderExtractor {
	if defaultCountry == "" {
		defaultCountry = "US"
	}
	return &HeaderExtractor{
		defaultCountry: defaultCountry,
		trustHeaders:   trustHeaders,
	}
}

// Extract builds a fresh UserContext for one attempt. clientIP comes from
// gin's ClientIP, which only honours forwarding headers from trusted proxies.
func (e *HeaderExtractor) Extract(r *http.Request, clientIP, email string) models.UserContext {
	ua := r.UserAgent()

	uc := models.UserContext{
		Email:      email,
		DeviceType: DeviceType(ua),
		Browser:    Browser(ua),
		IPCountry:  e.defaultCountry,
		IsVPN:      false,
		IPAddress:  clientIP,
	}

	if e.trustHeaders {
		if country := strings.TrimSpace(r.Header.Get(HeaderClientCountry)); country != "" {
			uc.IPCountry = strings.ToUpper(country)
		}
		if vpn, err := strconv.ParseBool(r.Header.Get(HeaderClientVPN)); err == nil {
			uc.IsVPN = vpn
		}
	}
	return uc
}

// DeviceType classifies a User-Agent as mobile or desktop.
func DeviceType(ua string) models.DeviceType {
	if strings.Contains(ua, "Mobile") {
		return models.DeviceMobile
	}
	return models.DeviceDesktop
}

// Browser returns chrome, firefox, safari or unknown.
func Browser(ua string) string {
	for _, m := range browserMarkers {
		if strings.Contains(ua, m.marker) {
			return m.browser
		}
	}
	return models.BrowserUnknown
}
