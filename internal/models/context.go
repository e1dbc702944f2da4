package models

import "strings"

// DeviceType is the coarse device class derived from the User-Agent.
type DeviceType string

const (
	DeviceMobile  DeviceType = "mobile"
	DeviceDesktop DeviceType = "desktop"
)

// BrowserUnknown is reported when no known browser marker is present.
const BrowserUnknown = "unknown"

// UserContext describes the circumstances of a single login attempt.
// It is built fresh for every request and never shared between requests.
type UserContext struct {
	Email      string     `json:"email"`
	DeviceType DeviceType `json:"device_type"`
	Browser    string     `json:"browser"`
	IPCountry  string     `json:"ip_country"`
	IsVPN      bool       `json:"is_vpn"`
	IPAddress  string     `json:"ip_address"`
}

// IsMobile reports whether the attempt came from a mobile device.
func (c UserContext) IsMobile() bool {
	return c.DeviceType == DeviceMobile
}

// HasUnknownBrowser reports whether the browser could not be identified.
func (c UserContext) HasUnknownBrowser() bool {
	return c.Browser == BrowserUnknown
}

// IsForeign reports whether the attempt originates outside the home country.
func (c UserContext) IsForeign(home string) bool {
	return c.IPCountry != home
}

// HasPrivilegedIdentity reports whether the email looks like an admin account.
func (c UserContext) HasPrivilegedIdentity() bool {
	return strings.Contains(c.Email, "admin")
}
