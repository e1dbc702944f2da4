package risk

import "github.com/go-authgate/riskgate/internal/models"

// HomeCountry is the country that carries no geography risk.
const HomeCountry = "US"

// Rule is one row of the additive risk table. Evaluate returns the points
// the rule contributes, or zero when the condition does not match.
type Rule interface {
	Name() string
	Description() string
	Evaluate(uc models.UserContext) int
}

// predicateRule adds a fixed score whenever match reports true.
type predicateRule struct {
	name        string
	description string
	score       int
	match       func(models.UserContext) bool
}

func (r predicateRule) Name() string        { return r.name }
func (r predicateRule) Description() string { return r.description }

func (r predicateRule) Evaluate(uc models.UserContext) int {
	if r.match(uc) {
		return r.score
	}
	return 0
}

// MobileDeviceRule scores attempts from mobile devices.
func MobileDeviceRule() Rule {
	return predicateRule{
		name:        "mobile_device",
		description: "Login from a mobile device",
		score:       20,
		match:       models.UserContext.IsMobile,
	}
}

// UnknownBrowserRule scores attempts whose browser could not be identified.
func UnknownBrowserRule() Rule {
	return predicateRule{
		name:        "unknown_browser",
		description: "Browser could not be identified",
		score:       30,
		match:       models.UserContext.HasUnknownBrowser,
	}
}

// ForeignCountryRule scores attempts from outside HomeCountry.
func ForeignCountryRule() Rule {
	return predicateRule{
		name:        "foreign_country",
		description: "Login from outside " + HomeCountry,
		score:       25,
		match: func(uc models.UserContext) bool {
			return uc.IsForeign(HomeCountry)
		},
	}
}

// VPNRule scores attempts flagged as coming through a VPN.
func VPNRule() Rule {
	return predicateRule{
		name:        "vpn",
		description: "Connection through a VPN",
		score:       40,
		match: func(uc models.UserContext) bool {
			return uc.IsVPN
		},
	}
}

// PrivilegedIdentityRule scores emails that look like admin accounts.
func PrivilegedIdentityRule() Rule {
	return predicateRule{
		name:        "privileged_identity",
		description: "Email belongs to a privileged account",
		score:       35,
		match:       models.UserContext.HasPrivilegedIdentity,
	}
}

// DefaultRules returns the standard risk table.
func DefaultRules() []Rule {
	return []Rule{
		MobileDeviceRule(),
		UnknownBrowserRule(),
		ForeignCountryRule(),
		VPNRule(),
		PrivilegedIdentityRule(),
	}
}
