// Package useragent implements a deliberately small User-Agent classifier:
// browser family and version, OS family and a mobile/desktop hint. The
// device heuristic is the presence of the "Mobile" marker token; tablet is
// never produced.
package useragent

import (
	"strings"

	"reklamito/internal/core/domain"
	"reklamito/internal/core/port"
)

// Parser implements port.AgentParser.
type Parser struct{}

func New() *Parser { return &Parser{} }

// Parse classifies a raw User-Agent string. Unknown families stay empty;
// the device type always resolves to mobile or desktop.
func (Parser) Parse(ua string) port.AgentInfo {
	info := port.AgentInfo{DeviceType: domain.DeviceDesktop}
	if strings.Contains(ua, "Mobile") {
		info.DeviceType = domain.DeviceMobile
	}
	info.BrowserFamily, info.BrowserVersion = browser(ua)
	info.OSFamily, info.OSVersion = operatingSystem(ua)
	return info
}

// browser matching is order-sensitive: Chromium derivatives embed
// "Chrome/", and everything WebKit embeds "Safari/".
func browser(ua string) (family, version string) {
	switch {
	case strings.Contains(ua, "Edg/"):
		return "Edge", versionAfter(ua, "Edg/")
	case strings.Contains(ua, "OPR/"):
		return "Opera", versionAfter(ua, "OPR/")
	case strings.Contains(ua, "Firefox/"):
		return "Firefox", versionAfter(ua, "Firefox/")
	case strings.Contains(ua, "Chrome/"):
		return "Chrome", versionAfter(ua, "Chrome/")
	case strings.Contains(ua, "Safari/") && strings.Contains(ua, "Version/"):
		return "Safari", versionAfter(ua, "Version/")
	default:
		return "", ""
	}
}

func operatingSystem(ua string) (family, version string) {
	switch {
	case strings.Contains(ua, "Windows NT"):
		return "Windows", versionAfter(ua, "Windows NT ")
	case strings.Contains(ua, "Android"):
		return "Android", versionAfter(ua, "Android ")
	case strings.Contains(ua, "iPhone OS"):
		return "iOS", dotted(versionAfter(ua, "iPhone OS "))
	case strings.Contains(ua, "iPad"):
		return "iOS", dotted(versionAfter(ua, "CPU OS "))
	case strings.Contains(ua, "Mac OS X"):
		return "macOS", dotted(versionAfter(ua, "Mac OS X "))
	case strings.Contains(ua, "Linux"):
		return "Linux", ""
	default:
		return "", ""
	}
}

// versionAfter extracts the token following prefix up to the next
// terminator character.
func versionAfter(ua, prefix string) string {
	_, rest, ok := strings.Cut(ua, prefix)
	if !ok {
		return ""
	}
	end := strings.IndexFunc(rest, func(r rune) bool {
		return r == ' ' || r == ';' || r == ')' || r == ','
	})
	if end == -1 {
		return rest
	}
	return rest[:end]
}

// dotted normalises Apple's underscore version notation.
func dotted(v string) string {
	return strings.ReplaceAll(v, "_", ".")
}
