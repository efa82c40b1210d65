package socialhub

import (
	"strconv"
	"strings"
)

// Platform identifies a supported social network.
type Platform int

const (
	Twitter Platform = iota
	LinkedIn
	Instagram
)

var platformNames = map[Platform]string{
	Twitter:   "twitter",
	LinkedIn:  "linkedin",
	Instagram: "instagram",
}

// Platforms lists every supported platform in display order.
func Platforms() []Platform {
	return []Platform{Twitter, LinkedIn, Instagram}
}

func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return "platform(" + strconv.Itoa(int(p)) + ")"
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	_, ok := platformNames[p]
	return ok
}

// ParsePlatform resolves a case-insensitive platform name.
func ParsePlatform(value string) (Platform, error) {
	normalized := strings.TrimSpace(strings.ToLower(value))
	for p, name := range platformNames {
		if name == normalized {
			return p, nil
		}
	}
	return 0, UnknownPlatformError{Value: value}
}
