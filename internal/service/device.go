package service

import (
	"strings"

	"github.com/dtroode/helpdesk-auth/internal/model"
)

const unknownDevice = "Unknown Device"

// DeviceName returns the client-supplied name or derives "Browser on OS"
// from the user agent.
func DeviceName(info model.DeviceInfo) string {
	if name := strings.TrimSpace(info.Name); name != "" {
		return name
	}
	return deviceNameFromUserAgent(info.UserAgent)
}

func deviceNameFromUserAgent(ua string) string {
	if ua == "" {
		return unknownDevice
	}

	browser := "Unknown Browser"
	switch {
	case strings.Contains(ua, "Edg/"), strings.Contains(ua, "Edge"):
		browser = "Edge"
	case strings.Contains(ua, "OPR/"), strings.Contains(ua, "Opera"):
		browser = "Opera"
	case strings.Contains(ua, "Firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "Chrome"), strings.Contains(ua, "CriOS"):
		browser = "Chrome"
	case strings.Contains(ua, "Safari"):
		browser = "Safari"
	}

	platform := "Unknown OS"
	switch {
	case strings.Contains(ua, "Windows"):
		platform = "Windows"
	case strings.Contains(ua, "iPhone"), strings.Contains(ua, "iPad"):
		platform = "iOS"
	case strings.Contains(ua, "Android"):
		platform = "Android"
	case strings.Contains(ua, "Mac"):
		platform = "macOS"
	case strings.Contains(ua, "Linux"):
		platform = "Linux"
	}

	return browser + " on " + platform
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
