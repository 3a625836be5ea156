package app

import (
	"strconv"
	"strings"
)

// ValidImageURL reports whether s can be used directly as an image source.
// Root-relative paths are accepted; absolute URLs are accepted unless they point
// at a Google Drive folder or drive page, which never serve image bytes.
func ValidImageURL(s string) bool {
	if s == "" {
		return false
	}
	if !isAbsoluteURL(s) {
		return strings.HasPrefix(s, "/")
	}
	if strings.Contains(s, "drive.google.com/drive") || strings.Contains(s, "drive.google.com/folders") {
		return false
	}
	return true
}

// specialSchemes need a non-empty host; file may omit it.
var specialSchemes = map[string]bool{"http": true, "https": true, "ftp": true, "ws": true, "wss": true, "file": true}

// isAbsoluteURL follows WHATWG URL parsing without a base: surrounding C0 controls
// and spaces are ignored, tabs and newlines are dropped, a scheme is required, and
// special schemes other than file need a valid host after any run of slashes.
func isAbsoluteURL(s string) bool {
	s = strings.TrimFunc(s, func(r rune) bool { return r <= 0x20 })
	s = strings.NewReplacer("\t", "", "\n", "", "\r", "").Replace(s)

	i := strings.IndexByte(s, ':')
	if i <= 0 || !validScheme(s[:i]) {
		return false
	}
	scheme := strings.ToLower(s[:i])
	if !specialSchemes[scheme] || scheme == "file" {
		return true
	}

	rest := strings.TrimLeft(s[i+1:], `/\`)
	if end := strings.IndexAny(rest, `/\?#`); end >= 0 {
		rest = rest[:end]
	}
	if at := strings.LastIndexByte(rest, '@'); at >= 0 {
		rest = rest[at+1:]
	}
	return validHostPort(rest)
}

func validScheme(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

func validHostPort(hp string) bool {
	host, port := hp, ""
	if strings.HasPrefix(hp, "[") {
		end := strings.IndexByte(hp, ']')
		if end < 0 {
			return false
		}
		host, port = hp[:end+1], strings.TrimPrefix(hp[end+1:], ":")
		if len(hp) > end+1 && hp[end+1] != ':' {
			return false
		}
	} else if c := strings.LastIndexByte(hp, ':'); c >= 0 {
		host, port = hp[:c], hp[c+1:]
	}
	if host == "" || strings.ContainsAny(host, " <>^|") {
		return false
	}
	if port == "" {
		return true
	}
	if strings.TrimLeft(port, "0123456789") != "" {
		return false
	}
	n, err := strconv.Atoi(port)
	return err == nil && n <= 65535
}
