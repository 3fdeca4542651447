package securitytxt

import (
	"net/http"
	"strings"
	"time"
)

const pgpHeader = "-----BEGIN PGP SIGNED MESSAGE-----"

// Fields defined by RFC 9116 section 2.5, plus CSAF (RFC 9116 registry).
var knownFields = map[string]struct{}{
	"acknowledgments":     {},
	"canonical":           {},
	"contact":             {},
	"csaf":                {},
	"encryption":          {},
	"expires":             {},
	"hiring":              {},
	"policy":              {},
	"preferred-languages": {},
}

// Fields that must not appear more than once (RFC 9116 section 2.5).
var singletonFields = map[string]struct{}{
	"expires":             {},
	"preferred-languages": {},
}

// Field values that must be web URIs.
var uriFields = map[string]struct{}{
	"acknowledgments": {},
	"canonical":       {},
	"csaf":            {},
	"encryption":      {},
	"hiring":          {},
	"policy":          {},
}

type fieldLine struct {
	name  string // lowercased
	value string
	line  int
}

// validateBody parses a security.txt body and appends policy findings to the
// report. The expiry threshold comparison against min_expiry_days is not done
// here; the caller owns that policy.
func validateBody(body string, report *Report) {
	if strings.TrimSpace(body) == "" {
		report.errorf("empty_file", 0, "security.txt is empty")
		return
	}

	signed := strings.HasPrefix(strings.TrimSpace(body), pgpHeader)
	fields := parseFields(body, report)

	seen := make(map[string]int, len(fields))
	for _, f := range fields {
		seen[f.name]++
		if _, singleton := singletonFields[f.name]; singleton && seen[f.name] == 2 {
			report.errorf("multiple_"+strings.ReplaceAll(f.name, "-", "_"), f.line,
				"%s field must not appear more than once", canonicalFieldName(f.name))
		}
		if _, known := knownFields[f.name]; !known {
			report.notef("unknown_field", f.line, "unknown field %q", f.name)
		}
		checkFieldURI(f, report)
	}

	if seen["contact"] == 0 {
		report.errorf("no_contact", 0, "security.txt must define at least one Contact field")
	}
	if seen["expires"] == 0 {
		report.errorf("no_expires", 0, "security.txt must define an Expires field")
	} else {
		checkExpires(firstField(fields, "expires"), report)
	}
	if seen["canonical"] == 0 {
		report.recommendf("no_canonical", 0, "consider adding a Canonical field pointing at the authoritative URI")
	} else if !signed {
		report.recommendf("not_signed", 0, "file declares a Canonical URI but is not PGP signed")
	}
}

// parseFields splits the body into field lines, skipping comments, blanks,
// and the PGP envelope when present.
func parseFields(body string, report *Report) []fieldLine {
	var fields []fieldLine
	inPGPBlock := false

	for i, raw := range strings.Split(body, "\n") {
		lineNo := i + 1
		line := strings.TrimRight(raw, "\r")

		switch {
		case strings.HasPrefix(line, "-----BEGIN PGP SIGNATURE-----"):
			inPGPBlock = true
			continue
		case strings.HasPrefix(line, "-----END PGP SIGNATURE-----"):
			inPGPBlock = false
			continue
		case inPGPBlock,
			strings.HasPrefix(line, pgpHeader),
			strings.HasPrefix(line, "Hash:"):
			continue
		}

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, value, ok := strings.Cut(line, ":")
		if !ok {
			report.errorf("malformed_line", lineNo, "line is not a field, comment, or blank line")
			continue
		}
		if name != strings.TrimSpace(name) || name == "" {
			report.errorf("malformed_line", lineNo, "field name must not be empty or contain whitespace")
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			report.errorf("empty_value", lineNo, "field %q has an empty value", name)
			continue
		}
		fields = append(fields, fieldLine{name: strings.ToLower(name), value: value, line: lineNo})
	}
	return fields
}

func checkExpires(f fieldLine, report *Report) {
	expires, ok := parseExpires(f.value)
	if !ok {
		report.errorf("invalid_expires", f.line, "Expires value %q is not a valid date-time", f.value)
		return
	}
	report.ExpiresAt = &expires

	now := time.Now().UTC()
	if expires.Before(now) {
		report.errorf("expired", f.line, "security.txt expired on %s", expires.Format(time.RFC3339))
	} else if expires.After(now.AddDate(1, 0, 0)) {
		report.recommendf("long_expiry", f.line, "Expires is more than a year in the future")
	}
}

// parseExpires accepts the RFC 3339 format mandated by RFC 9116 plus the
// HTTP-date formats seen in the wild.
func parseExpires(value string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), true
	}
	if t, err := http.ParseTime(value); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

func checkFieldURI(f fieldLine, report *Report) {
	if strings.HasPrefix(f.value, "http://") {
		report.recommendf("insecure_uri", f.line, "%s uses http://, prefer https://", canonicalFieldName(f.name))
		return
	}
	if _, ok := uriFields[f.name]; ok && !strings.HasPrefix(f.value, "https://") {
		report.errorf("invalid_uri", f.line, "%s value must be an https:// URI", canonicalFieldName(f.name))
	}
	if f.name == "contact" && !strings.Contains(f.value, ":") {
		report.errorf("invalid_uri", f.line, "Contact value must be a URI (e.g. mailto: or https://)")
	}
}

func firstField(fields []fieldLine, name string) fieldLine {
	for _, f := range fields {
		if f.name == name {
			return f
		}
	}
	return fieldLine{}
}

func canonicalFieldName(name string) string {
	parts := strings.Split(name, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "-")
}
