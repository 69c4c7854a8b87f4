package hints

import "strings"

// parseAttrs extracts key="value" pairs from a raw marker line. It is the one
// attribute parser shared by every generator that needs marker attributes.
// Anything that does not look like a quoted pair is skipped; duplicate keys
// keep the last value.
func parseAttrs(line string) map[string]string {
	attrs := map[string]string{}

	rest := line
	for {
		eq := strings.Index(rest, `="`)
		if eq < 0 {
			break
		}

		key := trailingIdentifier(rest[:eq])
		valueStart := eq + 2
		end := strings.Index(rest[valueStart:], `"`)
		if end < 0 {
			break
		}

		if key != "" {
			attrs[key] = rest[valueStart : valueStart+end]
		}
		rest = rest[valueStart+end+1:]
	}

	return attrs
}

// trailingIdentifier returns the identifier ending at the end of s, or the
// empty string when s does not end in one.
func trailingIdentifier(s string) string {
	end := len(s)
	start := end
	for start > 0 {
		ch := s[start-1]
		if ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' || ch == '-' || ch == '_' {
			start--
			continue
		}
		break
	}
	return s[start:end]
}
