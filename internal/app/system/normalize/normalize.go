// Package normalize canonicalizes user-supplied identity fields before they
// are validated or stored. Email is the uniqueness key for users, so it must
// be normalized identically everywhere it is read or written.
package normalize

import "strings"

// Email trims whitespace and lowercases. Uniqueness of user emails is
// case-insensitive, so every store lookup and insert goes through this.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role trims whitespace and canonicalizes the three role spellings to their
// stored form. Unrecognized input is returned trimmed, for the caller's
// validation to reject.
func Role(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "volunteer":
		return "Volunteer"
	case "ngo":
		return "NGO"
	case "government":
		return "Government"
	}
	return strings.TrimSpace(s)
}

// StringSlice trims each element and drops empties, preserving order.
// Used for skills, areas of interest, and document URL lists.
func StringSlice(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
