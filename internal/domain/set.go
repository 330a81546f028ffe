package domain

import "slices"

// Membership sets (registrations, likes, interests) are kept as insertion-ordered
// slices. These helpers never modify their input.

func hasID(ids []string, id string) bool {
	return slices.Contains(ids, id)
}

func withID(ids []string, id string) []string {
	out := cloneStrings(ids)
	if hasID(out, id) {
		return out
	}
	return append(out, id)
}

func withoutID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// uniqueStrings drops repeated and empty values, keeping first occurrences.
func uniqueStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || hasID(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}
