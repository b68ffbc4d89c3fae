package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// SortDurations orders duration strings for display: any value containing the
// token "day" sorts after all non-day values, and within each group values
// are ordered by their leading integer ("2" < "10" < "1 day" < "3 day").
// The position of values without a leading number is unspecified.
func SortDurations(values []string) []string {
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := isDayDuration(sorted[i]), isDayDuration(sorted[j])
		if di != dj {
			return !di
		}
		ni, oki := leadingNumber(sorted[i])
		nj, okj := leadingNumber(sorted[j])
		if !oki || !okj {
			return false
		}
		return ni < nj
	})
	return sorted
}

func isDayDuration(s string) bool {
	return strings.Contains(strings.ToLower(s), "day")
}

// leadingNumber parses the integer prefix of a duration string.
func leadingNumber(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
