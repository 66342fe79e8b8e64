package errors

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxDistance bounds how far a candidate may be from the input to count as
// a suggestion.
const maxDistance = 3

// Suggest returns up to limit candidates closest to name by edit distance,
// nearest first and alphabetical among ties. Matching ignores case; a
// candidate containing name as a substring always qualifies.
func Suggest(name string, candidates []string, limit int) []string {
	if name == "" || limit <= 0 {
		return nil
	}
	needle := strings.ToLower(name)

	type scored struct {
		name string
		dist int
	}
	var matches []scored
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if lc == needle {
			continue
		}
		d := levenshtein.ComputeDistance(needle, lc)
		if strings.Contains(lc, needle) && d > maxDistance {
			d = maxDistance
		}
		if d <= maxDistance {
			matches = append(matches, scored{name: c, dist: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].dist != matches[j].dist {
			return matches[i].dist < matches[j].dist
		}
		return matches[i].name < matches[j].name
	})

	out := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, m.name)
	}
	return out
}
