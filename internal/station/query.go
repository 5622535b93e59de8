// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package station

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wneessen/hydro/internal/vartype"
)

// Query narrows a list of stations. Name and Water are case-insensitive substrings, an empty
// value matches everything. First limits the result to the first N stations if set.
type Query struct {
	First vartype.VarInt
	Name  string
	Water string
}

// Filter applies q to stations: name first, then water, then the First limit. The input slice
// is not modified.
func Filter(stations []Station, q Query) []Station {
	lower := cases.Lower(language.Und)
	name := lower.String(q.Name)
	water := lower.String(q.Water)

	result := make([]Station, 0, len(stations))
	for _, s := range stations {
		if name != "" && !strings.Contains(lower.String(s.Name), name) {
			continue
		}
		if water != "" && !strings.Contains(lower.String(s.Water), water) {
			continue
		}
		result = append(result, s)
	}

	if q.First.IsSet() {
		first := max(q.First.Value(), 0)
		if first < len(result) {
			result = result[:first]
		}
	}
	return result
}

// Find returns the first station with the given id.
func Find(stations []Station, id uint16) (Station, bool) {
	for _, s := range stations {
		if s.ID == id {
			return s, true
		}
	}
	return Station{}, false
}
