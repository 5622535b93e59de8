// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package favorites

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/wneessen/hydro/internal/station"
)

// ErrInvalidID is returned by ParseIDs for arguments that are not station ids.
var ErrInvalidID = errors.New("invalid station id")

// Set is an unordered set of station ids.
type Set map[uint16]struct{}

// NewSet returns a set holding ids.
func NewSet(ids ...uint16) Set {
	set := make(Set, len(ids))
	set.Add(ids...)
	return set
}

// Add inserts ids into the set.
func (s Set) Add(ids ...uint16) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

// Remove deletes ids from the set. Ids not in the set are ignored.
func (s Set) Remove(ids ...uint16) {
	for _, id := range ids {
		delete(s, id)
	}
}

// Contains reports whether id is in the set.
func (s Set) Contains(id uint16) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set.
func (s Set) Len() int {
	return len(s)
}

// IDs returns the ids in ascending order.
func (s Set) IDs() []uint16 {
	ids := make([]uint16, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Equal reports whether both sets hold the same ids.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

// Filter returns the stations whose id is in the set, in their original order.
func (s Set) Filter(stations []station.Station) []station.Station {
	result := make([]station.Station, 0, len(s))
	for _, st := range stations {
		if s.Contains(st.ID) {
			result = append(result, st)
		}
	}
	return result
}

// ParseIDs parses command line arguments into station ids.
func ParseIDs(args []string) ([]uint16, error) {
	ids := make([]uint16, 0, len(args))
	for _, arg := range args {
		id, err := ParseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseID parses a single station id in the range 0 to 65535.
func ParseID(arg string) (uint16, error) {
	id, err := strconv.ParseUint(arg, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w %q: must be a number between 0 and 65535", ErrInvalidID, arg)
	}
	return uint16(id), nil
}
