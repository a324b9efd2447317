package calculator

import "github.com/mmynk/tripboard/internal/models"

// Roster is the set of current member names.
type Roster map[string]struct{}

// NewRoster builds a Roster from an ordered member list.
func NewRoster(members []string) Roster {
	r := make(Roster, len(members))
	for _, m := range members {
		r[m] = struct{}{}
	}
	return r
}

// Contains reports whether name is a current member.
func (r Roster) Contains(name string) bool {
	_, ok := r[name]
	return ok
}

// EffectiveSplit returns the members who owe a share of e.
//
// An empty SplitWith means everyone on the current roster. Names that are no
// longer on the roster are dropped, so the result may be empty.
func EffectiveSplit(e models.Expense, members []string, roster Roster) []string {
	candidates := e.SplitWith
	if len(candidates) == 0 {
		candidates = members
	}

	split := make([]string, 0, len(candidates))
	for _, m := range candidates {
		if roster.Contains(m) {
			split = append(split, m)
		}
	}
	return split
}
