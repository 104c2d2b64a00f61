package reminder

import (
	"github.com/QuangTung97/club-reminder/model"
	"sort"
)

type userSet map[string]struct{}

func (s userSet) add(userID string) {
	if userID == "" {
		return
	}
	s[userID] = struct{}{}
}

func (s userSet) sorted() []string {
	result := make([]string, 0, len(s))
	for id := range s {
		result = append(result, id)
	}
	sort.Strings(result)
	return result
}

// buildRecipients returns, for every event id, the creator plus the users whose RSVP is going
func buildRecipients(events []model.Event, rsvps []model.RSVP) map[string][]string {
	sets := make(map[string]userSet, len(events))
	for _, e := range events {
		set := userSet{}
		if e.CreatedBy.Valid {
			set.add(e.CreatedBy.String)
		}
		sets[e.ID] = set
	}

	for _, r := range rsvps {
		set, ok := sets[r.EventID]
		if !ok {
			continue
		}
		if !r.IsGoing() {
			continue
		}
		set.add(r.UserID)
	}

	result := make(map[string][]string, len(sets))
	for id, set := range sets {
		result[id] = set.sorted()
	}
	return result
}
