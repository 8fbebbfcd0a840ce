package positions

import (
	"sort"

	"github.com/aristath/options-sentinel/internal/domain"
)

// Group is one leg group heading into classification: all legs share
// one underlying and one opening date.
type Group struct {
	Underlying string
	Legs       []domain.Leg
}

// GroupLegs clusters legs by underlying and open date. Legs without an
// open date join the underlying's unscoped group. The output order is
// deterministic: sorted by underlying, then open date.
func GroupLegs(legs []domain.Leg) []Group {
	type key struct {
		underlying string
		opened     string
	}

	buckets := map[key][]domain.Leg{}
	for _, leg := range legs {
		k := key{underlying: leg.Underlying}
		if leg.OpenDate != nil {
			k.opened = leg.OpenDate.Format("2006-01-02")
		}
		buckets[k] = append(buckets[k], leg)
	}

	keys := make([]key, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].underlying != keys[j].underlying {
			return keys[i].underlying < keys[j].underlying
		}
		return keys[i].opened < keys[j].opened
	})

	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, Group{
			Underlying: k.underlying,
			Legs:       buckets[k],
		})
	}
	return groups
}
