package hook

import (
	"slices"
	"strings"

	"github.com/lerenn/tapline/pkg/logger"
)

// registry owns the ordered taps of one hook.
type registry struct {
	taps   []*Tap
	logger logger.Logger
}

// insert places tap so that every tap named in tap.Before that is already
// registered ends up after it, and unconstrained taps stay sorted by stage
// with ties kept in registration order.
//
// The scan walks backward from the end. While Before names are pending the
// new tap keeps moving toward the front; once they are all passed it only
// moves past taps with a strictly greater stage. A Before name that is never
// found leaves the tap at the front of the sequence.
func (r *registry) insert(tap *Tap) {
	var pending map[string]struct{}
	if tap.Before != nil {
		pending = make(map[string]struct{}, len(tap.Before))
		for _, name := range tap.Before {
			pending[name] = struct{}{}
		}
	}

	i := len(r.taps)
	r.taps = append(r.taps, nil)
	for i > 0 {
		i--
		current := r.taps[i]
		r.taps[i+1] = current

		if pending != nil {
			if _, ok := pending[current.Name]; ok {
				delete(pending, current.Name)
				continue
			}
			if len(pending) > 0 {
				continue
			}
		}

		if current.Stage > tap.Stage {
			continue
		}
		i++
		break
	}
	r.taps[i] = tap

	if len(pending) > 0 {
		missing := make([]string, 0, len(pending))
		for name := range pending {
			missing = append(missing, name)
		}
		slices.Sort(missing)
		r.logger.Logf("tap %q: before targets not registered (%s), placed first",
			tap.Name, strings.Join(missing, ", "))
	}
}

// snapshot returns deep copies of the registered taps in order.
func (r *registry) snapshot() []*Tap {
	taps := make([]*Tap, len(r.taps))
	for i, t := range r.taps {
		taps[i] = t.clone()
	}
	return taps
}
