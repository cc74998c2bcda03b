//go:build go1.23

package horizon

import (
	"errors"
	"iter"
)

// All returns the subscription as a Go 1.23 range-over-func sequence.
// The sequence ends on Done; a terminal error is yielded once with a
// zero resource.
//
//	sub := horizon.Stream(ctx, client, ledgers.All().WithCursor("now"))
//	defer sub.Close()
//
//	for ledger, err := range sub.All() {
//	    if err != nil {
//	        return err
//	    }
//	    process(ledger)
//	}
func (s *Subscription[R]) All() iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for {
			item, err := s.Next()
			if errors.Is(err, Done) {
				return
			}
			if !yield(item, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}
