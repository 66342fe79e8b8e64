//go:build property

package watcher

import (
	"sort"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestDebouncerProperties validates batching properties of the debouncer
func TestDebouncerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(9876)
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	// Property: a burst yields one batch holding each distinct path once, sorted
	properties.Property("burst collapses to one sorted batch of distinct paths", prop.ForAll(
		func(paths []string) bool {
			if len(paths) == 0 {
				return true
			}

			d := NewDebouncer(5 * time.Millisecond)
			for _, p := range paths {
				d.Add(ChangeEvent{Type: EventTypeModified, Path: p})
			}

			var batch []ChangeEvent
			select {
			case batch = <-d.Output():
			case <-time.After(time.Second):
				return false
			}

			distinct := map[string]bool{}
			for _, p := range paths {
				distinct[p] = true
			}
			if len(batch) != len(distinct) {
				return false
			}
			got := make([]string, len(batch))
			for i, ev := range batch {
				if !distinct[ev.Path] {
					return false
				}
				got[i] = ev.Path
			}
			return sort.StringsAreSorted(got)
		},
		gen.SliceOfN(12, gen.OneConstOf("a.yml", "b.yml", "c.yml", "d.yaml")),
	))

	// Property: the last event type recorded for a path is the one delivered
	properties.Property("last event per path wins", prop.ForAll(
		func(types []int) bool {
			if len(types) == 0 {
				return true
			}

			d := NewDebouncer(5 * time.Millisecond)
			for _, typ := range types {
				d.Add(ChangeEvent{Type: EventType(typ), Path: "demo.yml"})
			}

			select {
			case batch := <-d.Output():
				return len(batch) == 1 && batch[0].Type == EventType(types[len(types)-1])
			case <-time.After(time.Second):
				return false
			}
		},
		gen.SliceOfN(8, gen.IntRange(0, 3)),
	))

	properties.TestingRun(t)
}
