package keysel

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestKeyPressProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("m-th press of a key selects binding (m-1) mod n", prop.ForAll(
		func(n int, presses int) bool {
			notes := make([]Note, n)
			for i := range notes {
				notes[i] = Note{ID: int64(i + 1), Keybinding: "x"}
			}
			r := New()
			r.Load(notes)

			var last int64
			for i := 0; i < presses; i++ {
				id, ok := r.KeyPress("x")
				if !ok {
					return false
				}
				last = id
			}
			want := int64((presses-1)%n) + 1
			return last == want
		},
		gen.IntRange(1, 8),
		gen.IntRange(1, 40),
	))

	properties.Property("display order stays a permutation of loaded ids", prop.ForAll(
		func(n int, keys []string) bool {
			bindings := []string{"a", "b", "c"}
			notes := make([]Note, n)
			for i := range notes {
				notes[i] = Note{ID: int64(i + 1), Keybinding: bindings[i%len(bindings)]}
			}
			r := New()
			r.Load(notes)

			for _, k := range keys {
				r.KeyPress(k)
			}

			seen := map[int64]bool{}
			for _, id := range r.Order() {
				if id < 1 || id > int64(n) || seen[id] {
					return false
				}
				seen[id] = true
			}
			return len(seen) == n
		},
		gen.IntRange(1, 10),
		gen.SliceOf(gen.OneConstOf("a", "b", "c", "z")),
	))

	properties.Property("unbound keys never change selection", prop.ForAll(
		func(presses int) bool {
			r := New()
			r.Load([]Note{{ID: 1, Keybinding: "a"}})
			r.Select(1)

			for i := 0; i < presses; i++ {
				if _, ok := r.KeyPress("q"); ok {
					return false
				}
			}
			sel, has := r.Selected()
			return has && sel == 1
		},
		gen.IntRange(0, 20),
	))

	properties.TestingRun(t)
}
