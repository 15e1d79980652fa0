// Package keysel implements keyboard driven note selection. Each note may
// carry a single-character binding; pressing that key cycles through the notes
// bound to it, in the order they were loaded, with wraparound.
// Package keysel 实现基于快捷键的笔记选择与循环切换
package keysel

import (
	"strings"
)

// Note is the minimal projection the resolver needs.
type Note struct {
	ID         int64
	Keybinding string
}

// Resolver holds selection state for one loaded note context. The cycle order
// per key is a snapshot taken at Load time; later promotions only affect the
// display order. Not safe for concurrent use.
type Resolver struct {
	display []int64
	cycle   map[string][]int64
	press   map[string]int

	selected     int64
	hasSelection bool
}

func New() *Resolver {
	return &Resolver{
		cycle: map[string][]int64{},
		press: map[string]int{},
	}
}

// Load replaces the note context. notes must already be in display order.
// Cycle counters and the current selection are reset, since a context switch
// invalidates both.
// Load 重建上下文，重置循环计数与当前选中
func (r *Resolver) Load(notes []Note) {
	r.display = make([]int64, 0, len(notes))
	r.cycle = map[string][]int64{}
	r.press = map[string]int{}
	r.selected = 0
	r.hasSelection = false

	for _, n := range notes {
		r.display = append(r.display, n.ID)
		if n.Keybinding == "" {
			continue
		}
		k := strings.ToLower(n.Keybinding)
		r.cycle[k] = append(r.cycle[k], n.ID)
	}
}

// KeyPress resolves one key press. The first press of a key selects the first
// note bound to it; repeated presses walk the binding list and wrap around.
// The hit note moves to the front of the display order. Returns false when no
// note is bound to the key, leaving state untouched.
// KeyPress 处理一次按键，循环选中绑定该键的笔记并置顶
func (r *Resolver) KeyPress(key string) (int64, bool) {
	k := strings.ToLower(key)
	arr := r.cycle[k]
	if len(arr) == 0 {
		return 0, false
	}

	count := r.press[k]
	idx := count % len(arr)
	r.press[k] = count + 1

	id := arr[idx]
	r.selected = id
	r.hasSelection = true
	r.promote(id)
	return id, true
}

// Select marks a note as selected directly, e.g. after creating it.
func (r *Resolver) Select(id int64) {
	r.selected = id
	r.hasSelection = true
}

// ClearSelection drops the current selection without touching cycle state.
func (r *Resolver) ClearSelection() {
	r.selected = 0
	r.hasSelection = false
}

// Selected returns the selected note id, false when nothing is selected.
func (r *Resolver) Selected() (int64, bool) {
	return r.selected, r.hasSelection
}

// Order returns the current display order.
func (r *Resolver) Order() []int64 {
	out := make([]int64, len(r.display))
	copy(out, r.display)
	return out
}

// promote 将命中的笔记移动到展示顺序最前
func (r *Resolver) promote(id int64) {
	for i, v := range r.display {
		if v != id {
			continue
		}
		copy(r.display[1:i+1], r.display[:i])
		r.display[0] = id
		return
	}
}
