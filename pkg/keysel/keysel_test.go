package keysel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func loadThree() *Resolver {
	r := New()
	r.Load([]Note{
		{ID: 1, Keybinding: "a"},
		{ID: 2, Keybinding: "a"},
		{ID: 3, Keybinding: "b"},
		{ID: 4},
	})
	return r
}

func TestKeyPressCyclesWithWraparound(t *testing.T) {
	r := loadThree()

	// 依次按下 a 键应在绑定列表中循环
	id, ok := r.KeyPress("a")
	assert.True(t, ok)
	assert.Equal(t, int64(1), id)

	id, _ = r.KeyPress("a")
	assert.Equal(t, int64(2), id)

	// wraparound back to the first binding
	id, _ = r.KeyPress("a")
	assert.Equal(t, int64(1), id)
}

func TestKeyPressUnboundKeyIsNoop(t *testing.T) {
	r := loadThree()
	r.Select(3)

	id, ok := r.KeyPress("z")
	assert.False(t, ok)
	assert.Zero(t, id)

	// selection unchanged
	sel, has := r.Selected()
	assert.True(t, has)
	assert.Equal(t, int64(3), sel)
}

func TestKeyPressIsCaseInsensitive(t *testing.T) {
	r := loadThree()

	id, ok := r.KeyPress("A")
	assert.True(t, ok)
	assert.Equal(t, int64(1), id)
}

func TestKeyPressPromotesHitToFront(t *testing.T) {
	r := loadThree()

	r.KeyPress("b")
	assert.Equal(t, []int64{3, 1, 2, 4}, r.Order())

	// cycle order stays the load-time snapshot even after promotion
	id, _ := r.KeyPress("a")
	assert.Equal(t, int64(1), id)
	assert.Equal(t, []int64{1, 3, 2, 4}, r.Order())
}

func TestLoadResetsCountersAndSelection(t *testing.T) {
	r := loadThree()
	r.KeyPress("a")
	r.KeyPress("a")

	r.Load([]Note{
		{ID: 10, Keybinding: "a"},
		{ID: 11, Keybinding: "a"},
	})

	_, has := r.Selected()
	assert.False(t, has)

	// counter starts over in the new context
	id, _ := r.KeyPress("a")
	assert.Equal(t, int64(10), id)
}

func TestClearSelection(t *testing.T) {
	r := loadThree()
	r.KeyPress("a")

	r.ClearSelection()
	_, has := r.Selected()
	assert.False(t, has)
}

func TestSeparateKeysKeepSeparateCounters(t *testing.T) {
	r := loadThree()

	r.KeyPress("a")
	r.KeyPress("b")

	// a 键的计数不受 b 键影响
	id, _ := r.KeyPress("a")
	assert.Equal(t, int64(2), id)
}
