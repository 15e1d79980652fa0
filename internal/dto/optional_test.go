package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDistinguishesAbsentAndNull(t *testing.T) {
	type body struct {
		Keybinding Optional[*string] `json:"keybinding"`
	}

	// 键缺失
	var absent body
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Keybinding.Set)

	// 显式 null
	var null body
	require.NoError(t, json.Unmarshal([]byte(`{"keybinding":null}`), &null))
	assert.True(t, null.Keybinding.Set)
	assert.Nil(t, null.Keybinding.Val)

	// 携带值
	var set body
	require.NoError(t, json.Unmarshal([]byte(`{"keybinding":"k"}`), &set))
	assert.True(t, set.Keybinding.Set)
	require.NotNil(t, set.Keybinding.Val)
	assert.Equal(t, "k", *set.Keybinding.Val)
}

func TestOptionalUnmarshalError(t *testing.T) {
	type body struct {
		OrderKey Optional[float64] `json:"orderKey"`
	}

	var b body
	assert.Error(t, json.Unmarshal([]byte(`{"orderKey":"not-a-number"}`), &b))
}
