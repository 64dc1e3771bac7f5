package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestNewMember_AssignsOrdinalsPerKind(t *testing.T) {
	t.Parallel()

	fruit := NewKind("Fruit")
	veg := NewKind("Vegetable")

	apple := MustMember(fruit, "apple", nil)
	carrot := MustMember(veg, "carrot", nil)
	pear := MustMember(fruit, "pear", nil)

	assert.Equal(t, 0, apple.Ordinal())
	assert.Equal(t, 0, carrot.Ordinal())
	assert.Equal(t, 1, pear.Ordinal())
	assert.Equal(t, 2, fruit.Count())
	assert.Same(t, fruit, pear.Kind())
}

func TestNewMember_NilKind(t *testing.T) {
	t.Parallel()

	_, err := NewMember(nil, "orphan", nil)
	assert.ErrorContains(t, err, "nil kind")
}

func TestMember_Attributes(t *testing.T) {
	t.Parallel()

	extra := map[string]cty.Value{"sweet": cty.True}
	m := MustMember(NewKind("Berry"), "strawberry", extra)
	extra["sweet"] = cty.False

	sweet, ok := m.Attr("sweet")
	require.True(t, ok)
	assert.True(t, sweet.True(), "extra fields are copied at construction")

	require.NoError(t, m.SetAttr("color", cty.StringVal("red")))
	assert.Equal(t, []string{"color", "sweet"}, m.AttrNames())

	_, ok = m.Attr("missing")
	assert.False(t, ok)
}

func TestMember_StringBeforeAndAfterBind(t *testing.T) {
	t.Parallel()

	m := MustMember(NewKind("Grain"), "wheat", nil)
	assert.Equal(t, "Grain.<unbound #0>", m.String())
	assert.False(t, m.Bound())

	replacement, err := m.bind("WHEAT")
	require.NoError(t, err)
	assert.Nil(t, replacement)
	assert.Equal(t, "Grain.WHEAT", m.String())
	assert.True(t, m.Sealed())

	_, err = m.bind("BARLEY")
	assert.ErrorIs(t, err, ErrFrozen)
	assert.Equal(t, "WHEAT", m.PropName())
}
