package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestDeclare_IdentityMembers(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	kind := NewKind("Direction")
	container := &struct {
		North *testColor
		South *testColor `enum:"SOUTH_POLE"`
		Label string
		Skip  *testColor `enum:"-"`
		east  *testColor
	}{
		North: newTestColor(t, kind, "north", "N"),
		South: newTestColor(t, kind, "south", "S"),
		Label: "compass",
	}

	// --- Act ---
	e, err := Declare[*testColor](NewKind("Directions"), "Direction", container)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, e.Values(), 2)
	assert.Equal(t, "Direction.North", container.North.String())
	assert.Equal(t, "Direction.SOUTH_POLE", container.South.String())
	assert.Equal(t, "compass", container.Label)
	assert.Nil(t, container.Skip)
	assert.Nil(t, container.east)
	assert.Equal(t, []string{"North", "SOUTH_POLE", "Label"}, e.FieldNames())
}

func TestDeclare_WritesBackRecords(t *testing.T) {
	t.Parallel()

	kind := NewKind("Season")
	container := &struct {
		WINTER Record
		SUMMER Record
	}{
		WINTER: MustRecord(kind, "winter", map[string]cty.Value{"cold": cty.True}),
		SUMMER: MustRecord(kind, "summer", map[string]cty.Value{"cold": cty.False}),
	}

	e := MustDeclare[Record](NewKind("Seasons"), "Season", container)

	assert.Equal(t, "WINTER", container.WINTER.PropName())
	assert.Equal(t, "Season.SUMMER", container.SUMMER.String())
	winter, ok := e.ByPropName("WINTER")
	require.True(t, ok)
	assert.True(t, winter.Equals(container.WINTER))
}

func TestDeclare_Errors(t *testing.T) {
	t.Parallel()

	_, err := Declare[*testColor](NewKind("NotPointer"), "NotPointer", struct{}{})
	assert.ErrorContains(t, err, "non-nil pointer")

	n := 3
	_, err = Declare[*testColor](NewKind("NotStruct"), "NotStruct", &n)
	assert.ErrorContains(t, err, "must point to a struct")

	assert.Panics(t, func() {
		kind := NewKind("Twin")
		MustDeclare[*testColor](NewKind("Twins"), "Twin", &struct{ A, B *testColor }{
			A: newTestColor(t, kind, "same", "1"),
			B: newTestColor(t, kind, "same", "2"),
		})
	})
}

func TestDeclare_UnsetFieldIsAnError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	kind := NewKind("Compass")
	container := &struct {
		North *testColor
		West  *testColor
	}{
		North: newTestColor(t, kind, "north", "N"),
	}

	// --- Act ---
	var err error
	require.NotPanics(t, func() {
		_, err = Declare[*testColor](NewKind("Compasses"), "Compass", container)
	})

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), `field "West" is nil`)
	assert.Nil(t, container.West)
}
