package enumhcl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/sealedenum/enum"
	"github.com/zclconf/go-cty/cty"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	kind := enum.NewKind("DecodeSize")
	r := enum.MustRecord(kind, "small", map[string]cty.Value{
		"bytes": cty.NumberIntVal(512),
		"label": cty.StringVal("S"),
	})
	ctx := context.Background()

	var bytes int64
	require.NoError(t, Decode(ctx, r, "bytes", &bytes))
	assert.Equal(t, int64(512), bytes)

	var label string
	require.NoError(t, Decode(ctx, r, "bytes", &label), "numbers convert to strings")
	assert.Equal(t, "512", label)

	var flag bool
	err := Decode(ctx, r, "label", &flag)
	assert.ErrorContains(t, err, "cannot convert")

	assert.ErrorContains(t, Decode(ctx, r, "missing", &label), `no attribute "missing"`)
	assert.ErrorContains(t, Decode(ctx, r, "label", label), "non-nil pointer")
}
