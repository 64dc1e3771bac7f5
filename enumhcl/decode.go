package enumhcl

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vk/sealedenum/enum"
	"github.com/vk/sealedenum/internal/ctxlog"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Decode binds the attribute attr of r into target, which must be a non-nil
// pointer to a Go value that cty can describe.
func Decode(ctx context.Context, r enum.Record, attr string, target any) error {
	logger := ctxlog.FromContext(ctx)

	val, ok := r.Attr(attr)
	if !ok {
		return fmt.Errorf("%s has no attribute %q", r, attr)
	}

	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() {
		return fmt.Errorf("target for decoding must be a non-nil pointer, got %T", target)
	}

	impliedType, err := gocty.ImpliedType(ptr.Elem().Interface())
	if err != nil {
		logger.Debug("Could not imply cty.Type from Go type, attempting direct decoding.", "go_type", ptr.Elem().Type().String(), "error", err)
		return gocty.FromCtyValue(val, target)
	}

	converted, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s.%s (%s) to %s: %w", r, attr, val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}
	return gocty.FromCtyValue(converted, target)
}
