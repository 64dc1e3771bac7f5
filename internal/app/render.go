package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vk/sealedenum/enum"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// render writes one enumeration as a header line followed by one row per
// member: ordinal, qualified name, description and extra attributes as JSON.
func render(w io.Writer, e *enum.Enum[enum.Record]) error {
	fmt.Fprintf(w, "%s (%d members)\n", e, e.Len())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range e.Values() {
		attrs, err := extraJSON(r)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", r, err)
		}
		fmt.Fprintf(tw, "  %d\t%s\t%q\t%s\n", r.Ordinal(), r, r.Description(), attrs)
	}
	return tw.Flush()
}

func extraJSON(r enum.Record) (string, error) {
	names := r.AttrNames()
	if len(names) == 0 {
		return "", nil
	}
	extra := make(map[string]cty.Value, len(names))
	for _, name := range names {
		extra[name], _ = r.Attr(name)
	}
	obj := cty.ObjectVal(extra)
	b, err := ctyjson.Marshal(obj, obj.Type())
	if err != nil {
		return "", err
	}
	return string(b), nil
}
