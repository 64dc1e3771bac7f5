package enum

import (
	"fmt"
	"maps"
	"slices"

	"github.com/zclconf/go-cty/cty"
)

// Attribute names reserved by Record.
const (
	AttrDescription = "description"
	AttrOrdinal     = "ordinal"
	AttrPropName    = "prop_name"
)

// Record is the value-based member representation. It wraps an immutable cty
// object holding the description, the ordinal, the property name (null until
// closure) and any extra attributes.
//
// Closure does not modify a Record; it derives a new one with the property name
// filled in. Two records are equal when Equals reports so; comparing records
// with == panics because cty objects are not comparable. The zero Record is
// only valid as a placeholder and its accessors panic.
type Record struct {
	kind *Kind
	val  cty.Value
}

// NewRecord constructs a record of kind. It fails with ErrClosed once the kind
// has been closed, and rejects extra attributes that use a reserved name.
func NewRecord(kind *Kind, description string, extra map[string]cty.Value) (Record, error) {
	if err := kind.checkOpen(); err != nil {
		return Record{}, err
	}
	attrs := make(map[string]cty.Value, len(extra)+3)
	for name, v := range extra {
		if isReserved(name) {
			return Record{}, fmt.Errorf("enum: attribute %q is reserved", name)
		}
		attrs[name] = v
	}
	ord, err := kind.next()
	if err != nil {
		return Record{}, err
	}
	attrs[AttrDescription] = cty.StringVal(description)
	attrs[AttrOrdinal] = cty.NumberIntVal(int64(ord))
	attrs[AttrPropName] = cty.NullVal(cty.String)
	return Record{kind: kind, val: cty.ObjectVal(attrs)}, nil
}

// MustRecord is like NewRecord but panics on error.
func MustRecord(kind *Kind, description string, extra map[string]cty.Value) Record {
	r, err := NewRecord(kind, description, extra)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Record) Kind() *Kind { return r.kind }

func (r Record) Description() string {
	return r.val.GetAttr(AttrDescription).AsString()
}

func (r Record) Ordinal() int {
	ord, _ := r.val.GetAttr(AttrOrdinal).AsBigFloat().Int64()
	return int(ord)
}

// PropName returns the bound field name, or "" before closure.
func (r Record) PropName() string {
	pn := r.val.GetAttr(AttrPropName)
	if pn.IsNull() {
		return ""
	}
	return pn.AsString()
}

// Bound reports whether the record carries a property name. Bound records are
// sealed.
func (r Record) Bound() bool {
	return !r.val.GetAttr(AttrPropName).IsNull()
}

// Value returns the underlying cty object.
func (r Record) Value() cty.Value { return r.val }

// Attr returns an extra attribute.
func (r Record) Attr(name string) (cty.Value, bool) {
	if isReserved(name) || !r.val.Type().HasAttribute(name) {
		return cty.NilVal, false
	}
	return r.val.GetAttr(name), true
}

// AttrNames returns the extra attribute names in sorted order.
func (r Record) AttrNames() []string {
	var names []string
	for name := range r.val.Type().AttributeTypes() {
		if !isReserved(name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// With derives a record with one extra attribute replaced or added. Sealed
// records fail with ErrFrozen.
func (r Record) With(name string, v cty.Value) (Record, error) {
	if r.Bound() {
		return Record{}, fmt.Errorf("%w: cannot set %q on %s", ErrFrozen, name, r)
	}
	if isReserved(name) {
		return Record{}, fmt.Errorf("enum: attribute %q is reserved", name)
	}
	return r.merge(name, v), nil
}

// Equals reports structural equality: same kind and identical attributes.
func (r Record) Equals(other Record) bool {
	if r.kind != other.kind {
		return false
	}
	if r.kind == nil {
		return true
	}
	return r.val.RawEquals(other.val)
}

// String returns "Kind.PROP", or "Kind.<unbound #ordinal>" before closure.
func (r Record) String() string {
	if r.kind == nil {
		return "?.<zero>"
	}
	kind := r.kind.name
	if !r.Bound() {
		return fmt.Sprintf("%s.<unbound #%d>", kind, r.Ordinal())
	}
	return kind + "." + r.PropName()
}

func (r Record) bind(propName string) (Constant, error) {
	if r.kind == nil {
		return nil, fmt.Errorf("enum: field %q holds a record that was not built with NewRecord", propName)
	}
	if r.Bound() {
		return nil, fmt.Errorf("%w: %s is already bound", ErrFrozen, r)
	}
	return r.merge(AttrPropName, cty.StringVal(propName)), nil
}

func (r Record) merge(name string, v cty.Value) Record {
	attrs := maps.Clone(r.val.AsValueMap())
	if attrs == nil {
		attrs = make(map[string]cty.Value)
	}
	attrs[name] = v
	return Record{kind: r.kind, val: cty.ObjectVal(attrs)}
}

func isReserved(name string) bool {
	switch name {
	case AttrDescription, AttrOrdinal, AttrPropName:
		return true
	}
	return false
}
