package enum

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
)

// Classifier decides whether a field value is a member of the enumeration.
type Classifier func(v any) bool

// Extractor returns the finalized member for a field. It is called once per
// candidate field during closure and its result is stored back into the field.
type Extractor[M Constant] func(e *Enum[M], field string) (M, error)

// Option customizes Initialize.
type Option[M Constant] func(*closure[M])

type closure[M Constant] struct {
	classify Classifier
	extract  Extractor[M]
}

// WithClassifier replaces the default classifier, which accepts any value of
// the member type M.
func WithClassifier[M Constant](c Classifier) Option[M] {
	return func(cl *closure[M]) { cl.classify = c }
}

// WithExtractor replaces the default extractor, which binds the field name to
// the member and seals it.
func WithExtractor[M Constant](x Extractor[M]) Option[M] {
	return func(cl *closure[M]) { cl.extract = x }
}

// Enum is a closed enumeration of members of type M.
//
// An Enum moves through Uninitialized, Initializing and Closed. Fields are
// assigned with Set while initializing; Initialize closes the enumeration
// exactly once. After closure every write fails with ErrFrozen and the
// enumeration Kind rejects new instances.
type Enum[M Constant] struct {
	kind   *Kind
	name   string
	order  []string
	fields map[string]any
	closed bool
}

// New opens an enumeration instance of kind. It fails with ErrClosed when an
// instance of the same kind has already been closed.
func New[M Constant](kind *Kind) (*Enum[M], error) {
	if _, err := kind.next(); err != nil {
		return nil, err
	}
	return &Enum[M]{
		kind:   kind,
		fields: make(map[string]any),
	}, nil
}

// Set assigns a field. Fields keep the position of their first assignment.
// Set fails with ErrFrozen once the enumeration is closed.
func (e *Enum[M]) Set(field string, v any) error {
	if e.closed {
		return fmt.Errorf("%w: cannot assign %s.%s", ErrFrozen, e, field)
	}
	if field == "" {
		return errors.New("enum: field name must not be empty")
	}
	if _, exists := e.fields[field]; !exists {
		e.order = append(e.order, field)
	}
	e.fields[field] = v
	return nil
}

// Field returns the current value of a field.
func (e *Enum[M]) Field(field string) (any, bool) {
	v, ok := e.fields[field]
	return v, ok
}

// FieldNames returns the field names in declaration order.
func (e *Enum[M]) FieldNames() []string {
	return slices.Clone(e.order)
}

// Initialize closes the enumeration under name.
//
// The steps run in a fixed order: the name is checked against the registry,
// candidate fields are discovered with the classifier, each candidate is
// finalized by the extractor and stored back, the member kinds are closed,
// descriptions are checked for uniqueness, and finally the values are
// published and the enumeration is frozen. Nothing is published when any step
// fails. Initialize fails with ErrClosed when another instance of the same
// enumeration kind has already closed.
func (e *Enum[M]) Initialize(name string, opts ...Option[M]) error {
	if e.closed {
		return fmt.Errorf("%w: enumeration %s is already initialized", ErrFrozen, e.name)
	}
	if err := e.kind.checkOpen(); err != nil {
		return err
	}
	if enumerations.has(name) {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	cl := closure[M]{
		classify: isMember[M],
		extract:  bindField[M],
	}
	for _, opt := range opts {
		opt(&cl)
	}

	var candidates []string
	for _, field := range e.order {
		if cl.classify(e.fields[field]) {
			candidates = append(candidates, field)
		}
	}

	values := make([]Constant, 0, len(candidates))
	for _, field := range candidates {
		m, err := e.extractField(cl.extract, name, field)
		if err != nil {
			// Members sealed so far are orphaned; their kinds close with them.
			closeKinds(name, values)
			return fmt.Errorf("enumeration %q: field %s: %w", name, field, err)
		}
		e.fields[field] = m
		values = append(values, m)
	}

	closeKinds(name, values)

	if err := checkDescriptions(name, candidates, values); err != nil {
		return err
	}

	if err := e.kind.claim(name); err != nil {
		return err
	}
	if err := enumerations.publish(name, values); err != nil {
		e.kind.release(name)
		return err
	}
	e.name = name
	e.closed = true

	slog.Debug("Enumeration closed.", "name", name, "kind", e.kind.name, "members", len(values))
	return nil
}

// extractField rejects nil members and members whose kind already belongs to
// another enumeration, then runs the extractor.
func (e *Enum[M]) extractField(extract Extractor[M], name, field string) (M, error) {
	var zero M
	v := e.fields[field]
	if isNilPointer(v) {
		return zero, fmt.Errorf("field %q is nil", field)
	}
	if c, ok := v.(Constant); ok {
		if k := c.Kind(); k != nil && k.Closed() && k.Owner() != name {
			return zero, fmt.Errorf("%w: member kind %s belongs to enumeration %q", ErrClosed, k.name, k.Owner())
		}
	}
	return extract(e, field)
}

func closeKinds(name string, values []Constant) {
	for _, v := range values {
		if k := v.Kind(); k != nil {
			k.close(name)
		}
	}
}

func checkDescriptions(name string, fields []string, values []Constant) error {
	seen := make(map[string]int, len(values))
	for i, v := range values {
		first, dup := seen[v.Description()]
		if !dup {
			seen[v.Description()] = i
			continue
		}
		dupFields := []string{fields[first]}
		for j := first + 1; j < len(values); j++ {
			if values[j].Description() == v.Description() {
				dupFields = append(dupFields, fields[j])
			}
		}
		return &DuplicateDescriptionError{
			Enumeration: name,
			Description: v.Description(),
			Fields:      dupFields,
		}
	}
	return nil
}

// Values returns the members in declaration order. The returned slice is a
// copy; it is empty before Initialize.
func (e *Enum[M]) Values() []M {
	if !e.closed {
		return []M{}
	}
	registered := enumerations.lookup(e.name)
	out := make([]M, 0, len(registered))
	for _, v := range registered {
		out = append(out, v.(M))
	}
	return out
}

// ByPropName returns the first member bound to propName.
func (e *Enum[M]) ByPropName(propName string) (M, bool) {
	for _, v := range e.Values() {
		if v.PropName() == propName {
			return v, true
		}
	}
	var zero M
	return zero, false
}

// ByDescription returns the first member with the given description.
func (e *Enum[M]) ByDescription(description string) (M, bool) {
	for _, v := range e.Values() {
		if v.Description() == description {
			return v, true
		}
	}
	var zero M
	return zero, false
}

// MustGet returns the member bound to propName and panics when there is none.
func (e *Enum[M]) MustGet(propName string) M {
	m, ok := e.ByPropName(propName)
	if !ok {
		panic(fmt.Sprintf("enum: %s has no member %q", e, propName))
	}
	return m
}

// Len returns the number of members.
func (e *Enum[M]) Len() int {
	if !e.closed {
		return 0
	}
	return len(enumerations.lookup(e.name))
}

func (e *Enum[M]) Kind() *Kind { return e.kind }
func (e *Enum[M]) Name() string { return e.name }
func (e *Enum[M]) Closed() bool { return e.closed }

// String returns the enumeration name, or the kind name before closure.
func (e *Enum[M]) String() string {
	if e.name == "" {
		return e.kind.name
	}
	return e.name
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func isMember[M Constant](v any) bool {
	_, ok := v.(M)
	return ok
}

func bindField[M Constant](e *Enum[M], field string) (M, error) {
	var zero M
	if isNilPointer(e.fields[field]) {
		return zero, fmt.Errorf("field %q is nil", field)
	}
	m, ok := e.fields[field].(M)
	if !ok {
		return zero, fmt.Errorf("value of type %T is not a %T", e.fields[field], zero)
	}
	replacement, err := m.bind(field)
	if err != nil {
		return zero, err
	}
	if replacement == nil {
		return m, nil
	}
	finalized, ok := replacement.(M)
	if !ok {
		return zero, fmt.Errorf("finalized value of type %T is not a %T", replacement, zero)
	}
	return finalized, nil
}
