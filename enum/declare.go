package enum

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Field is one named value discovered on a container struct.
type Field struct {
	Name  string
	Value any
	index int
}

// Fields lists the exported fields of a pointer to a struct in declaration
// order. The struct tag `enum:"NAME"` renames a field and `enum:"-"` skips it.
// Embedded fields are skipped.
func Fields(container any) ([]Field, error) {
	structVal, err := structOf(container)
	if err != nil {
		return nil, err
	}
	structType := structVal.Type()

	var fields []Field
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() || field.Anonymous {
			continue
		}
		name := field.Name
		if tag := field.Tag.Get("enum"); tag != "" {
			name = strings.Split(tag, ",")[0]
			if name == "-" {
				continue
			}
		}
		fields = append(fields, Field{
			Name:  name,
			Value: structVal.Field(i).Interface(),
			index: i,
		})
	}
	return fields, nil
}

// Declare builds and closes an enumeration from the fields of container, a
// pointer to a struct whose exported fields hold the members. Once closed, the
// finalized members are written back into the struct, so a value-based
// container observes the bound records.
//
//	var Colors = &struct {
//		RED, GREEN, BLUE *Color
//	}{newColor("red"), newColor("green"), newColor("blue")}
//
//	var colorEnum = enum.MustDeclare[*Color](enum.NewKind("Colors"), "Color", Colors)
func Declare[M Constant](kind *Kind, name string, container any, opts ...Option[M]) (*Enum[M], error) {
	fields, err := Fields(container)
	if err != nil {
		return nil, err
	}
	e, err := New[M](kind)
	if err != nil {
		return nil, err
	}
	for _, f := range fields {
		if err := e.Set(f.Name, f.Value); err != nil {
			return nil, err
		}
	}
	if err := e.Initialize(name, opts...); err != nil {
		return nil, err
	}

	structVal, _ := structOf(container)
	for _, f := range fields {
		v, _ := e.Field(f.Name)
		target := structVal.Field(f.index)
		if v == nil || !reflect.TypeOf(v).AssignableTo(target.Type()) {
			continue
		}
		target.Set(reflect.ValueOf(v))
	}
	return e, nil
}

// MustDeclare is like Declare but panics on error.
func MustDeclare[M Constant](kind *Kind, name string, container any, opts ...Option[M]) *Enum[M] {
	e, err := Declare[M](kind, name, container, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

func structOf(container any) (reflect.Value, error) {
	v := reflect.ValueOf(container)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return reflect.Value{}, errors.New("enum: container must be a non-nil pointer to a struct")
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("enum: container must point to a struct, got %s", v.Kind())
	}
	return v, nil
}
