package enumhcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes the top level of an enumeration file.
type fileRoot struct {
	Enumerations []*enumerationBlock `hcl:"enumeration,block"`
	Remain       hcl.Body            `hcl:",remain"`
}

type enumerationBlock struct {
	Name       string            `hcl:"name,label"`
	Attributes []*attributeBlock `hcl:"attribute,block"`
	Members    []*memberBlock    `hcl:"member,block"`
}

type attributeBlock struct {
	Name    string         `hcl:"name,label"`
	Type    hcl.Expression `hcl:"type,optional"`
	Default hcl.Expression `hcl:"default,optional"`
}

type memberBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}
