package enumhcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/sealedenum/enum"
	"github.com/vk/sealedenum/internal/ctxlog"
	"github.com/vk/sealedenum/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Loader reads enumeration declarations from HCL and closes them.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL enumeration loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// attributeDef is a translated attribute block.
type attributeDef struct {
	name     string
	ty       cty.Type
	def      cty.Value
	required bool
}

// Load finds every .hcl file under paths, then closes the enumerations they
// declare in file order. Paths that do not exist are skipped.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*enum.Enum[enum.Record], error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL enumeration loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to discover HCL files: %w", err)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	var out []*enum.Enum[enum.Record]
	for _, file := range files {
		hclFile, diags := l.parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		enums, err := l.decodeFile(ctx, file, hclFile)
		if err != nil {
			return nil, err
		}
		out = append(out, enums...)
	}

	logger.Debug("HCL enumeration loading complete.", "enumerations", len(out))
	return out, nil
}

// LoadSource closes the enumerations declared in src. filename is only used
// in diagnostics.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) ([]*enum.Enum[enum.Record], error) {
	hclFile, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decodeFile(ctx, filename, hclFile)
}

func (l *Loader) decodeFile(ctx context.Context, filename string, file *hcl.File) ([]*enum.Enum[enum.Record], error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	enums := make([]*enum.Enum[enum.Record], 0, len(root.Enumerations))
	for _, block := range root.Enumerations {
		e, err := l.closeEnumeration(ctx, block)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		enums = append(enums, e)
	}
	return enums, nil
}

func (l *Loader) closeEnumeration(ctx context.Context, block *enumerationBlock) (*enum.Enum[enum.Record], error) {
	logger := ctxlog.FromContext(ctx).With("enumeration", block.Name)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Translating enumeration block.", "attributes", len(block.Attributes), "members", len(block.Members))

	defs, err := translateAttributes(ctx, block)
	if err != nil {
		return nil, err
	}

	memberKind := enum.NewKind(block.Name)
	e, err := enum.New[enum.Record](enum.NewKind(block.Name))
	if err != nil {
		return nil, err
	}

	for _, m := range block.Members {
		if _, exists := e.Field(m.Name); exists {
			return nil, fmt.Errorf("enumeration %q: member %q is declared more than once", block.Name, m.Name)
		}
		description, extra, err := memberValues(block.Name, m, defs)
		if err != nil {
			return nil, err
		}
		r, err := enum.NewRecord(memberKind, description, extra)
		if err != nil {
			return nil, fmt.Errorf("enumeration %q: member %q: %w", block.Name, m.Name, err)
		}
		if err := e.Set(m.Name, r); err != nil {
			return nil, err
		}
	}

	if err := e.Initialize(block.Name); err != nil {
		return nil, err
	}
	logger.Debug("Enumeration block closed.", "members", e.Len())
	return e, nil
}

func translateAttributes(ctx context.Context, block *enumerationBlock) (map[string]*attributeDef, error) {
	defs := make(map[string]*attributeDef, len(block.Attributes))
	for _, a := range block.Attributes {
		switch a.Name {
		case enum.AttrDescription, enum.AttrOrdinal, enum.AttrPropName:
			return nil, fmt.Errorf("enumeration %q: attribute name %q is reserved", block.Name, a.Name)
		}
		if _, exists := defs[a.Name]; exists {
			return nil, fmt.Errorf("enumeration %q: attribute %q is declared more than once", block.Name, a.Name)
		}

		ty, err := typeExprToCtyType(ctx, a.Type)
		if err != nil {
			return nil, fmt.Errorf("enumeration %q, attribute %q: %w", block.Name, a.Name, err)
		}
		def := &attributeDef{name: a.Name, ty: ty, required: true}

		if isExprDefined(a.Default) {
			val, diags := a.Default.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("invalid default value for attribute %q in enumeration %q: %w", a.Name, block.Name, diags)
			}
			converted, err := convert.Convert(val, ty)
			if err != nil {
				return nil, fmt.Errorf("default for attribute %q in enumeration %q: cannot convert %s to %s: %w",
					a.Name, block.Name, val.Type().FriendlyName(), ty.FriendlyName(), err)
			}
			def.def = converted
			def.required = false
		}
		defs[a.Name] = def
	}
	return defs, nil
}

// memberValues evaluates a member block against the declared attributes.
func memberValues(enumName string, m *memberBlock, defs map[string]*attributeDef) (string, map[string]cty.Value, error) {
	attrs, diags := m.Body.JustAttributes()
	if diags.HasErrors() {
		return "", nil, fmt.Errorf("enumeration %q, member %q: %w", enumName, m.Name, diags)
	}

	description := m.Name
	extra := make(map[string]cty.Value, len(defs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return "", nil, fmt.Errorf("enumeration %q, member %q, attribute %q: %w", enumName, m.Name, name, diags)
		}

		if name == enum.AttrDescription {
			str, err := convert.Convert(val, cty.String)
			if err != nil || str.IsNull() {
				return "", nil, fmt.Errorf("enumeration %q, member %q: description must be a string", enumName, m.Name)
			}
			description = str.AsString()
			continue
		}

		def, ok := defs[name]
		if !ok {
			return "", nil, fmt.Errorf("enumeration %q, member %q: unsupported attribute %q", enumName, m.Name, name)
		}
		converted, err := convert.Convert(val, def.ty)
		if err != nil {
			return "", nil, fmt.Errorf("enumeration %q, member %q, attribute %q: cannot convert %s to %s: %w",
				enumName, m.Name, name, val.Type().FriendlyName(), def.ty.FriendlyName(), err)
		}
		extra[name] = converted
	}

	for name, def := range defs {
		if _, set := extra[name]; set {
			continue
		}
		if def.required {
			return "", nil, fmt.Errorf("enumeration %q, member %q: missing required attribute %q", enumName, m.Name, name)
		}
		extra[name] = def.def
	}
	return description, extra, nil
}
