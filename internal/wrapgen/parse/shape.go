package parse

import (
	"errors"
	"go/ast"
	"go/parser"
	"strings"
)

// innerName is the name of the inner field of a tuple-shaped wrapper.
const innerName = "inner"

// parseShape parses the field layout of a wrapper:
//
//	type Name[TypeParams] InnerType
//	type Name[TypeParams] struct {
//		inner InnerType
//		extra ExtraType `wrapgen:"default=EXPR"`
//		...
//	}
func (p *Parser) parseShape(spec *ast.TypeSpec) (Shape, error) {
	st, ok := spec.Type.(*ast.StructType)
	if !ok {
		return Shape{
			Tuple: true,
			Inner: Field{Name: &ast.Ident{NamePos: spec.Type.Pos(), Name: innerName}, Type: spec.Type},
		}, nil
	}

	if st.Fields == nil || len(st.Fields.List) == 0 {
		return Shape{}, p.grammarErrorf(spec.Name, "%s has no inner field", spec.Name.Name)
	}

	var shape Shape
	var errs error
	for i, field := range st.Fields.List {
		if len(field.Names) == 0 {
			errs = errors.Join(errs, p.grammarErrorf(field, "embedded field %c is not supported, name the field", field.Type))
			continue
		}

		tag, def, err := p.parseTag(field)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if i == 0 {
			if len(field.Names) != 1 {
				errs = errors.Join(errs, p.grammarErrorf(field.Names[1], "inner field %s must be declared alone", field.Names[0].Name))
				continue
			}
			if field.Names[0].Name == "_" {
				errs = errors.Join(errs, p.grammarErrorf(field.Names[0], "inner field cannot be blank"))
				continue
			}
			if def != "" {
				errs = errors.Join(errs, p.grammarErrorf(field.Names[0], "inner field %s cannot have a default value", field.Names[0].Name))
				continue
			}
			shape.Inner = Field{
				Name:    field.Names[0],
				Type:    field.Type,
				Tag:     tag,
				Doc:     field.Doc,
				Comment: field.Comment,
			}
			continue
		}

		for _, name := range field.Names {
			if name.Name == "_" && def != "" {
				errs = errors.Join(errs, p.grammarErrorf(name, "blank field cannot have a default value"))
				continue
			}
			shape.Extras = append(shape.Extras, Field{
				Name:       name,
				Type:       field.Type,
				DefaultSrc: def,
				Tag:        tag,
				Doc:        field.Doc,
				Comment:    field.Comment,
			})
		}
	}

	if errs != nil {
		return Shape{}, errs
	}
	return shape, nil
}

// parseTag splits the struct tag of the field into the residual tag and the
// default value expression in the wrapgen key:
//
//	`json:"n" wrapgen:"default=42"` => `json:"n"`, "42"
func (p *Parser) parseTag(field *ast.Field) (string, string, error) {
	if field.Tag == nil {
		return "", "", nil
	}

	pairs, err := ParseStructTag(field.Tag.Value)
	if err != nil {
		return "", "", p.grammarErrorf(field.Tag, "malformed struct tag: %s", err.Error())
	}

	var def string
	var rest []TagPair
	for _, pair := range pairs {
		if pair.Key != BuildTag {
			rest = append(rest, pair)
			continue
		}

		opt, ok := strings.CutPrefix(pair.Value, "default=")
		if !ok {
			return "", "", p.grammarErrorf(field.Tag, "unknown wrapgen tag %q, only default=EXPR is supported", pair.Value)
		}
		opt = strings.TrimSpace(opt)
		if opt == "" {
			return "", "", p.grammarErrorf(field.Tag, "default value is empty")
		}
		if _, err := parser.ParseExpr(opt); err != nil {
			return "", "", p.grammarErrorf(field.Tag, "default value %q is not an expression: %s", opt, err.Error())
		}
		def = opt
	}

	return FormatStructTag(rest), def, nil
}
