package codegen

import (
	"fmt"

	"go-steamapi-gen/cmodel"
	"go-steamapi-gen/jsonmodel"
	"go-steamapi-gen/utils"
)

const fieldRules = cmodel.RuleScope | cmodel.RuleArray | cmodel.RuleFuncPtr

// Parameter names are kept as written; only the type is rewritten.
const paramRules = cmodel.RuleReference

func enumValueLines(values []*jsonmodel.EnumValue) []string {
	lines := make([]string, 0, len(values))
	for _, v := range values {
		lines = append(lines, "\t"+v.Name+" = "+v.Value.String()+",")
	}
	return lines
}

// nestedEnumLines renders a class-scoped enum as an anonymous enum typedef
// named after its sanitized qualified name.
func nestedEnumLines(enums []*jsonmodel.Enum) []string {
	var lines []string
	for _, e := range enums {
		lines = append(lines, "typedef enum {")
		lines = append(lines, enumValueLines(e.Values)...)
		lines = append(lines, "} "+cmodel.SanitizeScope(e.FqName)+";")
	}
	return lines
}

func fieldLines(fields []*jsonmodel.Field) ([]string, error) {
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		tn, err := cmodel.Normalize(cmodel.NewTypeName(f.Type, f.Name), fieldRules)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		lines = append(lines, "\t"+tn.Type+" "+tn.Name+";")
	}
	return lines, nil
}

func (g *Generator) genEnums() ([]string, error) {
	var lines []string
	for _, it := range g.api.Enums {
		g.notice(it.Name)
		lines = append(lines, "enum "+it.Name+" : int {")
		lines = append(lines, enumValueLines(it.Values)...)
		lines = append(lines, "};", "")
	}
	return lines, nil
}

func (g *Generator) skipStruct(name string) bool {
	if g.excludedStructs[name] {
		g.log.Println(" ! SKIPPING " + name)
		return true
	}
	return false
}

func (g *Generator) genStructs() ([]string, error) {
	var lines []string
	for _, it := range g.api.Structs {
		if g.skipStruct(it.Name) {
			continue
		}
		g.notice(it.Name)

		fields, err := fieldLines(it.Fields)
		if err != nil {
			return nil, fmt.Errorf("struct %s: %w", it.Name, err)
		}
		lines = append(lines, "struct "+it.Name+" {")
		lines = append(lines, fields...)
		lines = append(lines, "};")

		methods, err := g.structMethodLines(it)
		if err != nil {
			return nil, fmt.Errorf("struct %s: %w", it.Name, err)
		}
		lines = append(lines, methods...)
		lines = append(lines, "")
	}
	return lines, nil
}

// structMethodLines flattens each method to a free function taking the
// struct by value, the parameter named after the struct with its first
// letter lower-cased.
func (g *Generator) structMethodLines(s *jsonmodel.Struct) ([]string, error) {
	if len(s.Methods) == 0 {
		return nil, nil
	}
	recv, ok := utils.LowerFirst(s.Name)
	if !ok {
		return nil, &cmodel.NormalizationError{
			TypeName: cmodel.NewTypeName(s.Name, s.Name),
			Reason:   "receiver parameter name needs a struct name starting with a letter",
		}
	}
	var lines []string
	for _, m := range s.Methods {
		if g.skipMethod(m) {
			continue
		}
		f := cmodel.Func{
			Name:       m.FlatName,
			ReturnType: m.ReturnType,
			Params:     []cmodel.Param{{Type: s.Name, Name: recv}},
		}
		lines = append(lines, f.String())
	}
	return lines, nil
}

func (g *Generator) genCallbackStructs() ([]string, error) {
	var lines []string
	for _, it := range g.api.CallbackStructs {
		if g.skipStruct(it.Name) {
			continue
		}
		g.log.Printf(" * %s (%s)", it.Name, it.CallbackID)

		fields, err := fieldLines(it.Fields)
		if err != nil {
			return nil, fmt.Errorf("callback struct %s: %w", it.Name, err)
		}
		lines = append(lines,
			"const int "+it.Name+"_CALLBACK_ID = "+it.CallbackID.String()+";",
			"struct "+it.Name+" {")
		lines = append(lines, fields...)
		lines = append(lines, "};")
		lines = append(lines, nestedEnumLines(it.Enums)...)
		lines = append(lines, "")
	}
	return lines, nil
}

func (g *Generator) skipMethod(m *jsonmodel.Method) bool {
	if g.excludedMethods[m.FlatName] {
		g.log.Println("   ! SKIPPING " + methodLabel(m))
		return true
	}
	return false
}

func methodLabel(m *jsonmodel.Method) string {
	if m.Name != "" {
		return m.Name
	}
	return m.FlatName
}

func (g *Generator) genInterfaces() ([]string, error) {
	var lines []string
	for _, it := range g.api.Interfaces {
		g.notice(it.Name)
		lines = append(lines, nestedEnumLines(it.Enums)...)

		for _, m := range it.Methods {
			if g.skipMethod(m) {
				continue
			}
			g.log.Println("   o " + methodLabel(m))

			f := cmodel.Func{Name: m.FlatName, ReturnType: m.ReturnType}
			for _, p := range m.Params {
				typ := cmodel.SanitizeScope(p.Type)
				tn, err := cmodel.Normalize(cmodel.NewTypeName(typ, p.Name), paramRules)
				if err != nil {
					return nil, fmt.Errorf("interface %s: method %s: %w", it.Name, m.FlatName, err)
				}
				f.Params = append(f.Params, cmodel.Param{Type: tn.Type, Name: tn.Name})
			}
			lines = append(lines, f.String())
		}
		lines = append(lines, "")
	}
	return lines, nil
}
