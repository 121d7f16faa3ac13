package codegen

import (
	"fmt"
	"strings"

	"go-steamapi-gen/cmodel"
)

// checkName rejects an entry name that still carries a C++ scope. Top-level
// names have no rule rewriting them, so "A::B" would reach the header as is.
func checkName(kind, name string) error {
	if strings.Contains(name, cmodel.ScopeSep) {
		return &cmodel.NormalizationError{
			TypeName: cmodel.NewTypeName(name, name),
			Reason:   kind + " name is scoped and has no C spelling",
		}
	}
	return nil
}

func structDecl(name string) string {
	return "typedef struct " + name + " " + name + ";"
}

func (g *Generator) genStructDecls() ([]string, error) {
	var names []string
	for _, it := range g.api.CallbackStructs {
		names = append(names, it.Name)
	}
	for _, it := range g.api.Structs {
		names = append(names, it.Name)
	}

	var lines []string
	for _, name := range names {
		if err := checkName("struct", name); err != nil {
			return nil, err
		}
		g.notice(name)
		lines = append(lines, structDecl(name))
	}
	for _, it := range g.cfg.OpaqueTypes {
		if err := checkName("opaque type", it); err != nil {
			return nil, err
		}
		lines = append(lines, structDecl(it))
	}
	return append(lines, ""), nil
}

func (g *Generator) genEnumDecls() ([]string, error) {
	var lines []string
	for _, it := range g.api.Enums {
		if err := checkName("enum", it.Name); err != nil {
			return nil, err
		}
		g.notice(it.Name)
		lines = append(lines,
			"enum "+it.Name+" : int;",
			"typedef enum "+it.Name+" "+it.Name+";",
			"")
	}
	return lines, nil
}

func (g *Generator) genInterfaceDecls() ([]string, error) {
	var lines []string
	for _, it := range g.api.Interfaces {
		if err := checkName("interface", it.Name); err != nil {
			return nil, err
		}
		g.notice(it.Name)
		lines = append(lines, structDecl(it.Name))
	}
	return append(lines, ""), nil
}

func typedefLine(typ, name string) (string, error) {
	tn, err := cmodel.Normalize(cmodel.NewTypeName(typ, name), cmodel.RuleArray|cmodel.RuleFuncPtr)
	if err != nil {
		return "", err
	}
	return "typedef " + tn.Type + " " + tn.Name + ";", nil
}

// genTypedefs emits the schema typedefs followed by the configured aliases.
// No blank line follows the section.
func (g *Generator) genTypedefs() ([]string, error) {
	var lines []string
	for _, it := range g.api.Typedefs {
		if err := checkName("typedef", it.Name); err != nil {
			return nil, err
		}
		g.notice(it.Name)
		line, err := typedefLine(it.Type, it.Name)
		if err != nil {
			return nil, fmt.Errorf("typedef %s: %w", it.Name, err)
		}
		lines = append(lines, line)
	}
	for _, it := range g.cfg.Aliases {
		if it.Decl != "" {
			lines = append(lines, it.Decl)
			continue
		}
		line, err := typedefLine(it.Type, it.Name)
		if err != nil {
			return nil, fmt.Errorf("alias %s: %w", it.Name, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (g *Generator) genConsts() ([]string, error) {
	var lines []string
	for _, it := range g.api.Consts {
		if err := checkName("const", it.Name); err != nil {
			return nil, err
		}
		g.notice(it.Name)
		tn, err := cmodel.Normalize(cmodel.NewTypeName(it.Type, it.Name), cmodel.RuleArray)
		if err != nil {
			return nil, fmt.Errorf("const %s: %w", it.Name, err)
		}
		lines = append(lines, "const "+tn.Type+" "+tn.Name+" = "+it.Value.String()+";")
	}
	return append(lines, ""), nil
}
