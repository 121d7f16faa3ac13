// Package cmodel holds the C side of the translation: type/name pairs and
// the rewrite rules that turn schema spellings into C declarators.
package cmodel

import (
	"fmt"
	"regexp"
	"strings"
)

// Shape is the set of surface forms recognised in a TypeName.
type Shape int

const (
	ShapePlain     Shape = 0
	ShapeArray     Shape = 1 << 0
	ShapeFuncPtr   Shape = 1 << 1
	ShapeScoped    Shape = 1 << 2
	ShapeReference Shape = 1 << 3
)

// Rule selects which rewrites a caller wants applied.
type Rule int

const (
	RuleScope     Rule = 1 << 0
	RuleArray     Rule = 1 << 1
	RuleFuncPtr   Rule = 1 << 2
	RuleReference Rule = 1 << 3
)

const (
	ScopeSep     = "::"
	ScopeSepC    = "__"
	FuncPtrMark  = "(*)"
	ReferenceOp  = "&"
	PointerOp    = "*"
	arraySuffix  = ` (\[\d+\])$`
	arrayAnyMark = `\[\d+\]`
)

var (
	arraySuffixRe = regexp.MustCompile(arraySuffix)
	arrayGroupRe  = regexp.MustCompile(arrayAnyMark)
)

type TypeName struct {
	Type string
	Name string
}

func NewTypeName(typ, name string) TypeName {
	return TypeName{Type: typ, Name: name}
}

func (me TypeName) String() string {
	if me.Name == "" {
		return me.Type
	}
	return me.Type + " " + me.Name
}

func (me Shape) Has(s Shape) bool {
	return me&s != 0
}

// Classify inspects the pair once. A pair can carry several shapes.
func Classify(tn TypeName) Shape {
	shape := ShapePlain
	if arraySuffixRe.MatchString(tn.Type) {
		shape |= ShapeArray
	}
	if strings.Contains(tn.Type, FuncPtrMark) {
		shape |= ShapeFuncPtr
	}
	if strings.Contains(tn.Type, ScopeSep) || strings.Contains(tn.Name, ScopeSep) {
		shape |= ShapeScoped
	}
	if strings.Contains(tn.Type, ReferenceOp) {
		shape |= ShapeReference
	}
	return shape
}

// NormalizationError is returned for type spellings the rules cannot
// rewrite faithfully.
type NormalizationError struct {
	TypeName TypeName
	Reason   string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("cannot normalize %q (name %q): %s", e.TypeName.Type, e.TypeName.Name, e.Reason)
}

// Normalize applies the enabled rules in their fixed order: scope, array,
// function pointer, reference. Scope and array touch disjoint characters, so
// running scope first gives the same result as running it after array.
func Normalize(tn TypeName, rules Rule) (TypeName, error) {
	shape := Classify(tn)
	if rules&RuleScope != 0 && shape.Has(ShapeScoped) {
		tn = fixScope(tn)
	}
	if rules&RuleArray != 0 && shape.Has(ShapeArray) {
		var err error
		if tn, err = fixArray(tn); err != nil {
			return tn, err
		}
	}
	if rules&RuleFuncPtr != 0 && shape.Has(ShapeFuncPtr) {
		tn = fixFuncPtr(tn)
	}
	if rules&RuleReference != 0 && shape.Has(ShapeReference) {
		tn = fixReference(tn)
	}
	return tn, nil
}

// SanitizeScope rewrites every "::" to "__".
func SanitizeScope(name string) string {
	return strings.ReplaceAll(name, ScopeSep, ScopeSepC)
}

func fixScope(tn TypeName) TypeName {
	return TypeName{Type: SanitizeScope(tn.Type), Name: SanitizeScope(tn.Name)}
}

// "char [32]" -> "char", "name[32]"
func fixArray(tn TypeName) (TypeName, error) {
	if n := len(arrayGroupRe.FindAllString(tn.Type, -1)); n > 1 {
		return tn, &NormalizationError{tn, fmt.Sprintf("%d array dimensions, only one is supported", n)}
	}
	loc := arraySuffixRe.FindStringSubmatchIndex(tn.Type)
	if loc == nil {
		return tn, nil
	}
	suffix := tn.Type[loc[2]:loc[3]]
	return TypeName{
		Type: strings.TrimRight(tn.Type[:loc[0]], " "),
		Name: tn.Name + suffix,
	}, nil
}

// "void (*)(int)" -> "void (* name)(int)", ""
func fixFuncPtr(tn TypeName) TypeName {
	return TypeName{
		Type: strings.Replace(tn.Type, FuncPtrMark, "(* "+tn.Name+")", 1),
		Name: "",
	}
}

func fixReference(tn TypeName) TypeName {
	return TypeName{
		Type: strings.ReplaceAll(tn.Type, ReferenceOp, PointerOp),
		Name: tn.Name,
	}
}
