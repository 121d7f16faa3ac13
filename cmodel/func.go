package cmodel

import "strings"

type Param struct {
	Type string
	Name string
}

// Func is a free-function prototype standing in for a C++ member call.
type Func struct {
	Name       string
	ReturnType string
	Params     []Param
}

func (me Func) String() string {
	var sb strings.Builder
	sb.WriteString(me.ReturnType)
	sb.WriteString(" ")
	sb.WriteString(me.Name)
	sb.WriteString("(")
	for n, p := range me.Params {
		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Type)
		sb.WriteString(" ")
		sb.WriteString(p.Name)
	}
	sb.WriteString(");")
	return sb.String()
}
