package jsonmodel

type Field struct {
	Name string `json:"fieldname"`
	Type string `json:"fieldtype"`
}

type EnumValue struct {
	Name  string  `json:"name"`
	Value Literal `json:"value"`
}

type Enum struct {
	Name   string       `json:"enumname"`
	FqName string       `json:"fqname"`
	Values []*EnumValue `json:"values"`
}

type Struct struct {
	Name    string    `json:"struct"`
	Fields  []*Field  `json:"fields"`
	Methods []*Method `json:"methods"`
}

type CallbackStruct struct {
	Name       string   `json:"struct"`
	CallbackID Literal  `json:"callback_id"`
	Fields     []*Field `json:"fields"`
	Enums      []*Enum  `json:"enums"`
}

// Interface is an opaque handle type; its methods become free functions.
type Interface struct {
	Name    string    `json:"classname"`
	Methods []*Method `json:"methods"`
	Enums   []*Enum   `json:"enums"`
}

type Typedef struct {
	Name string `json:"typedef"`
	Type string `json:"type"`
}
