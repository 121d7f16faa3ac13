package jsonmodel

type Param struct {
	Name string `json:"paramname"`
	Type string `json:"paramtype"`
}

type Method struct {
	Name       string   `json:"methodname"`
	FlatName   string   `json:"methodname_flat"`
	ReturnType string   `json:"returntype"`
	Params     []*Param `json:"params"`
}
