package jsonmodel

// Api is the decoded steam_api.json document. The categories are kept in
// schema order; nil means the key was absent from the document.
type Api struct {
	Name string `json:"-"`

	Structs         []*Struct         `json:"structs"`
	CallbackStructs []*CallbackStruct `json:"callback_structs"`
	Enums           []*Enum           `json:"enums"`
	Interfaces      []*Interface      `json:"interfaces"`
	Typedefs        []*Typedef        `json:"typedefs"`
	Consts          []*Constant       `json:"consts"`
}
