package jsonmodel

import (
	"bytes"
	"encoding/json"
)

type Constant struct {
	Name  string  `json:"constname"`
	Type  string  `json:"consttype"`
	Value Literal `json:"constval"`
}

// Literal is a schema value copied verbatim into the output. It accepts a
// JSON number or a JSON string.
type Literal struct {
	Str string
	set bool
}

func NewLiteral(s string) Literal {
	return Literal{Str: s, set: true}
}

func (this *Literal) UnmarshalJSON(p []byte) error {
	p = bytes.TrimSpace(p)
	if bytes.Equal(p, []byte("null")) {
		return nil
	}
	if p[0] == '"' {
		var s string
		if err := json.Unmarshal(p, &s); err != nil {
			return err
		}
		this.Str = s
	} else {
		var n json.Number
		if err := json.Unmarshal(p, &n); err != nil {
			return err
		}
		this.Str = n.String()
	}
	this.set = true
	return nil
}

func (this Literal) IsSet() bool {
	return this.set
}

func (this Literal) String() string {
	return this.Str
}
