package jsonmodel

import (
	"fmt"
	"strconv"
)

// SchemaError reports a missing top-level category or a missing key of an
// entry. Index is -1 for category errors.
type SchemaError struct {
	Category string
	Index    int
	Entry    string
	Field    string
}

func (e *SchemaError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("schema: missing category %q", e.Category)
	}
	loc := e.Category + "[" + strconv.Itoa(e.Index) + "]"
	if e.Entry != "" {
		loc += " (" + e.Entry + ")"
	}
	return fmt.Sprintf("schema: %s: missing field %q", loc, e.Field)
}

type list struct {
	key      string
	optional bool
	entry    *shape
}

// shape lists the keys an entry must carry. Keys are checked for presence
// only; an empty string is a value like any other.
type shape struct {
	keys  []string
	lists []list
}

var (
	fieldShape  = &shape{keys: []string{"fieldname", "fieldtype"}}
	valueShape  = &shape{keys: []string{"name", "value"}}
	paramShape  = &shape{keys: []string{"paramname", "paramtype"}}
	nestedShape = &shape{
		keys:  []string{"fqname"},
		lists: []list{{key: "values", entry: valueShape}},
	}
)

var categories = []struct {
	name  string
	entry *shape
}{
	{"structs", &shape{
		keys: []string{"struct"},
		lists: []list{
			{key: "fields", entry: fieldShape},
			{key: "methods", optional: true, entry: &shape{keys: []string{"methodname_flat", "returntype"}}},
		},
	}},
	{"callback_structs", &shape{
		keys: []string{"struct", "callback_id"},
		lists: []list{
			{key: "fields", entry: fieldShape},
			{key: "enums", optional: true, entry: nestedShape},
		},
	}},
	{"enums", &shape{
		keys:  []string{"enumname"},
		lists: []list{{key: "values", entry: valueShape}},
	}},
	{"interfaces", &shape{
		keys: []string{"classname"},
		lists: []list{
			{key: "methods", entry: &shape{
				keys:  []string{"methodname", "methodname_flat", "returntype"},
				lists: []list{{key: "params", entry: paramShape}},
			}},
			{key: "enums", optional: true, entry: nestedShape},
		},
	}},
	{"typedefs", &shape{keys: []string{"typedef", "type"}}},
	{"consts", &shape{keys: []string{"constname", "consttype", "constval"}}},
}

type checker struct {
	category string
	index    int
	entry    string
	prefix   string
}

func (c checker) missing(field string) error {
	return &SchemaError{
		Category: c.category,
		Index:    c.index,
		Entry:    c.entry,
		Field:    c.prefix + field,
	}
}

// check walks one entry. Values of the wrong JSON type are left for the
// typed decode to report.
func (c checker) check(s *shape, v interface{}) error {
	rec, ok := v.(map[string]interface{})
	if !ok {
		if v == nil && len(s.keys) > 0 {
			return c.missing(s.keys[0])
		}
		return nil
	}
	for _, key := range s.keys {
		if rec[key] == nil {
			return c.missing(key)
		}
	}
	for _, l := range s.lists {
		raw := rec[l.key]
		if raw == nil {
			if l.optional {
				continue
			}
			return c.missing(l.key)
		}
		items, ok := raw.([]interface{})
		if !ok {
			continue
		}
		for n, item := range items {
			sub := c
			sub.prefix += l.key + "[" + strconv.Itoa(n) + "]."
			if err := sub.check(l.entry, item); err != nil {
				return err
			}
		}
	}
	return nil
}

// validate checks that every category is present and every entry carries
// the keys the generator reads. It does not look at the values.
func validate(doc map[string]interface{}) error {
	for _, it := range categories {
		if doc[it.name] == nil {
			return &SchemaError{Category: it.name, Index: -1}
		}
	}
	for _, it := range categories {
		entries, ok := doc[it.name].([]interface{})
		if !ok {
			continue
		}
		for n, entry := range entries {
			c := checker{category: it.name, index: n}
			if rec, ok := entry.(map[string]interface{}); ok {
				c.entry, _ = rec[it.entry.keys[0]].(string)
			}
			if err := c.check(it.entry, entry); err != nil {
				return err
			}
		}
	}
	return nil
}
