package jsonmodel

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Load validates and decodes a schema document. Presence of the required
// keys is checked on the raw document so that empty values stay legal.
func Load(r io.Reader) (*Api, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding schema: %w", err)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}
	var api Api
	if err := json.Unmarshal(data, &api); err != nil {
		return nil, fmt.Errorf("decoding schema: %w", err)
	}
	return &api, nil
}

// LoadFile loads the schema at filePath. The Api is named after the file.
func LoadFile(filePath string) (*Api, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	api, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	name := filepath.Base(filePath)
	if pos := strings.LastIndexByte(name, '.'); pos > 0 {
		name = name[:pos]
	}
	api.Name = name
	return api, nil
}
