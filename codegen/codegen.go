// Package codegen renders a steam_api schema as a C declaration file.
//
// Each category has an emitter returning the lines it contributes; Gen runs
// the emitters in the order of Phases and is the only code that writes.
package codegen

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"go-steamapi-gen/config"
	"go-steamapi-gen/jsonmodel"
	"go-steamapi-gen/utils"
)

const DefaultHeaderName = "steam_api.h"

type Generator struct {
	api *jsonmodel.Api
	cfg *config.Config
	log *log.Logger

	excludedStructs map[string]bool
	excludedMethods map[string]bool
}

// New returns a generator for api. A nil cfg means config.Default() and a
// nil logger discards notices.
func New(api *jsonmodel.Api, cfg *config.Config, logger *log.Logger) *Generator {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Generator{
		api:             api,
		cfg:             cfg,
		log:             logger,
		excludedStructs: cfg.ExcludedStructs(),
		excludedMethods: cfg.ExcludedMethods(),
	}
}

// Phase is one step of the emission order. Every phase completes before
// the next one starts.
type Phase struct {
	Name   string
	Notice string
	Gen    func(g *Generator) ([]string, error)
}

// Phases lists the emitters in output order. Forward declarations come
// first so every named type is declared before a body or prototype uses it.
var Phases = []Phase{
	{"struct-declarations", "Generating (callback) struct declarations", (*Generator).genStructDecls},
	{"enum-declarations", "Generating enumeration declarations", (*Generator).genEnumDecls},
	{"interface-declarations", "Generating interface declarations", (*Generator).genInterfaceDecls},
	{"typedefs", "Generating type definitions!", (*Generator).genTypedefs},
	{"constants", "Generating constants!", (*Generator).genConsts},
	{"enums", "Generating enumerations!", (*Generator).genEnums},
	{"structs", "Generating structs!", (*Generator).genStructs},
	{"callback-structs", "Generating callback structs!", (*Generator).genCallbackStructs},
	{"interfaces", "Generating interfaces!", (*Generator).genInterfaces},
}

func (g *Generator) guard() string {
	if g.cfg.Guard != "" {
		return g.cfg.Guard
	}
	return utils.GuardSymbol(DefaultHeaderName)
}

func (g *Generator) genStart() []string {
	var lines []string
	for _, it := range g.cfg.Includes {
		lines = append(lines, "#include <"+it+">")
	}
	guard := g.guard()
	return append(lines, "", "#ifndef "+guard, "#define "+guard, "")
}

// Gen writes the complete declaration file to w. The file ends with
// "#endif" and no trailing newline.
func (g *Generator) Gen(w io.Writer) error {
	if err := writeLines(w, g.genStart()); err != nil {
		return err
	}
	for _, phase := range Phases {
		g.log.Println(phase.Notice)
		lines, err := phase.Gen(g)
		if err != nil {
			return fmt.Errorf("%s: %w", phase.Name, err)
		}
		if err := writeLines(w, lines); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "#endif")
	return err
}

// Generate runs Gen into memory.
func (g *Generator) Generate() ([]byte, error) {
	var buf bytes.Buffer
	if err := g.Gen(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) notice(name string) {
	g.log.Println(" * " + name)
}
