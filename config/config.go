// Package config holds the data the generator needs beyond the schema:
// entries known to be unrepresentable in C and the declarations that the
// schema does not carry.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Alias is a hand-written typedef. Type may carry an unnamed "(*)"
// declarator; Name is spliced into it the same way as for schema typedefs.
// A non-empty Decl is written out as is instead.
type Alias struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`
	Decl string `yaml:"decl"`
}

type Exclude struct {
	Structs []string `yaml:"structs"`
	Methods []string `yaml:"methods"`
}

type Config struct {
	Guard       string   `yaml:"guard"`
	Includes    []string `yaml:"includes"`
	Exclude     Exclude  `yaml:"exclude"`
	OpaqueTypes []string `yaml:"opaque_types"`
	Aliases     []Alias  `yaml:"aliases"`
}

// Default returns the built-in configuration for steam_api.json. Guard is
// left empty so the caller can derive it from the output file name.
func Default() *Config {
	return &Config{
		Includes: []string{"stdint.h", "stddef.h", "stdbool.h"},
		Exclude: Exclude{
			// field types reference SteamInputActionEvent_t::AnalogAction_t,
			// a nested C++ type with no C spelling
			Structs: []string{"SteamInputActionEvent_t"},
			// depend on the custom signaling interfaces
			Methods: []string{
				"SteamAPI_ISteamNetworkingSockets_ConnectP2PCustomSignaling",
				"SteamAPI_ISteamNetworkingSockets_ReceivedP2PCustomSignal",
			},
		},
		OpaqueTypes: []string{
			"SteamDatagramRelayAuthTicket",
			"ScePadTriggerEffectParam",
		},
		Aliases: []Alias{
			{Type: "uint64", Name: "CSteamID"},
			{Type: "uint64", Name: "CGameID"},
			{
				Name: "SteamAPIWarningMessageHook_t",
				Decl: "typedef void (*SteamAPIWarningMessageHook_t)(int, const char * );",
			},
		},
	}
}

// Load reads a YAML file on top of the defaults. Keys absent from the file
// keep their default values; an explicit empty list clears them.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func (c *Config) ExcludedStructs() map[string]bool {
	return toSet(c.Exclude.Structs)
}

func (c *Config) ExcludedMethods() map[string]bool {
	return toSet(c.Exclude.Methods)
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, it := range names {
		set[it] = true
	}
	return set
}
