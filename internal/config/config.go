// Package config loads engine defaults from an optional TOML file: the
// default style profile, minimax search depth, and Monte-Carlo simulation
// count. Adapted from frankkopp-FrankyGo's config.Setup()/Settings pattern
// (toml.DecodeFile into a package struct, falling back to defaults on any
// read error) to this engine's much smaller set of knobs.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// Settings is the engine configuration, loaded from a TOML file or left at
// its defaults.
type Settings struct {
	ProfileName string `toml:"profile_name"`
	Depth       int    `toml:"depth"`
	Simulations int    `toml:"simulations"`
}

// Defaults returns the settings used when no config file is present or it
// fails to parse.
func Defaults() Settings {
	return Settings{
		ProfileName: "Expert",
		Depth:       6,
		Simulations: 300,
	}
}

// Load reads path as TOML into a copy of Defaults(). A missing or malformed
// file is not fatal: the error is logged and defaults are returned, exactly
// as the teacher's LoadPreferences falls back to defaults on any storage
// read error.
func Load(path string) Settings {
	s := Defaults()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		log.Printf("config: using defaults, could not read %s: %v", path, err)
		return Defaults()
	}
	return s
}
