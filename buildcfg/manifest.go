package buildcfg

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrFlagsSectionMissing indicates that [flags] is missing in a manifest.
var ErrFlagsSectionMissing = errors.New("missing [flags]")

type manifest struct {
	Flags map[string]bool `toml:"flags"`
}

// Load parses a build manifest and returns its flag table. The manifest is a
// TOML file with a [flags] table of boolean entries:
//
//	[flags]
//	DEBUG = true
//	TRACING = false
func Load(path string) (*FlagTable, error) {
	var cfg manifest
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("flags") {
		return nil, fmt.Errorf("%s: %w", path, ErrFlagsSectionMissing)
	}
	return NewFlagTable(cfg.Flags), nil
}
