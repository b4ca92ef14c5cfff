package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileConfig holds generation defaults read from a TOML file. Unset keys
// leave the built-in defaults alone.
type FileConfig struct {
	Length  *int  `toml:"length"`
	Upper   *bool `toml:"upper"`
	Lower   *bool `toml:"lower"`
	Digits  *bool `toml:"digits"`
	Symbols *bool `toml:"symbols"`
	Count   *int  `toml:"count"`
}

// LoadFileConfig decodes path. Unknown keys are rejected.
func LoadFileConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return FileConfig{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
