package pkg

import (
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Output Options `yaml:"output"`
}

// Options configures a Logger. Everything is optional; zero values fall back
// to the package defaults at construction.
type Options struct {
	// Hide lists command names or stringified indices whose text output is
	// suppressed. Empty entries are dropped at construction; "0" (index 0)
	// is a valid token.
	Hide []string `yaml:"hide" mapstructure:"hide"`
	// Raw disables prefixing and coloring entirely. Hide filtering still applies.
	Raw bool `yaml:"raw" mapstructure:"raw"`
	// PrefixFormat is a single token (none, pid, index, name, command, time)
	// or free text with {token} placeholders. Empty picks index or name per
	// command, depending on whether the command is named.
	PrefixFormat    string `yaml:"prefixFormat" mapstructure:"prefix-format"`
	PrefixLength    int    `yaml:"prefixLength" mapstructure:"prefix-length"`
	TimestampFormat string `yaml:"timestampFormat" mapstructure:"timestamp-format"`
	// DefaultColor is the named style used when a command's PrefixColor is
	// absent or unknown.
	DefaultColor string `yaml:"defaultColor" mapstructure:"default-color"`
}

// ReadOptions loads Options from a yaml file, seeded with viper defaults so
// flag and environment bindings show through.
func ReadOptions(path string) (*Options, error) {
	config := Config{
		Output: Options{
			Hide:            viper.GetStringSlice("output-hide"),
			Raw:             viper.GetBool("output-raw"),
			PrefixFormat:    viper.GetString("output-prefix-format"),
			PrefixLength:    viper.GetInt("output-prefix-length"),
			TimestampFormat: viper.GetString("output-timestamp-format"),
			DefaultColor:    viper.GetString("output-default-color"),
		},
	}
	// Early out with viper defaults if config file doesn't exist
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &config.Output, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(file, &config); err != nil {
		return nil, err
	}
	return &config.Output, nil
}

// OptionsFromViper decodes a viper instance into Options using the
// mapstructure tags.
func OptionsFromViper(v *viper.Viper) (*Options, error) {
	var options Options
	if err := mapstructure.Decode(v.AllSettings(), &options); err != nil {
		return nil, err
	}
	return &options, nil
}
