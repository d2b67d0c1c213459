package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rocktavious/autopilot/v2023"
	"github.com/spf13/viper"
)

func TestReadOptionsMissingFileUsesViperDefaults(t *testing.T) {
	// Arrange
	viper.Set("output-prefix-format", "{name}")
	defer viper.Reset()
	// Act
	options, err := ReadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	// Assert
	autopilot.Ok(t, err)
	autopilot.Equals(t, "{name}", options.PrefixFormat)
}

func TestReadOptionsFileOverridesDefaults(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "output.yaml")
	data := []byte("output:\n  prefixFormat: \"{time} {name}\"\n  hide:\n    - \"0\"\n")
	autopilot.Ok(t, os.WriteFile(path, data, 0644))
	// Act
	options, err := ReadOptions(path)
	// Assert
	autopilot.Ok(t, err)
	autopilot.Equals(t, "{time} {name}", options.PrefixFormat)
	autopilot.Equals(t, []string{"0"}, options.Hide)
}

func TestOptionsFromViper(t *testing.T) {
	// Arrange
	v := viper.New()
	v.Set("raw", true)
	v.Set("prefix-length", 20)
	v.Set("default-color", "cyan")
	// Act
	options, err := OptionsFromViper(v)
	// Assert
	autopilot.Ok(t, err)
	autopilot.Equals(t, true, options.Raw)
	autopilot.Equals(t, 20, options.PrefixLength)
	autopilot.Equals(t, "cyan", options.DefaultColor)
}
