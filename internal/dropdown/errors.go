package dropdown

import (
	"fmt"
	"strings"
)

// UnknownPresetError is returned when a preset identifier is not registered.
type UnknownPresetError struct {
	Name      string
	Available []string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown preset %q; available presets: %s", e.Name, strings.Join(e.Available, ", "))
}

// ConfigFileNotFoundError is returned when the external dropdown file does
// not exist. Path is the resolved location that was checked.
type ConfigFileNotFoundError struct {
	Path string
}

func (e *ConfigFileNotFoundError) Error() string {
	return fmt.Sprintf("dropdown config file not found: %s", e.Path)
}

// ConfigFileError reports an external dropdown file that exists but cannot
// be read or does not have the expected shape.
type ConfigFileError struct {
	Path string
	Err  error
}

func (e *ConfigFileError) Error() string {
	return fmt.Sprintf("dropdown config file %s: %v", e.Path, e.Err)
}

func (e *ConfigFileError) Unwrap() error { return e.Err }
