package manifest

// Format is the encoding of a manifest file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// DuplicatePolicy tells Check what to do with duplicate registrations
// reported by the registry build.
type DuplicatePolicy string

const (
	// DuplicatesWarn leaves build duplicates as warnings.
	DuplicatesWarn DuplicatePolicy = "warn"
	// DuplicatesError re-reports build duplicates as errors.
	DuplicatesError DuplicatePolicy = "error"
)

// File is the root manifest structure.
type File struct {
	Version string `yaml:"version" toml:"version"`
	// Strict turns unexpected implementers into errors.
	Strict     bool            `yaml:"strict,omitempty" toml:"strict"`
	Duplicates DuplicatePolicy `yaml:"duplicates,omitempty" toml:"duplicates"`
	Interfaces []Interface     `yaml:"interfaces" toml:"interfaces"`
}

// Interface lists the expected implementers of one castable interface.
type Interface struct {
	Name            string   `yaml:"name" toml:"name"`
	Implementations []string `yaml:"implementations,omitempty" toml:"implementations"`
	// AllowEmpty silences the warning for a declared interface nobody implements.
	AllowEmpty bool `yaml:"allow_empty,omitempty" toml:"allow_empty"`
}
