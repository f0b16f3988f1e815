package output

import "fmt"

// Format represents an output format for command results.
type Format int

// Supported output formats.
const (
	Text Format = iota
	JSON
	CSV
)

// IsValid checks if the format value is valid.
func (f Format) IsValid() error {
	if (int(f) < 0) || (int(f) >= len(names)) {
		return fmt.Errorf("invalid output format")
	}
	return nil
}

// Set sets the value of the format based on the provided format name.
func (f *Format) Set(name string) error {
	for i, n := range names {
		if name == n {
			*f = Format(i)
			return nil
		}
	}

	return fmt.Errorf("unknown output format: %v", name)
}

// String returns the Format (name) as a user-friendly string.
func (f Format) String() string {
	if f.IsValid() != nil {
		return ""
	}
	return names[f]
}

// Type returns the type used by Format.Set.
func (f Format) Type() string {
	return "string"
}

// names are the user-friendly Format names.
var names = [...]string{
	"text",
	"json",
	"csv",
}
