package suite

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadError reports a suite file that could not be read or is invalid.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("invalid suite %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads, schema-checks and decodes the suite at path.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return Parse(path, data)
}

// Parse decodes suite YAML. filename is only used in messages.
func Parse(filename string, data []byte) (*Suite, error) {
	if err := validateSchema(filename, data); err != nil {
		return nil, &LoadError{Path: filename, Err: err}
	}

	// Strict decoding as well: the schema and the struct must agree.
	var s Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, &LoadError{Path: filename, Err: fmt.Errorf("failed to parse YAML: %w", err)}
	}

	if err := validateSuite(&s); err != nil {
		return nil, &LoadError{Path: filename, Err: err}
	}
	return &s, nil
}

// validateSuite checks the rules the schema cannot express.
func validateSuite(s *Suite) error {
	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if seen[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate case name %q", i, c.Name)
		}
		seen[c.Name] = true

		if c.Numbers == nil {
			return fmt.Errorf("cases[%d] (%s): numbers is required (use [] for no numbers)", i, c.Name)
		}

		hasResult := c.Expect.Result != nil
		hasError := c.Expect.Error != ""
		if hasResult == hasError {
			return fmt.Errorf("cases[%d] (%s): expect must set exactly one of result or error", i, c.Name)
		}
		if hasError && c.Expect.Tolerance != nil {
			return fmt.Errorf("cases[%d] (%s): tolerance only applies to an expected result", i, c.Name)
		}
	}
	return nil
}
