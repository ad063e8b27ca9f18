package harness

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/amp-labs/amp-algorithms/sorting"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCaseFile is returned when a case file cannot be parsed or fails validation.
var ErrInvalidCaseFile = errors.New("invalid case file")

type caseFile struct {
	Suites []Suite `yaml:"suites"`
}

// LoadCaseFile reads suites from a YAML file.
func LoadCaseFile(path string) ([]Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading case file %s: %w", path, err)
	}

	suites, err := ParseCases(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return suites, nil
}

// ParseCases decodes and validates suites from YAML. Unknown fields are rejected.
//
//	suites:
//	  - name: custom
//	    algorithms: [merge]
//	    cases:
//	      - name: reversed
//	        input: [3, 2, 1]
//	        expected: [1, 2, 3]
//	    search:
//	      - name: find five
//	        mode: binary
//	        input: [1, 3, 5]
//	        target: 5
//	        expected: 2
func ParseCases(r io.Reader) ([]Suite, error) {
	var file caseFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: no suites", ErrInvalidCaseFile)
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidCaseFile, err)
	}

	if err := validate(file.Suites); err != nil {
		return nil, err
	}

	return file.Suites, nil
}

func validate(suites []Suite) error {
	if len(suites) == 0 {
		return fmt.Errorf("%w: no suites", ErrInvalidCaseFile)
	}

	for i, s := range suites {
		if s.Name == "" {
			return fmt.Errorf("%w: suite %d has no name", ErrInvalidCaseFile, i)
		}

		if len(s.Cases) == 0 && len(s.Search) == 0 {
			return fmt.Errorf("%w: suite %q has no cases", ErrInvalidCaseFile, s.Name)
		}

		for _, name := range s.Algorithms {
			if !slices.Contains(sorting.Names(), name) {
				return fmt.Errorf("%w: suite %q: %w: %q", ErrInvalidCaseFile, s.Name, sorting.ErrUnknownAlgorithm, name)
			}
		}

		for j, c := range s.Cases {
			if c.Name == "" {
				return fmt.Errorf("%w: suite %q case %d has no name", ErrInvalidCaseFile, s.Name, j)
			}

			if c.Input == nil {
				return fmt.Errorf("%w: case %q has no input", ErrInvalidCaseFile, c.Name)
			}

			if c.Expected != nil && len(c.Expected) != len(c.Input) {
				return fmt.Errorf("%w: case %q expects %d values for %d inputs",
					ErrInvalidCaseFile, c.Name, len(c.Expected), len(c.Input))
			}
		}

		for j, c := range s.Search {
			if c.Name == "" {
				return fmt.Errorf("%w: suite %q search %d has no name", ErrInvalidCaseFile, s.Name, j)
			}

			if c.Mode != "" && !slices.Contains(SearchModes(), c.Mode) {
				return fmt.Errorf("%w: search %q: %w: %q", ErrInvalidCaseFile, c.Name, ErrUnknownSearchMode, c.Mode)
			}

			if c.Expected < -1 || c.Expected >= len(c.Input) {
				return fmt.Errorf("%w: search %q expects index %d outside its input",
					ErrInvalidCaseFile, c.Name, c.Expected)
			}
		}
	}

	return nil
}
