package harness

import (
	"fmt"
	"hash"
	"slices"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-algorithms/hashing"
)

// Case is one sort input with its expected output.
type Case struct {
	Name     string    `yaml:"name"`
	Input    []float64 `yaml:"input"`
	Expected []float64 `yaml:"expected"`
}

// Search modes understood by SearchCase.
const (
	ModeBinary    = "binary"
	ModeRecursive = "recursive"
	ModeFirst     = "first"
	ModeLast      = "last"
)

// SearchModes lists every search mode in display order.
func SearchModes() []string {
	return []string{ModeBinary, ModeRecursive, ModeFirst, ModeLast}
}

// SearchCase is one search over a sorted input. Expected is the index the
// search must return, or -1 for not found.
type SearchCase struct {
	Name     string    `yaml:"name"`
	Mode     string    `yaml:"mode"`
	Input    []float64 `yaml:"input"`
	Target   float64   `yaml:"target"`
	Expected int       `yaml:"expected"`
}

// Suite groups sort cases and search cases under one heading. When
// Algorithms is set, the sort cases only run against the named algorithms.
type Suite struct {
	Name       string       `yaml:"name"`
	Algorithms []string     `yaml:"algorithms"`
	Cases      []Case       `yaml:"cases"`
	Search     []SearchCase `yaml:"search"`
}

// Covers reports whether the suite's sort cases apply to the named algorithm.
func (s Suite) Covers(algorithm string) bool {
	return len(s.Algorithms) == 0 || slices.Contains(s.Algorithms, algorithm)
}

// FormatSequence renders values the way the report prints them: [1, 2.5, -3].
func FormatSequence(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func (c SearchCase) String() string {
	return fmt.Sprintf("%s(%s, %s)", c.Mode, FormatSequence(c.Input), strconv.FormatFloat(c.Target, 'f', -1, 64))
}

func (c Case) UpdateHash(h hash.Hash) error {
	return hashing.Multi{
		hashing.HashableString(c.Name),
		hashing.HashableFloats(c.Input),
		hashing.HashableFloats(c.Expected),
	}.UpdateHash(h)
}

func (c SearchCase) UpdateHash(h hash.Hash) error {
	return hashing.Multi{
		hashing.HashableString(c.Name),
		hashing.HashableString(c.Mode),
		hashing.HashableFloats(c.Input),
		hashing.HashableFloats{c.Target, float64(c.Expected)},
	}.UpdateHash(h)
}

func (s Suite) UpdateHash(h hash.Hash) error {
	parts := hashing.Multi{hashing.HashableString(s.Name)}

	for _, name := range s.Algorithms {
		parts = append(parts, hashing.HashableString(name))
	}

	for _, c := range s.Cases {
		parts = append(parts, c)
	}

	for _, c := range s.Search {
		parts = append(parts, c)
	}

	return parts.UpdateHash(h)
}

// Fingerprint identifies a set of suites by their names and values, so
// reports from runs over the same cases can be matched up.
func Fingerprint(suites []Suite) (string, error) {
	parts := make(hashing.Multi, 0, len(suites))
	for _, s := range suites {
		parts = append(parts, s)
	}

	return hashing.Xxh3(parts)
}
