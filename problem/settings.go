// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Problem is one congruence system: mat·x ≡ rhs (mod moduli).
type Problem struct {
	Name   string    `toml:"name"`
	Mat    [][]int64 `toml:"mat"`
	RHS    []int64   `toml:"rhs"`
	Moduli []int64   `toml:"moduli"`
}

// Homogeneous reports whether the problem only asks for the null space.
func (p Problem) Homogeneous() bool { return p.RHS == nil }

// Settings is the decoded contents of a problem file.
type Settings struct {
	LogLevel string    `toml:"loglevel"`
	Trace    bool      `toml:"trace"`
	Problems []Problem `toml:"problem"`
}

const (
	DefaultLogLevel = "info"
)

func DefaultSettings() Settings {
	return Settings{
		LogLevel: DefaultLogLevel,
	}
}

// Parse decodes a problem file over DefaultSettings. Unnamed problems are
// named "problem-N" (1-based). Shapes are not checked here; that is the
// solver's job.
func Parse(data string) (*Settings, error) {
	doc := DefaultSettings()
	md, err := toml.Decode(data, &doc)
	if err != nil {
		return nil, errors.Wrap(err, "problem: decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("problem: unknown keys %v", undecoded)
	}
	if len(doc.Problems) == 0 {
		return nil, errors.WithStack(ErrNoProblems)
	}

	for i := range doc.Problems {
		p := &doc.Problems[i]
		if p.Name == "" {
			p.Name = fmt.Sprintf("problem-%d", i+1)
		}
		if len(p.Mat) == 0 {
			return nil, errors.Wrapf(ErrMissingField, "%s: mat", p.Name)
		}
		if len(p.Moduli) == 0 {
			return nil, errors.Wrapf(ErrMissingField, "%s: moduli", p.Name)
		}
	}

	return &doc, nil
}

// Load reads and parses the problem file at path.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	s, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "problem: %s", path)
	}

	return s, nil
}
