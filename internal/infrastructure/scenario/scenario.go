// Package scenario reads scripted window-manager sessions from YAML and
// replays them, checking the manager state along the way.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bnema/wndstack/internal/domain/entity"
)

// Scenario is one scripted session.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`

	// Path is the file the scenario was loaded from, if any.
	Path string `yaml:"-"`
}

// Step holds exactly one action, or only an expectation.
type Step struct {
	Open        string       `yaml:"open,omitempty"`
	Args        entity.Args  `yaml:"args,omitempty"`
	Close       string       `yaml:"close,omitempty"`
	Back        bool         `yaml:"back,omitempty"`
	Reset       bool         `yaml:"reset,omitempty"`
	ClearFollow bool         `yaml:"clear_follow,omitempty"`
	Error       string       `yaml:"error,omitempty"`
	Expect      *Expectation `yaml:"expect,omitempty"`
}

// Expectation compares against a manager snapshot. Nil lists are not checked;
// an empty list asserts emptiness.
type Expectation struct {
	Shown  []string `yaml:"shown,omitempty,flow"`
	Cached []string `yaml:"cached,omitempty,flow"`
	Stack  []string `yaml:"stack,omitempty,flow"`
	Active []string `yaml:"active,omitempty,flow"`
}

// Action names the step's action for reports.
func (s Step) Action() string {
	switch {
	case s.Open != "":
		return "open " + s.Open
	case s.Close != "":
		return "close " + s.Close
	case s.Back:
		return "back"
	case s.Reset && s.ClearFollow:
		return "reset (clear follow)"
	case s.Reset:
		return "reset"
	default:
		return "expect"
	}
}

func (s Step) actionCount() int {
	n := 0
	for _, set := range []bool{s.Open != "", s.Close != "", s.Back, s.Reset} {
		if set {
			n++
		}
	}
	return n
}

// Parse decodes a scenario, rejecting unknown fields.
func Parse(r io.Reader) (*Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty scenario")
		}
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Load reads a scenario file. The name defaults to the file name.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sc.Path = path
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Validate checks every step carries at most one action and known error names.
func (sc *Scenario) Validate() error {
	if len(sc.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", sc.Name)
	}
	var problems []string
	for i, s := range sc.Steps {
		switch n := s.actionCount(); {
		case n > 1:
			problems = append(problems, fmt.Sprintf("step %d: more than one action", i+1))
		case n == 0 && s.Expect == nil:
			problems = append(problems, fmt.Sprintf("step %d: no action and no expectation", i+1))
		}
		if s.Error != "" {
			if _, ok := errorKinds[s.Error]; !ok {
				problems = append(problems, fmt.Sprintf("step %d: unknown error %q", i+1, s.Error))
			}
		}
		if s.ClearFollow && !s.Reset {
			problems = append(problems, fmt.Sprintf("step %d: clear_follow only applies to reset", i+1))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid scenario:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// errorKinds maps the error names usable in scenario files to sentinels.
var errorKinds = map[string]error{
	"not_found":            entity.ErrDescriptorNotFound,
	"already_open":         entity.ErrAlreadyOpen,
	"not_shown":            entity.ErrNotShown,
	"stack_order":          entity.ErrStackOrderViolation,
	"unsupported_category": entity.ErrUnsupportedCloseCategory,
	"duplicate_cache":      entity.ErrDuplicateCacheEntry,
	"construction":         entity.ErrConstructionFailed,
	"template_not_found":   entity.ErrTemplateNotFound,
	"no_root":              entity.ErrNoRootWindow,
	"resetting":            entity.ErrResetInProgress,
}
