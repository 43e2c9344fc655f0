// Package script describes sequences of vector operations as YAML documents,
// replays them against a vector.Vector[int] and reports what happened.
//
// A script looks like:
//
//	name: walkthrough
//	initial: [1, 2, 3]
//	steps:
//	  - op: insert
//	    index: 1
//	    value: 99
//	    expect: [1, 99, 2, 3]
//	  - op: at
//	    index: 10
//	    expect_err: index_out_of_range
package script

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is wrapped by every parse and validation failure.
var ErrInvalidScript = errors.New("invalid script")

// Op names one vector operation.
type Op string

const (
	OpPushBack    Op = "push_back"
	OpPopBack     Op = "pop_back"
	OpInsert      Op = "insert"
	OpErase       Op = "erase"
	OpEraseRange  Op = "erase_range"
	OpAt          Op = "at"
	OpSet         Op = "set"
	OpFront       Op = "front"
	OpBack        Op = "back"
	OpReserve     Op = "reserve"
	OpResize      Op = "resize"
	OpShrinkToFit Op = "shrink_to_fit"
	OpClear       Op = "clear"
	OpAssign      Op = "assign"
	OpSwap        Op = "swap"
	OpSort        Op = "sort"
	OpRemove      Op = "remove"
	OpFill        Op = "fill"
)

var knownOps = map[Op]bool{
	OpPushBack: true, OpPopBack: true, OpInsert: true, OpErase: true,
	OpEraseRange: true, OpAt: true, OpSet: true, OpFront: true, OpBack: true,
	OpReserve: true, OpResize: true, OpShrinkToFit: true, OpClear: true,
	OpAssign: true, OpSwap: true, OpSort: true, OpRemove: true, OpFill: true,
}

// Script is one replayable sequence of operations.
type Script struct {
	Name    string `yaml:"name"`
	Initial []int  `yaml:"initial,omitempty"`
	Fill    *Fill  `yaml:"fill,omitempty"`

	// MaxCapacity > 0 puts the vector on a budgeted allocator, which makes
	// allocation failures reproducible.
	MaxCapacity int `yaml:"max_capacity,omitempty"`

	Steps []Step `yaml:"steps"`
}

// Fill pre-sizes the vector with N copies of Value.
type Fill struct {
	N     int `yaml:"n"`
	Value int `yaml:"value"`
}

// Step is one operation plus the outcome it is expected to have. Which
// argument fields matter depends on Op; expectations are all optional.
type Step struct {
	Op     Op    `yaml:"op"`
	Index  int   `yaml:"index,omitempty"`
	Last   int   `yaml:"last,omitempty"`
	Value  int   `yaml:"value,omitempty"`
	Values []int `yaml:"values,omitempty"`
	N      int   `yaml:"n,omitempty"`

	Expect      *[]int `yaml:"expect,omitempty"`
	ExpectErr   string `yaml:"expect_err,omitempty"`
	ExpectValue *int   `yaml:"expect_value,omitempty"`
	ExpectLen   *int   `yaml:"expect_len,omitempty"`
	ExpectCap   *int   `yaml:"expect_cap,omitempty"`
}

// Parse decodes and validates a script. Unknown fields are rejected so that
// a typo in an expectation cannot silently disable it.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: yaml decode: %v", ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a script file. A script without a name is named after the
// file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Validate checks the script's structure without running it.
func (s *Script) Validate() error {
	if s.Fill != nil && len(s.Initial) > 0 {
		return fmt.Errorf("%w: initial and fill are mutually exclusive", ErrInvalidScript)
	}
	if s.Fill != nil && s.Fill.N < 0 {
		return fmt.Errorf("%w: fill.n must not be negative", ErrInvalidScript)
	}
	if s.MaxCapacity < 0 {
		return fmt.Errorf("%w: max_capacity must not be negative", ErrInvalidScript)
	}
	for i, st := range s.Steps {
		if !knownOps[st.Op] {
			return fmt.Errorf("%w: step %d: unknown op %q", ErrInvalidScript, i+1, st.Op)
		}
		if st.ExpectErr != "" && !knownKinds[st.ExpectErr] {
			return fmt.Errorf("%w: step %d: unknown expect_err %q", ErrInvalidScript, i+1, st.ExpectErr)
		}
	}
	return nil
}
