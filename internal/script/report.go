package script

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// StepResult is the observed state after one step.
type StepResult struct {
	Step     int    `yaml:"step"`
	Op       Op     `yaml:"op"`
	Err      string `yaml:"err,omitempty"`
	Message  string `yaml:"message,omitempty"`
	Value    *int   `yaml:"value,omitempty"`
	Len      int    `yaml:"len"`
	Cap      int    `yaml:"cap"`
	Elements []int  `yaml:"elements,flow"`
}

// Report is the outcome of one Run.
type Report struct {
	Name     string       `yaml:"name"`
	Steps    []StepResult `yaml:"steps"`
	Final    []int        `yaml:"final,flow"`
	Failures []string     `yaml:"failures,omitempty"`
}

// Passed reports whether every expectation held.
func (r *Report) Passed() bool { return len(r.Failures) == 0 }

func (r *Report) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// WriteReport stores r as <dir>/<name>.yaml, creating dir if needed, and
// returns the file path.
func WriteReport(dir string, r *Report) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	data, err := r.Marshal()
	if err != nil {
		return "", err
	}
	fn := filepath.Join(dir, fileName(r.Name)+".yaml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", fn, err)
	}
	return fn, nil
}

// LoadReport reads a report written by WriteReport.
func LoadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return &r, nil
}

func fileName(name string) string {
	if name == "" {
		return "unnamed"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, name)
}
