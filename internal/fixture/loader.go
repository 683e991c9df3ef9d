package fixture

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"checktree/node"
)

// LoadFile loads and parses a YAML fixture file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File and checks its references.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fixture YAML: %w", err)
	}

	applyDefaults(&f)

	if err := validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario-%d", i+1)
		}

		if s.Status != nil && s.Status.Indeterminate == nil {
			s.Status.Indeterminate = []string{}
		}
	}
}

func validate(f *File) error {
	var errs []error

	for _, s := range f.Scenarios {
		if _, ok := f.Trees[s.Tree]; !ok {
			errs = append(errs, fmt.Errorf("scenario %q: unknown tree %q", s.Name, s.Tree))
		}

		if t := s.Toggle; t != nil && (t.Check == "") == (t.Uncheck == "") {
			errs = append(errs, fmt.Errorf("scenario %q: toggle needs exactly one of check or uncheck", s.Name))
		}
	}

	return errors.Join(errs...)
}

// Index builds the named tree and its lookup index.
func (f *File) Index(name string) (*node.Index[string], error) {
	specs, ok := f.Trees[name]
	if !ok {
		return nil, fmt.Errorf("unknown tree %q", name)
	}

	roots := make([]*node.Node[string], 0, len(specs))
	for _, spec := range specs {
		roots = append(roots, build(spec))
	}

	idx, err := node.NewIndex(roots...)
	if err != nil {
		return nil, fmt.Errorf("tree %q: %w", name, err)
	}

	if d := node.Validate(idx); d.HasErrors() {
		return nil, fmt.Errorf("tree %q: %w", name, d.Error())
	}

	return idx, nil
}

func build(spec NodeSpec) *node.Node[string] {
	children := make([]*node.Node[string], 0, len(spec.Children))
	for _, c := range spec.Children {
		children = append(children, build(c))
	}

	n := node.NewBranch(spec.Key, spec, children...)
	if spec.Disabled {
		n.Disable()
	}

	return n
}
