package fixture

// File is the root of a fixture document.
type File struct {
	Trees     map[string][]NodeSpec `yaml:"trees"`
	Scenarios []Scenario            `yaml:"scenarios"`
}

// NodeSpec describes one node and its subtree.
type NodeSpec struct {
	Key      string     `yaml:"key"`
	Disabled bool       `yaml:"disabled,omitempty"`
	Children []NodeSpec `yaml:"children,omitempty"`
}

// Scenario is one checked input with its expected results.
type Scenario struct {
	Name        string      `yaml:"name"`
	Tree        string      `yaml:"tree"`
	Checked     []string    `yaml:"checked"`
	Extended    []string    `yaml:"extended,omitempty"`
	Status      *StatusSpec `yaml:"status,omitempty"`
	SkipVacuous bool        `yaml:"skip_vacuous,omitempty"`
	Toggle      *ToggleSpec `yaml:"toggle,omitempty"`
}

// StatusSpec is an expected aggregation result.
type StatusSpec struct {
	Checked       []string `yaml:"checked"`
	Indeterminate []string `yaml:"indeterminate"`
}

// ToggleSpec is an incremental check or uncheck applied to Scenario.Checked.
// Exactly one of Check and Uncheck is set.
type ToggleSpec struct {
	Check   string   `yaml:"check,omitempty"`
	Uncheck string   `yaml:"uncheck,omitempty"`
	Want    []string `yaml:"want"`
}

// HasExtended reports whether the scenario pins the expansion result.
// An explicit empty list counts as pinned.
func (s Scenario) HasExtended() bool {
	return s.Extended != nil
}
