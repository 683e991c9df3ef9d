package options

//go:generate go tool stringer -type=PolicyEnum -output=policy_string.go

// PolicyEnum selects deviations from the default aggregation rules.
// Values are bit flags and can be combined.
type PolicyEnum int

const (
	// PolicySkipVacuous leaves a non-leaf node whose children are all
	// disabled unclassified. By default such a node is checked, since the
	// empty set of counted children is vacuously all checked.
	PolicySkipVacuous PolicyEnum = 1 << iota

	PolicyAll  PolicyEnum = (1 << iota) - 1 // all policies combined
	PolicyNone PolicyEnum = 0               // default behavior
)

// Has reports whether every flag of p is set in s.
func (s PolicyEnum) Has(p PolicyEnum) bool {
	return s&p == p
}
