package mapping

// CurrentVersion is the only schema version understood.
const CurrentVersion = "1"

// CheckFile is the root of a check file.
type CheckFile struct {
	Version  string   `yaml:"version"`
	Packages []string `yaml:"packages"`
	Pairs    []Pair   `yaml:"pairs"`
}

// Pair names one source/target enum conversion to verify.
type Pair struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	// Mode is a convert.Mode name; empty means default.
	Mode string `yaml:"mode,omitempty"`
	// Ignore lists source members whose conversion may fail.
	Ignore []string `yaml:"ignore,omitempty"`
}

// String returns "source -> target".
func (p Pair) String() string {
	return p.Source + " -> " + p.Target
}

// Ignores reports whether the named source member is allowed to fail.
func (p Pair) Ignores(member string) bool {
	for _, m := range p.Ignore {
		if m == member {
			return true
		}
	}

	return false
}
