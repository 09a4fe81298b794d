// Package dataset holds the compiled-in threat statistics the dashboard
// renders. Every record array is seeded once at startup and never mutated;
// accessors hand out copies so callers cannot reach the backing arrays.
package dataset

// Origin is an attack-origin share. The seeded set sums to 100.
type Origin struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Target is a sector share, ordered for display.
type Target struct {
	Name    string `json:"name" yaml:"name"`
	Attacks int    `json:"attacks" yaml:"attacks"`
}

// Trend is a yearly incident count, ordered by year ascending.
type Trend struct {
	Year    string `json:"year" yaml:"year"`
	Attacks int    `json:"attacks" yaml:"attacks"`
}

// Severity is a per-sector low/medium/high percentage triple. Each row
// sums to 100.
type Severity struct {
	Category string `json:"category" yaml:"category"`
	Low      int    `json:"low" yaml:"low"`
	Medium   int    `json:"medium" yaml:"medium"`
	High     int    `json:"high" yaml:"high"`
}

// Technique is an attack-vector share.
type Technique struct {
	Name       string `json:"name" yaml:"name"`
	Percentage int    `json:"percentage" yaml:"percentage"`
}

// Registry is the read-only collection of named datasets. A missing dataset
// is a build-time concern; there are no runtime error paths.
type Registry struct {
	origins    []Origin
	targets    []Target
	trend      []Trend
	severity   []Severity
	techniques []Technique
}

// Default returns a registry seeded with the bundled statistics.
func Default() *Registry {
	return &Registry{
		origins:    seedOrigins,
		targets:    seedTargets,
		trend:      seedTrend,
		severity:   seedSeverity,
		techniques: seedTechniques,
	}
}

func (r *Registry) Origins() []Origin {
	out := make([]Origin, len(r.origins))
	copy(out, r.origins)
	return out
}

func (r *Registry) Targets() []Target {
	out := make([]Target, len(r.targets))
	copy(out, r.targets)
	return out
}

func (r *Registry) Trend() []Trend {
	out := make([]Trend, len(r.trend))
	copy(out, r.trend)
	return out
}

func (r *Registry) Severity() []Severity {
	out := make([]Severity, len(r.severity))
	copy(out, r.severity)
	return out
}

func (r *Registry) Techniques() []Technique {
	out := make([]Technique, len(r.techniques))
	copy(out, r.techniques)
	return out
}
