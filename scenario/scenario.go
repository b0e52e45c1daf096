package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stoch/gbm"
)

// Sentinel errors for scenario loading. Validation failures of the parsed
// values are reported with the gbm package's own sentinels.
var (
	// ErrUnreadable indicates the scenario file could not be read.
	ErrUnreadable = errors.New("scenario: cannot read scenario file")

	// ErrMalformed indicates the scenario file is not valid YAML.
	ErrMalformed = errors.New("scenario: malformed YAML")
)

// Scenario mirrors the YAML layout of a scenario file. Seed is a pointer so
// that an absent key means "unseeded" while an explicit `seed: 0` stays a
// valid deterministic seed.
type Scenario struct {
	Initial    float64 `yaml:"initial"`
	Drift      float64 `yaml:"drift"`
	Volatility float64 `yaml:"volatility"`
	Horizon    float64 `yaml:"horizon"`
	Steps      int     `yaml:"steps"`
	Scheme     string  `yaml:"scheme"`
	Paths      int     `yaml:"paths"`
	Seed       *uint64 `yaml:"seed,omitempty"`
}

// Run is a fully validated simulation request.
type Run struct {
	Config gbm.Config
	Scheme gbm.Scheme
	Paths  int
}

// Load reads and parses the scenario file at path.
func Load(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return Parse(data)
}

// Parse decodes YAML scenario data and validates it into a Run.
// Scheme defaults to "exact" and Paths to 1 when omitted.
func Parse(data []byte) (Run, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Run{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return sc.Run()
}

// Run validates the scenario fields and assembles the simulation request.
func (sc Scenario) Run() (Run, error) {
	schemeName := sc.Scheme
	if schemeName == "" {
		schemeName = "exact"
	}
	scheme, err := gbm.ParseScheme(schemeName)
	if err != nil {
		return Run{}, err
	}

	paths := sc.Paths
	if paths == 0 {
		paths = 1
	}
	if paths < 1 {
		return Run{}, fmt.Errorf("%w: paths must be at least 1, got %d", gbm.ErrInvalidParameter, paths)
	}

	cfg := gbm.Config{
		Initial:    sc.Initial,
		Drift:      sc.Drift,
		Volatility: sc.Volatility,
		Horizon:    sc.Horizon,
		Steps:      sc.Steps,
	}
	if sc.Seed != nil {
		cfg.Seed = *sc.Seed
		cfg.Seeded = true
	}
	if err = cfg.Validate(); err != nil {
		return Run{}, err
	}

	return Run{Config: cfg, Scheme: scheme, Paths: paths}, nil
}
