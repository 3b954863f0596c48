package sim

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so scenario files can use Go duration
// strings ("250ms", "1s").
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Sample is one recorded input value, active from At onward.
type Sample struct {
	At    Duration `yaml:"at"`
	Value float64  `yaml:"value"`
}

// RampConfig parameterizes the ramp generator.
type RampConfig struct {
	Start float64 `yaml:"start"`
	Slope float64 `yaml:"slope"`
}

// GainConfig parameterizes the gain block.
type GainConfig struct {
	Gain float64 `yaml:"gain"`
}

// BiasConfig parameterizes the bias block.
type BiasConfig struct {
	Offset float64 `yaml:"offset"`
}

// Scenario configures one simulated run of the demo model.
type Scenario struct {
	Name     string     `yaml:"name"`
	Timestep Duration   `yaml:"timestep"`
	Ticks    int        `yaml:"ticks"`
	Ramp     RampConfig `yaml:"ramp"`
	Gain     GainConfig `yaml:"gain"`
	Bias     BiasConfig `yaml:"bias"`
	Playback []Sample   `yaml:"playback"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario yaml.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the scenario is runnable.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return errors.New("scenario: name is required")
	}
	if s.Timestep <= 0 {
		return errors.New("scenario: timestep must be positive")
	}
	if s.Ticks <= 0 {
		return errors.New("scenario: ticks must be positive")
	}
	for i := 1; i < len(s.Playback); i++ {
		if s.Playback[i].At < s.Playback[i-1].At {
			return fmt.Errorf("scenario: playback sample %d out of order", i)
		}
	}
	return nil
}
