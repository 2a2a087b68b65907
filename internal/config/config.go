package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt   = 0.1
	DefaultTEnd = 100.0
)

type Config struct {
	Model         string       `yaml:"model"`
	Dt            float64      `yaml:"dt"`
	TEnd          float64      `yaml:"t_end"`
	SIR           SIRConfig    `yaml:"sir"`
	LotkaVolterra LVConfig     `yaml:"lotka_volterra"`
	Zombie        ZombieConfig `yaml:"zombie"`
}

type SIRConfig struct {
	Beta  float64 `yaml:"beta"`
	Gamma float64 `yaml:"gamma"`
	S0    float64 `yaml:"s0"`
	I0    float64 `yaml:"i0"`
	R0    float64 `yaml:"r0"`
}

type LVConfig struct {
	Alpha    float64 `yaml:"alpha"`
	Beta     float64 `yaml:"beta"`
	Delta    float64 `yaml:"delta"`
	Gamma    float64 `yaml:"gamma"`
	CompRate float64 `yaml:"comp_rate"`
	Prey0    float64 `yaml:"prey0"`
	Pred0    float64 `yaml:"pred0"`
	Comp0    float64 `yaml:"comp0"`
}

type ZombieConfig struct {
	Beta  float64 `yaml:"beta"`
	Alpha float64 `yaml:"alpha"`
	Rho   float64 `yaml:"rho"`
	S0    float64 `yaml:"s0"`
	Z0    float64 `yaml:"z0"`
	R0    float64 `yaml:"r0"`
}

func Default() *Config {
	return &Config{
		Model: "sir",
		Dt:    DefaultDt,
		TEnd:  DefaultTEnd,
		SIR: SIRConfig{
			Beta: 0.3, Gamma: 0.1, S0: 990, I0: 10, R0: 0,
		},
		LotkaVolterra: LVConfig{
			Alpha: 1.0, Beta: 0.1, Delta: 0.075, Gamma: 1.5,
			CompRate: 0.05, Prey0: 40, Pred0: 9, Comp0: 5,
		},
		Zombie: ZombieConfig{
			Beta: 0.02, Alpha: 0.01, Rho: 0.005, S0: 500, Z0: 1, R0: 0,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
