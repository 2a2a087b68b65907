package config

// Presets are named scenarios per model. The "textbook", "classic" and
// "outbreak" entries carry the reference parameters of the source
// assignment.
var Presets = map[string]map[string]*Config{
	"sir": {
		"textbook": {
			Model: "sir", Dt: 0.1, TEnd: 160,
			SIR: SIRConfig{Beta: 0.3, Gamma: 0.1, S0: 990, I0: 10, R0: 0},
		},
		"slow-burn": {
			Model: "sir", Dt: 0.1, TEnd: 400,
			SIR: SIRConfig{Beta: 0.15, Gamma: 0.1, S0: 990, I0: 10, R0: 0},
		},
		"herd-immunity": {
			Model: "sir", Dt: 0.1, TEnd: 160,
			SIR: SIRConfig{Beta: 0.3, Gamma: 0.1, S0: 490, I0: 10, R0: 500},
		},
	},
	"lotka_volterra": {
		"classic": {
			Model: "lotka_volterra", Dt: 0.1, TEnd: 50,
			LotkaVolterra: LVConfig{
				Alpha: 1.0, Beta: 0.1, Delta: 0.075, Gamma: 1.5,
				CompRate: 0.05, Prey0: 40, Pred0: 9, Comp0: 5,
			},
		},
		"no-competitor": {
			Model: "lotka_volterra", Dt: 0.1, TEnd: 50,
			LotkaVolterra: LVConfig{
				Alpha: 1.0, Beta: 0.1, Delta: 0.075, Gamma: 1.5,
				CompRate: 0, Prey0: 40, Pred0: 9, Comp0: 0,
			},
		},
	},
	"zombie": {
		"outbreak": {
			Model: "zombie", Dt: 0.1, TEnd: 100,
			Zombie: ZombieConfig{Beta: 0.02, Alpha: 0.01, Rho: 0.005, S0: 500, Z0: 1, R0: 0},
		},
		"contained": {
			Model: "zombie", Dt: 0.1, TEnd: 100,
			Zombie: ZombieConfig{Beta: 0.005, Alpha: 0.02, Rho: 0.001, S0: 500, Z0: 1, R0: 0},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
