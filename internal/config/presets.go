package config

import "sort"

var Presets = map[string]*Config{
	"still": {
		Stepper: "lie_euler", Dt: 0.01, Duration: 5.0,
		Init:  InitConfig{RotVec: []float64{0, 0, 0}, Position: []float64{0, 0, 0}},
		Twist: TwistConfig{Omega: []float64{0, 0, 0}, Velocity: []float64{0, 0, 0}},
	},
	"spin": {
		Stepper: "lie_euler", Dt: 0.01, Duration: 4.0,
		Init:  InitConfig{RotVec: []float64{0, 0, 0}, Position: []float64{0, 0, 0}},
		Twist: TwistConfig{Omega: []float64{0, 0, 1.5707963267948966}, Velocity: []float64{0, 0, 0}},
	},
	"tumble": {
		Stepper: "lie_midpoint", Dt: 0.005, Duration: 10.0,
		Init: InitConfig{RotVec: []float64{0.1, 0.2, 0}, Position: []float64{0, 0, 0}},
		Twist: TwistConfig{
			Omega: []float64{0.3, 0.1, 0.2}, Velocity: []float64{0, 0, 0},
			AmpOmega: []float64{1.0, -0.5, 0.8}, AmpVelocity: []float64{0, 0, 0}, Frequency: 0.5,
		},
	},
	"corkscrew": {
		Stepper: "lie_euler", Dt: 0.01, Duration: 12.0,
		Init:  InitConfig{RotVec: []float64{0, 0, 0}, Position: []float64{0, 0, 0}},
		Twist: TwistConfig{Omega: []float64{1.0, 0, 0}, Velocity: []float64{0.5, 0, 0.2}},
	},
	"drift": {
		Stepper: "additive", Dt: 0.05, Duration: 20.0,
		Init:  InitConfig{RotVec: []float64{0, 0, 0}, Position: []float64{0, 0, 0}},
		Twist: TwistConfig{Omega: []float64{0.4, 1.2, -0.7}, Velocity: []float64{0, 0, 0}},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	c.Init.RotVec = append([]float64(nil), p.Init.RotVec...)
	c.Init.Position = append([]float64(nil), p.Init.Position...)
	c.Twist.Omega = append([]float64(nil), p.Twist.Omega...)
	c.Twist.Velocity = append([]float64(nil), p.Twist.Velocity...)
	c.Twist.AmpOmega = append([]float64(nil), p.Twist.AmpOmega...)
	c.Twist.AmpVelocity = append([]float64(nil), p.Twist.AmpVelocity...)
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
