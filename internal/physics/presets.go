package physics

// Spring presets used across the demos.
var (
	Default = Params{Stiffness: 290, Damping: 24}
	Gentle  = Params{Stiffness: 170, Damping: 26}
	Wobbly  = Params{Stiffness: 180, Damping: 12}
	Stiff   = Params{Stiffness: 400, Damping: 28}
	Slow    = Params{Stiffness: 120, Damping: 14}
)

// Preset is a named Params value.
type Preset struct {
	Name   string
	Params Params
}

// Presets returns the built-in presets in display order.
func Presets() []Preset {
	return []Preset{
		{Name: "default", Params: Default},
		{Name: "gentle", Params: Gentle},
		{Name: "wobbly", Params: Wobbly},
		{Name: "stiff", Params: Stiff},
		{Name: "slow", Params: Slow},
	}
}

// PresetByName looks up a preset. The second value is false when the name is unknown.
func PresetByName(name string) (Params, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p.Params, true
		}
	}
	return Params{}, false
}
