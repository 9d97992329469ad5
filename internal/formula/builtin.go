package formula

import "github.com/LanceryH/Space-propulsion/core/propulsion"

// Registry names of the builtin formulas.
const (
	PropellantMass         = "propellant-mass"
	SpecificImpulse        = "specific-impulse"
	ChemicalThrust         = "chemical-thrust"
	CharacteristicVelocity = "characteristic-velocity"
	ThrustCoefficient      = "thrust-coefficient"
)

func init() {
	Register(Formula{
		Name: PropellantMass, Symbol: "ΔM", Unit: "kg",
		Params: []Param{
			{Name: "m0", Symbol: "M0", Unit: "kg"},
			{Name: "delta_v", Symbol: "ΔV", Unit: "m/s"},
			{Name: "isp", Symbol: "ISP", Unit: "s"},
			{Name: "g0", Symbol: "g0", Unit: "m/s²"},
		},
		Eval: func(a Args) (float64, error) {
			return propulsion.PropellantMass(a["m0"], a["delta_v"], a["isp"], a["g0"])
		},
	}, "mass", "get-mass")

	Register(Formula{
		Name: SpecificImpulse, Symbol: "ISP", Unit: "s",
		Params: []Param{
			{Name: "thrust", Symbol: "F", Unit: "N", Optional: true},
			{Name: "mdot", Symbol: "ṁ", Unit: "kg/s", Optional: true},
			{Name: "g0", Symbol: "g0", Unit: "m/s²", Optional: true},
			{Name: "cstar", Symbol: "C*", Unit: "m/s", Optional: true},
			{Name: "cf", Symbol: "Cf", Unit: "", Optional: true},
		},
		Eval: func(a Args) (float64, error) {
			return propulsion.SpecificImpulseArgs(ISPArgs(a))
		},
	}, "isp", "get-isp")

	Register(Formula{
		Name: ChemicalThrust, Symbol: "F", Unit: "N",
		Params: []Param{
			{Name: "mdot", Symbol: "ṁ", Unit: "kg/s"},
			{Name: "vs", Symbol: "Vs", Unit: "m/s"},
			{Name: "as", Symbol: "As", Unit: "m²"},
			{Name: "ps", Symbol: "Ps", Unit: "Pa"},
			{Name: "pinf", Symbol: "P∞", Unit: "Pa"},
		},
		Eval: func(a Args) (float64, error) {
			return propulsion.ChemicalThrust(a["mdot"], a["vs"], a["as"], a["ps"], a["pinf"]), nil
		},
	}, "thrust", "get-chimical-thrust")

	Register(Formula{
		Name: CharacteristicVelocity, Symbol: "C*", Unit: "m/s",
		Params: []Param{
			{Name: "gamma", Symbol: "γ", Unit: ""},
			{Name: "temperature", Symbol: "T", Unit: "K"},
			{Name: "molar_mass", Symbol: "M", Unit: "kg/mol"},
		},
		Eval: func(a Args) (float64, error) {
			return propulsion.CharacteristicVelocity(a["gamma"], a["temperature"], a["molar_mass"])
		},
	}, "cstar", "c*", "get-charac-speed")

	Register(Formula{
		Name: ThrustCoefficient, Symbol: "Cf", Unit: "",
		Params: []Param{
			{Name: "gamma", Symbol: "γ", Unit: ""},
			{Name: "ps", Symbol: "Ps", Unit: "Pa"},
			{Name: "pc", Symbol: "Pc", Unit: "Pa"},
			{Name: "as", Symbol: "As", Unit: "m²"},
			{Name: "ac", Symbol: "Ac", Unit: "m²"},
		},
		Eval: func(a Args) (float64, error) {
			return propulsion.ThrustCoefficient(a["gamma"], a["ps"], a["pc"], a["as"], a["ac"])
		},
	}, "cf", "get-thrust-coef")
}

// ISPArgs converts present keys of a into optional specific-impulse inputs.
func ISPArgs(a Args) propulsion.ISPArgs {
	get := func(k string) *float64 {
		if v, ok := a[k]; ok {
			return &v
		}
		return nil
	}
	return propulsion.ISPArgs{
		F:     get("thrust"),
		MDot:  get("mdot"),
		G0:    get("g0"),
		CStar: get("cstar"),
		Cf:    get("cf"),
	}
}
