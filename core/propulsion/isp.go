package propulsion

import "math"

// ISPInput selects how specific impulse is computed. The set of
// implementations is closed: ByThrust and ByCstar.
type ISPInput interface {
	isp() (float64, error)
}

// ByThrust computes ISP = F / (G0·MDot).
type ByThrust struct {
	F    float64 // thrust, N
	MDot float64 // mass flow rate, kg/s
	G0   float64 // gravity, m/s²
}

// ByCstar computes ISP = CStar·Cf / G0.
type ByCstar struct {
	CStar float64 // characteristic velocity, m/s
	Cf    float64 // thrust coefficient
	G0    float64 // gravity, m/s²
}

const opISP = "SpecificImpulse"

func (in ByThrust) isp() (float64, error) {
	den := in.G0 * in.MDot
	if den == 0 {
		return 0, paramErr(opISP, "g0*m_dot is zero")
	}
	return in.F / den, nil
}

func (in ByCstar) isp() (float64, error) {
	if in.G0 == 0 {
		return 0, paramErr(opISP, "g0 is zero")
	}
	return in.CStar * in.Cf / in.G0, nil
}

// SpecificImpulse returns ISP (s) for the selected input mode.
func SpecificImpulse(in ISPInput) (float64, error) {
	if in == nil {
		return 0, paramErr(opISP, "no input mode given")
	}
	v, err := in.isp()
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, paramErr(opISP, "result is NaN")
	}
	return v, nil
}

// ISPArgs carries optional inputs; nil means absent.
type ISPArgs struct {
	F, MDot, G0, CStar, Cf *float64
}

// ResolveISP picks a mode from whichever inputs are present: thrust mode when
// F, MDot and G0 are all set, else C* mode when CStar, Cf and G0 are set.
func ResolveISP(a ISPArgs) (ISPInput, error) {
	switch {
	case a.F != nil && a.MDot != nil && a.G0 != nil:
		return ByThrust{F: *a.F, MDot: *a.MDot, G0: *a.G0}, nil
	case a.CStar != nil && a.Cf != nil && a.G0 != nil:
		return ByCstar{CStar: *a.CStar, Cf: *a.Cf, G0: *a.G0}, nil
	}
	return nil, paramErr(opISP, "need (F, m_dot, g0) or (C_star, Cf, g0)")
}

// SpecificImpulseArgs resolves a and evaluates it.
func SpecificImpulseArgs(a ISPArgs) (float64, error) {
	in, err := ResolveISP(a)
	if err != nil {
		return 0, err
	}
	return SpecificImpulse(in)
}

// Ptr is a small helper for building ISPArgs literals.
func Ptr(v float64) *float64 { return &v }
