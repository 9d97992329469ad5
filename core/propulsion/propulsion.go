// core/propulsion/propulsion.go
// Closed-form rocket propulsion relations (SI units throughout).
//
//	ΔM  = M0·(1 − exp(−ΔV/(g0·ISP)))                       propellant consumed
//	F   = ṁ·Vs + As·(Ps − P∞)                              chemical thrust
//	C*  = √(γ·T·R/M) / (γ·√((2/(γ+1))·(γ+1)/(γ−1)))        characteristic velocity
//	Cf  = γ·√(…)+(Ps/Pc)·(As/Ac)                           thrust coefficient
//	ISP = F/(g0·ṁ) | C*·Cf/g0                              specific impulse (isp.go)
//
// Failures come back as *DomainError or *ParameterError.

package propulsion

import "math"

const (
	// R is the molar gas constant in J/(mol·K).
	R = 8.31446261815324

	// StandardGravity is the standard g0 in m/s².
	StandardGravity = 9.80665
)

// PropellantMass returns the propellant mass ΔM (kg) consumed to gain deltaV
// (m/s) from an initial mass m0 (kg), with specific impulse isp (s) and
// gravity g0 (m/s²).
func PropellantMass(m0, deltaV, isp, g0 float64) (float64, error) {
	const op = "PropellantMass"
	den := g0 * isp
	if den == 0 {
		return 0, domainErr(op, "g0*isp", den, "division by zero")
	}
	out := m0 * (1 - math.Exp(-deltaV/den))
	if math.IsNaN(out) {
		return 0, domainErr(op, "", 0, "result is NaN")
	}
	return out, nil
}

// ChemicalThrust returns F (N) for mass flow mDot (kg/s), exit velocity vS
// (m/s), exit area aS (m²), exit pressure pS and ambient pressure pInf (Pa).
func ChemicalThrust(mDot, vS, aS, pS, pInf float64) float64 {
	return mDot*vS + aS*(pS-pInf)
}

// CharacteristicVelocity returns C* (m/s) for specific-heat ratio gamma,
// chamber temperature t (K) and mean molar mass m (kg/mol).
func CharacteristicVelocity(gamma, t, m float64) (float64, error) {
	const op = "CharacteristicVelocity"
	switch {
	case m == 0:
		return 0, domainErr(op, "M", m, "division by zero")
	case gamma == 1 || gamma == -1:
		return 0, domainErr(op, "gamma", gamma, "division by zero")
	case gamma == 0:
		return 0, domainErr(op, "gamma", gamma, "zero denominator")
	}

	num := gamma * t * (R / m)
	if num < 0 {
		return 0, domainErr(op, "gamma*T*(R/M)", num, "negative radicand")
	}
	inner := (2 / (gamma + 1)) * (gamma + 1) / (gamma - 1)
	if inner < 0 {
		return 0, domainErr(op, "(2/(gamma+1))*(gamma+1)/(gamma-1)", inner, "negative radicand")
	}

	out := math.Sqrt(num) / (gamma * math.Sqrt(inner))
	if math.IsNaN(out) {
		return 0, domainErr(op, "", 0, "result is NaN")
	}
	return out, nil
}

// ThrustCoefficient returns the dimensionless Cf for specific-heat ratio
// gamma, exit pressure pS, chamber pressure pC (Pa), exit area aS and
// throat area aC (m²).
func ThrustCoefficient(gamma, pS, pC, aS, aC float64) (float64, error) {
	const op = "ThrustCoefficient"
	switch {
	case aC == 0:
		return 0, domainErr(op, "Ac", aC, "division by zero")
	case pC == 0:
		return 0, domainErr(op, "Pc", pC, "division by zero")
	case gamma == 1 || gamma == -1:
		return 0, domainErr(op, "gamma", gamma, "division by zero")
	case gamma == 0:
		return 0, domainErr(op, "gamma", gamma, "division by zero")
	}

	pr := pS / pC
	rad := (2 / (gamma - 1)) * (2 / (gamma + 1)) * ((gamma + 1) / (gamma - 1)) * (1 - pr) * (gamma - 1) / gamma
	if rad < 0 {
		return 0, domainErr(op, "radicand", rad, "negative radicand")
	}

	out := gamma*math.Sqrt(rad) + pr*(aS/aC)
	if math.IsNaN(out) {
		return 0, domainErr(op, "", 0, "result is NaN")
	}
	return out, nil
}
