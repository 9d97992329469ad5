package formula

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// keyAliases maps spelled-out or symbolic parameter keys (after NFC,
// lower-casing and separator folding) onto canonical keys.
var keyAliases = map[string]string{
	"m_0": "m0", "initial_mass": "m0",
	"δv": "delta_v", "dv": "delta_v", "deltav": "delta_v",
	"g_0": "g0", "gravity": "g0",
	"f": "thrust",
	"m_dot": "mdot", "ṁ": "mdot", "mass_flow": "mdot",
	"c_star": "cstar", "c*": "cstar",
	"c_f": "cf",
	"v_s": "vs",
	"a_s": "as",
	"p_s": "ps",
	"p_inf": "pinf", "p∞": "pinf", "p_∞": "pinf",
	"p_c": "pc",
	"a_c": "ac",
	"γ": "gamma",
	"t": "temperature", "temp": "temperature",
	"m": "molar_mass",
}

// NormalizeKey returns the canonical parameter key for s. Input is NFC
// normalised first so a decomposed "ṁ" (m + U+0307) matches the precomposed one.
func NormalizeKey(s string) string {
	k := strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
	k = strings.NewReplacer(" ", "_", "-", "_").Replace(k)
	if canon, ok := keyAliases[k]; ok {
		return canon
	}
	return k
}

// NormalizeArgs rewrites raw keys to canonical form; two raw keys that land
// on the same canonical key are an error.
func NormalizeArgs(raw map[string]float64) (Args, error) {
	out := make(Args, len(raw))
	from := make(map[string]string, len(raw))
	for k, v := range raw {
		ck := NormalizeKey(k)
		if prev, dup := from[ck]; dup {
			return nil, fmt.Errorf("arguments %q and %q both name %q", prev, k, ck)
		}
		from[ck] = k
		out[ck] = v
	}
	return out, nil
}
