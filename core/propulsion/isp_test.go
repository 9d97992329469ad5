package propulsion

import (
	"errors"
	"strings"
	"testing"
)

func TestSpecificImpulse_ByThrust(t *testing.T) {
	got, err := SpecificImpulse(ByThrust{F: 1000, MDot: 0.5, G0: g0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !near(got, 203.94324259558567, 1e-9) {
		t.Fatalf("got %v", got)
	}
}

func TestSpecificImpulse_ByCstar(t *testing.T) {
	got, err := SpecificImpulse(ByCstar{CStar: 1500, Cf: 1.35, G0: g0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !near(got, 206.49253312803052, 1e-9) {
		t.Fatalf("got %v", got)
	}
}

func TestSpecificImpulse_NilInput(t *testing.T) {
	_, err := SpecificImpulse(nil)
	if !errors.Is(err, ErrParameter) {
		t.Fatalf("want ErrParameter, got %v", err)
	}
}

func TestSpecificImpulse_ZeroDenominatorIsParameterError(t *testing.T) {
	for name, in := range map[string]ISPInput{
		"zero mdot":      ByThrust{F: 1000, MDot: 0, G0: g0},
		"zero g0 thrust": ByThrust{F: 1000, MDot: 0.5, G0: 0},
		"zero g0 c-star": ByCstar{CStar: 1500, Cf: 1.35, G0: 0},
	} {
		_, err := SpecificImpulse(in)
		if !IsParameterError(err) {
			t.Fatalf("%s: want *ParameterError, got %v", name, err)
		}
	}
}

func TestResolveISP(t *testing.T) {
	t.Run("no arguments", func(t *testing.T) {
		_, err := SpecificImpulseArgs(ISPArgs{})
		if !errors.Is(err, ErrParameter) {
			t.Fatalf("want ErrParameter, got %v", err)
		}
		if !strings.Contains(err.Error(), "need (F, m_dot, g0) or (C_star, Cf, g0)") {
			t.Fatalf("unexpected message: %v", err)
		}
	})
	t.Run("thrust mode", func(t *testing.T) {
		in, err := ResolveISP(ISPArgs{F: Ptr(1000), MDot: Ptr(0.5), G0: Ptr(g0)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := in.(ByThrust); !ok {
			t.Fatalf("want ByThrust, got %T", in)
		}
	})
	t.Run("c-star mode", func(t *testing.T) {
		in, err := ResolveISP(ISPArgs{CStar: Ptr(1500), Cf: Ptr(1.35), G0: Ptr(g0)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := in.(ByCstar); !ok {
			t.Fatalf("want ByCstar, got %T", in)
		}
	})
	t.Run("incomplete thrust falls back to c-star", func(t *testing.T) {
		in, err := ResolveISP(ISPArgs{F: Ptr(1000), CStar: Ptr(1500), Cf: Ptr(1.35), G0: Ptr(g0)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := in.(ByCstar); !ok {
			t.Fatalf("want ByCstar, got %T", in)
		}
	})
	t.Run("both complete prefers thrust", func(t *testing.T) {
		in, err := ResolveISP(ISPArgs{
			F: Ptr(1000), MDot: Ptr(0.5), CStar: Ptr(1500), Cf: Ptr(1.35), G0: Ptr(g0),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := in.(ByThrust); !ok {
			t.Fatalf("want ByThrust, got %T", in)
		}
	})
	t.Run("missing g0", func(t *testing.T) {
		_, err := ResolveISP(ISPArgs{F: Ptr(1000), MDot: Ptr(0.5), CStar: Ptr(1500), Cf: Ptr(1.35)})
		if !IsParameterError(err) {
			t.Fatalf("want *ParameterError, got %v", err)
		}
	})
}
