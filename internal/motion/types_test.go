package motion

import (
	"errors"
	"testing"
)

func TestPropRest(t *testing.T) {
	tests := []struct {
		prop Prop
		want float64
	}{
		{X, 0},
		{Y, 0},
		{Scale, 1},
		{Opacity, 1},
		{Width, 1},
		{Rotation, 0},
		{Blur, 0},
	}
	for _, tt := range tests {
		if got := tt.prop.Rest(); got != tt.want {
			t.Errorf("%s: expected rest %v, got %v", tt.prop, tt.want, got)
		}
	}
}

func TestPropClamp(t *testing.T) {
	if got := Opacity.Clamp(1.3); got != 1 {
		t.Errorf("expected opacity clamped to 1, got %v", got)
	}
	if got := Width.Clamp(-0.2); got != 0 {
		t.Errorf("expected width clamped to 0, got %v", got)
	}
	if got := Y.Clamp(-40); got != -40 {
		t.Errorf("offsets must not be clamped, got %v", got)
	}
}

func TestPropsSameKeys(t *testing.T) {
	a := Props{Y: 100, Opacity: 0}
	b := Props{Opacity: 1, Y: 0}
	if !a.SameKeys(b) {
		t.Error("expected same keys")
	}
	c := Props{Y: 0, Scale: 1}
	if a.SameKeys(c) {
		t.Error("expected different keys")
	}
	if a.SameKeys(Props{Y: 0}) {
		t.Error("expected subset to differ")
	}
}

func TestPropsLerp(t *testing.T) {
	from := Props{Y: 100, Opacity: 0}
	to := Props{Y: 0, Opacity: 1}
	mid := from.Lerp(to, 0.25)
	if mid[Y] != 75 {
		t.Errorf("expected y 75, got %v", mid[Y])
	}
	if mid[Opacity] != 0.25 {
		t.Errorf("expected opacity 0.25, got %v", mid[Opacity])
	}
}

func TestPropsString(t *testing.T) {
	p := Props{Y: 1, Opacity: 0.5}
	if got := p.String(); got != "{opacity:0.5 y:1}" {
		t.Errorf("unexpected string %q", got)
	}
}

func TestStepErrorUnwrap(t *testing.T) {
	err := &StepError{Step: 2, Label: "title", Wrapped: ErrPropMismatch}
	if !errors.Is(err, ErrPropMismatch) {
		t.Error("expected errors.Is to see the wrapped sentinel")
	}
	if err.Error() == "" {
		t.Error("expected message")
	}
}
