package ease

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownEase = errors.New("ease: unknown easing curve")

// Parse resolves a GSAP-style curve name such as "power2.out",
// "back.out(1.7)" or "elastic.out(1, 0.5)".
func Parse(name string) (Func, error) {
	name = strings.TrimSpace(name)
	base, args, err := splitArgs(name)
	if err != nil {
		return nil, err
	}

	switch base {
	case "", "none", "linear":
		return Linear, nil
	case "sine.inOut":
		return SineInOut, nil
	case "back.out":
		s := 1.70158
		if len(args) > 0 {
			s = args[0]
		}
		return BackOut(s), nil
	case "elastic.out":
		amp, period := 1.0, 0.3
		if len(args) > 0 {
			amp = args[0]
		}
		if len(args) > 1 {
			period = args[1]
		}
		return ElasticOut(amp, period), nil
	}

	if strings.HasPrefix(base, "power") {
		dot := strings.IndexByte(base, '.')
		if dot < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
		}
		n, err := strconv.Atoi(base[len("power"):dot])
		if err != nil || n < 1 || n > 4 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
		}
		switch base[dot+1:] {
		case "in":
			return PowerIn(n), nil
		case "out":
			return PowerOut(n), nil
		case "inOut":
			return PowerInOut(n), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
}

// MustParse is Parse for curve names fixed at compile time.
func MustParse(name string) Func {
	f, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return f
}

func splitArgs(name string) (string, []float64, error) {
	open := strings.IndexByte(name, '(')
	if open < 0 {
		return name, nil, nil
	}
	if !strings.HasSuffix(name, ")") {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
	}
	var args []float64
	for _, part := range strings.Split(name[open+1:len(name)-1], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
		}
		args = append(args, v)
	}
	return name[:open], args, nil
}

// Names lists the curve names used across the page, for the curve command.
func Names() []string {
	return []string{
		"none",
		"power2.out",
		"power3.out",
		"power2.inOut",
		"back.out(1.7)",
		"elastic.out(1, 0.5)",
		"sine.inOut",
	}
}
