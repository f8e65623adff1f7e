package preset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/tinyland/lab/tessellate/pkg/layout"
)

var (
	// ErrUnknownConstraint is returned for an unrecognised constraint kind.
	ErrUnknownConstraint = errors.New("unknown constraint kind")
	// ErrBadRatio is returned for a malformed ratio or a zero denominator.
	ErrBadRatio = errors.New("ratio must be num/den with den > 0")
)

// ParseConstraint parses the textual form of a constraint:
//
//	length:5   len:5   5
//	percentage:10   pct:10   10%
//	ratio:1/3
//	min:3
//	max:8
func ParseConstraint(s string) (layout.Constraint, error) {
	raw := strings.TrimSpace(s)
	c, err := prParseConstraint(strings.ToLower(raw))
	if err != nil {
		return nil, fmt.Errorf("preset: parse constraint %q: %w", raw, err)
	}
	return c, nil
}

func prParseConstraint(s string) (layout.Constraint, error) {
	kind, arg, found := strings.Cut(s, ":")
	if !found {
		if v, ok := strings.CutSuffix(s, "%"); ok {
			n, err := prParseUint16(v)
			return layout.Percentage{Value: n}, err
		}
		n, err := prParseUint16(s)
		return layout.Length{Value: n}, err
	}

	kind = strings.TrimSpace(kind)
	arg = strings.TrimSpace(arg)
	switch kind {
	case "length", "len", "l":
		n, err := prParseUint16(arg)
		return layout.Length{Value: n}, err
	case "percentage", "percent", "pct", "p":
		n, err := prParseUint16(strings.TrimSuffix(arg, "%"))
		return layout.Percentage{Value: n}, err
	case "ratio", "r":
		num, den, ok := strings.Cut(arg, "/")
		if !ok {
			return nil, ErrBadRatio
		}
		n, err := strconv.ParseUint(strings.TrimSpace(num), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadRatio, err)
		}
		d, err := strconv.ParseUint(strings.TrimSpace(den), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadRatio, err)
		}
		if d == 0 {
			return nil, ErrBadRatio
		}
		return layout.Ratio{Num: uint32(n), Den: uint32(d)}, nil
	case "min":
		n, err := prParseUint16(arg)
		return layout.Min{Value: n}, err
	case "max":
		n, err := prParseUint16(arg)
		return layout.Max{Value: n}, err
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownConstraint, kind)
	}
}

// ParseConstraints parses each entry of ss.
func ParseConstraints(ss []string) ([]layout.Constraint, error) {
	cs := make([]layout.Constraint, 0, len(ss))
	for _, s := range ss {
		c, err := ParseConstraint(s)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}

// ParseConstraintList parses a comma-separated constraint list such as
// "length:3,min:0,length:1".
func ParseConstraintList(s string) ([]layout.Constraint, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	return ParseConstraints(strings.Split(s, ","))
}

// FormatConstraint returns the canonical textual form accepted by
// ParseConstraint.
func FormatConstraint(c layout.Constraint) string {
	switch v := c.(type) {
	case layout.Length:
		return fmt.Sprintf("length:%d", v.Value)
	case layout.Percentage:
		return fmt.Sprintf("percentage:%d", v.Value)
	case layout.Ratio:
		return fmt.Sprintf("ratio:%d/%d", v.Num, v.Den)
	case layout.Min:
		return fmt.Sprintf("min:%d", v.Value)
	case layout.Max:
		return fmt.Sprintf("max:%d", v.Value)
	default:
		return c.String()
	}
}

func prParseUint16(s string) (uint16, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(n), nil
}
