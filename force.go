package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidInput is returned when a non-empty field is not a real number.
var ErrInvalidInput = errors.New("invalid input")

// ParseSample turns the raw field contents into a sample. Empty fields count
// as zero.
func ParseSample(horizontal, vertical string) (ForceSample, error) {
	h, err := parseComponent(horizontal)
	if err != nil {
		return ForceSample{}, err
	}
	v, err := parseComponent(vertical)
	if err != nil {
		return ForceSample{}, err
	}
	return ForceSample{Horizontal: h, Vertical: v}, nil
}

func parseComponent(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, text)
	}
	return f, nil
}

// Resolve returns the magnitude and direction of the sum of two
// perpendicular components. The angle is measured counter-clockwise from
// the positive horizontal axis and lies in (-180, 180].
func Resolve(h, v float64) ResolvedForce {
	vec := mgl64.Vec2{h, v}
	if h == 0 && v == 0 {
		return ResolvedForce{}
	}
	rad := math.Atan2(vec.Y(), vec.X())
	// atan2 returns -pi for a negative zero vertical component
	if rad == -math.Pi {
		rad = math.Pi
	}
	return ResolvedForce{
		Magnitude:    vec.Len(),
		AngleDegrees: math.Min(mgl64.RadToDeg(rad), 180),
	}
}

func (r ResolvedForce) MagnitudeText() string {
	return fmt.Sprintf("Resultant Force: %.2f", r.Magnitude)
}

func (r ResolvedForce) AngleText() string {
	return fmt.Sprintf("Angle: %.2f degrees", r.AngleDegrees)
}

func (r ResolvedForce) String() string {
	return r.MagnitudeText() + ", " + r.AngleText()
}
