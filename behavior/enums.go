// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behavior

import "fmt"

// OutOfRange is the policy for how a value remap handles raw inputs
// outside its declared range.
type OutOfRange int32

const (
	// OutOfRangeClamp clamps the normalized value to [0, 1].
	OutOfRangeClamp OutOfRange = iota

	// OutOfRangeRepeat wraps the normalized value modulo 1, treating
	// the range as half-open: the high endpoint maps like the low one.
	OutOfRangeRepeat

	// OutOfRangeMirror folds the normalized value in a triangle wave,
	// reversing direction on every period.
	OutOfRangeMirror

	OutOfRangeN
)

var outOfRangeNames = [OutOfRangeN]string{"clamp", "repeat", "mirror"}

func (o OutOfRange) String() string {
	if !o.IsValid() {
		return fmt.Sprintf("OutOfRange(%d)", int32(o))
	}
	return outOfRangeNames[o]
}

// IsValid reports whether o is one of the named policies.
func (o OutOfRange) IsValid() bool {
	return o >= 0 && o < OutOfRangeN
}

// OutOfRangeFromString returns the policy with the given name.
func OutOfRangeFromString(name string) (OutOfRange, error) {
	for i, n := range outOfRangeNames {
		if n == name {
			return OutOfRange(i), nil
		}
	}
	return 0, fmt.Errorf("invalid enum value for OutOfRange: %q", name)
}

// ProgressDomain is the unit system in which a stateful node measures
// elapsed change (its progress).
type ProgressDomain int32

const (
	// DistanceInCentimeters measures progress as physical distance
	// traveled. Requires the stroke to carry a physical unit
	// calibration; uncalibrated strokes make no progress in this domain.
	DistanceInCentimeters ProgressDomain = iota

	// DistanceInMultiplesOfBrushSize measures progress as distance
	// traveled divided by the brush size.
	DistanceInMultiplesOfBrushSize

	// TimeInSeconds measures progress as elapsed time.
	TimeInSeconds

	ProgressDomainN
)

var progressDomainNames = [ProgressDomainN]string{
	"distance-in-centimeters",
	"distance-in-multiples-of-brush-size",
	"time-in-seconds",
}

func (d ProgressDomain) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("ProgressDomain(%d)", int32(d))
	}
	return progressDomainNames[d]
}

// IsValid reports whether d is one of the named domains.
func (d ProgressDomain) IsValid() bool {
	return d >= 0 && d < ProgressDomainN
}

// ProgressDomainFromString returns the domain with the given name.
func ProgressDomainFromString(name string) (ProgressDomain, error) {
	for i, n := range progressDomainNames {
		if n == name {
			return ProgressDomain(i), nil
		}
	}
	return 0, fmt.Errorf("invalid enum value for ProgressDomain: %q", name)
}

// BinaryOp is the operation of a [BinaryOpNode].
type BinaryOp int32

const (
	// BinaryOpProduct multiplies the two input values. The result is
	// null if either input is null.
	BinaryOpProduct BinaryOp = iota

	// BinaryOpSum adds the two input values. The result is null if
	// either input is null.
	BinaryOpSum

	BinaryOpN
)

var binaryOpNames = [BinaryOpN]string{"product", "sum"}

func (op BinaryOp) String() string {
	if !op.IsValid() {
		return fmt.Sprintf("BinaryOp(%d)", int32(op))
	}
	return binaryOpNames[op]
}

// IsValid reports whether op is one of the named operations.
func (op BinaryOp) IsValid() bool {
	return op >= 0 && op < BinaryOpN
}

// BinaryOpFromString returns the operation with the given name.
func BinaryOpFromString(name string) (BinaryOp, error) {
	for i, n := range binaryOpNames {
		if n == name {
			return BinaryOp(i), nil
		}
	}
	return 0, fmt.Errorf("invalid enum value for BinaryOp: %q", name)
}

// Interpolation is the operation of an [InterpolationNode].
type Interpolation int32

const (
	// InterpolationLerp computes from + param*(to-from). The result is
	// null if any input is null.
	InterpolationLerp Interpolation = iota

	// InterpolationInverseLerp computes (param-from)/(to-from). The
	// result is null if any input is null, or if from == to.
	InterpolationInverseLerp

	InterpolationN
)

var interpolationNames = [InterpolationN]string{"lerp", "inverse-lerp"}

func (in Interpolation) String() string {
	if !in.IsValid() {
		return fmt.Sprintf("Interpolation(%d)", int32(in))
	}
	return interpolationNames[in]
}

// IsValid reports whether in is one of the named operations.
func (in Interpolation) IsValid() bool {
	return in >= 0 && in < InterpolationN
}

// InterpolationFromString returns the operation with the given name.
func InterpolationFromString(name string) (Interpolation, error) {
	for i, n := range interpolationNames {
		if n == name {
			return Interpolation(i), nil
		}
	}
	return 0, fmt.Errorf("invalid enum value for Interpolation: %q", name)
}

// OptionalInputProperty names a stroke input property that a device may
// not report, for use by [FallbackFilterNode].
type OptionalInputProperty int32

const (
	// PropertyPressure is the normalized pen pressure.
	PropertyPressure OptionalInputProperty = iota

	// PropertyTilt is the pen tilt angle.
	PropertyTilt

	// PropertyOrientation is the pen orientation angle.
	PropertyOrientation

	// PropertyTiltXAndY is the pair of per-axis tilt components, which
	// requires both tilt and orientation to be reported.
	PropertyTiltXAndY

	OptionalInputPropertyN
)

var optionalInputPropertyNames = [OptionalInputPropertyN]string{
	"pressure", "tilt", "orientation", "tilt-x-and-y",
}

func (p OptionalInputProperty) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("OptionalInputProperty(%d)", int32(p))
	}
	return optionalInputPropertyNames[p]
}

// IsValid reports whether p is one of the named properties.
func (p OptionalInputProperty) IsValid() bool {
	return p >= 0 && p < OptionalInputPropertyN
}

// OptionalInputPropertyFromString returns the property with the given name.
func OptionalInputPropertyFromString(name string) (OptionalInputProperty, error) {
	for i, n := range optionalInputPropertyNames {
		if n == name {
			return OptionalInputProperty(i), nil
		}
	}
	return 0, fmt.Errorf("invalid enum value for OptionalInputProperty: %q", name)
}
