// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behavior

import "fmt"

// Source names a scalar quantity derived from the current stroke input
// sample and its progress metrics, sampled by a [SourceNode].
type Source int32

const (
	// SourceNormalizedPressure is the pen pressure in [0, 1].
	// Null when the device does not report pressure.
	SourceNormalizedPressure Source = iota

	// SourceTiltInRadians is the angle between the pen and the plane
	// normal, in [0, π/2]. Null when not reported.
	SourceTiltInRadians

	// SourceTiltXInRadians is the component of tilt about the Y axis.
	// Null unless both tilt and orientation are reported.
	SourceTiltXInRadians

	// SourceTiltYInRadians is the component of tilt about the X axis.
	// Null unless both tilt and orientation are reported.
	SourceTiltYInRadians

	// SourceOrientationInRadians is the pen orientation in [0, 2π).
	// Null when not reported.
	SourceOrientationInRadians

	// SourceOrientationAboutZeroInRadians is the pen orientation in
	// (-π, π]. Null when not reported.
	SourceOrientationAboutZeroInRadians

	// SourceSpeedInMultiplesOfBrushSizePerSecond is the stroke speed.
	SourceSpeedInMultiplesOfBrushSizePerSecond

	// SourceVelocityXInMultiplesOfBrushSizePerSecond is the X component
	// of the stroke velocity.
	SourceVelocityXInMultiplesOfBrushSizePerSecond

	// SourceVelocityYInMultiplesOfBrushSizePerSecond is the Y component
	// of the stroke velocity.
	SourceVelocityYInMultiplesOfBrushSizePerSecond

	// SourceDirectionInRadians is the direction of travel in [0, 2π).
	// Null before the stroke has moved.
	SourceDirectionInRadians

	// SourceDirectionAboutZeroInRadians is the direction of travel in
	// (-π, π]. Null before the stroke has moved.
	SourceDirectionAboutZeroInRadians

	// SourceNormalizedDirectionX is the cosine of the direction of
	// travel, in [-1, 1]. Null before the stroke has moved.
	SourceNormalizedDirectionX

	// SourceNormalizedDirectionY is the sine of the direction of
	// travel, in [-1, 1]. Null before the stroke has moved.
	SourceNormalizedDirectionY

	// SourceDistanceTraveledInMultiplesOfBrushSize is the cumulative
	// distance traveled by real inputs.
	SourceDistanceTraveledInMultiplesOfBrushSize

	// SourceTimeOfInputInSeconds is the time of the current sample
	// since the start of the stroke.
	SourceTimeOfInputInSeconds

	// SourceTimeOfInputInMillis is SourceTimeOfInputInSeconds in
	// milliseconds.
	SourceTimeOfInputInMillis

	// SourcePredictedDistanceTraveledInMultiplesOfBrushSize is the
	// distance traveled by predicted inputs beyond the last real input.
	SourcePredictedDistanceTraveledInMultiplesOfBrushSize

	// SourcePredictedTimeElapsedInSeconds is the time elapsed by
	// predicted inputs beyond the last real input.
	SourcePredictedTimeElapsedInSeconds

	// SourcePredictedTimeElapsedInMillis is
	// SourcePredictedTimeElapsedInSeconds in milliseconds.
	SourcePredictedTimeElapsedInMillis

	// SourceDistanceRemainingInMultiplesOfBrushSize is the estimated
	// distance left before the stroke ends.
	SourceDistanceRemainingInMultiplesOfBrushSize

	// SourceTimeSinceInputInSeconds is the time since the last real
	// input. It keeps increasing after the stroke's inputs end, so it
	// may only be paired with [OutOfRangeClamp].
	SourceTimeSinceInputInSeconds

	// SourceTimeSinceInputInMillis is SourceTimeSinceInputInSeconds in
	// milliseconds. It may only be paired with [OutOfRangeClamp].
	SourceTimeSinceInputInMillis

	// SourceAccelerationInMultiplesOfBrushSizePerSecondSquared is the
	// magnitude of the stroke acceleration.
	SourceAccelerationInMultiplesOfBrushSizePerSecondSquared

	// SourceAccelerationXInMultiplesOfBrushSizePerSecondSquared is the
	// X component of the stroke acceleration.
	SourceAccelerationXInMultiplesOfBrushSizePerSecondSquared

	// SourceAccelerationYInMultiplesOfBrushSizePerSecondSquared is the
	// Y component of the stroke acceleration.
	SourceAccelerationYInMultiplesOfBrushSizePerSecondSquared

	// SourceAccelerationForwardInMultiplesOfBrushSizePerSecondSquared
	// is the acceleration projected onto the direction of travel.
	// Null before the stroke has moved.
	SourceAccelerationForwardInMultiplesOfBrushSizePerSecondSquared

	// SourceAccelerationLateralInMultiplesOfBrushSizePerSecondSquared
	// is the acceleration projected 90 degrees counterclockwise from
	// the direction of travel. Null before the stroke has moved.
	SourceAccelerationLateralInMultiplesOfBrushSizePerSecondSquared

	// SourceInputSpeedInCentimetersPerSecond is the stroke speed in
	// physical units. Null for uncalibrated strokes.
	SourceInputSpeedInCentimetersPerSecond

	// SourceInputVelocityXInCentimetersPerSecond is the X component of
	// the stroke velocity in physical units. Null for uncalibrated
	// strokes.
	SourceInputVelocityXInCentimetersPerSecond

	// SourceInputVelocityYInCentimetersPerSecond is the Y component of
	// the stroke velocity in physical units. Null for uncalibrated
	// strokes.
	SourceInputVelocityYInCentimetersPerSecond

	// SourceInputDistanceTraveledInCentimeters is the cumulative
	// distance traveled by real inputs in physical units. Null for
	// uncalibrated strokes.
	SourceInputDistanceTraveledInCentimeters

	// SourcePredictedInputDistanceTraveledInCentimeters is the distance
	// traveled by predicted inputs in physical units. Null for
	// uncalibrated strokes.
	SourcePredictedInputDistanceTraveledInCentimeters

	// SourceInputAccelerationInCentimetersPerSecondSquared is the
	// magnitude of the stroke acceleration in physical units. Null for
	// uncalibrated strokes.
	SourceInputAccelerationInCentimetersPerSecondSquared

	// SourceInputAccelerationXInCentimetersPerSecondSquared is the X
	// component of the stroke acceleration in physical units. Null for
	// uncalibrated strokes.
	SourceInputAccelerationXInCentimetersPerSecondSquared

	// SourceInputAccelerationYInCentimetersPerSecondSquared is the Y
	// component of the stroke acceleration in physical units. Null for
	// uncalibrated strokes.
	SourceInputAccelerationYInCentimetersPerSecondSquared

	// SourceInputAccelerationForwardInCentimetersPerSecondSquared is
	// the acceleration along the direction of travel in physical units.
	// Null for uncalibrated strokes or before the stroke has moved.
	SourceInputAccelerationForwardInCentimetersPerSecondSquared

	// SourceInputAccelerationLateralInCentimetersPerSecondSquared is
	// the acceleration across the direction of travel in physical
	// units. Null for uncalibrated strokes or before the stroke has
	// moved.
	SourceInputAccelerationLateralInCentimetersPerSecondSquared

	// SourceDistanceRemainingAsFractionOfStrokeLength is the estimated
	// distance left as a fraction of the total stroke length, in [0, 1].
	SourceDistanceRemainingAsFractionOfStrokeLength

	SourceN
)

var sourceNames = [SourceN]string{
	"normalized-pressure",
	"tilt-in-radians",
	"tilt-x-in-radians",
	"tilt-y-in-radians",
	"orientation-in-radians",
	"orientation-about-zero-in-radians",
	"speed-in-multiples-of-brush-size-per-second",
	"velocity-x-in-multiples-of-brush-size-per-second",
	"velocity-y-in-multiples-of-brush-size-per-second",
	"direction-in-radians",
	"direction-about-zero-in-radians",
	"normalized-direction-x",
	"normalized-direction-y",
	"distance-traveled-in-multiples-of-brush-size",
	"time-of-input-in-seconds",
	"time-of-input-in-millis",
	"predicted-distance-traveled-in-multiples-of-brush-size",
	"predicted-time-elapsed-in-seconds",
	"predicted-time-elapsed-in-millis",
	"distance-remaining-in-multiples-of-brush-size",
	"time-since-input-in-seconds",
	"time-since-input-in-millis",
	"acceleration-in-multiples-of-brush-size-per-second-squared",
	"acceleration-x-in-multiples-of-brush-size-per-second-squared",
	"acceleration-y-in-multiples-of-brush-size-per-second-squared",
	"acceleration-forward-in-multiples-of-brush-size-per-second-squared",
	"acceleration-lateral-in-multiples-of-brush-size-per-second-squared",
	"input-speed-in-centimeters-per-second",
	"input-velocity-x-in-centimeters-per-second",
	"input-velocity-y-in-centimeters-per-second",
	"input-distance-traveled-in-centimeters",
	"predicted-input-distance-traveled-in-centimeters",
	"input-acceleration-in-centimeters-per-second-squared",
	"input-acceleration-x-in-centimeters-per-second-squared",
	"input-acceleration-y-in-centimeters-per-second-squared",
	"input-acceleration-forward-in-centimeters-per-second-squared",
	"input-acceleration-lateral-in-centimeters-per-second-squared",
	"distance-remaining-as-fraction-of-stroke-length",
}

func (s Source) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Source(%d)", int32(s))
	}
	return sourceNames[s]
}

// IsValid reports whether s is one of the named sources.
func (s Source) IsValid() bool {
	return s >= 0 && s < SourceN
}

// SourceFromString returns the source with the given name.
func SourceFromString(name string) (Source, error) {
	for i, n := range sourceNames {
		if n == name {
			return Source(i), nil
		}
	}
	return 0, fmt.Errorf("invalid enum value for Source: %q", name)
}

// SourceValues returns all named sources, in enum order.
func SourceValues() []Source {
	vals := make([]Source, SourceN)
	for i := range vals {
		vals[i] = Source(i)
	}
	return vals
}

// IsTimeSinceInput reports whether s models the ever-increasing time
// since the last real input. Such sources may only be paired with
// [OutOfRangeClamp], because a repeating or mirroring remap would make
// the post-stroke animation wrap forever instead of settling.
func (s Source) IsTimeSinceInput() bool {
	return s == SourceTimeSinceInputInSeconds || s == SourceTimeSinceInputInMillis
}
