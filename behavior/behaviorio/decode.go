// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behaviorio

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/google/ink-sub000/behavior"
	"github.com/google/ink-sub000/input"
	"github.com/google/ink-sub000/math32"
)

// DecodeJSON parses a JSON document and returns its validated behaviors.
func DecodeJSON(data []byte) ([]behavior.Behavior, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("behaviorio: %w", err)
	}
	return FromDocument(&doc)
}

// DecodeYAML parses a YAML document and returns its validated behaviors.
func DecodeYAML(data []byte) ([]behavior.Behavior, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("behaviorio: %w", err)
	}
	return FromDocument(&doc)
}

// FromDocument converts a wire document into behaviors, validating each
// one. Any unknown or empty enum name, ambiguous node kind, or behavior
// failing field or structural validation is an error.
func FromDocument(doc *Document) ([]behavior.Behavior, error) {
	var out []behavior.Behavior
	for bi, bd := range doc.Behaviors {
		b := behavior.Behavior{Comment: bd.Comment}
		for ni, nd := range bd.Nodes {
			n, err := decodeNode(&nd)
			if err != nil {
				return nil, fmt.Errorf("behaviorio: behavior %d node %d: %w", bi, ni, err)
			}
			b.Nodes = append(b.Nodes, n)
		}
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("behaviorio: behavior %d: %w", bi, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func decodeNode(nd *NodeDoc) (behavior.Node, error) {
	var n behavior.Node
	set := 0
	setNode := func(node behavior.Node, err error) error {
		if err != nil {
			return err
		}
		n = node
		set++
		return nil
	}
	if nd.Source != nil {
		if err := setNode(decodeSource(nd.Source)); err != nil {
			return nil, err
		}
	}
	if nd.Constant != nil {
		if err := setNode(behavior.ConstantNode{Value: nd.Constant.Value}, nil); err != nil {
			return nil, err
		}
	}
	if nd.Noise != nil {
		if err := setNode(decodeNoise(nd.Noise)); err != nil {
			return nil, err
		}
	}
	if nd.FallbackFilter != nil {
		if err := setNode(decodeFallbackFilter(nd.FallbackFilter)); err != nil {
			return nil, err
		}
	}
	if nd.ToolTypeFilter != nil {
		if err := setNode(decodeToolTypeFilter(nd.ToolTypeFilter)); err != nil {
			return nil, err
		}
	}
	if nd.Damping != nil {
		if err := setNode(decodeDamping(nd.Damping)); err != nil {
			return nil, err
		}
	}
	if nd.Response != nil {
		if err := setNode(decodeResponse(nd.Response)); err != nil {
			return nil, err
		}
	}
	if nd.Integral != nil {
		if err := setNode(decodeIntegral(nd.Integral)); err != nil {
			return nil, err
		}
	}
	if nd.BinaryOp != nil {
		if err := setNode(decodeBinaryOp(nd.BinaryOp)); err != nil {
			return nil, err
		}
	}
	if nd.Interpolation != nil {
		if err := setNode(decodeInterpolation(nd.Interpolation)); err != nil {
			return nil, err
		}
	}
	if nd.Target != nil {
		if err := setNode(decodeTarget(nd.Target)); err != nil {
			return nil, err
		}
	}
	if nd.PolarTarget != nil {
		if err := setNode(decodePolarTarget(nd.PolarTarget)); err != nil {
			return nil, err
		}
	}
	switch set {
	case 0:
		return nil, fmt.Errorf("node kind is unset")
	case 1:
		return n, nil
	}
	return nil, fmt.Errorf("node sets %d kinds, want exactly 1", set)
}

func decodeSource(d *SourceDoc) (behavior.Node, error) {
	src, err := behavior.SourceFromString(d.Source)
	if err != nil {
		return nil, err
	}
	oor, err := behavior.OutOfRangeFromString(d.OutOfRange)
	if err != nil {
		return nil, err
	}
	return behavior.SourceNode{
		Source:     src,
		OutOfRange: oor,
		ValueRange: behavior.Range(d.ValueRange[0], d.ValueRange[1]),
	}, nil
}

func decodeNoise(d *NoiseDoc) (behavior.Node, error) {
	domain, err := behavior.ProgressDomainFromString(d.VaryOver)
	if err != nil {
		return nil, err
	}
	return behavior.NoiseNode{Seed: d.Seed, VaryOver: domain, BasePeriod: d.BasePeriod}, nil
}

func decodeFallbackFilter(d *FallbackFilterDoc) (behavior.Node, error) {
	prop, err := behavior.OptionalInputPropertyFromString(d.IsFallbackFor)
	if err != nil {
		return nil, err
	}
	return behavior.FallbackFilterNode{IsFallbackFor: prop}, nil
}

func decodeToolTypeFilter(d *ToolTypeFilterDoc) (behavior.Node, error) {
	var tools []input.ToolType
	for _, name := range d.EnabledToolTypes {
		tt, err := input.ToolTypeFromString(name)
		if err != nil {
			return nil, err
		}
		tools = append(tools, tt)
	}
	return behavior.ToolTypeFilterNode{EnabledToolTypes: input.NewToolTypeSet(tools...)}, nil
}

func decodeDamping(d *DampingDoc) (behavior.Node, error) {
	domain, err := behavior.ProgressDomainFromString(d.DampingSource)
	if err != nil {
		return nil, err
	}
	return behavior.DampingNode{Domain: domain, Gap: d.DampingGap}, nil
}

func decodeResponse(d *ResponseDoc) (behavior.Node, error) {
	var fns []behavior.EasingFunction
	if d.Predefined != "" {
		curve, err := behavior.PredefinedCurveFromString(d.Predefined)
		if err != nil {
			return nil, err
		}
		fns = append(fns, behavior.PredefinedEasing{Curve: curve})
	}
	if d.CubicBezier != nil {
		fns = append(fns, behavior.CubicBezierEasing{
			X1: d.CubicBezier.X1, Y1: d.CubicBezier.Y1,
			X2: d.CubicBezier.X2, Y2: d.CubicBezier.Y2,
		})
	}
	if d.Linear != nil {
		pts := make([]math32.Vector2, len(d.Linear.Points))
		for i, p := range d.Linear.Points {
			pts[i] = math32.Vec2(p[0], p[1])
		}
		fns = append(fns, behavior.LinearEasing{Points: pts})
	}
	if d.Steps != nil {
		pos, err := behavior.StepPositionFromString(d.Steps.Position)
		if err != nil {
			return nil, err
		}
		fns = append(fns, behavior.StepsEasing{Count: d.Steps.Count, Position: pos})
	}
	if len(fns) != 1 {
		return nil, fmt.Errorf("response curve sets %d easing kinds, want exactly 1", len(fns))
	}
	return behavior.ResponseNode{ResponseCurve: fns[0]}, nil
}

func decodeIntegral(d *IntegralDoc) (behavior.Node, error) {
	domain, err := behavior.ProgressDomainFromString(d.IntegralSource)
	if err != nil {
		return nil, err
	}
	oor, err := behavior.OutOfRangeFromString(d.OutOfRange)
	if err != nil {
		return nil, err
	}
	return behavior.IntegralNode{
		Domain:     domain,
		OutOfRange: oor,
		ValueRange: behavior.Range(d.ValueRange[0], d.ValueRange[1]),
	}, nil
}

func decodeBinaryOp(d *BinaryOpDoc) (behavior.Node, error) {
	op, err := behavior.BinaryOpFromString(d.Operation)
	if err != nil {
		return nil, err
	}
	return behavior.BinaryOpNode{Operation: op}, nil
}

func decodeInterpolation(d *InterpolationDoc) (behavior.Node, error) {
	in, err := behavior.InterpolationFromString(d.Interpolation)
	if err != nil {
		return nil, err
	}
	return behavior.InterpolationNode{Interpolation: in}, nil
}

func decodeTarget(d *TargetDoc) (behavior.Node, error) {
	t, err := behavior.TargetFromString(d.Target)
	if err != nil {
		return nil, err
	}
	return behavior.TargetNode{
		Target:        t,
		ModifierRange: behavior.Range(d.ModifierRange[0], d.ModifierRange[1]),
	}, nil
}

func decodePolarTarget(d *PolarTargetDoc) (behavior.Node, error) {
	t, err := behavior.PolarTargetFromString(d.Target)
	if err != nil {
		return nil, err
	}
	return behavior.PolarTargetNode{
		Target:         t,
		AngleRange:     behavior.Range(d.AngleRange[0], d.AngleRange[1]),
		MagnitudeRange: behavior.Range(d.MagnitudeRange[0], d.MagnitudeRange[1]),
	}, nil
}
