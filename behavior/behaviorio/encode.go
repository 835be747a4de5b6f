// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behaviorio

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/google/ink-sub000/behavior"
)

// EncodeJSON renders behaviors as an indented JSON document.
func EncodeJSON(behaviors []behavior.Behavior) ([]byte, error) {
	doc, err := ToDocument(behaviors)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("behaviorio: %w", err)
	}
	return data, nil
}

// EncodeYAML renders behaviors as a YAML document.
func EncodeYAML(behaviors []behavior.Behavior) ([]byte, error) {
	doc, err := ToDocument(behaviors)
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("behaviorio: %w", err)
	}
	return data, nil
}

// ToDocument converts behaviors into a wire document. Each behavior is
// validated first so that an encoded document always decodes cleanly.
func ToDocument(behaviors []behavior.Behavior) (*Document, error) {
	doc := &Document{}
	for bi, b := range behaviors {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("behaviorio: behavior %d: %w", bi, err)
		}
		bd := BehaviorDoc{Comment: b.Comment}
		for ni, n := range b.Nodes {
			nd, err := encodeNode(n)
			if err != nil {
				return nil, fmt.Errorf("behaviorio: behavior %d node %d: %w", bi, ni, err)
			}
			bd.Nodes = append(bd.Nodes, nd)
		}
		doc.Behaviors = append(doc.Behaviors, bd)
	}
	return doc, nil
}

func encodeNode(n behavior.Node) (NodeDoc, error) {
	switch t := n.(type) {
	case behavior.SourceNode:
		return NodeDoc{Source: &SourceDoc{
			Source:     t.Source.String(),
			OutOfRange: t.OutOfRange.String(),
			ValueRange: [2]float32{t.ValueRange.Start, t.ValueRange.End},
		}}, nil
	case behavior.ConstantNode:
		return NodeDoc{Constant: &ConstantDoc{Value: t.Value}}, nil
	case behavior.NoiseNode:
		return NodeDoc{Noise: &NoiseDoc{
			Seed:       t.Seed,
			VaryOver:   t.VaryOver.String(),
			BasePeriod: t.BasePeriod,
		}}, nil
	case behavior.FallbackFilterNode:
		return NodeDoc{FallbackFilter: &FallbackFilterDoc{
			IsFallbackFor: t.IsFallbackFor.String(),
		}}, nil
	case behavior.ToolTypeFilterNode:
		var names []string
		for _, tt := range t.EnabledToolTypes.Tools() {
			names = append(names, tt.String())
		}
		return NodeDoc{ToolTypeFilter: &ToolTypeFilterDoc{EnabledToolTypes: names}}, nil
	case behavior.DampingNode:
		return NodeDoc{Damping: &DampingDoc{
			DampingSource: t.Domain.String(),
			DampingGap:    t.Gap,
		}}, nil
	case behavior.ResponseNode:
		rd, err := encodeResponse(t.ResponseCurve)
		if err != nil {
			return NodeDoc{}, err
		}
		return NodeDoc{Response: rd}, nil
	case behavior.IntegralNode:
		return NodeDoc{Integral: &IntegralDoc{
			IntegralSource: t.Domain.String(),
			OutOfRange:     t.OutOfRange.String(),
			ValueRange:     [2]float32{t.ValueRange.Start, t.ValueRange.End},
		}}, nil
	case behavior.BinaryOpNode:
		return NodeDoc{BinaryOp: &BinaryOpDoc{Operation: t.Operation.String()}}, nil
	case behavior.InterpolationNode:
		return NodeDoc{Interpolation: &InterpolationDoc{Interpolation: t.Interpolation.String()}}, nil
	case behavior.TargetNode:
		return NodeDoc{Target: &TargetDoc{
			Target:        t.Target.String(),
			ModifierRange: [2]float32{t.ModifierRange.Start, t.ModifierRange.End},
		}}, nil
	case behavior.PolarTargetNode:
		return NodeDoc{PolarTarget: &PolarTargetDoc{
			Target:         t.Target.String(),
			AngleRange:     [2]float32{t.AngleRange.Start, t.AngleRange.End},
			MagnitudeRange: [2]float32{t.MagnitudeRange.Start, t.MagnitudeRange.End},
		}}, nil
	}
	return NodeDoc{}, fmt.Errorf("unsupported node type %T", n)
}

func encodeResponse(fn behavior.EasingFunction) (*ResponseDoc, error) {
	switch t := fn.(type) {
	case behavior.PredefinedEasing:
		return &ResponseDoc{Predefined: t.Curve.String()}, nil
	case behavior.CubicBezierEasing:
		return &ResponseDoc{CubicBezier: &CubicBezierDoc{
			X1: t.X1, Y1: t.Y1, X2: t.X2, Y2: t.Y2,
		}}, nil
	case behavior.LinearEasing:
		pts := make([][2]float32, len(t.Points))
		for i, p := range t.Points {
			pts[i] = [2]float32{p.X, p.Y}
		}
		return &ResponseDoc{Linear: &LinearDoc{Points: pts}}, nil
	case behavior.StepsEasing:
		return &ResponseDoc{Steps: &StepsDoc{
			Count:    t.Count,
			Position: t.Position.String(),
		}}, nil
	}
	return nil, fmt.Errorf("unsupported easing function type %T", fn)
}
