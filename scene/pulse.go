// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/chewxy/math32"

// Pulse is a value that ping-pongs between Min and Max by Step each
// time it is advanced. Reaching either bound clamps to it exactly and
// reverses the direction, so a Pulse from 0 to 1 by 0.05 is exactly 1
// after 20 steps and exactly 0 after 40.
type Pulse struct {
	Value float32
	Step  float32
	Min   float32
	Max   float32
}

// NewPulse returns a Pulse from 0 to 1, rising by step.
func NewPulse(step float32) Pulse {
	return Pulse{Step: step, Max: 1}
}

// Advance moves the value one step and returns it.
func (p *Pulse) Advance() float32 {
	p.Value += p.Step
	// half a step absorbs the drift of summing a non-binary fraction
	tol := math32.Abs(p.Step) / 2
	switch {
	case p.Step > 0 && p.Value >= p.Max-tol:
		p.Value = p.Max
		p.Step = -p.Step
	case p.Step < 0 && p.Value <= p.Min+tol:
		p.Value = p.Min
		p.Step = -p.Step
	}
	return p.Value
}
