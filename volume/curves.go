// SPDX-License-Identifier: EPL-2.0

package volume

import (
	"math"

	"github.com/ik5/a2dpsink/audio"
)

const (
	perceptualBase = 1.4
	perceptualBits = 12.0
)

var (
	perceptualZeroOfs = math.Pow(perceptualBase, -perceptualBits)
	perceptualScale   = math.Pow(2, perceptualBits)
)

// Default is the perceptual curve: quiet steps are finer than loud ones.
//
//	factor = trunc((1.4^(level*12/127 - 12) - 1.4^-12) * 4096 / (1 - 1.4^-12))
//
// Level 0 yields 0 and level 127 yields exactly 4096. The factor is
// truncated; downmix and scaling use float math rounded to the nearest
// integer per sample.
type Default struct {
	control
}

// NewDefault returns a Default curve at full volume with scaling disabled.
func NewDefault() *Default {
	return &Default{control: newControl(DefaultFactorMax, true)}
}

func (d *Default) SetVolume(level uint8) {
	level = clampLevel(level)
	f := (math.Pow(perceptualBase, float64(level)*perceptualBits/MaxLevel-perceptualBits) - perceptualZeroOfs) *
		perceptualScale / (1.0 - perceptualZeroOfs)
	d.setFactor(int32(f))
}

func (*Default) Kind() Kind { return KindDefault }

// Exponential is the simple power-of-two curve:
//
//	factor = floor(2^(level*12/127)) - 1, at most 4095
//
// FactorMax stays 4096 so full volume is marginally below unity. Downmix
// and scaling use integer math that truncates toward zero.
type Exponential struct {
	control
}

// NewExponential returns an Exponential curve with scaling disabled.
func NewExponential() *Exponential {
	return &Exponential{control: newControl(DefaultFactorMax, false)}
}

func (e *Exponential) SetVolume(level uint8) {
	level = clampLevel(level)
	f := math.Pow(2.0, float64(level)*12.0/MaxLevel)
	e.setFactor(min(int32(math.Floor(f))-1, DefaultFactorMax-1))
}

func (*Exponential) Kind() Kind { return KindExponential }

// Linear maps the level straight to the factor over a full scale of 128.
type Linear struct {
	control
}

// NewLinear returns a Linear curve at unity gain with scaling disabled.
func NewLinear() *Linear {
	return &Linear{control: newControl(LinearFactorMax, false)}
}

func (l *Linear) SetVolume(level uint8) {
	l.setFactor(int32(clampLevel(level)))
}

func (*Linear) Kind() Kind { return KindLinear }

// None keeps the audio as is. Apply never touches the buffer and SetVolume
// is ignored; the enable flags are still recorded for reporting.
type None struct {
	control
}

// NewNone returns the no-op curve.
func NewNone() *None {
	return &None{control: newControl(DefaultFactorMax, false)}
}

func (*None) SetVolume(uint8) {}

func (*None) Apply([]byte, audio.BitDepth) error { return nil }

func (*None) Kind() Kind { return KindNone }
