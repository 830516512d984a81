// SPDX-License-Identifier: EPL-2.0

package volume

import (
	"github.com/ik5/a2dpsink/audio"
	"github.com/ik5/a2dpsink/utils"
)

const (
	// MaxLevel is the highest volume level a host can request (AVRCP range).
	MaxLevel = 127

	// DefaultFactorMax is the full-scale factor of the exponential curves.
	DefaultFactorMax = 0x1000
	// LinearFactorMax is the full-scale factor of the linear curve.
	LinearFactorMax = 128
)

// Curve maps a 0..127 volume level to a gain factor and applies it, with
// an optional mono downmix, to PCM buffers in place.
//
// Per frame, the downmix (when enabled) replaces both channels with their
// average, then scaling (when enabled) multiplies each channel by
// Factor()/FactorMax(). Either step can run without the other. Apply is a
// no-op while both are off.
type Curve interface {
	audio.Transform

	SetVolume(level uint8)
	SetEnabled(enabled bool)
	SetMonoDownmix(enabled bool)
	Enabled() bool
	MonoDownmix() bool

	// Factor is the current gain numerator, 0 <= Factor() <= FactorMax().
	Factor() int32
	FactorMax() int32

	Kind() Kind
}

// control is the state and per-frame algorithm shared by every curve.
type control struct {
	enabled   bool
	mono      bool
	factor    int32
	factorMax int32

	// nearest selects float math with round-to-nearest on store; otherwise
	// integer math that truncates toward zero.
	nearest bool
}

func newControl(factorMax int32, nearest bool) control {
	return control{
		factor:    factorMax,
		factorMax: factorMax,
		nearest:   nearest,
	}
}

func (c *control) SetEnabled(enabled bool)     { c.enabled = enabled }
func (c *control) SetMonoDownmix(enabled bool) { c.mono = enabled }
func (c *control) Enabled() bool               { return c.enabled }
func (c *control) MonoDownmix() bool           { return c.mono }
func (c *control) Factor() int32               { return c.factor }
func (c *control) FactorMax() int32            { return c.factorMax }

func (c *control) setFactor(factor int32) {
	c.factor = max(0, min(factor, c.factorMax))
}

func (c *control) Apply(buf []byte, bits audio.BitDepth) error {
	if len(buf) == 0 || (!c.mono && !c.enabled) {
		return nil
	}

	if c.nearest {
		return audio.ForEachFrame(buf, bits, c.nearestFrame)
	}
	return audio.ForEachFrame(buf, bits, c.truncatedFrame)
}

func (c *control) nearestFrame(left, right int64) (int64, int64) {
	l, r := float64(left), float64(right)

	// if mono -> we provide the same output on both channels
	if c.mono {
		l = (l + r) / 2
		r = l
	}

	if c.enabled {
		vf, vfMax := float64(c.factor), float64(c.factorMax)
		l = l * vf / vfMax
		r = r * vf / vfMax
	}

	return utils.RoundToInt64(l), utils.RoundToInt64(r)
}

func (c *control) truncatedFrame(left, right int64) (int64, int64) {
	if c.mono {
		avg := (left + right) / 2
		left, right = avg, avg
	}

	if c.enabled {
		f, fMax := int64(c.factor), int64(c.factorMax)
		left = left * f / fMax
		right = right * f / fMax
	}

	return left, right
}

func clampLevel(level uint8) uint8 {
	return min(level, MaxLevel)
}
