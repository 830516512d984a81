// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"github.com/ik5/a2dpsink/peervolume"
	"github.com/ik5/a2dpsink/volume"
)

// Config selects the transforms a Sink runs on every buffer and sizes its
// peer volume cache.
type Config struct {
	// Curve is the volume curve variant.
	Curve volume.Kind
	// VolumeEnabled turns on gain scaling.
	VolumeEnabled bool
	// MonoDownmix folds both channels into their average.
	MonoDownmix bool
	// SwapChannels exchanges left and right.
	SwapChannels bool
	// SignedToUnsigned biases samples into unsigned-centred PCM, for DACs
	// that expect it.
	SignedToUnsigned bool

	// CacheCapacity is the number of peers whose volume is remembered.
	// Zero selects peervolume.DefaultCapacity.
	CacheCapacity uint8
	// DefaultVolume is given to peers seen for the first time. Clamped to
	// 127.
	DefaultVolume uint8
}

// DefaultConfig scales with the perceptual curve and remembers five peers,
// starting new ones at full volume.
func DefaultConfig() Config {
	return Config{
		Curve:         volume.KindDefault,
		VolumeEnabled: true,
		CacheCapacity: peervolume.DefaultCapacity,
		DefaultVolume: volume.MaxLevel,
	}
}
