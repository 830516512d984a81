// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"fmt"
	"sync"

	"github.com/decred/slog"

	"github.com/ik5/a2dpsink/audio"
	"github.com/ik5/a2dpsink/peervolume"
	"github.com/ik5/a2dpsink/volume"
)

// Sink is the glue between a Bluetooth A2DP sink stack and the transforms.
// The stack calls OnAudioData for every decoded buffer and the On* control
// callbacks for connection and AVRCP events.
//
// Audio and control callbacks are serialised, so a volume change never
// lands in the middle of a buffer.
type Sink struct {
	mtx sync.Mutex
	log slog.Logger

	curve            volume.Curve
	swap             *audio.ChannelSwap
	signedToUnsigned bool

	cache     *peervolume.Cache
	active    peervolume.Address
	hasActive bool
}

// New builds a Sink from cfg. A nil log disables logging.
func New(cfg Config, log slog.Logger) (*Sink, error) {
	curve, err := volume.New(cfg.Curve)
	if err != nil {
		return nil, fmt.Errorf("sink: %w", err)
	}
	curve.SetEnabled(cfg.VolumeEnabled)
	curve.SetMonoDownmix(cfg.MonoDownmix)

	if log == nil {
		log = slog.Disabled
	}

	return &Sink{
		log:              log,
		curve:            curve,
		swap:             audio.NewChannelSwap(cfg.SwapChannels),
		signedToUnsigned: cfg.SignedToUnsigned,
		cache:            peervolume.NewCache(cfg.CacheCapacity, cfg.DefaultVolume),
	}, nil
}

// OnAudioData runs volume, channel swap and sign conversion over buf in
// place. A transform that rejects the buffer is logged and the remaining
// stages are skipped for that buffer.
func (s *Sink) OnAudioData(buf []byte, bits audio.BitDepth) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.log.Tracef("Audio data: %d bytes, %v, curve %v", len(buf), bits, s.curve.Kind())

	if err := s.curve.Apply(buf, bits); err != nil {
		s.log.Errorf("Volume %v: Unsupported bits per sample %d: %v", s.curve.Kind(), uint8(bits), err)
		return
	}
	if err := s.swap.Apply(buf, bits); err != nil {
		s.log.Errorf("Channel swap: Unsupported bits per sample %d: %v", uint8(bits), err)
		return
	}
	if s.signedToUnsigned {
		if err := (audio.SignBias{}).Apply(buf, bits); err != nil {
			s.log.Errorf("Signed to unsigned: Unsupported bits per sample %d: %v", uint8(bits), err)
		}
	}
}

// OnPeerConnected makes a the active peer and restores its remembered
// volume, or the default for a new peer. It returns the level applied.
func (s *Sink) OnPeerConnected(a peervolume.Address) uint8 {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	level := s.cache.GetOrInsert(a).Volume()
	s.active, s.hasActive = a, true
	s.curve.SetVolume(level)

	s.log.Infof("Peer %v connected, volume %d", a, level)
	return level
}

// OnPeerDisconnected clears the active peer if it is a. The remembered
// volume stays in the cache.
func (s *Sink) OnPeerDisconnected(a peervolume.Address) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.hasActive && s.active == a {
		s.hasActive = false
		s.log.Infof("Peer %v disconnected", a)
	}
}

// OnVolumeChange handles an AVRCP absolute volume event from a. The level is
// clamped to 127, remembered for a and applied to the curve; a becomes the
// active peer.
func (s *Sink) OnVolumeChange(a peervolume.Address, level uint8) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	level = min(level, volume.MaxLevel)
	s.cache.GetOrInsert(a).Set(level)
	s.active, s.hasActive = a, true
	s.curve.SetVolume(level)

	s.log.Debugf("Peer %v volume %d, factor %d/%d", a, level,
		s.curve.Factor(), s.curve.FactorMax())
}

// PeerVolume reports the remembered volume of a without inserting it.
func (s *Sink) PeerVolume(a peervolume.Address) uint8 {
	return s.cache.Get(a)
}

// ActivePeer returns the peer whose volume drives the curve, if any.
func (s *Sink) ActivePeer() (peervolume.Address, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.active, s.hasActive
}

func (s *Sink) Factor() (factor, factorMax int32) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.curve.Factor(), s.curve.FactorMax()
}

// SetVolumeEnabled toggles scaling by the curve factor.
func (s *Sink) SetVolumeEnabled(enabled bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.curve.SetEnabled(enabled)
}

func (s *Sink) SetMonoDownmix(enabled bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.curve.SetMonoDownmix(enabled)
}

// SetSwapChannels toggles the left/right swap stage.
func (s *Sink) SetSwapChannels(enabled bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.swap.SetEnabled(enabled)
}

func (s *Sink) SetSignedToUnsigned(enabled bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.signedToUnsigned = enabled
}

// Curve exposes the volume curve. Callers must not use it concurrently with
// the Sink callbacks.
func (s *Sink) Curve() volume.Curve {
	return s.curve
}

func (s *Sink) Cache() *peervolume.Cache {
	return s.cache
}
