// SPDX-License-Identifier: EPL-2.0

// Package volume maps AVRCP volume levels (0..127) to gain factors and
// applies them to stereo PCM in place.
//
// Four curves are available:
//
//   - Default: perceptual, base 1.4 over 12 bits. Fine steps at low volume,
//     0 at level 0 and exactly unity (4096/4096) at level 127.
//   - Exponential: floor(2^(level*12/127)) - 1 over 4096, capped at 4095.
//   - Linear: the level itself over 128.
//   - None: leaves audio untouched, for hosts that do volume themselves.
//
// Every curve can also fold the two channels into their average (mono
// downmix), with or without scaling. Downmix runs first.
//
// Curves are not safe for concurrent use; the caller serialises SetVolume
// and Apply.
//
//	curve, _ := volume.New(volume.KindDefault)
//	curve.SetEnabled(true)
//	curve.SetVolume(100)
//	err := curve.Apply(buf, audio.Bits16)
package volume
