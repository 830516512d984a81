// SPDX-License-Identifier: EPL-2.0

// Package sink wires the PCM transforms and the peer volume cache to the
// callbacks of a Bluetooth A2DP sink.
//
// Buffers go through the volume curve (downmix and gain), then the channel
// swap, then the optional signed to unsigned conversion. Connection events
// restore a peer's remembered volume; AVRCP volume events update it.
package sink
