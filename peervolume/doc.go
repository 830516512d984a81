// SPDX-License-Identifier: EPL-2.0

// Package peervolume keeps the last AVRCP volume level of recently seen
// Bluetooth peers so each device resumes at its own volume when it
// reconnects.
//
// The store is small and bounded. Eviction is strictly by insertion order;
// volume updates never refresh an entry. Nothing is persisted.
package peervolume
