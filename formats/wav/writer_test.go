// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/a2dpsink/audio"
	"github.com/ik5/a2dpsink/internal/audiotest"
)

func writeFile(t *testing.T, bits audio.BitDepth, chunks ...[]byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w, err := NewWriter(f, 44100, bits)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	for _, c := range chunks {
		if _, err := w.Write(c); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return path
}

func TestWriter_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bits audio.BitDepth
		pcm  []byte
	}{
		{"16-bit", audio.Bits16, audiotest.RampFrames(audio.Bits16, 300)},
		{"32-bit", audio.Bits32, audiotest.RampFrames(audio.Bits32, 300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			half := len(tt.pcm) / 2
			path := writeFile(t, tt.bits, tt.pcm[:half], tt.pcm[half:])

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			src, err := Decoder{}.Decode(f)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			defer src.Close()

			if src.SampleRate() != 44100 || src.BitDepth() != tt.bits {
				t.Errorf("format = %d Hz %v, want 44100 Hz %v", src.SampleRate(), src.BitDepth(), tt.bits)
			}
			if got := readAll(t, src, 64); !bytes.Equal(got, tt.pcm) {
				t.Errorf("round trip changed %d bytes of PCM", len(tt.pcm))
			}
		})
	}
}

func TestWriter_HeaderSizes(t *testing.T) {
	t.Parallel()

	pcm := audiotest.Frames16([2]int16{1, 2}, [2]int16{3, 4})
	data, err := os.ReadFile(writeFile(t, audio.Bits16, pcm))
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(data, []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WAVE")) {
		t.Fatalf("missing RIFF/WAVE header: %q", data[:12])
	}
	if !bytes.HasSuffix(data, pcm) {
		t.Errorf("file does not end with the written PCM")
	}
}

func TestWriter_PartialFrame(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w, _ := NewWriter(f, 8000, audio.Bits16)
	n, err := w.Write([]byte{1, 0, 2, 0, 3, 0})
	if n != 4 || !errors.Is(err, ErrPartialFrame) {
		t.Errorf("Write() = %d, %v; want 4, %v", n, err, ErrPartialFrame)
	}
	if w.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", w.Frames())
	}
	if w.BitDepth() != audio.Bits16 {
		t.Errorf("BitDepth() = %v", w.BitDepth())
	}
}

func TestNewWriter_UnsupportedBitDepth(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := NewWriter(f, 8000, 24); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("NewWriter() error = %v, want %v", err, ErrUnsupportedBitDepth)
	}
}
