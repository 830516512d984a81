// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"strings"
	"sync"
)

// Source produces interleaved little-endian stereo PCM, the same shape of
// data a Bluetooth stack hands to the sink callbacks.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count. Sources used with the sink pipeline are stereo.
	Channels() int
	// BitDepth of every sample returned by ReadPCM.
	BitDepth() BitDepth
	// ReadPCM fills dst with whole frames and returns the number of bytes
	// written. When n == 0 with err == io.EOF, the stream is finished. As
	// with io.Reader, n > 0 bytes may accompany a non-nil error.
	ReadPCM(dst []byte) (n int, err error)

	// Close releases any resources.
	Close() error
}

// FrameWriter accepts PCM produced by the pipeline.
type FrameWriter interface {
	io.Writer
	BitDepth() BitDepth
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by container key (e.g., "wav", "aiff").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

// normalizeFormat lets callers pass a file extension such as ".WAV".
func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeFormat(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[normalizeFormat(format)]
	return d, ok
}

// Formats lists the registered keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	formats := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		formats = append(formats, k)
	}
	slices.Sort(formats)
	return formats
}
