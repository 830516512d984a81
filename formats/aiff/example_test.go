// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ik5/a2dpsink/formats/aiff"
)

// ExampleDecoder_Decode shows how to decode an AIFF file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.aiff")
	if err != nil {
		log.Fatal(err)
	}

	// Closing the source closes f.
	src, err := aiff.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	fmt.Printf("Decoded AIFF: %d Hz, %v stereo\n", src.SampleRate(), src.BitDepth())

	buf := make([]byte, 1024*src.BitDepth().FrameSize())
	for {
		n, err := src.ReadPCM(buf)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		_ = buf[:n] // little-endian interleaved PCM
	}
}
