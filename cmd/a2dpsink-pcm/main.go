// SPDX-License-Identifier: EPL-2.0

// Command a2dpsink-pcm runs a WAV or AIFF file through the A2DP sink
// pipeline and writes the result as WAV, for checking volume curves and
// transforms without a Bluetooth stack.
//
//	a2dpsink-pcm --config a2dpsink.yaml --in in.wav --out out.wav \
//	    --peer a0:b1:c2:d3:e4:f5 --volume 90
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/ik5/a2dpsink"
	"github.com/ik5/a2dpsink/audio"
	"github.com/ik5/a2dpsink/formats/aiff"
	"github.com/ik5/a2dpsink/formats/wav"
	"github.com/ik5/a2dpsink/internal/config"
	"github.com/ik5/a2dpsink/internal/logging"
	"github.com/ik5/a2dpsink/peervolume"
	"github.com/ik5/a2dpsink/sink"
)

var (
	errUsage          = errors.New("usage: a2dpsink-pcm --in <input.{wav|aiff}> --out <output.wav>")
	errVolumeNeedPeer = errors.New("--volume requires --peer")
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

func run(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("a2dpsink-pcm", pflag.ContinueOnError)
	configPath := fs.StringP("config", "c", "a2dpsink.yaml", "Path to the config file.")
	inPath := fs.StringP("in", "i", "", "Input WAV or AIFF file.")
	outPath := fs.StringP("out", "o", "", "Output WAV file.")
	peer := fs.StringP("peer", "p", "", "Peer address to connect before streaming, e.g. a0:b1:c2:d3:e4:f5.")
	level := fs.IntP("volume", "v", -1, "AVRCP volume (0-127) sent by the peer before streaming.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errUsage
	}
	if *level >= 0 && *peer == "" {
		return errVolumeNeedPeer
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logBknd, err := logging.New(cfg.LogFile, cfg.LogLevel, stdout)
	if err != nil {
		return err
	}
	defer logBknd.Close()
	log := logBknd.Logger(logging.SubsysMain)

	if cfg.FileUsed == "" {
		log.Infof("No config file found at %s, using defaults", *configPath)
	} else {
		log.Debugf("Loaded config from %s", cfg.FileUsed)
	}

	s, err := sink.New(cfg.Sink(), logBknd.Logger(logging.SubsysSink))
	if err != nil {
		return err
	}

	if *peer != "" {
		addr, err := peervolume.ParseAddress(*peer)
		if err != nil {
			return err
		}
		restored := s.OnPeerConnected(addr)
		log.Infof("Connected %v, restored volume %d", addr, restored)

		if *level >= 0 {
			s.OnVolumeChange(addr, uint8(min(*level, 255)))
		}
	}

	ext := filepath.Ext(*inPath)
	dec, ok := newRegistry().Get(ext)
	if !ok {
		return fmt.Errorf("unsupported format: %q", ext)
	}

	inFile, err := os.Open(*inPath)
	if err != nil {
		return err
	}
	src, err := dec.Decode(inFile)
	if err != nil {
		inFile.Close()
		return fmt.Errorf("decoding %s: %w", *inPath, err)
	}
	defer src.Close()

	outFile, err := os.Create(*outPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	w, err := wav.NewWriter(outFile, src.SampleRate(), src.BitDepth())
	if err != nil {
		return err
	}

	frames, err := a2dpsink.Stream(src, w, s, cfg.BufferFrames)
	if err != nil {
		return fmt.Errorf("streaming %s: %w", *inPath, err)
	}
	if err := w.Close(); err != nil {
		return err
	}

	factor, factorMax := s.Factor()
	log.Infof("Wrote %d frames to %s", frames, *outPath)
	fmt.Fprintf(stdout, "factor %d/%d, %d frames\n", factor, factorMax, frames)

	return outFile.Sync()
}
