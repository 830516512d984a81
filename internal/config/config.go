// SPDX-License-Identifier: EPL-2.0

// Package config loads the a2dpsink-pcm settings with viper: built-in
// defaults, then an optional config file, then A2DPSINK_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	"github.com/ik5/a2dpsink"
	"github.com/ik5/a2dpsink/peervolume"
	"github.com/ik5/a2dpsink/sink"
	"github.com/ik5/a2dpsink/volume"
)

const envPrefix = "A2DPSINK"

// Config is the flattened view of every setting.
type Config struct {
	Curve            volume.Kind
	VolumeEnabled    bool
	MonoDownmix      bool
	SwapChannels     bool
	SignedToUnsigned bool
	CacheCapacity    int
	DefaultVolume    int
	BufferFrames     int

	LogLevel string
	LogFile  string

	// FileUsed is the config file that was read, empty when none was.
	FileUsed string
}

func setViperDefaults(v *viper.Viper) {
	def := sink.DefaultConfig()

	v.SetDefault("curve", def.Curve.String())
	v.SetDefault("volumeenabled", def.VolumeEnabled)
	v.SetDefault("monodownmix", def.MonoDownmix)
	v.SetDefault("swapchannels", def.SwapChannels)
	v.SetDefault("signedtounsigned", def.SignedToUnsigned)
	v.SetDefault("cachecapacity", int(def.CacheCapacity))
	v.SetDefault("defaultvolume", int(def.DefaultVolume))
	v.SetDefault("bufferframes", a2dpsink.DefaultBufferFrames)
	v.SetDefault("loglevel", "info")
	v.SetDefault("logfile", "")
}

// Load reads configFilePath when it is not empty. A missing file is not an
// error; Config.FileUsed is then empty. A malformed file or an unknown curve
// name is.
func Load(configFilePath string) (Config, error) {
	v := viper.New()
	setViperDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	var cfg Config
	if configFilePath != "" {
		v.SetConfigFile(configFilePath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("reading config %s: %w", configFilePath, err)
			}
		} else {
			cfg.FileUsed = v.ConfigFileUsed()
		}
	}

	curve, err := volume.ParseKind(v.GetString("curve"))
	if err != nil {
		return Config{}, fmt.Errorf("config curve: %w", err)
	}

	cfg.Curve = curve
	cfg.VolumeEnabled = v.GetBool("volumeenabled")
	cfg.MonoDownmix = v.GetBool("monodownmix")
	cfg.SwapChannels = v.GetBool("swapchannels")
	cfg.SignedToUnsigned = v.GetBool("signedtounsigned")
	cfg.CacheCapacity = v.GetInt("cachecapacity")
	cfg.DefaultVolume = v.GetInt("defaultvolume")
	cfg.BufferFrames = v.GetInt("bufferframes")
	cfg.LogLevel = v.GetString("loglevel")
	cfg.LogFile = v.GetString("logfile")

	if cfg.BufferFrames <= 0 {
		cfg.BufferFrames = a2dpsink.DefaultBufferFrames
	}

	return cfg, nil
}

// Sink converts the settings into a sink.Config, clamping the cache
// capacity to 0..255 and the default volume to 0..127.
func (c Config) Sink() sink.Config {
	return sink.Config{
		Curve:            c.Curve,
		VolumeEnabled:    c.VolumeEnabled,
		MonoDownmix:      c.MonoDownmix,
		SwapChannels:     c.SwapChannels,
		SignedToUnsigned: c.SignedToUnsigned,
		CacheCapacity:    uint8(clamp(c.CacheCapacity, 0, 255)),
		DefaultVolume:    uint8(clamp(c.DefaultVolume, 0, peervolume.MaxVolume)),
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
