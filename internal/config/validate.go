package config

import (
	"errors"
	"fmt"
	"strings"
)

var validLogFormats = map[string]struct{}{
	"console": {},
	"json":    {},
}

var validAudioFormats = map[string]struct{}{
	"mp3":    {},
	"m4a":    {},
	"opus":   {},
	"flac":   {},
	"wav":    {},
	"aac":    {},
	"alac":   {},
	"vorbis": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateYTDLP(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateYTDLP() error {
	if strings.ContainsAny(c.YTDLP.Binary, " \t") {
		return fmt.Errorf("ytdlp.binary %q must be a bare executable name or path, not a command line", c.YTDLP.Binary)
	}
	if _, ok := validAudioFormats[c.YTDLP.AudioFormat]; !ok {
		return fmt.Errorf("ytdlp.audio_format %q is not supported by yt-dlp --audio-format", c.YTDLP.AudioFormat)
	}
	for _, arg := range c.YTDLP.ExtraArgs {
		// URLs belong on the command line, not in passthrough args, or they
		// would be downloaded on every invocation.
		if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
			return fmt.Errorf("ytdlp.extra_args must not contain URLs (found %q)", arg)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, ok := validLogFormats[c.Logging.Format]; !ok {
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
}
