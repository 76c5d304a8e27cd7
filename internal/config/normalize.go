package config

import (
	"fmt"
	"strings"

	"github.com/VikumKarunathilake/video-downloader-cli/internal/language"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeYTDLP()
	c.normalizeDefaults()
	c.normalizeHistory()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DownloadDir) != "" {
		if c.Paths.DownloadDir, err = expandPath(c.Paths.DownloadDir); err != nil {
			return fmt.Errorf("paths.download_dir: %w", err)
		}
	}
	if strings.TrimSpace(c.Paths.CookieDir) != "" {
		if c.Paths.CookieDir, err = expandPath(c.Paths.CookieDir); err != nil {
			return fmt.Errorf("paths.cookie_dir: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeYTDLP() {
	c.YTDLP.Binary = strings.TrimSpace(c.YTDLP.Binary)
	if c.YTDLP.Binary == "" {
		c.YTDLP.Binary = "yt-dlp"
	}
	c.YTDLP.VideoFormat = strings.TrimSpace(c.YTDLP.VideoFormat)
	if c.YTDLP.VideoFormat == "" {
		c.YTDLP.VideoFormat = defaultVideoFormat
	}
	c.YTDLP.AudioFormat = strings.ToLower(strings.TrimSpace(c.YTDLP.AudioFormat))
	if c.YTDLP.AudioFormat == "" {
		c.YTDLP.AudioFormat = defaultAudioFormat
	}
	args := c.YTDLP.ExtraArgs[:0]
	for _, arg := range c.YTDLP.ExtraArgs {
		if trimmed := strings.TrimSpace(arg); trimmed != "" {
			args = append(args, trimmed)
		}
	}
	c.YTDLP.ExtraArgs = args
}

func (c *Config) normalizeDefaults() {
	c.Defaults.OutputTemplate = strings.TrimSpace(c.Defaults.OutputTemplate)
	if c.Defaults.OutputTemplate == "" {
		c.Defaults.OutputTemplate = defaultOutputTemplate
	}
	c.Defaults.SubtitleLangs = language.NormalizeList(c.Defaults.SubtitleLangs)
	if len(c.Defaults.SubtitleLangs) == 0 {
		c.Defaults.SubtitleLangs = []string{"en"}
	}
}

func (c *Config) normalizeHistory() {
	if c.History.MaxEntries <= 0 {
		c.History.MaxEntries = defaultHistoryMax
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
