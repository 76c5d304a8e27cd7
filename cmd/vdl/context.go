package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/VikumKarunathilake/video-downloader-cli/internal/config"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/logging"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/ytdlp"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// newClient builds the yt-dlp client from the resolved configuration.
func (c *commandContext) newClient(opts ...ytdlp.Option) (*ytdlp.CLI, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	build := ytdlp.BuildOptions{
		VideoFormat: cfg.YTDLP.VideoFormat,
		AudioFormat: cfg.YTDLP.AudioFormat,
		DownloadDir: cfg.Paths.DownloadDir,
		ExtraArgs:   cfg.YTDLP.ExtraArgs,
	}
	options := append([]ytdlp.Option{
		ytdlp.WithBinary(cfg.Binary()),
		ytdlp.WithLogger(logger),
	}, opts...)
	return ytdlp.NewCLI(build, options...), nil
}
