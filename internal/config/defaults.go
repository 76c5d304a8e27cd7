package config

const (
	defaultLogDir         = "~/.local/share/vdl/logs"
	defaultOutputTemplate = "%(title)s.%(ext)s"
	defaultVideoFormat    = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]"
	defaultAudioFormat    = "mp3"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultHistoryMax     = 500
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		YTDLP: YTDLP{
			Binary:      "yt-dlp",
			VideoFormat: defaultVideoFormat,
			AudioFormat: defaultAudioFormat,
		},
		Defaults: Defaults{
			OutputTemplate: defaultOutputTemplate,
			SubtitleLangs:  []string{"en"},
		},
		History: History{
			Enabled:    true,
			MaxEntries: defaultHistoryMax,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
