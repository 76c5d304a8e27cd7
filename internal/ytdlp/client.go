package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/VikumKarunathilake/video-downloader-cli/internal/deps"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/logging"
)

var commandContext = exec.CommandContext

// Client defines yt-dlp invocation behaviour.
type Client interface {
	Download(ctx context.Context, req Request) error
	ListFormats(ctx context.Context, url, cookiesFile string) error
	Version(ctx context.Context) (string, error)
}

// ExitError reports a yt-dlp run that finished with a non-zero status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("yt-dlp exited with status %d", e.Code)
}

// ExitCode extracts the exit status the process should propagate for err.
// nil maps to 0, an ExitError to the child's status, anything else to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	return 1
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithOutput redirects the relayed subprocess output.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(c *CLI) {
		if stdout != nil {
			c.stdout = stdout
		}
		if stderr != nil {
			c.stderr = stderr
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *CLI) {
		if logger != nil {
			c.logger = logging.NewComponentLogger(logger, "ytdlp")
		}
	}
}

// CLI wraps the yt-dlp command-line downloader. Output is relayed verbatim;
// yt-dlp owns all progress rendering.
type CLI struct {
	binary string
	build  BuildOptions
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// NewCLI constructs a client using defaults.
func NewCLI(build BuildOptions, opts ...Option) *CLI {
	cli := &CLI{
		binary: "yt-dlp",
		build:  build,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Download validates the request, builds the argument list, and runs yt-dlp,
// relaying its output and surfacing its exit status.
func (c *CLI) Download(ctx context.Context, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	args := BuildArgs(req, c.build)
	return c.run(ctx, args)
}

// ListFormats runs yt-dlp -F for the given URL.
func (c *CLI) ListFormats(ctx context.Context, url, cookiesFile string) error {
	return c.run(ctx, BuildFormatListArgs(url, cookiesFile))
}

// Version probes the installed yt-dlp version.
func (c *CLI) Version(ctx context.Context) (string, error) {
	return deps.Version(ctx, c.binary)
}

func (c *CLI) run(ctx context.Context, args []string) error {
	if _, err := exec.LookPath(c.binary); err != nil {
		return fmt.Errorf("%w: %q", deps.ErrMissingBinary, c.binary)
	}

	cmd := commandContext(ctx, c.binary, args...) //nolint:gosec
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr
	cmd.Stdin = os.Stdin

	started := time.Now()
	c.logger.Debug("invoking",
		logging.String(logging.FieldBinary, c.binary),
		logging.Any("args", args),
	)

	err := cmd.Run()
	if err == nil {
		c.logger.Debug("finished", logging.Duration("took", time.Since(started)))
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		c.logger.Debug("finished",
			logging.Duration("took", time.Since(started)),
			logging.Int(logging.FieldExitCode, code),
		)
		return &ExitError{Code: code}
	}
	return fmt.Errorf("run %s: %w", c.binary, err)
}

var _ Client = (*CLI)(nil)
