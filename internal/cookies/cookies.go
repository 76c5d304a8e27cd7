package cookies

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// searchNames are the cookie file names probed during discovery, most specific
// first, matching what browser cookie exporters produce for YouTube.
var searchNames = []string{
	"www.youtube.com_cookies.txt",
	"youtube.com_cookies.txt",
	"cookies.txt",
}

// netscapeFieldCount is the number of tab-separated fields in a Netscape
// format cookie line.
const netscapeFieldCount = 7

// Discover searches the given directories in order for a known cookie file
// and returns the first match. An empty string means nothing was found; that
// is not an error.
func Discover(dirs ...string) string {
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		for _, name := range searchNames {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			if err != nil || info.IsDir() {
				continue
			}
			return candidate
		}
	}
	return ""
}

// LooksNetscape sniffs whether the file's first data line resembles Netscape
// cookie format. Comment lines (#) and blank lines are skipped. An empty or
// unreadable file reports false.
func LooksNetscape(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		// #HttpOnly_ prefixed lines are data, other # lines are comments.
		if strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "#HttpOnly_") {
			continue
		}
		return len(strings.Split(line, "\t")) == netscapeFieldCount
	}
	return false
}
