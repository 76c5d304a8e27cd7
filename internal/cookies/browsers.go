package cookies

import "strings"

// Browsers lists the browsers yt-dlp can extract cookies from via
// --cookies-from-browser, in the order they are offered interactively.
func Browsers() []string {
	return []string{"chrome", "firefox", "edge", "brave", "opera", "safari", "chromium", "vivaldi"}
}

// SupportedBrowser reports whether name is a known --cookies-from-browser
// target. yt-dlp accepts an optional keyring/profile suffix after a colon or
// plus sign; only the browser part is checked.
func SupportedBrowser(name string) bool {
	browser := strings.ToLower(strings.TrimSpace(name))
	if i := strings.IndexAny(browser, ":+"); i >= 0 {
		browser = browser[:i]
	}
	for _, known := range Browsers() {
		if browser == known {
			return true
		}
	}
	return false
}
