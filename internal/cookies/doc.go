// Package cookies locates YouTube cookie export files and validates browser
// names for yt-dlp's --cookies-from-browser flag.
package cookies
