package ytdlp

import (
	"reflect"
	"testing"
)

var testBuild = BuildOptions{
	VideoFormat: "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]",
	AudioFormat: "mp3",
}

func TestBuildArgs(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		opts BuildOptions
		want []string
	}{
		{
			name: "video defaults",
			req:  Request{URLs: []string{"https://youtu.be/abc"}, Type: TypeVideo},
			opts: testBuild,
			want: []string{
				"-f", "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]",
				"--no-playlist",
				"https://youtu.be/abc",
			},
		},
		{
			name: "audio only",
			req:  Request{URLs: []string{"https://youtu.be/abc"}, Type: TypeAudio},
			opts: testBuild,
			want: []string{
				"--extract-audio", "--audio-format", "mp3",
				"--no-playlist",
				"https://youtu.be/abc",
			},
		},
		{
			name: "custom format wins over audio",
			req:  Request{URLs: []string{"u"}, Type: TypeAudio, Format: "22+bestaudio"},
			opts: testBuild,
			want: []string{"-f", "22+bestaudio", "--no-playlist", "u"},
		},
		{
			name: "all extras",
			req: Request{
				URLs:           []string{"u1", "u2"},
				Type:           TypeVideo,
				OutputTemplate: "%(title)s.%(ext)s",
				Subtitles:      true,
				SubtitleLangs:  []string{"en", "es"},
				Playlist:       true,
				Metadata:       true,
				Thumbnail:      true,
				SponsorBlock:   true,
			},
			opts: testBuild,
			want: []string{
				"-f", "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]",
				"-o", "%(title)s.%(ext)s",
				"--write-subs", "--sub-langs", "en,es",
				"--add-metadata",
				"--embed-thumbnail",
				"--sponsorblock-remove", "default",
				"u1", "u2",
			},
		},
		{
			name: "cookies file",
			req:  Request{URLs: []string{"u"}, CookiesFile: "cookies.txt"},
			opts: testBuild,
			want: []string{
				"--cookies", "cookies.txt",
				"-f", "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]",
				"--no-playlist",
				"u",
			},
		},
		{
			name: "browser cookies",
			req:  Request{URLs: []string{"u"}, Type: TypeAudio, CookiesFromBrowser: "firefox"},
			opts: testBuild,
			want: []string{
				"--cookies-from-browser", "firefox",
				"--extract-audio", "--audio-format", "mp3",
				"--no-playlist",
				"u",
			},
		},
		{
			name: "cookies file shadows browser",
			req:  Request{URLs: []string{"u"}, Format: "best", CookiesFile: "c.txt", CookiesFromBrowser: "chrome"},
			opts: testBuild,
			want: []string{"--cookies", "c.txt", "-f", "best", "--no-playlist", "u"},
		},
		{
			name: "subtitles default language",
			req:  Request{URLs: []string{"u"}, Format: "best", Subtitles: true},
			opts: testBuild,
			want: []string{"-f", "best", "--write-subs", "--sub-langs", "en", "--no-playlist", "u"},
		},
		{
			name: "download dir and extra args",
			req:  Request{URLs: []string{"u"}, Format: "best"},
			opts: BuildOptions{
				DownloadDir: "/videos",
				ExtraArgs:   []string{"--restrict-filenames"},
			},
			want: []string{"-f", "best", "-P", "/videos", "--no-playlist", "--restrict-filenames", "u"},
		},
		{
			name: "blank urls dropped",
			req:  Request{URLs: []string{" ", "u", ""}, Format: "best"},
			opts: BuildOptions{},
			want: []string{"-f", "best", "--no-playlist", "u"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildArgs(tc.req, tc.opts)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("BuildArgs:\n got %q\nwant %q", got, tc.want)
			}
		})
	}
}

func TestBuildFormatListArgs(t *testing.T) {
	got := BuildFormatListArgs("https://youtu.be/abc", "")
	want := []string{"-F", "https://youtu.be/abc"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}

	got = BuildFormatListArgs("u", "cookies.txt")
	want = []string{"-F", "--cookies", "cookies.txt", "u"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRequestValidate(t *testing.T) {
	cases := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"ok", Request{URLs: []string{"u"}}, false},
		{"no urls", Request{}, true},
		{"blank urls", Request{URLs: []string{" ", ""}}, true},
		{"custom without format", Request{URLs: []string{"u"}, Type: TypeCustom}, true},
		{"custom with format", Request{URLs: []string{"u"}, Type: TypeCustom, Format: "best"}, false},
		{"unknown type", Request{URLs: []string{"u"}, Type: Type("torrent")}, true},
		{"both cookie sources", Request{URLs: []string{"u"}, CookiesFile: "c", CookiesFromBrowser: "chrome"}, true},
		{"unsupported browser", Request{URLs: []string{"u"}, CookiesFromBrowser: "netscape"}, true},
		{"supported browser", Request{URLs: []string{"u"}, CookiesFromBrowser: "brave"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
