package fetcher

import (
	"testing"

	"github.com/tubegrab/tubegrab/internal/domain"
)

func TestNormalizeQuality(t *testing.T) {
	tests := []struct{ in, want string }{
		{"best", "best"},
		{"1080", "1080"},
		{"1080p", "1080"},
		{" 720P ", "720"},
		{"480p", "480"},
		{"144", "144"},
		{"4k", "best"},
		{"", "best"},
		{"garbage", "best"},
	}
	for _, tt := range tests {
		if got := NormalizeQuality(tt.in); got != tt.want {
			t.Errorf("NormalizeQuality(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeAudioFormat(t *testing.T) {
	tests := []struct{ in, want string }{
		{"mp3", "mp3"},
		{"MP3", "mp3"},
		{"m4a", "m4a"},
		{"flac", "m4a"},
		{"", "m4a"},
	}
	for _, tt := range tests {
		if got := NormalizeAudioFormat(tt.in); got != tt.want {
			t.Errorf("NormalizeAudioFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSelector(t *testing.T) {
	tests := []struct {
		mode, quality string
		want          string
	}{
		{domain.ModeAudio, "1080", "bestaudio/best"},
		{domain.ModeVideo, "best", "bestvideo+bestaudio/best"},
		{domain.ModeVideo, "1080", "bestvideo[height<=1080]+bestaudio/best"},
		{domain.ModeVideo, "720p", "bestvideo[height<=720]+bestaudio/best"},
		{domain.ModeVideo, "480", "bestvideo[height<=480]+bestaudio/best[height<=480]/best"},
		{domain.ModeVideo, "144", "bestvideo[height<=144]+bestaudio/best[height<=144]/best"},
		{domain.ModeVideo, "nonsense", "bestvideo+bestaudio/best"},
	}
	for _, tt := range tests {
		if got := FormatSelector(tt.mode, tt.quality); got != tt.want {
			t.Errorf("FormatSelector(%q, %q) = %q, want %q", tt.mode, tt.quality, got, tt.want)
		}
	}
}

func TestIsPlaylistURL(t *testing.T) {
	if !IsPlaylistURL("https://www.youtube.com/watch?v=abc&list=PLxyz") {
		t.Error("list= query should mark a playlist")
	}
	if IsPlaylistURL("https://www.youtube.com/watch?v=abc") {
		t.Error("plain watch URL is not a playlist")
	}
}

func TestOutputTemplate(t *testing.T) {
	if got := OutputTemplate(false); got != "%(title)s.%(ext)s" {
		t.Errorf("single template = %q", got)
	}
	if got := OutputTemplate(true); got != "%(playlist_index)03d - %(title)s.%(ext)s" {
		t.Errorf("playlist template = %q", got)
	}
}
