// Package fetcher binds the external yt-dlp tool. Everything media-specific
// (extraction, format negotiation, muxing) is delegated to it; this package
// only builds option bundles and bridges its progress stream into domain
// events.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/tubegrab/tubegrab/internal/domain"
	"github.com/tubegrab/tubegrab/internal/infra/logger"
)

const progressInterval = 500 * time.Millisecond

// YTDLP runs probe and fetch operations through the yt-dlp binary.
type YTDLP struct {
	outDir string
	log    *logger.Logger
}

func New(outDir string, log *logger.Logger) *YTDLP {
	return &YTDLP{outDir: outDir, log: log}
}

// rawInfo is the subset of yt-dlp's JSON metadata the probe cares about.
type rawInfo struct {
	Type       string            `json:"_type"`
	Title      string            `json:"title"`
	Uploader   string            `json:"uploader"`
	Channel    string            `json:"channel"`
	Duration   float64           `json:"duration"`
	Thumbnail  string            `json:"thumbnail"`
	ViewCount  int64             `json:"view_count"`
	UploadDate string            `json:"upload_date"`
	Entries    []json.RawMessage `json:"entries"`
}

// Probe resolves metadata for a URL without downloading anything. Playlist
// URLs are extracted flat so probing stays cheap.
func (f *YTDLP) Probe(ctx context.Context, url string) (domain.MediaInfo, error) {
	cmd := ytdlp.New().
		SkipDownload().
		DumpSingleJSON().
		NoWarnings()

	if IsPlaylistURL(url) {
		cmd = cmd.FlatPlaylist()
	}

	res, err := cmd.Run(ctx, url)
	if err != nil {
		return domain.MediaInfo{}, err
	}

	var raw rawInfo
	if err := json.Unmarshal([]byte(res.Stdout), &raw); err != nil {
		return domain.MediaInfo{}, fmt.Errorf("could not extract video info: %w", err)
	}

	info := domain.MediaInfo{
		Title:      raw.Title,
		Channel:    raw.Uploader,
		Thumbnail:  raw.Thumbnail,
		ViewCount:  raw.ViewCount,
		UploadDate: raw.UploadDate,
	}
	if info.Title == "" {
		info.Title = "Unknown"
	}
	if info.Channel == "" {
		info.Channel = raw.Channel
	}
	if info.Channel == "" {
		info.Channel = "Unknown"
	}
	if raw.Duration > 0 {
		info.Duration = int(raw.Duration)
		info.DurationString = domain.FormatDuration(info.Duration)
	}
	if raw.Type == "playlist" || len(raw.Entries) > 0 {
		info.IsPlaylist = true
		info.PlaylistCount = len(raw.Entries)
	}

	return info, nil
}

// Fetch downloads one URL to the output directory, reporting progress through
// onEvent. The callback is invoked synchronously from the download's own
// call stack; it must translate-and-store, never block.
func (f *YTDLP) Fetch(ctx context.Context, req domain.FetchRequest, onEvent func(domain.ProgressEvent)) error {
	cmd := ytdlp.New().
		Output(filepath.Join(f.outDir, OutputTemplate(req.Playlist))).
		RestrictFilenames().
		Format(FormatSelector(req.Mode, req.Quality)).
		MergeOutputFormat("mp4").
		Retries("10").
		FragmentRetries("10").
		ConcurrentFragments(4).
		EmbedMetadata()

	if !req.Playlist {
		cmd = cmd.NoPlaylist()
	}

	if req.Mode == domain.ModeAudio {
		cmd = cmd.ExtractAudio().AudioFormat(NormalizeAudioFormat(req.AudioFormat))
		if NormalizeAudioFormat(req.AudioFormat) == "mp3" {
			cmd = cmd.AudioQuality("192K")
		}
	}

	if onEvent != nil {
		cmd = cmd.ProgressFunc(progressInterval, func(up ytdlp.ProgressUpdate) {
			onEvent(translateUpdate(up))
		})
	}

	f.log.Debug("yt-dlp fetch starting: %s (mode=%s quality=%s)", req.URL, req.Mode, NormalizeQuality(req.Quality))

	_, err := cmd.Run(ctx, req.URL)
	return err
}

// translateUpdate converts a yt-dlp progress update into a domain event.
// Speed is derived from the byte counters because yt-dlp's own speed figure
// is not exposed through the structured progress stream.
func translateUpdate(up ytdlp.ProgressUpdate) domain.ProgressEvent {
	ev := domain.ProgressEvent{
		DownloadedBytes: int64(up.DownloadedBytes),
		TotalBytes:      int64(up.TotalBytes),
		ETASeconds:      -1,
		Filename:        up.Filename,
	}

	switch up.Status {
	case ytdlp.ProgressStatusDownloading:
		ev.Phase = domain.PhaseDownloading
	case ytdlp.ProgressStatusPostProcessing, ytdlp.ProgressStatusFinished:
		ev.Phase = domain.PhaseFinished
	default:
		ev.Phase = string(up.Status)
	}

	if !up.Started.IsZero() {
		if elapsed := time.Since(up.Started).Seconds(); elapsed > 0 && up.DownloadedBytes > 0 {
			ev.Speed = float64(up.DownloadedBytes) / elapsed
		}
	}
	if eta := up.ETA(); eta > 0 {
		ev.ETASeconds = int(eta.Seconds())
	}

	return ev
}
