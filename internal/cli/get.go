package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tubegrab/tubegrab/internal/domain"
	"github.com/tubegrab/tubegrab/internal/fetcher"
	"github.com/tubegrab/tubegrab/internal/progress"
)

func newGetCmd() *cobra.Command {
	var (
		mode        string
		quality     string
		audioFormat string
	)

	cmd := &cobra.Command{
		Use:   "get URL [URL...]",
		Short: "Download one or more URLs and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode != domain.ModeVideo && mode != domain.ModeAudio {
				return domain.ErrInvalidMode
			}

			appCtx, err := setup()
			if err != nil {
				return err
			}

			// Same concurrency bound as the daemon's worker pool.
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(appCtx.Config.Download.MaxWorkers)

			single := len(args) == 1

			for _, rawURL := range args {
				g.Go(func() error {
					var last domain.Task
					err := appCtx.Fetcher.Fetch(ctx, domain.FetchRequest{
						URL:         rawURL,
						Mode:        mode,
						Quality:     quality,
						AudioFormat: audioFormat,
						Playlist:    fetcher.IsPlaylistURL(rawURL),
					}, func(ev domain.ProgressEvent) {
						next, ok := progress.Translate(last, ev)
						if !ok {
							return
						}
						last = next
						if single {
							renderProgress(next, ev)
						}
					})
					if err != nil {
						return fmt.Errorf("%s: %w", rawURL, err)
					}
					if single {
						fmt.Println()
					}
					fmt.Printf("Done: %s\n", rawURL)
					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			fmt.Printf("Saved to: %s\n", appCtx.Config.Download.OutDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", domain.ModeVideo, "video or audio")
	cmd.Flags().StringVar(&quality, "quality", "best", "best, 1080, 720, 480, 360, 270 or 144")
	cmd.Flags().StringVar(&audioFormat, "audio-format", "m4a", "m4a or mp3 (audio mode)")

	return cmd
}

// renderProgress overwrites a single status line, teacher-style progress bar
// omitted: name, percent, transferred bytes, speed and ETA are enough here.
func renderProgress(task domain.Task, ev domain.ProgressEvent) {
	if task.Status == domain.StatusProcessing {
		fmt.Printf("\r%-40.40s  postprocessing...                              ", task.Filename)
		return
	}

	total := "?"
	if ev.TotalBytes > 0 {
		total = humanize.IBytes(uint64(ev.TotalBytes))
	}

	fmt.Printf("\r%-40.40s %5.1f%%  %s/%s  %s  ETA %s      ",
		task.Filename,
		task.Progress,
		humanize.IBytes(uint64(ev.DownloadedBytes)),
		total,
		task.Speed,
		task.ETA,
	)
}
