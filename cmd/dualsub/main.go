package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"dualsub/internal/config"
	"dualsub/internal/dropzone"
	"dualsub/internal/embed"
	"dualsub/internal/ffmpeg"
	"dualsub/internal/gui"
	"dualsub/internal/logging"
	"dualsub/pkg/util"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	ctx := context.Background()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dualsub",
	Short: "dualsub - burn English and Vietnamese subtitles into one MP4",
	Long:  "A drag-and-drop tool that burns two SRT tracks into a single MP4, English stacked above Vietnamese near the bottom of the frame.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging
		logging.Init(verbose)

		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// Store config in context
		ctx := config.WithConfig(cmd.Context(), cfg)
		cmd.SetContext(ctx)

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())
		gui.Run(logging.WithComponent("gui"), cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(embedCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}

var (
	embedVideo     string
	embedEN        string
	embedVI        string
	embedOut       string
	embedMode      string
	embedDownscale bool
	embedFontSize  int
	embedENMargin  int
	embedVIMargin  int
)

var embedCmd = &cobra.Command{
	Use:   "embed [paths...]",
	Short: "Burn both subtitle tracks without the GUI",
	Long: "Positional paths are routed like a drag-and-drop payload: a directory " +
		"sets the output folder, a video file fills the video slot and .srt files " +
		"are routed by the Vietnamese filename heuristic (brace-quote a path that " +
		"contains spaces). Flags override the routing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		assign := &dropzone.Assignment{}
		for _, arg := range args {
			assign.ClassifyPayload(arg)
		}

		job := embed.NewJob(cfg)
		job.VideoPath = assign.Video
		job.EnglishSubPath = assign.EnglishSub
		job.VietnameseSubPath = assign.VietnameseSub
		if assign.OutputDir != "" {
			job.OutputDir = assign.OutputDir
		}

		if embedVideo != "" {
			job.VideoPath = embedVideo
		}
		if embedEN != "" {
			job.EnglishSubPath = embedEN
		}
		if embedVI != "" {
			job.VietnameseSubPath = embedVI
		}
		if embedOut != "" {
			job.OutputDir = embedOut
		}
		if embedMode != "" {
			job.Mode = embedMode
		}
		job.Downscale = embedDownscale
		if cmd.Flags().Changed("font-size") {
			job.Style.FontSize = embedFontSize
		}
		if cmd.Flags().Changed("en-margin") {
			job.EnglishMargin = embedENMargin
		}
		if cmd.Flags().Changed("vi-margin") {
			job.VietnameseMargin = embedVIMargin
		}

		logger := logging.WithComponent("cli")
		exec, err := ffmpeg.New(logger, cfg.FFmpeg.BinaryPath)
		if err != nil {
			return err
		}

		progress := make(chan ffmpeg.Progress, 16)
		done := make(chan struct{})
		go func() {
			defer close(done)
			for p := range progress {
				log.Info().Str("time", p.Raw).Msg("encoding")
			}
		}()

		runner := embed.NewRunner(logger, exec)
		out, err := runner.Run(cmd.Context(), job, progress)
		<-done
		if err != nil {
			return err
		}

		log.Info().Str("output", out).Msg("created")
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Config file management",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current config to disk",
	Long:  "Writes the effective configuration (defaults merged with any loaded file) to --config, or to ~/.dualsub/config.yaml.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		path := cfgFile
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			path = filepath.Join(home, ".dualsub", "config.yaml")
		}

		if err := util.EnsureDir(filepath.Dir(path)); err != nil {
			return err
		}
		if err := cfg.Save(path); err != nil {
			return err
		}

		log.Info().Str("path", path).Msg("config written")
		return nil
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the compression presets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, mode := range ffmpeg.Modes() {
			s := ffmpeg.SettingsFor(mode)
			fmt.Printf("%-9s video=%s preset=%s crf=%d audio=%s@%s\n",
				mode, s.VideoCodec, s.Preset, s.CRF, s.AudioCodec, s.AudioBitrate)
		}
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)

	embedCmd.Flags().StringVar(&embedVideo, "video", "", "video file")
	embedCmd.Flags().StringVar(&embedEN, "en", "", "english subtitle file")
	embedCmd.Flags().StringVar(&embedVI, "vi", "", "vietnamese subtitle file")
	embedCmd.Flags().StringVar(&embedOut, "out", "", "output directory")
	embedCmd.Flags().StringVar(&embedMode, "mode", "", "compression mode (normal|smaller|smallest)")
	embedCmd.Flags().BoolVar(&embedDownscale, "downscale", false, "downscale to 720p")
	embedCmd.Flags().IntVar(&embedFontSize, "font-size", 0, "subtitle font size")
	embedCmd.Flags().IntVar(&embedENMargin, "en-margin", 0, "english margin in px from bottom")
	embedCmd.Flags().IntVar(&embedVIMargin, "vi-margin", 0, "vietnamese margin in px from bottom")
}
