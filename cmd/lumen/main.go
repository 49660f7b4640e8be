package main

import (
	"os"
	"runtime"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lumengo/lumen/internal/lumen"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	var (
		configPath string
		width      int
		height     int
		title      string
		uncapped   bool
		logLevel   string
		capture    int
		captureOut string
	)

	root := &cobra.Command{
		Use:   "lumen",
		Short: "Real-time GPU ray tracer",
		Long:  "lumen ray traces a scene in a compute pass and presents it through a full-screen quad.",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)

			// optional; a missing .env is fine
			if err := godotenv.Load(); err == nil {
				log.Debug("loaded .env")
			}

			cfg, err := lumen.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("width") {
				cfg.Window.Width = width
			}
			if cmd.Flags().Changed("height") {
				cfg.Window.Height = height
			}
			if cmd.Flags().Changed("title") {
				cfg.Window.Title = title
			}
			if cmd.Flags().Changed("uncapped") {
				cfg.Window.Uncapped = uncapped
			}
			if cmd.Flags().Changed("capture") {
				cfg.Capture = capture
			}
			if cmd.Flags().Changed("out") {
				cfg.CaptureOut = captureOut
			}
			return lumen.Run(cfg)
		},
		SilenceUsage: true,
	}

	flags := root.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "scene config file (JSON)")
	flags.IntVar(&width, "width", lumen.WindowWidth, "window width in pixels")
	flags.IntVar(&height, "height", lumen.WindowHeight, "window height in pixels")
	flags.StringVar(&title, "title", lumen.WindowTitle, "window title")
	flags.BoolVar(&uncapped, "uncapped", false, "disable vsync")
	flags.StringVar(&logLevel, "log-level", "info", "log level (trace..error)")
	flags.IntVar(&capture, "capture", 0, "render N frames, write a PNG and exit")
	flags.StringVar(&captureOut, "out", "frame.png", "capture output path")

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
