package main

import (
	"flag"
	"image"
	"image/png"
	"os"
	"runtime"

	"lumen/internal/display"
	"lumen/internal/logger"
	"lumen/internal/util"
	"lumen/pkg/config"
	"lumen/pkg/render"
	"lumen/pkg/scene"
)

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	scenePath := flag.String("scene", "", "Path to YAML scene description")
	outPath := flag.String("out", "out.png", "Path to output PNG image")
	width := flag.Int("width", 0, "Image width (overrides config)")
	height := flag.Int("height", 0, "Image height (overrides config)")
	warn := flag.Bool("warn", false, "Show scene compilation warnings")
	show := flag.Bool("display", false, "Show the rendered image in a window")
	logLevel := flag.String("log-level", "", "Log level (overrides config)")
	flag.Parse()

	cfg, cfgErr := config.LoadConfig(*configPath)

	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	log := newLogger(cfg)
	if cfgErr != nil {
		log.Debugf("%v", cfgErr)
	}

	if *scenePath == "" {
		log.Fatal("no scene file given, use -scene")
	}
	if !util.FileExists(*scenePath) {
		log.Fatalf("scene file not found: %s", *scenePath)
	}

	if *width > 0 {
		cfg.Render.Width = *width
	}
	if *height > 0 {
		cfg.Render.Height = *height
	}
	if *warn {
		cfg.Render.ShowWarnings = true
	}
	if *show {
		cfg.Display.Enabled = true
	}

	seq, err := scene.LoadFile(*scenePath)
	if err != nil {
		log.Fatalf("failed to load scene: %v", err)
	}

	renderer := render.New(render.Options{
		Width:        cfg.Render.Width,
		Height:       cfg.Render.Height,
		NumThreads:   cfg.Render.NumThreads,
		ShowWarnings: cfg.Render.ShowWarnings,
		ShadeAtHit:   cfg.Render.ShadeAtHit,
	}, log)

	log.Infof("Rendering %s at %dx%d...", *scenePath, cfg.Render.Width, cfg.Render.Height)
	img, err := renderer.Render(seq)
	if err != nil {
		log.Fatalf("failed to render scene: %v", err)
	}

	if err := writePNG(*outPath, img); err != nil {
		log.Fatalf("failed to write image: %v", err)
	}
	log.Infof("Wrote %s", *outPath)

	if cfg.Display.Enabled {
		if err := display.Show(cfg.Display.Title, img, cfg.Display.Scale); err != nil {
			log.Fatalf("failed to display image: %v", err)
		}
	}
}

// newLogger builds the logger from the logging configuration
func newLogger(cfg *config.Config) *logger.Logger {
	if cfg.Logging.File != "" {
		log, err := logger.NewFileLogger(cfg.Logging.Level, cfg.Logging.File)
		if err == nil {
			return log
		}
	}
	return logger.NewLogger(cfg.Logging.Level)
}

// writePNG encodes the rendered image to disk
func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}
