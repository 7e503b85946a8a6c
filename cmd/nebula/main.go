// nebula opens a window rendering the interactive particle field for an
// image: the silhouette assembles at rest and disperses around the cursor.
//
// Keys: S saves a snapshot, C releases the interaction point, Escape quits.
package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/tfriedel6/canvas/sdlcanvas"
	"go.uber.org/zap"

	"github.com/lixenwraith/nebula/config"
	"github.com/lixenwraith/nebula/field"
	"github.com/lixenwraith/nebula/interaction"
	"github.com/lixenwraith/nebula/observability"
	"github.com/lixenwraith/nebula/sampler"
	"github.com/lixenwraith/nebula/viewport"
)

var (
	cfgFile    string
	imagePath  string
	flagWidth  int
	flagHeight int
	flagRadius float64
)

var rootCmd = &cobra.Command{
	Use:   "nebula",
	Short: "Interactive particle-field visualization of an image",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("width") {
			cfg.Field.Width = flagWidth
		}
		if cmd.Flags().Changed("height") {
			cfg.Field.Height = flagHeight
		}
		if cmd.Flags().Changed("radius") {
			cfg.Field.InteractionRadius = flagRadius
		}

		observability.InitializeLogger(cfg.Logger)
		defer observability.Sync()

		return run(cfg)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file (default ./nebula.yaml)")
	rootCmd.Flags().StringVarP(&imagePath, "image", "i", "", "image to decompose (png or jpeg)")
	rootCmd.Flags().IntVar(&flagWidth, "width", 1280, "window width in pixels")
	rootCmd.Flags().IntVar(&flagHeight, "height", 800, "window height in pixels")
	rootCmd.Flags().Float64Var(&flagRadius, "radius", 320, "interaction influence radius in pixels")
	_ = rootCmd.MarkFlagRequired("image")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	log := observability.L()

	img, err := loadImage(imagePath)
	if err != nil {
		return err
	}

	wnd, cv, err := sdlcanvas.CreateWindow(cfg.Field.Width, cfg.Field.Height, "nebula")
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer wnd.Destroy()

	tracker := interaction.NewTracker()
	fld := field.New(cv.Width(), cv.Height(), tracker,
		field.WithRadius(cfg.Field.InteractionRadius),
		field.WithLogger(log))

	vp := viewport.NewManager(fld.SetSize,
		func(im image.Image, w, h int) {
			gen := fld.BeginSample()
			set, err := sampler.Sample(im, w, h)
			if err != nil {
				log.Warn("sampling skipped", zap.Error(err))
				return
			}
			fld.Install(set, gen)
		},
		viewport.WithDebounce(time.Duration(cfg.Field.DebounceMS)*time.Millisecond),
		viewport.WithLogger(log))
	defer vp.Stop()

	vp.SetBitmap(img)
	vp.Mount(cv.Width(), cv.Height())

	wnd.MouseMove = func(x, y int) {
		fld.SetInteractionPoint(float64(x), float64(y))
	}
	wnd.SizeChange = func(w, h int) {
		vp.Resize(w, h)
	}
	wnd.KeyDown = func(scancode int, rn rune, name string) {
		switch name {
		case "Escape":
			wnd.Close()
		case "KeyC":
			fld.ClearInteractionPoint()
		case "KeyS":
			saveSnapshot(fld, cfg.Field.SnapshotDir, log)
		}
	}

	log.Info("window ready",
		zap.Int("width", cv.Width()),
		zap.Int("height", cv.Height()),
		zap.Int("particles", fld.Len()))

	wnd.MainLoop(func() {
		fld.Frame(cv)
	})
	return nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return img, nil
}

func saveSnapshot(fld *field.Field, dir string, log *zap.Logger) {
	data, err := fld.Snapshot()
	if err != nil {
		log.Warn("snapshot failed", zap.Error(err))
		return
	}
	name := filepath.Join(dir, field.SnapshotFilename(time.Now()))
	if err := os.WriteFile(name, data, 0o644); err != nil {
		log.Warn("snapshot write failed", zap.Error(err))
		return
	}
	log.Info("snapshot saved", zap.String("file", name))
}
