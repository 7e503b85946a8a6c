// nebula-term renders the particle field at terminal cell resolution.
// Mouse motion drives the interaction point; terminal resizes reflow the
// field. Keys: s saves a snapshot, c releases the point, q or Escape quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/nebula/config"
	"github.com/lixenwraith/nebula/field"
	"github.com/lixenwraith/nebula/interaction"
	"github.com/lixenwraith/nebula/observability"
	"github.com/lixenwraith/nebula/sampler"
	"github.com/lixenwraith/nebula/viewport"
)

func main() {
	var (
		imagePath = flag.String("image", "", "image to decompose (png or jpeg)")
		radius    = flag.Float64("radius", 16, "interaction influence radius in cells")
		logFile   = flag.String("log", "", "JSON log file (terminal owns stdout)")
	)
	flag.Parse()

	if *imagePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: nebula-term -image <file> [-radius N] [-log file]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// The screen owns stdout, so console logging is discarded; the file
	// core still records if -log is given.
	logCfg := config.Default().Logger
	logCfg.LogFile = *logFile
	observability.Initialize(logCfg, zapcore.AddSync(io.Discard))
	defer observability.Sync()

	if err := run(*imagePath, *radius); err != nil {
		fmt.Fprintf(os.Stderr, "nebula-term: %v\n", err)
		os.Exit(1)
	}
}

func run(imagePath string, radius float64) error {
	log := observability.L()

	img, err := loadImage(imagePath)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents | tcell.MouseButtonEvents)

	width, height := screen.Size()

	tracker := interaction.NewTracker()
	fld := field.New(width, height, tracker,
		field.WithRadius(radius),
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
		viewport.WithLogger(log))
	defer vp.Stop()

	vp.SetBitmap(img)
	vp.Mount(width, height)

	// Terminal refresh is far below 60fps; half cadence keeps the physics
	// constants usable while the cell grid hides the difference.
	runner := field.NewRunner(fld, time.Second/30, func() {
		draw(screen, fld, tracker)
	}, log)
	runner.Start()
	defer runner.Stop()

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			// Wake the event loop so it can exit cleanly
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-ctx.Done():
		}
		return nil
	})

	g.Go(func() error {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				vp.Resize(w, h)
				screen.Sync()
			case *tcell.EventMouse:
				x, y := ev.Position()
				fld.SetInteractionPoint(float64(x), float64(y))
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
					return nil
				case ev.Rune() == 'c':
					fld.ClearInteractionPoint()
				case ev.Rune() == 's':
					saveSnapshot(fld, log)
				}
			case *tcell.EventInterrupt:
				return nil
			case nil:
				return nil
			}
		}
	})

	return g.Wait()
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

func saveSnapshot(fld *field.Field, log *zap.Logger) {
	data, err := fld.Snapshot()
	if err != nil {
		log.Warn("snapshot failed", zap.Error(err))
		return
	}
	name := field.SnapshotFilename(time.Now())
	if err := os.WriteFile(name, data, 0o644); err != nil {
		log.Warn("snapshot write failed", zap.Error(err))
		return
	}
	log.Info("snapshot saved", zap.String("file", name))
}
