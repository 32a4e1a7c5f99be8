package cmd

import (
	stderrors "errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/image/draw"

	"github.com/go-drift/clockface/pkg/animation"
	"github.com/go-drift/clockface/pkg/clockface"
	"github.com/go-drift/clockface/pkg/config"
	"github.com/go-drift/clockface/pkg/errors"
	"github.com/go-drift/clockface/pkg/rendering"
)

var renderCmd = &Command{
	Name:  "render",
	Short: "Render animation frames to PNG files",
	Long: `Render an animated clock face to a numbered sequence of PNG files.

The clock starts at --from (or clock.startTime from the config file) and
animates to each --to time in turn. Every frame is written as
frame-NNNN.png in the output directory. Time is simulated, so rendering
runs as fast as the encoder allows.`,
	Usage: "clockface render --to HH:MM[,HH:MM...] [--from HH:MM] [--out DIR] [flags]",
}

func init() {
	renderCmd.Run = runRender
	RegisterCommand(renderCmd)
}

type renderOptions struct {
	from        clockface.ClockTime
	targets     []clockface.ClockTime
	size        int
	fps         int
	supersample int
	out         string
}

func runRender(args []string) error {
	var (
		configPath  string
		from        string
		to          []string
		size        int
		fps         int
		supersample int
		out         string
	)
	fs := pflag.NewFlagSet("render", pflag.ContinueOnError)
	fs.StringVar(&configPath, "config", ".", "config file or directory containing "+config.DefaultFileName)
	fs.StringVar(&from, "from", "", "start time HH:MM (default: config startTime or 00:00)")
	fs.StringSliceVar(&to, "to", nil, "comma-separated target times HH:MM (required)")
	fs.IntVar(&size, "size", 0, "output size in pixels (default: config display.size)")
	fs.IntVar(&fps, "fps", 30, "frames per simulated second (at most 1000)")
	fs.IntVar(&supersample, "supersample", 1, "render at N times the size and downscale")
	fs.StringVarP(&out, "out", "o", "frames", "output directory")
	if err := parseFlags(renderCmd, fs, args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	res, err := config.Load(configPath)
	if err != nil {
		return err
	}

	opts := renderOptions{
		from:        res.StartTime,
		size:        res.Size,
		fps:         fps,
		supersample: supersample,
		out:         out,
	}
	if size != 0 {
		opts.size = size
	}
	if from != "" {
		if opts.from, err = clockface.ParseClockTime(from); err != nil {
			return err
		}
	}
	for _, s := range to {
		t, err := clockface.ParseClockTime(s)
		if err != nil {
			return err
		}
		opts.targets = append(opts.targets, t)
	}

	n, err := renderFrames(res.Style, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %d frames to %s\n", n, opts.out)
	return nil
}

// maxFPS keeps the frame interval at one millisecond or more.
const maxFPS = 1000

// frameClock is advanced by exactly one frame interval per rendered frame.
type frameClock struct {
	now time.Time
}

func (c *frameClock) Now() time.Time { return c.now }

// renderFrames renders the animation described by opts and returns the
// number of frames written.
func renderFrames(style clockface.Style, opts renderOptions) (int, error) {
	const op = "cmd.renderFrames"
	switch {
	case len(opts.targets) == 0:
		return 0, errors.InvalidArgument(op, "at least one --to time is required")
	case opts.size <= 0:
		return 0, errors.InvalidArgument(op, "size must be positive, got %d", opts.size)
	case opts.fps <= 0:
		return 0, errors.InvalidArgument(op, "fps must be positive, got %d", opts.fps)
	case opts.fps > maxFPS:
		return 0, errors.InvalidArgument(op, "fps must be at most %d, got %d", maxFPS, opts.fps)
	case opts.supersample < 1:
		return 0, errors.InvalidArgument(op, "supersample must be at least 1, got %d", opts.supersample)
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return 0, errors.Wrap(op, errors.KindRender, err)
	}

	clk := &frameClock{now: time.Unix(0, 0)}
	scheduler := animation.NewScheduler(clk)
	view := clockface.NewView(style, clockface.EngineOptions{
		Scheduler: scheduler,
		Logger:    logger,
	})
	full := opts.size * opts.supersample
	view.SetBounds(rendering.RectFromLTWH(0, 0, float64(full), float64(full)))

	// Jump to the start time and let the zero-span run finish.
	if err := view.SetTime(opts.from.Hours, opts.from.Minutes); err != nil {
		return 0, err
	}
	scheduler.Step()
	clk.now = clk.now.Add(view.Engine().Duration())
	scheduler.Step()

	canvas := rendering.NewRasterCanvas(full, full)
	var out *image.RGBA
	if opts.supersample > 1 {
		out = image.NewRGBA(image.Rect(0, 0, opts.size, opts.size))
	}

	frames := 0
	writeFrame := func() error {
		canvas.Clear(rendering.ColorTransparent)
		view.Paint(canvas)
		img := canvas.Image()
		if out != nil {
			draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
			img = out
		}
		path := filepath.Join(opts.out, fmt.Sprintf("frame-%04d.png", frames))
		if err := writePNG(path, img); err != nil {
			return errors.Wrap(op, errors.KindRender, err)
		}
		frames++
		return nil
	}

	if err := writeFrame(); err != nil {
		return frames, err
	}

	interval := time.Second / time.Duration(opts.fps)
	maxFrames := int(view.Engine().Duration()/interval) + 2
	for _, target := range opts.targets {
		logger.Info("rendering animation",
			slog.String("from", view.Engine().Time().String()),
			slog.String("to", target.String()))
		if err := view.AnimateToTime(target.Hours, target.Minutes); err != nil {
			return frames, err
		}
		scheduler.Step()
		for i := 0; view.IsRunning(); i++ {
			if i >= maxFrames {
				return frames, errors.Wrap(op, errors.KindRender, stderrors.New("animation did not settle"))
			}
			clk.now = clk.now.Add(interval)
			scheduler.Step()
			if err := writeFrame(); err != nil {
				return frames, err
			}
		}
	}
	return frames, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
