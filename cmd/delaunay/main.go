package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/delaunay"
)

// Triangulate a point set read as newline separated "x y" lines, and write the
// points followed by the edges or triangles. Blank lines and lines starting
// with # are ignored.
//
// The largest point is moved to the front before triangulating, so indices in
// the output refer to the order of the points written out, not the input.
func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	seed    int64
	input   string
	output  string
	format  string
	png     string
	scale   float64
	imgcat  bool
	check   bool
	verbose bool
}

func parseArgs(args []string) (*options, error) {
	app := kingpin.New("delaunay", "Delaunay triangulation of a planar point set.")
	opts := &options{}
	app.Flag("seed", "Seed for the random insertion order.").Default("0").Int64Var(&opts.seed)
	app.Flag("input", "File to read points from. Defaults to stdin.").Short('i').StringVar(&opts.input)
	app.Flag("output", "File to write the result to. Defaults to stdout.").Short('o').StringVar(&opts.output)
	app.Flag("format", "Write edges as \"i j\" lines or triangles as \"i j k\" lines.").Default("lines").EnumVar(&opts.format, "lines", "triangles")
	app.Flag("png", "Also render the triangulation to this PNG file.").StringVar(&opts.png)
	app.Flag("scale", "Pixels per unit when rendering.").Default("4").Float64Var(&opts.scale)
	app.Flag("imgcat", "Print the rendered triangulation to stderr as an inline image (iTerm only).").BoolVar(&opts.imgcat)
	app.Flag("check", "Verify the mesh after every step. Slow.").BoolVar(&opts.check)
	app.Flag("verbose", "Log every insertion and flip.").Short('v').BoolVar(&opts.verbose)

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

// The export goes to stdout (or --output), and the terminal image to stderr so
// the two never mix.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	in := stdin
	if opts.input != "" {
		file, err := os.Open(opts.input)
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}
	points, err := readPoints(in)
	if err != nil {
		return err
	}
	if largest := delaunay.MoveLargestFirst(points); largest > 0 {
		logger.Infow("moved largest point to the front", "from", largest)
	}

	triangulation, err := delaunay.New(points, opts.seed,
		delaunay.WithLogger(logger),
		delaunay.WithConsistencyChecks(opts.check),
	)
	if err != nil {
		return err
	}
	if opts.check {
		if err := triangulation.CheckConsistency(); err != nil {
			return err
		}
	}
	stats := triangulation.Stats()
	logger.Infow("triangulated",
		"points", len(points),
		"triangles", len(triangulation.Triangles()),
		"flips", stats.Flips,
		"nonConvexSkips", stats.NonConvexSkips,
	)

	out := stdout
	if opts.output != "" {
		file, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}
	switch opts.format {
	case "triangles":
		err = triangulation.WritePointsAndTriangles(out)
	default:
		err = triangulation.WritePointsAndLines(out)
	}
	if err != nil {
		return err
	}

	if opts.png != "" {
		if err := triangulation.DrawPNG(opts.png, opts.scale); err != nil {
			return err
		}
	}
	if opts.imgcat {
		if err := triangulation.DbgDraw(stderr, opts.scale); err != nil {
			return err
		}
	}
	return nil
}

func readPoints(in io.Reader) ([]delaunay.Point, error) {
	var points []delaunay.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, scanner.Err()
}

func parsePoint(line string) (delaunay.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return delaunay.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return delaunay.Point{}, errors.Wrap(err, "bad x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return delaunay.Point{}, errors.Wrap(err, "bad y")
	}
	return delaunay.Point{X: x, Y: y}, nil
}
