// Command fr rasterizes a font into a grayscale texture atlas and writes
// the matching glyph metrics file.
//
// Usage:
//
//	fr [options] font
//
// The font argument is a TTF/OTF file path or, when no such file exists,
// the name of an installed system font (for example "DejaVuSans").
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	"golang.org/x/term"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/atlas"
	"github.com/gogpu/fontatlas/metrics"
	"github.com/gogpu/fontatlas/text"
)

// Exit codes.
const (
	exitOK     = 0
	exitFatal  = 1
	exitOutput = 2
)

// rangeList collects repeated -rune flags.
type rangeList []atlas.Range

func (l *rangeList) String() string {
	parts := make([]string, len(*l))
	for i, r := range *l {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

func (l *rangeList) Set(s string) error {
	rs, err := atlas.ParseRanges(s)
	if err != nil {
		return err
	}
	*l = append(*l, rs...)
	return nil
}

type options struct {
	atlasPath   string
	metricsPath string
	width       int
	height      int
	size        int
	padding     int
	format      metrics.Format
	ranges      rangeList
	backend     string
	mono        bool
	verbose     bool
	fontArg     string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "fr: %v\n", err)
		return exitFatal
	}

	log := newLogger(stderr, opts.verbose)
	fontatlas.SetLogger(log)

	path, err := resolveFont(opts.fontArg)
	if err != nil {
		log.Error("font not found", "font", opts.fontArg, "err", err)
		return exitFatal
	}

	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		log.Error("unsupported font file format", "path", path, "err", err)
		return exitFatal
	}
	defer src.Close()

	engineOpts := []text.EngineOption{text.WithBackend(opts.backend)}
	if opts.mono {
		engineOpts = append(engineOpts, text.WithMonochrome())
	}
	engine, err := src.Engine(opts.size, engineOpts...)
	if err != nil {
		log.Error("error setting size", "size", opts.size, "backend", opts.backend, "err", err)
		return exitFatal
	}
	log.Debug("font loaded",
		"name", src.Name(),
		"path", path,
		"glyphs", src.NumGlyphs(),
		"backend", opts.backend)

	res, err := fontatlas.Generate(engine,
		fontatlas.WithAtlasSize(opts.width, opts.height),
		fontatlas.WithPadding(opts.padding),
		fontatlas.WithRanges(opts.ranges...),
	)
	if err != nil {
		log.Error("invalid configuration", "err", err)
		return exitFatal
	}
	defer res.Release()

	if opts.verbose {
		dumpGlyphs(log, res.PackedGlyphs())
	}

	status := exitOK
	if err := res.WriteAtlas(opts.atlasPath); err != nil {
		log.Error("error writing atlas", "path", opts.atlasPath, "err", err)
		status = exitOutput
	}
	if err := res.WriteMetrics(opts.metricsPath, opts.format); err != nil {
		log.Error("error writing metrics", "path", opts.metricsPath, "err", err)
		status = exitOutput
	}

	log.Info("glyphs rasterized to atlas",
		"count", res.Packed,
		"atlas", opts.atlasPath,
		"metrics", opts.metricsPath)
	return status
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("fr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Font rasterizer version %s\n", fontatlas.Version)
		fmt.Fprintf(fs.Output(), "Usage: fr [options] font\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), "Notes:\n  Ranges are in the form <c>, <l>:<u> or <l>+<n>; "+
			"of single code point <c>, lower bound <l>, upper bound <u> and extent <n>\n")
	}

	o := &options{}
	var format string
	fs.StringVar(&o.atlasPath, "o", "a.png", "place the output atlas image into `file` (.png, .bmp, .tiff)")
	fs.StringVar(&o.metricsPath, "m", "", "place the output font metrics into `file` (default a.txt or a.bin)")
	fs.IntVar(&o.width, "W", fontatlas.DefaultAtlasSize, "set atlas width to `n`")
	fs.IntVar(&o.height, "H", fontatlas.DefaultAtlasSize, "set atlas height to `n`")
	fs.IntVar(&o.size, "s", 16, "render glyphs with height of `n` pixels")
	fs.IntVar(&o.padding, "p", fontatlas.DefaultPadding, "leave `n` pixels around every glyph")
	fs.StringVar(&format, "metrics-format", "text", "write metrics as text or binary")
	fs.Var(&o.ranges, "rune", "comma separated unicode point or point `ranges` (repeatable, default 33:126)")
	fs.StringVar(&o.backend, "backend", text.BackendHinted, "rasterizer: "+strings.Join(text.Backends(), ", "))
	fs.BoolVar(&o.mono, "mono", false, "render 1-bit glyphs")
	fs.BoolVar(&o.verbose, "v", false, "verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errors.New("expected exactly one font argument")
	}
	o.fontArg = fs.Arg(0)

	f, err := metrics.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	o.format = f
	if o.metricsPath == "" {
		o.metricsPath = "a" + f.Ext()
	}
	return o, nil
}

// newLogger returns a text logger for terminals and a JSON logger
// otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		hopts.Level = slog.LevelDebug
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, hopts))
	}
	return slog.New(slog.NewJSONHandler(w, hopts))
}

// resolveFont returns arg if it names a file, otherwise the path of a
// matching system font.
func resolveFont(arg string) (string, error) {
	if fi, err := os.Stat(arg); err == nil && !fi.IsDir() {
		return arg, nil
	}
	return findfont.Find(arg)
}

func dumpGlyphs(log *slog.Logger, glyphs []*atlas.Glyph) {
	for i, g := range glyphs {
		m := g.Metrics
		log.Debug("glyph",
			"index", i,
			"rune", fmt.Sprintf("U+%04X", g.Rune),
			"utf8", fmt.Sprintf("%x", g.UTF8()),
			"advance", m.Advance,
			"bearing", m.Bearing,
			"size", m.Size,
			"st0", m.ST0,
			"st1", m.ST1,
			"st0_u16", [2]uint16{metrics.Quantize(m.ST0[0]), metrics.Quantize(m.ST0[1])},
			"st1_u16", [2]uint16{metrics.Quantize(m.ST1[0]), metrics.Quantize(m.ST1[1])})
	}
}
