package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/raykov/svg2vd"
	"github.com/raykov/svg2vd/kotlin"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const HelpBanner = `
svg2vd

Converts SVG documents to Android VectorDrawable XML.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source SVG file")
	destination = flag.String("out", pipeName, "Destination XML file")
	kotlinSrc   = flag.Bool("kotlin", false, "Print the Kotlin converter source instead of converting")
	kotlinPkg   = flag.String("pkg", "", "Package declaration for the Kotlin source")
	preview     = flag.String("preview", "", "Write a PNG rendering of the converted drawable")
	size        = flag.Int("size", 256, "Preview size in pixels")
	diff        = flag.Bool("diff", false, "Report how much the preview differs from the source rendering")
	strict      = flag.Bool("strict", false, "Fail on the first skipped element or command")
	verbose     = flag.Bool("v", false, "Log skipped input")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *kotlinSrc {
		dst, err := openDestination(*destination)
		if err != nil {
			log.Fatal(err)
		}
		defer dst.Close()
		if _, err := io.WriteString(dst, kotlin.WithPackage(*kotlinPkg)); err != nil {
			log.Fatal(err)
		}
		return
	}

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			log.Fatal(err)
		}
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(logger); err != nil {
		logger.Error("conversion failed", zap.Error(err))
		log.Fatalf("svg2vd: %v", err)
	}
}

func run(logger *zap.Logger) error {
	mode := svg2vd.WarnErrorMode
	if *strict {
		mode = svg2vd.StrictErrorMode
	}
	conv := svg2vd.NewConverter(svg2vd.WithLogger(logger), svg2vd.WithErrorMode(mode))

	src, err := readSource(*source)
	if err != nil {
		return err
	}
	vd, err := conv.Decode(string(src))
	if err != nil {
		return err
	}
	dst, err := openDestination(*destination)
	if err != nil {
		return err
	}
	defer dst.Close()
	if _, err := vd.WriteTo(dst); err != nil {
		return err
	}
	if len(vd.Warnings) > 0 {
		logger.Info("converted with warnings", zap.Int("count", len(vd.Warnings)))
	}

	if *preview == "" && !*diff {
		return nil
	}
	if *size <= 0 {
		return fmt.Errorf("invalid preview size %d", *size)
	}
	img := svg2vd.Render(vd, *size, *size)
	if *preview != "" {
		f, err := os.Create(*preview)
		if err != nil {
			return fmt.Errorf("unable to create the preview file: %w", err)
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			return err
		}
	}
	if *diff {
		ref, err := svg2vd.RenderSource(string(src), *size, *size)
		if err != nil {
			return fmt.Errorf("rendering source: %w", err)
		}
		fmt.Fprintf(os.Stderr, "pixels differing from source rendering: %.2f%%\n", svg2vd.Diff(ref, img)*100)
	}
	return nil
}

// readSource reads the named file, or stdin for the pipe name.
func readSource(in string) ([]byte, error) {
	if in == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return io.ReadAll(os.Stdin)
	}
	b, err := os.ReadFile(in)
	if err != nil {
		return nil, fmt.Errorf("unable to open the source file: %w", err)
	}
	return b, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openDestination opens the named file for writing, or stdout for the
// pipe name.
func openDestination(out string) (io.WriteCloser, error) {
	if out == pipeName {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return f, nil
}
