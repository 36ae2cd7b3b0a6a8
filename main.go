// negbmp converts a 24-bit uncompressed bitmap into its photometric negative.
//
// Usage:
//
//	negbmp [-o out.bmp] [-config negbmp.yml] [-legacy-gray] [-v] [-preview] [-verify] [input.bmp]
//
// Without an input argument the file name is read from stdin.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ibrahimkhan1214/image-converter/internal/bmp"
	"github.com/ibrahimkhan1214/image-converter/internal/config"
	"github.com/ibrahimkhan1214/image-converter/internal/filters"
	"github.com/ibrahimkhan1214/image-converter/internal/verify"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("negbmp", flag.ContinueOnError)

	var (
		configPath string
		output     string
		legacyGray bool
		verbose    bool
		preview    bool
		verifyOut  bool
	)
	fs.StringVar(&configPath, "config", config.DefaultPath, "YAML configuration file (optional)")
	fs.StringVar(&output, "o", config.DefaultOutput, "Output file path")
	fs.BoolVar(&legacyGray, "legacy-gray", false, "Collapse channels like the old converter instead of a color negative")
	fs.BoolVar(&verbose, "v", false, "Print header fields")
	fs.BoolVar(&preview, "preview", false, "Print the result in the terminal (small images only)")
	fs.BoolVar(&verifyOut, "verify", false, "Re-read the output with golang.org/x/image/bmp")
	if err := fs.Parse(args); err != nil {
		return err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.Load(configPath, set["config"])
	if err != nil {
		return err
	}

	// Flags given on the command line win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = output
		case "legacy-gray":
			if legacyGray {
				cfg.Transform = config.TransformLegacyGray
			} else {
				cfg.Transform = config.TransformNegative
			}
		case "v":
			cfg.Verbose = verbose
		case "preview":
			cfg.Preview = preview
		case "verify":
			cfg.Verify = verifyOut
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	input := fs.Arg(0)
	if input == "" {
		if input, err = promptFilename(stdin, stdout); err != nil {
			return err
		}
	}

	return convert(input, cfg, stdout)
}

// convert runs decode -> transform -> encode for a single file.
func convert(input string, cfg config.Config, stdout io.Writer) error {
	// Headers are dumped before validation so rejected files can be inspected
	if cfg.Verbose {
		if headers, err := bmp.ReadHeaders(input); err == nil {
			headers.PrintMetadata(stdout)
		}
	}

	bitmap, err := bmp.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	switch cfg.Transform {
	case config.TransformLegacyGray:
		filters.CollapsedNegative(bitmap)
	default:
		filters.Invert(bitmap)
	}

	if err := bmp.WriteFile(cfg.Output, bitmap); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}
	log.Printf("Wrote %s (%dx%d, %s)", cfg.Output, bitmap.Width(), bitmap.Height(), cfg.Transform)

	if cfg.Verify {
		if err := verify.File(cfg.Output, bitmap); err != nil {
			return err
		}
		log.Printf("Verified %s", cfg.Output)
	}
	if cfg.Preview {
		bitmap.PrintBitmap(stdout)
	}
	return nil
}

func promptFilename(stdin io.Reader, stdout io.Writer) (string, error) {
	fmt.Fprint(stdout, "Enter the name of the BMP image file (add .bmp extension): ")

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading file name: %w", err)
	}
	name := strings.TrimSpace(line)
	if name == "" {
		return "", errors.New("no input file given")
	}
	return name, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
