package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/diagram"
	"github.com/gogpu/diagram/backend/raster"
	"github.com/gogpu/diagram/backend/svg"
	"github.com/gogpu/diagram/dsl"
)

const (
	formatPNG = "png"
	formatSVG = "svg"

	defaultWidth  = 800 // default output width in pixels
	defaultHeight = 600 // default output height in pixels
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string // output file path; derived from the input when empty
	format     string // "png" or "svg"; derived from the output extension when empty
	width      int    // viewport width in pixels
	height     int    // viewport height in pixels
	background string // background color for PNG output, hex
}

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		width:      defaultWidth,
		height:     defaultHeight,
		background: "#ffffff",
	}

	cmd := &cobra.Command{
		Use:   "render <file.toml>",
		Short: "Render a diagram definition to PNG or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: png or svg (default: from output extension)")
	cmd.Flags().IntVar(&opts.width, "width", defaultWidth, "viewport width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", defaultHeight, "viewport height in pixels")
	cmd.Flags().StringVar(&opts.background, "background", "#ffffff", "background color for PNG output")

	return cmd
}

func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("invalid dimensions: width=%d, height=%d (both must be > 0)", opts.width, opts.height)
	}

	d, err := dsl.DecodeFile(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded diagram", "file", input, "naturalSize", diagram.NaturalSize(d))

	format, output, err := resolveOutput(input, opts)
	if err != nil {
		return err
	}

	bounds := diagram.NewRect(0, 0, float64(opts.width), float64(opts.height))
	switch format {
	case formatPNG:
		if err := renderPNG(d, output, bounds, opts); err != nil {
			return err
		}
	case formatSVG:
		if err := renderSVG(d, output, bounds, opts); err != nil {
			return err
		}
	}

	logger.Info("rendered diagram", "output", output, "format", format)
	return nil
}

// resolveOutput determines the output format and path from the flags
// and the input file name.
func resolveOutput(input string, opts *renderOpts) (format, output string, err error) {
	format = strings.ToLower(opts.format)
	output = opts.output

	if format == "" {
		if output == "" {
			format = formatPNG
		} else {
			format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
		}
	}
	if format != formatPNG && format != formatSVG {
		return "", "", fmt.Errorf("unsupported format %q (want png or svg)", format)
	}
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	}
	return format, output, nil
}

func renderPNG(d diagram.Diagram, output string, bounds diagram.Rect, opts *renderOpts) error {
	s := raster.New(opts.width, opts.height)
	s.Clear(diagram.Hex(opts.background))
	if err := diagram.Draw(d, s, bounds); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return s.SavePNG(output)
}

func renderSVG(d diagram.Diagram, output string, bounds diagram.Rect, opts *renderOpts) error {
	f, err := os.Create(output) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	s, err := svg.New(f, float64(opts.width), float64(opts.height))
	if err != nil {
		return err
	}
	if err := diagram.Draw(d, s, bounds); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := s.Close(); err != nil {
		return err
	}
	return f.Close()
}
