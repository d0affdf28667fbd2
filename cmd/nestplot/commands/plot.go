package commands

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/katalvlaran/nestplot"
	"github.com/katalvlaran/nestplot/render"
	"github.com/spf13/cobra"
)

// plot: resolve, predict and draw to --out.
func plotCmd() *cobra.Command {
	var (
		req   requestFlags
		out   string
		style StyleConfig
		size  [2]int
		note  string
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Draw fitted probabilities against one predictor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cfg
			if err := req.apply(cmd, &c); err != nil {
				return err
			}
			fs := cmd.Flags()
			if fs.Changed("out") {
				c.Output.Path = out
			}
			if fs.Changed("width") {
				c.Output.Width = size[0]
			}
			if fs.Changed("height") {
				c.Output.Height = size[1]
			}
			if fs.Changed("note") {
				c.Output.Note = note
			}
			overrideStyle(cmd, &c.Style, style)
			if c.Output.Path == "" {
				return fmt.Errorf("output path required (--out)")
			}
			fixed, err := req.fixedValues()
			if err != nil {
				return err
			}
			return runPlot(cmd, c, fixed)
		},
	}
	req.register(cmd)
	fs := cmd.Flags()
	fs.StringVarP(&out, "out", "o", "", "output file (.png or .svg)")
	fs.IntVar(&size[0], "width", 0, "image width in pixels (default 800)")
	fs.IntVar(&size[1], "height", 0, "image height in pixels (default 600)")
	fs.StringVar(&note, "note", "", "footnote stamped in the bottom-right corner (PNG only)")
	fs.StringVar(&style.Title, "title", "", "plot title (default: the fixed values)")
	fs.StringVar(&style.TitleFont, "title-font", "", "TrueType font file for the title")
	fs.StringVar(&style.XLabel, "xlab", "", "x-axis label")
	fs.StringVar(&style.YLabel, "ylab", "", "y-axis label")
	fs.StringSliceVar(&style.Colors, "colors", nil, "category colors (#rrggbb or names)")
	fs.BoolVar(&style.ConnectPoints, "connect", false, "connect categorical points with lines")
	fs.StringVar(&style.Legend.Position, "legend", "", "legend position (topright, bottomleft, ...)")
	return cmd
}

// overrideStyle copies the style flags the user set.
func overrideStyle(cmd *cobra.Command, dst *StyleConfig, src StyleConfig) {
	fs := cmd.Flags()
	if fs.Changed("title") {
		dst.Title = src.Title
	}
	if fs.Changed("title-font") {
		dst.TitleFont = src.TitleFont
	}
	if fs.Changed("xlab") {
		dst.XLabel = src.XLabel
	}
	if fs.Changed("ylab") {
		dst.YLabel = src.YLabel
	}
	if fs.Changed("colors") {
		dst.Colors = src.Colors
	}
	if fs.Changed("connect") {
		dst.ConnectPoints = src.ConnectPoints
	}
	if fs.Changed("legend") {
		dst.Legend.Position = src.Legend.Position
	}
}

func runPlot(cmd *cobra.Command, c Config, fixed map[string][]string) error {
	m, err := loadModel(c)
	if err != nil {
		return err
	}
	opts, err := requestOptions(c, fixed)
	if err != nil {
		return err
	}
	sopts, err := styleOptions(c.Style)
	if err != nil {
		return err
	}
	surfOpts, err := surfaceOptions(c.Output)
	if err != nil {
		return err
	}

	s := render.NewChartSurface(surfOpts...)
	res, err := nestplot.Plot(m, s, append(opts, sopts...)...)
	if err != nil {
		return err
	}
	if dump {
		spew.Fdump(cmd.ErrOrStderr(), res.Axis)
	}

	if err = writeFile(c.Output.Path, s.Render); err != nil {
		return err
	}
	logger.Info("plot written", "path", c.Output.Path, "format", s.Format().String(), "sweep", res.Axis.Sweep)
	return nil
}
