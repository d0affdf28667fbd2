package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/nestplot"
	"github.com/katalvlaran/nestplot/dataset"
	"github.com/katalvlaran/nestplot/frame"
	"github.com/katalvlaran/nestplot/nested"
	"github.com/katalvlaran/nestplot/render"
	"github.com/spf13/cobra"
)

// demo: synthetic data, its spec, and one plot per predictor.
func demoCmd() *cobra.Command {
	var (
		rows int
		seed int64
		dir  string
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a synthetic labour-force dataset, its model spec and example plots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows < 2 {
				return fmt.Errorf("--rows %d: need at least 2", rows)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			data, err := dataset.Womenlf(rows, dataset.WithSeed(seed))
			if err != nil {
				return err
			}
			if err = writeFile(filepath.Join(dir, "womenlf.csv"), func(w io.Writer) error {
				return frame.WriteCSV(w, data)
			}); err != nil {
				return err
			}
			if err = writeFile(filepath.Join(dir, "womenlf.yaml"), func(w io.Writer) error {
				return nested.WriteSpec(w, dataset.WomenlfSpec())
			}); err != nil {
				return err
			}

			m, err := dataset.WomenlfModel(data)
			if err != nil {
				return err
			}
			note := fmt.Sprintf("synthetic data, n=%d, seed=%d", rows, seed)
			for _, sweep := range []string{dataset.Income, dataset.Children} {
				path := filepath.Join(dir, "womenlf-"+sweep+".png")
				s := render.NewChartSurface(render.WithFootnote(note))
				if _, err = nestplot.Plot(m, s, nestplot.WithLogger(logger), nestplot.WithSweep(sweep)); err != nil {
					return err
				}
				if err = writeFile(path, s.Render); err != nil {
					return err
				}
				logger.Info("plot written", "path", path)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 263, "rows of synthetic data")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&dir, "dir", ".", "output directory")
	return cmd
}

// writeFile creates path, hands it to write and closes it.
func writeFile(path string, write func(io.Writer) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(fh); err != nil {
		fh.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return fh.Close()
}
