package commands

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/katalvlaran/nestplot"
	"github.com/spf13/cobra"
)

// table: print the prediction table without drawing.
func tableCmd() *cobra.Command {
	var req requestFlags
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print fitted probabilities and bounds as an aligned table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cfg
			if err := req.apply(cmd, &c); err != nil {
				return err
			}
			fixed, err := req.fixedValues()
			if err != nil {
				return err
			}
			m, err := loadModel(c)
			if err != nil {
				return err
			}
			opts, err := requestOptions(c, fixed)
			if err != nil {
				return err
			}
			res, err := nestplot.Predict(m, opts...)
			if err != nil {
				return err
			}
			if dump {
				spew.Fdump(cmd.ErrOrStderr(), res.Axis)
			}
			return res.Table.WriteText(cmd.OutOrStdout())
		},
	}
	req.register(cmd)
	return cmd
}
