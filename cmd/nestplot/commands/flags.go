package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// requestFlags are the flags shared by plot and table.
type requestFlags struct {
	model      string
	data       string
	levels     []string
	sweep      string
	fixed      []string
	resolution int
	confLevel  float64
	noInterval bool
	digits     int
}

func (f *requestFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.model, "model", "m", "", "nested model spec (YAML)")
	fs.StringVarP(&f.data, "data", "d", "", "training data (CSV with header)")
	fs.StringArrayVar(&f.levels, "levels", nil, "factor levels as column=a,b,c (repeatable)")
	fs.StringVarP(&f.sweep, "sweep", "x", "", "predictor to vary (default: first predictor)")
	fs.StringArrayVarP(&f.fixed, "fixed", "f", nil, "pin a predictor as name=value (repeatable)")
	fs.IntVar(&f.resolution, "resolution", 0, "grid points for a numeric sweep (default 100)")
	fs.Float64Var(&f.confLevel, "level", 0, "confidence level (default 0.95)")
	fs.BoolVar(&f.noInterval, "no-intervals", false, "omit confidence bands and whiskers")
	fs.IntVar(&f.digits, "digits", 0, "significant digits for defaults and title (default 3)")
}

// apply copies every flag the user set over c.
func (f *requestFlags) apply(cmd *cobra.Command, c *Config) error {
	fs := cmd.Flags()
	if fs.Changed("model") {
		c.Model = f.model
	}
	if fs.Changed("data") {
		c.Data = f.data
	}
	if fs.Changed("levels") {
		if c.Levels == nil {
			c.Levels = map[string][]string{}
		}
		for _, kv := range f.levels {
			name, list, ok := strings.Cut(kv, "=")
			if !ok || name == "" || list == "" {
				return fmt.Errorf("--levels %q: want column=a,b,c", kv)
			}
			c.Levels[name] = strings.Split(list, ",")
		}
	}
	if fs.Changed("sweep") {
		c.Sweep = f.sweep
	}
	if fs.Changed("resolution") {
		c.Resolution = f.resolution
	}
	if fs.Changed("level") {
		c.ConfLevel = f.confLevel
	}
	if fs.Changed("no-intervals") {
		on := !f.noInterval
		c.Intervals = &on
	}
	if fs.Changed("digits") {
		c.Digits = f.digits
	}
	return nil
}

// fixedValues parses repeated name=value flags; a repeated name keeps every
// value so the resolver can reject it.
func (f *requestFlags) fixedValues() (map[string][]string, error) {
	out := make(map[string][]string, len(f.fixed))
	for _, kv := range f.fixed {
		name, val, ok := strings.Cut(kv, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("--fixed %q: want name=value", kv)
		}
		out[name] = append(out[name], strings.TrimSpace(val))
	}
	return out, nil
}
