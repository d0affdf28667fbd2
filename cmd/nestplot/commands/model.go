package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/nestplot/frame"
	"github.com/katalvlaran/nestplot/nested"
)

// loadModel reads the training CSV and binds the model spec to it.
func loadModel(c Config) (*nested.Model, error) {
	if c.Model == "" || c.Data == "" {
		return nil, errors.New("both a model spec (--model) and training data (--data) are required")
	}
	fh, err := os.Open(c.Data)
	if err != nil {
		return nil, fmt.Errorf("data: %w", err)
	}
	defer fh.Close()

	csvOpts := make([]frame.CSVOption, 0, len(c.Levels))
	for col, lv := range c.Levels {
		if col == "" || len(lv) == 0 {
			return nil, fmt.Errorf("levels for %q: need a column name and at least one level", col)
		}
		csvOpts = append(csvOpts, frame.WithLevels(col, lv...))
	}
	data, err := frame.ReadCSV(fh, csvOpts...)
	if err != nil {
		return nil, fmt.Errorf("data %s: %w", c.Data, err)
	}
	m, err := nested.LoadFile(c.Model, data)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", c.Model, err)
	}
	return m, nil
}
