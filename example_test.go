package nestplot_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/nestplot"
	"github.com/katalvlaran/nestplot/dataset"
	"github.com/katalvlaran/nestplot/render"
)

// ExamplePredict shows the advisories produced when nothing is specified.
func ExamplePredict() {
	data, _ := dataset.Womenlf(263, dataset.WithSeed(1))
	m, _ := dataset.WomenlfModel(data)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	res, err := nestplot.Predict(m, nestplot.WithLogger(logger), nestplot.WithResolution(11))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, n := range res.Notes {
		fmt.Println(n)
	}
	fmt.Println(res.Table.Rows(), res.Table.Categories)
	// Output:
	// sweep variable not given, using hincome
	// children not given, fixed at absent
	// 11 [not.work parttime fulltime]
}

// ExamplePlot draws a categorical sweep and lists the surface calls.
func ExamplePlot() {
	data, _ := dataset.Womenlf(263, dataset.WithSeed(1))
	m, _ := dataset.WomenlfModel(data)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rec := render.NewRecorder()
	_, err := nestplot.Plot(m, rec,
		nestplot.WithLogger(logger),
		nestplot.WithSweep("children"),
		nestplot.WithFixedNumber("hincome", 10),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(rec.Ops)
	fmt.Println(rec.Titles[0].Text)
	// Output:
	// [Axis Segments Segments Segments Series Series Series Frame Title Legend]
	// hincome = 10
}
