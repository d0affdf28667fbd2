// Package frame holds the tabular data that models are trained on and that
// evaluation grids are built from.
//
// A Frame is an ordered set of equally long columns. Every column is either
// Numeric (float64 values) or Categorical (string values with an ordered
// level set). The level order is the "natural order" used everywhere else:
//
//   - factor columns keep the levels they were declared with;
//   - text and logical columns use their distinct values sorted byte-wise
//     ascending (no locale collation).
//
// ⚙️ Usage:
//
//	f := frame.New()
//	_ = f.Add(frame.NewNumeric("hincome", []float64{15, 13, 45}))
//	c, _ := frame.NewFactor("children", []string{"present", "absent", "present"}, []string{"absent", "present"})
//	_ = f.Add(c)
//
//	f, err := frame.ReadCSV(r, frame.WithLevels("partic", "not.work", "parttime", "fulltime"))
//
// Frames are not safe for concurrent mutation; read-only use is fine.
package frame
