package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the YAML form of a plot request.
type Config struct {
	Model  string              `yaml:"model"`  // nested model spec (YAML)
	Data   string              `yaml:"data"`   // training data (CSV)
	Levels map[string][]string `yaml:"levels"` // factor level declarations for the CSV

	Sweep      string            `yaml:"sweep"`
	Fixed      map[string]string `yaml:"fixed"`
	Resolution int               `yaml:"resolution"`
	ConfLevel  float64           `yaml:"conf_level"`
	Intervals  *bool             `yaml:"intervals"`
	Digits     int               `yaml:"digits"`

	Style  StyleConfig  `yaml:"style"`
	Output OutputConfig `yaml:"output"`
}

// StyleConfig mirrors the drawing options.
type StyleConfig struct {
	Title         string       `yaml:"title"`
	TitleSize     float64      `yaml:"title_size"`
	TitleFont     string       `yaml:"title_font"` // path to a .ttf file
	XLabel        string       `yaml:"x_label"`
	YLabel        string       `yaml:"y_label"`
	Colors        []string     `yaml:"colors"`
	LineTypes     []string     `yaml:"line_types"`
	Markers       []string     `yaml:"markers"`
	LineWidth     float64      `yaml:"line_width"`
	PointSize     float64      `yaml:"point_size"`
	ConnectPoints bool         `yaml:"connect_points"`
	BandAlpha     *float64     `yaml:"band_alpha"`
	Legend        LegendConfig `yaml:"legend"`
}

// LegendConfig mirrors the legend options.
type LegendConfig struct {
	Show     *bool    `yaml:"show"`
	Position string   `yaml:"position"`
	Inset    *float64 `yaml:"inset"`
	Border   *bool    `yaml:"border"`
	Alpha    *float64 `yaml:"alpha"`
}

// OutputConfig describes the image file.
type OutputConfig struct {
	Path   string  `yaml:"path"`
	Format string  `yaml:"format"` // png or svg; default from the path extension
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	DPI    float64 `yaml:"dpi"`
	Note   string  `yaml:"note"` // footnote stamped on PNG output
}

// LoadConfig reads path, expands ${VAR} references and decodes the YAML.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return parseConfig(bytes.NewReader([]byte(os.ExpandEnv(string(data)))))
}

func parseConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// loadDotEnv loads path into the environment; a missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
