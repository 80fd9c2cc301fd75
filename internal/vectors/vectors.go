// Package vectors builds reference tables of the coordijk transforms over a
// disk of lattice points, for cross-checking the indexing layer against
// known parent/child mappings.
package vectors

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/h3core/internal/config"
	"github.com/gravitas-games/h3core/pkg/coordijk"
)

// Row holds every transform of one input coordinate under one orientation.
type Row struct {
	Orientation coordijk.Orientation
	Input       coordijk.CoordIJK
	UpAp7       coordijk.CoordIJK
	DownAp7     coordijk.CoordIJK
	DownAp3     coordijk.CoordIJK
	Rotate60CCW coordijk.CoordIJK
	Rotate60CW  coordijk.CoordIJK
	Hex2d       coordijk.Vec2d
}

// Table is a generated set of rows, grouped by orientation in the order
// the orientations were configured, each group in disk order.
type Table struct {
	Radius       int
	Orientations []coordijk.Orientation
	Rows         []Row
}

// Generator produces reference tables.
type Generator struct {
	cfg    config.VectorsConfig
	logger *slog.Logger
}

// New creates a generator. A nil logger discards log output.
func New(cfg config.VectorsConfig, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{cfg: cfg, logger: logger}
}

// Generate computes the table and checks the exact round trips on every
// row, failing on the first coordinate that breaks one.
func (g *Generator) Generate() (*Table, error) {
	if g.cfg.Radius < 0 {
		return nil, fmt.Errorf("invalid radius %d", g.cfg.Radius)
	}
	orientations, err := g.cfg.ParsedOrientations()
	if err != nil {
		return nil, err
	}

	inputs := coordijk.Disk(coordijk.CoordIJK{}, g.cfg.Radius)
	g.logger.Debug("generating vectors", "radius", g.cfg.Radius, "inputs", len(inputs), "orientations", len(orientations))

	t := &Table{
		Radius:       g.cfg.Radius,
		Orientations: orientations,
		Rows:         make([]Row, 0, len(inputs)*len(orientations)),
	}
	for _, o := range orientations {
		for _, c := range inputs {
			row := buildRow(c, o)
			if err := row.check(); err != nil {
				return nil, err
			}
			t.Rows = append(t.Rows, row)
		}
	}

	g.logger.Info("vectors generated", "rows", len(t.Rows))
	return t, nil
}

func buildRow(c coordijk.CoordIJK, o coordijk.Orientation) Row {
	return Row{
		Orientation: o,
		Input:       c,
		UpAp7:       c.UpAp7(o),
		DownAp7:     c.DownAp7(o),
		DownAp3:     c.DownAp3(o),
		Rotate60CCW: c.Rotate60CCW(),
		Rotate60CW:  c.Rotate60CW(),
		Hex2d:       c.ToHex2d(),
	}
}

func (r Row) check() error {
	if got := r.DownAp7.UpAp7(r.Orientation); !got.Equals(r.Input) {
		return fmt.Errorf("%s %s: down/up aperture 7 gave %s", r.Orientation, r.Input, got)
	}
	if got := r.Rotate60CCW.Rotate60CW(); !got.Equals(r.Input) {
		return fmt.Errorf("%s %s: ccw/cw rotation gave %s", r.Orientation, r.Input, got)
	}
	if got := coordijk.FromHex2d(r.Hex2d); !got.Equals(r.Input) {
		return fmt.Errorf("%s %s: hex2d round trip gave %s", r.Orientation, r.Input, got)
	}
	return nil
}

var textColumns = []string{
	"orientation", "input", "up_ap7", "down_ap7", "down_ap3", "rotate60ccw", "rotate60cw", "hex2d",
}

// WriteText renders the table as tab-separated lines under a header.
func (t *Table) WriteText(w io.Writer) error {
	names := make([]string, len(t.Orientations))
	for i, o := range t.Orientations {
		names[i] = o.String()
	}
	if _, err := fmt.Fprintf(w, "# radius=%d orientations=%s\n", t.Radius, strings.Join(names, ",")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Join(textColumns, "\t")); err != nil {
		return err
	}
	for _, r := range t.Rows {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%.6f,%.6f\n",
			r.Orientation, r.Input, r.UpAp7, r.DownAp7, r.DownAp3,
			r.Rotate60CCW, r.Rotate60CW, r.Hex2d.X, r.Hex2d.Y)
		if err != nil {
			return err
		}
	}
	return nil
}

type yamlTable struct {
	Radius       int       `yaml:"radius"`
	Orientations []string  `yaml:"orientations,flow"`
	Rows         []yamlRow `yaml:"rows"`
}

type yamlRow struct {
	Orientation string    `yaml:"orientation"`
	Input       []int     `yaml:"input,flow"`
	UpAp7       []int     `yaml:"up_ap7,flow"`
	DownAp7     []int     `yaml:"down_ap7,flow"`
	DownAp3     []int     `yaml:"down_ap3,flow"`
	Rotate60CCW []int     `yaml:"rotate60ccw,flow"`
	Rotate60CW  []int     `yaml:"rotate60cw,flow"`
	Hex2d       []float64 `yaml:"hex2d,flow"`
}

func triple(c coordijk.CoordIJK) []int { return []int{c.I, c.J, c.K} }

// WriteYAML renders the table as a YAML document.
func (t *Table) WriteYAML(w io.Writer) error {
	doc := yamlTable{
		Radius:       t.Radius,
		Orientations: make([]string, len(t.Orientations)),
		Rows:         make([]yamlRow, len(t.Rows)),
	}
	for i, o := range t.Orientations {
		doc.Orientations[i] = o.String()
	}
	for i, r := range t.Rows {
		doc.Rows[i] = yamlRow{
			Orientation: r.Orientation.String(),
			Input:       triple(r.Input),
			UpAp7:       triple(r.UpAp7),
			DownAp7:     triple(r.DownAp7),
			DownAp3:     triple(r.DownAp3),
			Rotate60CCW: triple(r.Rotate60CCW),
			Rotate60CW:  triple(r.Rotate60CW),
			Hex2d:       []float64{r.Hex2d.X, r.Hex2d.Y},
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode vectors: %w", err)
	}
	return enc.Close()
}

// Write renders the table in the given config format.
func (t *Table) Write(w io.Writer, format string) error {
	switch format {
	case config.FormatText:
		return t.WriteText(w)
	case config.FormatYAML:
		return t.WriteYAML(w)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
