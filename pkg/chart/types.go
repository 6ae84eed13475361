package chart

// SeriesType names the visual primitive drawn for a series.
type SeriesType string

// Supported series types.
const (
	SeriesLine   SeriesType = "line"
	SeriesColumn SeriesType = "column"
	SeriesDot    SeriesType = "dot"
)

// DefaultSeriesType is used when Settings.Type is empty.
const DefaultSeriesType = SeriesLine

// Valid reports whether t is empty or one of the supported series types.
func (t SeriesType) Valid() bool {
	switch t {
	case "", SeriesLine, SeriesColumn, SeriesDot:
		return true
	}
	return false
}

// OrDefault returns t, or DefaultSeriesType when t is empty.
func (t SeriesType) OrDefault() SeriesType {
	if t == "" {
		return DefaultSeriesType
	}
	return t
}

// Point is a single (x, y) pair. The x value is an ordinal entry.
type Point struct {
	Entry string  `json:"entry" yaml:"entry"`
	Value float64 `json:"value" yaml:"value"`
}

// Series is the data drawn in one grid cell.
type Series struct {
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Values []Point `json:"values" yaml:"values"`
}

// Settings holds the per-series presentation choices.
type Settings struct {
	ColorIndex int        `json:"colorIndex" yaml:"colorIndex"`
	Label      string     `json:"label" yaml:"label"`
	Type       SeriesType `json:"type,omitempty" yaml:"type,omitempty"`
}

// PrimaryScale is the y scale shared by every cell so that axes stay comparable.
type PrimaryScale struct {
	Domain     []float64 `json:"domain,omitempty" yaml:"domain,omitempty"`
	TickValues []float64 `json:"tickValues,omitempty" yaml:"tickValues,omitempty"`
	Ticks      int       `json:"ticks,omitempty" yaml:"ticks,omitempty"`
	Precision  int       `json:"precision,omitempty" yaml:"precision,omitempty"`
	Prefix     string    `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix     string    `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

// HasDomain reports whether an explicit two-value domain was supplied.
func (s PrimaryScale) HasDomain() bool { return len(s.Domain) == 2 }

// Scale groups the scales of a chart.
type Scale struct {
	PrimaryScale PrimaryScale `json:"primaryScale" yaml:"primaryScale"`
}

// Grid is the target grid shape.
type Grid struct {
	Rows int `json:"rows" yaml:"rows"`
	Cols int `json:"cols" yaml:"cols"`
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int { return g.Rows * g.Cols }

// Props are the properties used to draw a chart grid.
type Props struct {
	ChartSettings []Settings `json:"chartSettings" yaml:"chartSettings"`
	Data          []Series   `json:"data" yaml:"data"`
	Scale         Scale      `json:"scale" yaml:"scale"`
	Grid          Grid       `json:"_grid" yaml:"_grid"`
}

// Dimensions is a width/height pair in pixels.
type Dimensions struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Metadata is the descriptive text drawn around the chart.
type Metadata struct {
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Source   string `json:"source,omitempty" yaml:"source,omitempty"`
	Credit   string `json:"credit,omitempty" yaml:"credit,omitempty"`
	Size     string `json:"size,omitempty" yaml:"size,omitempty"`
}

// IsEmpty reports whether no metadata text is set.
func (m Metadata) IsEmpty() bool {
	return m.Title == "" && m.Subtitle == "" && m.Source == "" && m.Credit == ""
}
