package model

// ItemType identifies the concrete type of a ContentItem.
type ItemType int

const (
	ItemTypeUnknown ItemType = iota
	ItemTypePlainText
	ItemTypeEmphasisBlock
	ItemTypeComponentList
	ItemTypeSolutionSteps
	ItemTypeTable
	ItemTypeBarChart
	ItemTypeLineChart
	ItemTypePieChart
)

func (it ItemType) String() string {
	switch it {
	case ItemTypePlainText:
		return "PlainText"
	case ItemTypeEmphasisBlock:
		return "EmphasisBlock"
	case ItemTypeComponentList:
		return "ComponentList"
	case ItemTypeSolutionSteps:
		return "SolutionSteps"
	case ItemTypeTable:
		return "Table"
	case ItemTypeBarChart:
		return "BarChart"
	case ItemTypeLineChart:
		return "LineChart"
	case ItemTypePieChart:
		return "PieChart"
	default:
		return "Unknown"
	}
}

// ContentItem is the interface implemented by all slide content variants.
// The set of implementations is closed; decoders map unrecognized input to
// an EmphasisBlock with its original kind so styling can degrade to the
// neutral default instead of failing the slide.
type ContentItem interface {
	Type() ItemType
	// Visual reports whether the item is a structured visual (table or
	// chart) that claims its own placement rectangle.
	Visual() bool
}

// Kind is the semantic kind of an EmphasisBlock. The constants carry the
// wire spelling used by lesson documents.
type Kind string

const (
	KindNote        Kind = "nota"
	KindExample     Kind = "ejemplo"
	KindProblem     Kind = "problema"
	KindFormula     Kind = "formula"
	KindComputation Kind = "calculo"
)

// PlainText is a free-flowing body line.
type PlainText struct {
	Text string
}

func (PlainText) Type() ItemType { return ItemTypePlainText }
func (PlainText) Visual() bool   { return false }

// EmphasisBlock is a callout rendered with a kind-specific glyph and color.
type EmphasisBlock struct {
	Kind Kind
	Text string
}

func (EmphasisBlock) Type() ItemType { return ItemTypeEmphasisBlock }
func (EmphasisBlock) Visual() bool   { return false }

// ComponentList holds entries rendered as indented lines.
type ComponentList struct {
	Items []string
}

func (ComponentList) Type() ItemType { return ItemTypeComponentList }
func (ComponentList) Visual() bool   { return false }

// SolutionSteps holds worked steps rendered as indented, accent-colored
// lines.
type SolutionSteps struct {
	Steps []string
}

func (SolutionSteps) Type() ItemType { return ItemTypeSolutionSteps }
func (SolutionSteps) Visual() bool   { return false }

// Table is a header row plus data rows. Every row must have exactly
// len(Headers) cells; see Validate.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (Table) Type() ItemType { return ItemTypeTable }
func (Table) Visual() bool   { return true }

// RowCount returns the number of data rows (the header is not counted).
func (t Table) RowCount() int { return len(t.Rows) }

// ColCount returns the number of columns.
func (t Table) ColCount() int { return len(t.Headers) }

// Validate checks that every data row matches the header width.
func (t Table) Validate() error {
	for i, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return &ShapeError{
				ItemType: ItemTypeTable,
				Want:     len(t.Headers),
				Got:      len(row),
				Detail:   "row " + itoa(i+1),
			}
		}
	}
	return nil
}

// BarChart is a clustered column chart over one series.
type BarChart struct {
	Categories []string
	Values     []float64
	XLabel     string
	YLabel     string
	SeriesName string
}

func (BarChart) Type() ItemType { return ItemTypeBarChart }
func (BarChart) Visual() bool   { return true }

// Validate checks that categories and values have equal length.
func (c BarChart) Validate() error {
	if len(c.Categories) != len(c.Values) {
		return &ShapeError{
			ItemType: ItemTypeBarChart,
			Want:     len(c.Categories),
			Got:      len(c.Values),
			Detail:   "categories vs values",
		}
	}
	return nil
}

// LineChart is a line chart over one series. X values are display strings;
// numeric input is coerced at the decode boundary.
type LineChart struct {
	XValues    []string
	YValues    []float64
	XLabel     string
	YLabel     string
	SeriesName string
}

func (LineChart) Type() ItemType { return ItemTypeLineChart }
func (LineChart) Visual() bool   { return true }

// Validate checks that the X and Y series have equal length.
func (c LineChart) Validate() error {
	if len(c.XValues) != len(c.YValues) {
		return &ShapeError{
			ItemType: ItemTypeLineChart,
			Want:     len(c.XValues),
			Got:      len(c.YValues),
			Detail:   "x values vs y values",
		}
	}
	return nil
}

// PieChart is a pie chart with one value per label.
type PieChart struct {
	Labels []string
	Values []float64
}

func (PieChart) Type() ItemType { return ItemTypePieChart }
func (PieChart) Visual() bool   { return true }

// Validate checks that labels and values have equal length.
func (c PieChart) Validate() error {
	if len(c.Labels) != len(c.Values) {
		return &ShapeError{
			ItemType: ItemTypePieChart,
			Want:     len(c.Labels),
			Got:      len(c.Values),
			Detail:   "labels vs values",
		}
	}
	return nil
}
