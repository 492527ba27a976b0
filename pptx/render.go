package pptx

import (
	"strconv"

	"github.com/tsawler/lectern/layout"
	"github.com/tsawler/lectern/model"
	"github.com/tsawler/lectern/style"
)

// Font sizes in hundredths of a point.
const (
	szCoverTitle    = 4400
	szCoverSubtitle = 2400
	szSlideTitle    = 3200
	szBody          = 1800
	szEmphasis      = 1600
	szTableHeader   = 1400
	szTableCell     = 1200
)

// ruleWidthEMU is the 3pt decorative rule stroke.
const ruleWidthEMU = 3 * model.EMUPerPoint

// lineStrokeEMU is the 3pt line-chart stroke.
const lineStrokeEMU = 3 * model.EMUPerPoint

func fill(c style.Color) *solidFillXML {
	return &solidFillXML{Color: srgbClrXML{Val: c.Hex()}}
}

// textParagraph renders one body line at the given indent level. A zero
// color value is never produced by callers; the neutral text color is the
// caller's default.
func textParagraph(text string, level int, sz int, c style.Color) paraXML {
	p := paraXML{
		Runs: []runXML{{
			RPr: &rPrXML{Sz: sz, Fill: fill(c)},
			T:   text,
		}},
	}
	if level > 0 {
		p.PPr = &pPrXML{Lvl: level}
	}
	return p
}

// emphasisParagraph renders a callout as a two-run paragraph: the kind's
// marker glyph, then the text in italics carrying the kind's color.
func emphasisParagraph(block model.EmphasisBlock, theme style.Theme) paraXML {
	glyph, c := theme.Emphasis(block.Kind)
	return paraXML{
		Runs: []runXML{
			{
				RPr: &rPrXML{Sz: szEmphasis},
				T:   glyph,
			},
			{
				RPr: &rPrXML{Sz: szEmphasis, Italic: 1, Fill: fill(c)},
				T:   block.Text,
			},
		},
	}
}

// flowParagraphs renders the text-flow items of a content list, in order,
// into the paragraph sequence of one shared text box. Visual items are
// skipped; they are placed separately.
func flowParagraphs(items []model.ContentItem, theme style.Theme) []paraXML {
	var paras []paraXML
	for _, item := range items {
		switch it := item.(type) {
		case model.PlainText:
			paras = append(paras, textParagraph(it.Text, 0, szBody, theme.Text))
		case model.EmphasisBlock:
			paras = append(paras, emphasisParagraph(it, theme))
		case model.ComponentList:
			for _, entry := range it.Items {
				paras = append(paras, textParagraph(entry, 1, szBody, theme.Text))
			}
		case model.SolutionSteps:
			for _, step := range it.Steps {
				paras = append(paras, textParagraph(step, 1, szBody, theme.Accent))
			}
		}
	}
	return paras
}

// textBox builds a wrapped text box shape at the given rectangle.
func textBox(id int, name string, rect model.Rect, paras []paraXML) *spXML {
	x, y := rect.OffsetEMU()
	cx, cy := rect.ExtentEMU()
	return &spXML{
		NvSpPr: nvSpPrXML{CNvPr: cNvPrXML{ID: id, Name: name}},
		SpPr: spPrXML{
			Xfrm: &xfrmXML{Off: offXML{X: x, Y: y}, Ext: extXML{Cx: cx, Cy: cy}},
		},
		TxBody: txBodyXML{
			BodyPr: bodyPrXML{Wrap: "square"},
			P:      paras,
		},
	}
}

// titleRule builds the fixed-geometry accent rule beneath the title.
func titleRule(id int, theme style.Theme) *cxnSpXML {
	x, y := layout.Rule.OffsetEMU()
	cx, _ := layout.Rule.ExtentEMU()
	return &cxnSpXML{
		NvCxnSpPr: nvCxnSpPrXML{CNvPr: cNvPrXML{ID: id, Name: "title rule"}},
		SpPr: spPrXML{
			Xfrm: &xfrmXML{
				Off: offXML{X: x, Y: y},
				Ext: extXML{Cx: cx, Cy: 0},
			},
			PrstGeom: &prstGeomXML{Prst: "line"},
			Ln: &lnXML{
				W:    ruleWidthEMU,
				Fill: fill(theme.Accent),
			},
		},
	}
}

// tableFrame renders a table item into a graphic frame at the given
// rectangle: a bold white-on-primary header row, then data rows with the
// light background tint on every second 1-based row. All cell text is
// centered.
func tableFrame(id int, t model.Table, rect model.Rect, theme style.Theme) *graphicFrameXML {
	cols := t.ColCount()
	if cols == 0 {
		cols = 1
	}
	x, y := rect.OffsetEMU()
	cx, cy := rect.ExtentEMU()
	colW := cx / int64(cols)
	rowH := cy / int64(t.RowCount()+1)

	grid := tblGridXML{Cols: make([]gridColXML, cols)}
	for i := range grid.Cols {
		grid.Cols[i] = gridColXML{W: colW}
	}

	header := trXML{H: rowH}
	for _, h := range t.Headers {
		header.Cells = append(header.Cells, tcXML{
			TxBody: cellBody(h, szTableHeader, true, style.White),
			TcPr:   tcPrXML{Anchor: "ctr", Fill: fill(theme.Primary)},
		})
	}

	rows := []trXML{header}
	for i, dataRow := range t.Rows {
		tr := trXML{H: rowH}
		for _, cell := range dataRow {
			tc := tcXML{
				TxBody: cellBody(cell, szTableCell, false, theme.Text),
				TcPr:   tcPrXML{Anchor: "ctr"},
			}
			// 1-based data rows; even rows get the alternate tint.
			if (i+1)%2 == 0 {
				tc.TcPr.Fill = fill(theme.LightBG)
			}
			tr.Cells = append(tr.Cells, tc)
		}
		rows = append(rows, tr)
	}

	return &graphicFrameXML{
		NvPr: nvGraphicsXML{CNvPr: cNvPrXML{ID: id, Name: "table"}},
		Xfrm: xfrmXML{Off: offXML{X: x, Y: y}, Ext: extXML{Cx: cx, Cy: cy}},
		Graphic: graphicXML{Data: graphicDataXML{
			URI: uriTableData,
			Tbl: &tblXML{
				TblPr:   tblPrXML{FirstRow: 1},
				TblGrid: grid,
				Rows:    rows,
			},
		}},
	}
}

func cellBody(text string, sz int, bold bool, c style.Color) txBodyXML {
	rpr := &rPrXML{Sz: sz, Fill: fill(c)}
	if bold {
		rpr.Bold = 1
	}
	return txBodyXML{
		P: []paraXML{{
			PPr:  &pPrXML{Algn: "ctr"},
			Runs: []runXML{{RPr: rpr, T: text}},
		}},
	}
}

// chartFrame builds the graphic frame that anchors a chart part on the
// slide via its relationship ID.
func chartFrame(id int, rid string, rect model.Rect) *graphicFrameXML {
	x, y := rect.OffsetEMU()
	cx, cy := rect.ExtentEMU()
	return &graphicFrameXML{
		NvPr: nvGraphicsXML{CNvPr: cNvPrXML{ID: id, Name: "chart"}},
		Xfrm: xfrmXML{Off: offXML{X: x, Y: y}, Ext: extXML{Cx: cx, Cy: cy}},
		Graphic: graphicXML{Data: graphicDataXML{
			URI:   uriChartData,
			Chart: &chartRefXML{XMLNSC: nsChart, XMLNSR: nsRelationships, RID: rid},
		}},
	}
}

func chartSpace() *chartSpaceXML {
	return &chartSpaceXML{XMLNSC: nsChart, XMLNSA: nsDrawingML, XMLNSR: nsRelationships}
}

func series(name string, cats []string, vals []float64) serXML {
	cat := &catXML{StrLit: strLitXML{PtCount: val(strconv.Itoa(len(cats)))}}
	for i, c := range cats {
		cat.StrLit.Pts = append(cat.StrLit.Pts, ptXML{Idx: i, V: c})
	}
	v := &valXML{NumLit: numLitXML{PtCount: val(strconv.Itoa(len(vals)))}}
	for i, f := range vals {
		v.NumLit.Pts = append(v.NumLit.Pts, ptXML{Idx: i, V: formatFloat(f)})
	}
	return serXML{
		Idx:   val("0"),
		Order: val("0"),
		Tx:    &serTxXML{V: name},
		Cat:   cat,
		Val:   v,
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// category/value axis IDs shared by the bar and line charts.
const (
	catAxisID = "111111111"
	valAxisID = "222222222"
)

func axes(xLabel, yLabel string) (*catAxXML, *valAxXML) {
	cat := &catAxXML{
		AxID:    val(catAxisID),
		Scaling: scalingXML{Orientation: val("minMax")},
		Delete:  val("0"),
		AxPos:   val("b"),
		CrossAx: val(valAxisID),
	}
	if xLabel != "" {
		cat.Title = axisTitle(xLabel)
	}
	v := &valAxXML{
		AxID:    val(valAxisID),
		Scaling: scalingXML{Orientation: val("minMax")},
		Delete:  val("0"),
		AxPos:   val("l"),
		CrossAx: val(catAxisID),
	}
	if yLabel != "" {
		v.Title = axisTitle(yLabel)
	}
	return cat, v
}

func axisTitle(text string) *axTitleXML {
	return &axTitleXML{
		Tx: axTitleTxXML{Rich: txBodyXML{
			P: []paraXML{{Runs: []runXML{{T: text}}}},
		}},
		Overlay: val("0"),
	}
}

// barChartSpace renders a bar chart item: clustered columns, solid
// primary fill, legend at the bottom.
func barChartSpace(c model.BarChart, theme style.Theme) *chartSpaceXML {
	cs := chartSpace()
	ser := series(c.SeriesName, c.Categories, c.Values)
	ser.SpPr = &serSpPrXML{Fill: fill(theme.Primary)}

	catAx, valAx := axes(c.XLabel, c.YLabel)
	cs.Chart = chartXML{
		PlotArea: plotAreaXML{
			Bar: &barChartXML{
				BarDir:   val("col"),
				Grouping: val("clustered"),
				Series:   []serXML{ser},
				AxIDs:    []valAttrXML{val(catAxisID), val(valAxisID)},
			},
			CatAx: catAx,
			ValAx: valAx,
		},
		Legend:      &legendXML{Pos: val("b"), Overlay: val("0")},
		PlotVisOnly: val("1"),
	}
	return cs
}

// lineChartSpace renders a line chart item: secondary-color stroke at a
// fixed 3pt width, legend at the bottom.
func lineChartSpace(c model.LineChart, theme style.Theme) *chartSpaceXML {
	cs := chartSpace()
	ser := series(c.SeriesName, c.XValues, c.YValues)
	ser.SpPr = &serSpPrXML{Ln: &lnXML{W: lineStrokeEMU, Fill: fill(theme.Secondary)}}

	catAx, valAx := axes(c.XLabel, c.YLabel)
	cs.Chart = chartXML{
		PlotArea: plotAreaXML{
			Line: &lineChartXML{
				Grouping: val("standard"),
				Series:   []serXML{ser},
				Marker:   val("1"),
				AxIDs:    []valAttrXML{val(catAxisID), val(valAxisID)},
			},
			CatAx: catAx,
			ValAx: valAx,
		},
		Legend:      &legendXML{Pos: val("b"), Overlay: val("0")},
		PlotVisOnly: val("1"),
	}
	return cs
}

// pieChartSpace renders a pie chart item: default palette per slice,
// legend at the right.
func pieChartSpace(c model.PieChart) *chartSpaceXML {
	cs := chartSpace()
	cs.Chart = chartXML{
		PlotArea: plotAreaXML{
			Pie: &pieChartXML{
				VaryColors: val("1"),
				Series:     []serXML{series("Serie 1", c.Labels, c.Values)},
			},
		},
		Legend:      &legendXML{Pos: val("r"), Overlay: val("0")},
		PlotVisOnly: val("1"),
	}
	return cs
}
