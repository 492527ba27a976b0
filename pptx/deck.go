package pptx

import (
	"github.com/tsawler/lectern/layout"
	"github.com/tsawler/lectern/model"
	"github.com/tsawler/lectern/style"
)

// Deck is an assembled presentation: a cover slide followed by one body
// slide per topic entry, in input order.
type Deck struct {
	slides []*Slide
}

// Slide is one assembled slide and the chart parts it owns.
type Slide struct {
	xml    *slideXML
	charts []*chartSpaceXML
	mode   layout.Mode
	title  string
	cover  bool
}

// SlideCount returns the number of slides, cover included.
func (d *Deck) SlideCount() int {
	return len(d.slides)
}

// Slides returns the assembled slides in deck order.
func (d *Deck) Slides() []*Slide {
	return d.slides
}

// Mode returns the slide's layout mode. The cover is TextOnly.
func (s *Slide) Mode() layout.Mode { return s.mode }

// Title returns the slide title after defaulting.
func (s *Slide) Title() string { return s.title }

// Cover reports whether this is the cover slide.
func (s *Slide) Cover() bool { return s.cover }

// BodyParagraphs returns the text of every paragraph in the slide's body
// text box, in flow order. Title, cover and visual content are excluded.
func (s *Slide) BodyParagraphs() []string {
	var out []string
	for _, shape := range s.xml.CSld.SpTree.Shapes {
		sp, ok := shape.(*spXML)
		if !ok || sp.NvSpPr.CNvPr.Name != "body" {
			continue
		}
		for _, p := range sp.TxBody.P {
			var text string
			for _, r := range p.Runs {
				text += r.T
			}
			out = append(out, text)
		}
	}
	return out
}

// VisualCount returns the number of table and chart frames on the slide.
func (s *Slide) VisualCount() int {
	n := 0
	for _, shape := range s.xml.CSld.SpTree.Shapes {
		if _, ok := shape.(*graphicFrameXML); ok {
			n++
		}
	}
	return n
}

// Build assembles a deck from a topic. Missing topic and slide titles
// default to the placeholder; assembly itself has no error path.
func Build(t *model.Topic, theme style.Theme) *Deck {
	d := &Deck{}
	d.slides = append(d.slides, coverSlide(t, theme))
	for i := range t.Slides {
		d.slides = append(d.slides, bodySlide(&t.Slides[i], theme))
	}
	return d
}

func newSlideXML() *slideXML {
	return &slideXML{
		XMLNSA: nsDrawingML,
		XMLNSR: nsRelationships,
		XMLNSP: nsPresentationML,
		CSld: cSldXML{
			SpTree: spTreeXML{
				NvGrpSpPr: nvGrpSpPrXML{CNvPr: cNvPrXML{ID: 1, Name: ""}},
			},
		},
	}
}

// coverSlide renders the cover: full-bleed primary background, large
// centered white title, and a subtitle box only when a subtitle exists.
func coverSlide(t *model.Topic, theme style.Theme) *Slide {
	sx := newSlideXML()
	sx.CSld.Bg = &bgXML{BgPr: bgPrXML{Fill: *fill(theme.Primary)}}

	title := textBox(2, "cover title", layout.CoverTitle, []paraXML{{
		PPr: &pPrXML{Algn: "ctr"},
		Runs: []runXML{{
			RPr: &rPrXML{Sz: szCoverTitle, Bold: 1, Fill: fill(style.White)},
			T:   t.TitleOrDefault(),
		}},
	}})
	sx.CSld.SpTree.Shapes = append(sx.CSld.SpTree.Shapes, title)

	if t.Subtitle != "" {
		subtitle := textBox(3, "cover subtitle", layout.CoverSubtitle, []paraXML{{
			PPr: &pPrXML{Algn: "ctr"},
			Runs: []runXML{{
				RPr: &rPrXML{Sz: szCoverSubtitle, Fill: fill(style.White)},
				T:   t.Subtitle,
			}},
		}})
		sx.CSld.SpTree.Shapes = append(sx.CSld.SpTree.Shapes, subtitle)
	}

	return &Slide{xml: sx, mode: layout.TextOnly, title: t.TitleOrDefault(), cover: true}
}

// bodySlide renders one content slide: title bar, decorative rule, then
// the body partitioned per the layout plan.
func bodySlide(s *model.Slide, theme style.Theme) *Slide {
	sx := newSlideXML()
	id := 2
	add := func(shape any) {
		sx.CSld.SpTree.Shapes = append(sx.CSld.SpTree.Shapes, shape)
		id++
	}

	title := textBox(id, "title", layout.TitleBar, []paraXML{{
		PPr: &pPrXML{Algn: "l"},
		Runs: []runXML{{
			RPr: &rPrXML{Sz: szSlideTitle, Bold: 1, Fill: fill(theme.Primary)},
			T:   s.TitleOrDefault(),
		}},
	}})
	add(title)
	add(titleRule(id, theme))

	plan := layout.Place(s.Content)
	slide := &Slide{xml: sx, mode: plan.Mode, title: s.TitleOrDefault()}

	if plan.HasText {
		paras := flowParagraphs(s.Content, theme)
		add(textBox(id, "body", plan.Text, paras))
	}

	for _, vp := range plan.Visuals {
		switch item := s.Content[vp.Index].(type) {
		case model.Table:
			add(tableFrame(id, item, vp.Rect, theme))
		case model.BarChart:
			slide.charts = append(slide.charts, barChartSpace(item, theme))
			add(chartFrame(id, slide.chartRID(len(slide.charts)), vp.Rect))
		case model.LineChart:
			slide.charts = append(slide.charts, lineChartSpace(item, theme))
			add(chartFrame(id, slide.chartRID(len(slide.charts)), vp.Rect))
		case model.PieChart:
			slide.charts = append(slide.charts, pieChartSpace(item))
			add(chartFrame(id, slide.chartRID(len(slide.charts)), vp.Rect))
		}
	}

	return slide
}

// chartRID returns the slide-local relationship ID of the n-th chart
// (1-based). rId1 is reserved for the slide layout.
func (s *Slide) chartRID(n int) string {
	return "rId" + itoa(n+1)
}
