package pptx

import "encoding/xml"

// chartSpaceXML is one ppt/charts/chartN.xml part.
type chartSpaceXML struct {
	XMLName xml.Name `xml:"c:chartSpace"`
	XMLNSC  string   `xml:"xmlns:c,attr"`
	XMLNSA  string   `xml:"xmlns:a,attr"`
	XMLNSR  string   `xml:"xmlns:r,attr"`
	Chart   chartXML `xml:"c:chart"`
}

type chartXML struct {
	PlotArea    plotAreaXML `xml:"c:plotArea"`
	Legend      *legendXML  `xml:"c:legend,omitempty"`
	PlotVisOnly valAttrXML  `xml:"c:plotVisOnly"`
}

type plotAreaXML struct {
	Layout struct{}      `xml:"c:layout"`
	Bar    *barChartXML  `xml:"c:barChart,omitempty"`
	Line   *lineChartXML `xml:"c:lineChart,omitempty"`
	Pie    *pieChartXML  `xml:"c:pieChart,omitempty"`
	CatAx  *catAxXML     `xml:"c:catAx,omitempty"`
	ValAx  *valAxXML     `xml:"c:valAx,omitempty"`
}

type barChartXML struct {
	BarDir   valAttrXML  `xml:"c:barDir"`
	Grouping valAttrXML  `xml:"c:grouping"`
	Series   []serXML    `xml:"c:ser"`
	AxIDs    []valAttrXML `xml:"c:axId"`
}

type lineChartXML struct {
	Grouping valAttrXML  `xml:"c:grouping"`
	Series   []serXML    `xml:"c:ser"`
	Marker   valAttrXML  `xml:"c:marker"`
	AxIDs    []valAttrXML `xml:"c:axId"`
}

type pieChartXML struct {
	VaryColors valAttrXML `xml:"c:varyColors"`
	Series     []serXML   `xml:"c:ser"`
}

// serXML is one chart series.
type serXML struct {
	Idx   valAttrXML  `xml:"c:idx"`
	Order valAttrXML  `xml:"c:order"`
	Tx    *serTxXML   `xml:"c:tx,omitempty"`
	SpPr  *serSpPrXML `xml:"c:spPr,omitempty"`
	Cat   *catXML     `xml:"c:cat,omitempty"`
	Val   *valXML     `xml:"c:val,omitempty"`
}

type serTxXML struct {
	V string `xml:"c:v"`
}

// serSpPrXML carries series shape properties: solid fill for bars, line
// stroke for line series.
type serSpPrXML struct {
	Fill *solidFillXML `xml:"a:solidFill,omitempty"`
	Ln   *lnXML        `xml:"a:ln,omitempty"`
}

type catXML struct {
	StrLit strLitXML `xml:"c:strLit"`
}

type valXML struct {
	NumLit numLitXML `xml:"c:numLit"`
}

type strLitXML struct {
	PtCount valAttrXML `xml:"c:ptCount"`
	Pts     []ptXML    `xml:"c:pt"`
}

type numLitXML struct {
	PtCount valAttrXML `xml:"c:ptCount"`
	Pts     []ptXML    `xml:"c:pt"`
}

type ptXML struct {
	Idx int    `xml:"idx,attr"`
	V   string `xml:"c:v"`
}

type legendXML struct {
	Pos     valAttrXML `xml:"c:legendPos"`
	Overlay valAttrXML `xml:"c:overlay"`
}

type catAxXML struct {
	AxID     valAttrXML  `xml:"c:axId"`
	Scaling  scalingXML  `xml:"c:scaling"`
	Delete   valAttrXML  `xml:"c:delete"`
	AxPos    valAttrXML  `xml:"c:axPos"`
	Title    *axTitleXML `xml:"c:title,omitempty"`
	CrossAx  valAttrXML  `xml:"c:crossAx"`
}

type valAxXML struct {
	AxID    valAttrXML  `xml:"c:axId"`
	Scaling scalingXML  `xml:"c:scaling"`
	Delete  valAttrXML  `xml:"c:delete"`
	AxPos   valAttrXML  `xml:"c:axPos"`
	Title   *axTitleXML `xml:"c:title,omitempty"`
	CrossAx valAttrXML  `xml:"c:crossAx"`
}

type scalingXML struct {
	Orientation valAttrXML `xml:"c:orientation"`
}

// axTitleXML is an axis title with literal rich text.
type axTitleXML struct {
	Tx      axTitleTxXML `xml:"c:tx"`
	Overlay valAttrXML   `xml:"c:overlay"`
}

type axTitleTxXML struct {
	Rich txBodyXML `xml:"c:rich"`
}

type valAttrXML struct {
	Val string `xml:"val,attr"`
}

func val(s string) valAttrXML { return valAttrXML{Val: s} }
