package pptx

import "encoding/xml"

// XML namespaces used in PPTX packages.
const (
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsChart          = "http://schemas.openxmlformats.org/drawingml/2006/chart"
	nsRelationships  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels    = "http://schemas.openxmlformats.org/package/2006/relationships"

	uriTableData = "http://schemas.openxmlformats.org/drawingml/2006/table"
	uriChartData = "http://schemas.openxmlformats.org/drawingml/2006/chart"
)

// Relationship types.
const (
	relTypeSlideMaster = nsRelationships + "/slideMaster"
	relTypeSlideLayout = nsRelationships + "/slideLayout"
	relTypeSlide       = nsRelationships + "/slide"
	relTypeTheme       = nsRelationships + "/theme"
	relTypeChart       = nsRelationships + "/chart"
	relTypeOfficeDoc   = nsRelationships + "/officeDocument"
)

// presentationXML is the ppt/presentation.xml part.
type presentationXML struct {
	XMLName         xml.Name        `xml:"p:presentation"`
	XMLNSA          string          `xml:"xmlns:a,attr"`
	XMLNSR          string          `xml:"xmlns:r,attr"`
	XMLNSP          string          `xml:"xmlns:p,attr"`
	SlideMasterList sldMasterIdList `xml:"p:sldMasterIdLst"`
	SlideList       sldIdList       `xml:"p:sldIdLst"`
	SlideSize       sldSzXML        `xml:"p:sldSz"`
	NotesSize       notesSzXML      `xml:"p:notesSz"`
}

type sldMasterIdList struct {
	IDs []sldMasterId `xml:"p:sldMasterId"`
}

type sldMasterId struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type sldIdList struct {
	IDs []sldId `xml:"p:sldId"`
}

type sldId struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type sldSzXML struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type notesSzXML struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

// slideXML is one ppt/slides/slideN.xml part.
type slideXML struct {
	XMLName   xml.Name     `xml:"p:sld"`
	XMLNSA    string       `xml:"xmlns:a,attr"`
	XMLNSR    string       `xml:"xmlns:r,attr"`
	XMLNSP    string       `xml:"xmlns:p,attr"`
	CSld      cSldXML      `xml:"p:cSld"`
	ClrMapOvr clrMapOvrXML `xml:"p:clrMapOvr"`
}

type cSldXML struct {
	Bg     *bgXML    `xml:"p:bg,omitempty"`
	SpTree spTreeXML `xml:"p:spTree"`
}

type bgXML struct {
	BgPr bgPrXML `xml:"p:bgPr"`
}

type bgPrXML struct {
	Fill      solidFillXML `xml:"a:solidFill"`
	EffectLst struct{}     `xml:"a:effectLst"`
}

type clrMapOvrXML struct {
	MasterClrMapping struct{} `xml:"a:masterClrMapping"`
}

// spTreeXML is the shape tree of one slide. Shapes holds the mixed
// sp/cxnSp/graphicFrame children in drawing order; each concrete type
// carries its own XMLName.
type spTreeXML struct {
	NvGrpSpPr nvGrpSpPrXML `xml:"p:nvGrpSpPr"`
	GrpSpPr   grpSpPrXML   `xml:"p:grpSpPr"`
	Shapes    []any
}

type nvGrpSpPrXML struct {
	CNvPr      cNvPrXML `xml:"p:cNvPr"`
	CNvGrpSpPr struct{} `xml:"p:cNvGrpSpPr"`
	NvPr       struct{} `xml:"p:nvPr"`
}

type grpSpPrXML struct {
	Xfrm groupXfrmXML `xml:"a:xfrm"`
}

type groupXfrmXML struct {
	Off   offXML `xml:"a:off"`
	Ext   extXML `xml:"a:ext"`
	ChOff offXML `xml:"a:chOff"`
	ChExt extXML `xml:"a:chExt"`
}

type cNvPrXML struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// spXML is a text box shape.
type spXML struct {
	XMLName xml.Name  `xml:"p:sp"`
	NvSpPr  nvSpPrXML `xml:"p:nvSpPr"`
	SpPr    spPrXML   `xml:"p:spPr"`
	TxBody  txBodyXML `xml:"p:txBody"`
}

type nvSpPrXML struct {
	CNvPr   cNvPrXML `xml:"p:cNvPr"`
	CNvSpPr struct{} `xml:"p:cNvSpPr"`
	NvPr    struct{} `xml:"p:nvPr"`
}

type spPrXML struct {
	Xfrm     *xfrmXML     `xml:"a:xfrm,omitempty"`
	PrstGeom *prstGeomXML `xml:"a:prstGeom,omitempty"`
	Ln       *lnXML       `xml:"a:ln,omitempty"`
}

type xfrmXML struct {
	Off offXML `xml:"a:off"`
	Ext extXML `xml:"a:ext"`
}

type offXML struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type extXML struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type prstGeomXML struct {
	Prst  string   `xml:"prst,attr"`
	AvLst struct{} `xml:"a:avLst"`
}

type lnXML struct {
	W    int64         `xml:"w,attr,omitempty"`
	Fill *solidFillXML `xml:"a:solidFill,omitempty"`
}

// cxnSpXML is a connector shape, used for the decorative title rule.
type cxnSpXML struct {
	XMLName   xml.Name     `xml:"p:cxnSp"`
	NvCxnSpPr nvCxnSpPrXML `xml:"p:nvCxnSpPr"`
	SpPr      spPrXML      `xml:"p:spPr"`
}

type nvCxnSpPrXML struct {
	CNvPr      cNvPrXML `xml:"p:cNvPr"`
	CNvCxnSpPr struct{} `xml:"p:cNvCxnSpPr"`
	NvPr       struct{} `xml:"p:nvPr"`
}

// txBodyXML is a shape text body.
type txBodyXML struct {
	BodyPr   bodyPrXML `xml:"a:bodyPr"`
	LstStyle struct{}  `xml:"a:lstStyle"`
	P        []paraXML `xml:"a:p"`
}

type bodyPrXML struct {
	Wrap   string `xml:"wrap,attr,omitempty"`
	Anchor string `xml:"anchor,attr,omitempty"`
}

// paraXML is one a:p paragraph.
type paraXML struct {
	PPr  *pPrXML  `xml:"a:pPr,omitempty"`
	Runs []runXML `xml:"a:r"`
}

type pPrXML struct {
	Lvl  int    `xml:"lvl,attr,omitempty"`
	Algn string `xml:"algn,attr,omitempty"`
}

// runXML is one a:r text run.
type runXML struct {
	RPr *rPrXML `xml:"a:rPr,omitempty"`
	T   string  `xml:"a:t"`
}

// rPrXML holds run properties. Sz is in hundredths of a point.
type rPrXML struct {
	Sz     int           `xml:"sz,attr,omitempty"`
	Bold   int           `xml:"b,attr,omitempty"`
	Italic int           `xml:"i,attr,omitempty"`
	Fill   *solidFillXML `xml:"a:solidFill,omitempty"`
}

type solidFillXML struct {
	Color srgbClrXML `xml:"a:srgbClr"`
}

type srgbClrXML struct {
	Val string `xml:"val,attr"`
}

// graphicFrameXML hosts a table or a chart reference.
type graphicFrameXML struct {
	XMLName xml.Name      `xml:"p:graphicFrame"`
	NvPr    nvGraphicsXML `xml:"p:nvGraphicFramePr"`
	Xfrm    xfrmXML       `xml:"p:xfrm"`
	Graphic graphicXML    `xml:"a:graphic"`
}

type nvGraphicsXML struct {
	CNvPr            cNvPrXML `xml:"p:cNvPr"`
	CNvGraphicFramePr struct{} `xml:"p:cNvGraphicFramePr"`
	NvPr             struct{} `xml:"p:nvPr"`
}

type graphicXML struct {
	Data graphicDataXML `xml:"a:graphicData"`
}

type graphicDataXML struct {
	URI   string       `xml:"uri,attr"`
	Tbl   *tblXML      `xml:"a:tbl,omitempty"`
	Chart *chartRefXML `xml:"c:chart,omitempty"`
}

// chartRefXML points a graphic frame at a chart part via relationship ID.
type chartRefXML struct {
	XMLNSC string `xml:"xmlns:c,attr"`
	XMLNSR string `xml:"xmlns:r,attr"`
	RID    string `xml:"r:id,attr"`
}

// tblXML is an a:tbl drawing table.
type tblXML struct {
	TblPr   tblPrXML   `xml:"a:tblPr"`
	TblGrid tblGridXML `xml:"a:tblGrid"`
	Rows    []trXML    `xml:"a:tr"`
}

type tblPrXML struct {
	FirstRow int `xml:"firstRow,attr"`
	BandRow  int `xml:"bandRow,attr"`
}

type tblGridXML struct {
	Cols []gridColXML `xml:"a:gridCol"`
}

type gridColXML struct {
	W int64 `xml:"w,attr"`
}

type trXML struct {
	H     int64   `xml:"h,attr"`
	Cells []tcXML `xml:"a:tc"`
}

type tcXML struct {
	TxBody txBodyXML `xml:"a:txBody"`
	TcPr   tcPrXML   `xml:"a:tcPr"`
}

type tcPrXML struct {
	Anchor string        `xml:"anchor,attr,omitempty"`
	Fill   *solidFillXML `xml:"a:solidFill,omitempty"`
}

// relationshipsXML is a part relationship list (.rels file).
type relationshipsXML struct {
	XMLName xml.Name          `xml:"Relationships"`
	XMLNS   string            `xml:"xmlns,attr"`
	Rels    []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// contentTypesXML is the [Content_Types].xml part.
type contentTypesXML struct {
	XMLName   xml.Name             `xml:"Types"`
	XMLNS     string               `xml:"xmlns,attr"`
	Defaults  []ctDefaultXML       `xml:"Default"`
	Overrides []ctOverrideXML      `xml:"Override"`
}

type ctDefaultXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type ctOverrideXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}
