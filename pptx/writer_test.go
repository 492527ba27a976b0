package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/lectern/style"
)

// Read-side structs for inspecting written packages; element names match
// after namespace resolution.
type readSlide struct {
	XMLName xml.Name `xml:"sld"`
	CSld    struct {
		Bg     *struct{} `xml:"bg"`
		SpTree struct {
			Sp []struct {
				TxBody struct {
					P []struct {
						R []struct {
							T string `xml:"t"`
						} `xml:"r"`
					} `xml:"p"`
				} `xml:"txBody"`
			} `xml:"sp"`
			GraphicFrame []struct {
				Graphic struct {
					Data struct {
						URI string `xml:"uri,attr"`
					} `xml:"graphicData"`
				} `xml:"graphic"`
			} `xml:"graphicFrame"`
		} `xml:"spTree"`
	} `xml:"cSld"`
}

type readRels struct {
	Rels []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

func writeTestPackage(t *testing.T) *zip.Reader {
	t.Helper()
	topic := testTopic()
	topic.Slides = append(topic.Slides, slideWithChart())

	var buf bytes.Buffer
	if err := WriteTo(Build(topic, style.DefaultTheme()), &buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("reading package: %v", err)
	}
	return zr
}

func readPart(t *testing.T, zr *zip.Reader, name string) []byte {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		return data
	}
	t.Fatalf("part %s missing from package", name)
	return nil
}

func TestWritePackageParts(t *testing.T) {
	zr := writeTestPackage(t)

	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/slide3.xml",
		"ppt/slides/slide4.xml",
		"ppt/slides/_rels/slide4.xml.rels",
		"ppt/charts/chart1.xml",
	}
	for _, name := range required {
		readPart(t, zr, name)
	}
}

func TestWrittenSlideParses(t *testing.T) {
	zr := writeTestPackage(t)

	var cover readSlide
	if err := xml.Unmarshal(readPart(t, zr, "ppt/slides/slide1.xml"), &cover); err != nil {
		t.Fatalf("unmarshaling cover: %v", err)
	}
	if cover.CSld.Bg == nil {
		t.Error("cover must carry a background fill")
	}
	if len(cover.CSld.SpTree.Sp) != 2 {
		t.Errorf("cover text boxes = %d, want title and subtitle", len(cover.CSld.SpTree.Sp))
	}

	var body readSlide
	if err := xml.Unmarshal(readPart(t, zr, "ppt/slides/slide2.xml"), &body); err != nil {
		t.Fatalf("unmarshaling body slide: %v", err)
	}
	// Title box plus body box; the note paragraph keeps glyph and text runs.
	if len(body.CSld.SpTree.Sp) != 2 {
		t.Fatalf("body text boxes = %d, want 2", len(body.CSld.SpTree.Sp))
	}
	paras := body.CSld.SpTree.Sp[1].TxBody.P
	if len(paras) != 2 {
		t.Fatalf("body paragraphs = %d, want 2", len(paras))
	}
	if len(paras[1].R) != 2 {
		t.Errorf("note paragraph runs = %d, want glyph + text", len(paras[1].R))
	}

	var tableSlide readSlide
	if err := xml.Unmarshal(readPart(t, zr, "ppt/slides/slide3.xml"), &tableSlide); err != nil {
		t.Fatalf("unmarshaling table slide: %v", err)
	}
	if len(tableSlide.CSld.SpTree.GraphicFrame) != 1 {
		t.Fatalf("table frames = %d, want 1", len(tableSlide.CSld.SpTree.GraphicFrame))
	}
	if uri := tableSlide.CSld.SpTree.GraphicFrame[0].Graphic.Data.URI; uri != uriTableData {
		t.Errorf("graphic URI = %s, want table", uri)
	}
}

func TestChartSlideRelationships(t *testing.T) {
	zr := writeTestPackage(t)

	var rels readRels
	if err := xml.Unmarshal(readPart(t, zr, "ppt/slides/_rels/slide4.xml.rels"), &rels); err != nil {
		t.Fatalf("unmarshaling slide rels: %v", err)
	}
	found := false
	for _, r := range rels.Rels {
		if r.Target == "../charts/chart1.xml" {
			found = true
		}
	}
	if !found {
		t.Error("chart slide must link its chart part")
	}
}

func TestConvertCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "lesson.pptx")

	if err := Convert(testTopic(), style.DefaultTheme(), path); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output package is empty")
	}
}

func TestWriteUnwritableDestination(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root; permission bits are not enforced")
	}
	dir := t.TempDir()
	if err := os.Chmod(dir, 0o500); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(dir, 0o755)

	err := Convert(testTopic(), style.DefaultTheme(), filepath.Join(dir, "sub", "x.pptx"))
	if err == nil {
		t.Error("expected error for unwritable destination")
	}
}
