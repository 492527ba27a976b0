package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tsawler/lectern/model"
	"github.com/tsawler/lectern/style"
)

// Content types of the package parts.
const (
	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctChart        = "application/vnd.openxmlformats-officedocument.drawingml.chart+xml"
	ctRels         = "application/vnd.openxmlformats-package.relationships+xml"
)

// Convert assembles a deck from the topic and writes it to path.
func Convert(t *model.Topic, theme style.Theme, path string) error {
	return Write(Build(t, theme), path)
}

// Write serializes a deck as a PPTX package at path, creating missing
// parent directories. I/O failures propagate to the caller; there are no
// retries.
func Write(d *Deck, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteTo(d, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// WriteTo serializes a deck as a PPTX package to w.
func WriteTo(d *Deck, w io.Writer) error {
	zw := zip.NewWriter(w)

	// Global chart part numbering across the deck.
	chartNo := 0
	chartNames := make([][]string, len(d.slides))
	for i, s := range d.slides {
		for range s.charts {
			chartNo++
			chartNames[i] = append(chartNames[i], "chart"+strconv.Itoa(chartNo))
		}
	}

	if err := writePart(zw, "[Content_Types].xml", contentTypes(d, chartNo)); err != nil {
		return err
	}
	if err := writePart(zw, "_rels/.rels", packageRels()); err != nil {
		return err
	}
	if err := writePart(zw, "ppt/presentation.xml", presentation(d)); err != nil {
		return err
	}
	if err := writePart(zw, "ppt/_rels/presentation.xml.rels", presentationRels(d)); err != nil {
		return err
	}

	if err := writeRaw(zw, "ppt/slideMasters/slideMaster1.xml", slideMasterXML); err != nil {
		return err
	}
	if err := writePart(zw, "ppt/slideMasters/_rels/slideMaster1.xml.rels", masterRels()); err != nil {
		return err
	}
	if err := writeRaw(zw, "ppt/slideLayouts/slideLayout1.xml", slideLayoutXML); err != nil {
		return err
	}
	if err := writePart(zw, "ppt/slideLayouts/_rels/slideLayout1.xml.rels", layoutRels()); err != nil {
		return err
	}
	if err := writeRaw(zw, "ppt/theme/theme1.xml", themeXML); err != nil {
		return err
	}

	for i, s := range d.slides {
		name := "slide" + strconv.Itoa(i+1)
		if err := writePart(zw, "ppt/slides/"+name+".xml", s.xml); err != nil {
			return err
		}
		if err := writePart(zw, "ppt/slides/_rels/"+name+".xml.rels", slideRels(s, chartNames[i])); err != nil {
			return err
		}
		for j, cs := range s.charts {
			if err := writePart(zw, "ppt/charts/"+chartNames[i][j]+".xml", cs); err != nil {
				return err
			}
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing package: %w", err)
	}
	return nil
}

func writePart(zw *zip.Writer, name string, part any) error {
	data, err := xml.Marshal(part)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}
	return writeRaw(zw, name, xml.Header+string(data))
}

func writeRaw(zw *zip.Writer, name, content string) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("creating part %s: %w", name, err)
	}
	if _, err := io.WriteString(w, content); err != nil {
		return fmt.Errorf("writing part %s: %w", name, err)
	}
	return nil
}

func contentTypes(d *Deck, chartCount int) *contentTypesXML {
	ct := &contentTypesXML{
		XMLNS: "http://schemas.openxmlformats.org/package/2006/content-types",
		Defaults: []ctDefaultXML{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []ctOverrideXML{
			{PartName: "/ppt/presentation.xml", ContentType: ctPresentation},
			{PartName: "/ppt/slideMasters/slideMaster1.xml", ContentType: ctSlideMaster},
			{PartName: "/ppt/slideLayouts/slideLayout1.xml", ContentType: ctSlideLayout},
			{PartName: "/ppt/theme/theme1.xml", ContentType: ctTheme},
		},
	}
	for i := range d.slides {
		ct.Overrides = append(ct.Overrides, ctOverrideXML{
			PartName:    "/ppt/slides/slide" + strconv.Itoa(i+1) + ".xml",
			ContentType: ctSlide,
		})
	}
	for i := 1; i <= chartCount; i++ {
		ct.Overrides = append(ct.Overrides, ctOverrideXML{
			PartName:    "/ppt/charts/chart" + strconv.Itoa(i) + ".xml",
			ContentType: ctChart,
		})
	}
	return ct
}

func packageRels() *relationshipsXML {
	return &relationshipsXML{
		XMLNS: nsPackageRels,
		Rels: []relationshipXML{
			{ID: "rId1", Type: relTypeOfficeDoc, Target: "ppt/presentation.xml"},
		},
	}
}

func presentation(d *Deck) *presentationXML {
	p := &presentationXML{
		XMLNSA:          nsDrawingML,
		XMLNSR:          nsRelationships,
		XMLNSP:          nsPresentationML,
		SlideMasterList: sldMasterIdList{IDs: []sldMasterId{{ID: "2147483648", RID: "rId1"}}},
		SlideSize:       sldSzXML{Cx: 10 * model.EMUPerInch, Cy: int64(7.5 * model.EMUPerInch)},
		NotesSize:       notesSzXML{Cx: int64(7.5 * model.EMUPerInch), Cy: 10 * model.EMUPerInch},
	}
	for i := range d.slides {
		p.SlideList.IDs = append(p.SlideList.IDs, sldId{
			ID:  strconv.Itoa(256 + i),
			RID: "rId" + strconv.Itoa(i+2),
		})
	}
	return p
}

func presentationRels(d *Deck) *relationshipsXML {
	rels := &relationshipsXML{
		XMLNS: nsPackageRels,
		Rels: []relationshipXML{
			{ID: "rId1", Type: relTypeSlideMaster, Target: "slideMasters/slideMaster1.xml"},
		},
	}
	for i := range d.slides {
		rels.Rels = append(rels.Rels, relationshipXML{
			ID:     "rId" + strconv.Itoa(i+2),
			Type:   relTypeSlide,
			Target: "slides/slide" + strconv.Itoa(i+1) + ".xml",
		})
	}
	return rels
}

func masterRels() *relationshipsXML {
	return &relationshipsXML{
		XMLNS: nsPackageRels,
		Rels: []relationshipXML{
			{ID: "rId1", Type: relTypeSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
			{ID: "rId2", Type: relTypeTheme, Target: "../theme/theme1.xml"},
		},
	}
}

func layoutRels() *relationshipsXML {
	return &relationshipsXML{
		XMLNS: nsPackageRels,
		Rels: []relationshipXML{
			{ID: "rId1", Type: relTypeSlideMaster, Target: "../slideMasters/slideMaster1.xml"},
		},
	}
}

func slideRels(s *Slide, chartNames []string) *relationshipsXML {
	rels := &relationshipsXML{
		XMLNS: nsPackageRels,
		Rels: []relationshipXML{
			{ID: "rId1", Type: relTypeSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
		},
	}
	for j := range s.charts {
		rels.Rels = append(rels.Rels, relationshipXML{
			ID:     s.chartRID(j + 1),
			Type:   relTypeChart,
			Target: "../charts/" + chartNames[j] + ".xml",
		})
	}
	return rels
}

func itoa(n int) string { return strconv.Itoa(n) }
