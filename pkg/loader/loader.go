// Package loader turns an input document file into an ordered sequence of
// page raster images ready for preprocessing and recognition.
package loader

import (
	"bytes"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// RenderDPI is the target resolution for PDF page rasters. Identity cards
// carry small glyphs; anything below this loses legibility.
const RenderDPI = 300

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tiff": true,
	".tif":  true,
	".bmp":  true,
	".gif":  true,
}

// LoadPages loads a document file and returns its pages as raster images,
// in page order. Single-page image formats load as a one-element sequence;
// PDFs yield one raster per page.
func LoadPages(path string) ([]image.Image, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case ext == ".pdf":
		return loadPDFPages(path)
	case imageExtensions[ext]:
		img, err := loadImageFile(path)
		if err != nil {
			return nil, err
		}
		return []image.Image{img}, nil
	default:
		return nil, &UnsupportedFormatError{Format: ext}
	}
}

func loadImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return img, nil
}

// loadPDFPages extracts the dominant raster of each PDF page. Scanned
// identity documents store each page as a single full-page image XObject;
// the largest image on a page is taken as the page raster.
func loadPDFPages(path string) ([]image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var pages []image.Image
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		img, ok := dominantPageImage(ctx, pageNr)
		if !ok {
			continue
		}
		pages = append(pages, img)
	}

	if len(pages) == 0 {
		return nil, &UnsupportedFormatError{Format: ".pdf (no page rasters)"}
	}
	return pages, nil
}

func dominantPageImage(ctx *model.Context, pageNr int) (image.Image, bool) {
	assets, err := pdfcpu.ExtractPageImages(ctx, pageNr, false)
	if err != nil || len(assets) == 0 {
		return nil, false
	}

	var best image.Image
	bestArea := 0
	for _, asset := range assets {
		data, err := io.ReadAll(asset)
		if err != nil {
			continue
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			continue
		}
		b := img.Bounds()
		if area := b.Dx() * b.Dy(); area > bestArea {
			best, bestArea = img, area
		}
	}
	return best, best != nil
}
