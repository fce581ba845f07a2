// Package main provides the idextract command line tool: it runs the
// extraction pipeline over one or more document files and prints the
// results as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/docsetu/idextract/pkg/document"
	"github.com/docsetu/idextract/pkg/logging"
	"github.com/docsetu/idextract/pkg/pipeline"
)

var documentTypes = []document.DocumentType{
	document.NationalID,
	document.TaxID,
	document.VoterID,
	document.DrivingLicense,
	document.RationCard,
	document.CommunityCertificate,
	document.IncomeCertificate,
	document.Other,
}

func main() {
	if len(os.Args) < 3 {
		showHelp()
		os.Exit(1)
	}

	docType := document.DocumentType(os.Args[1])
	if !validDocumentType(docType) {
		fmt.Printf("Unknown document type %q\n\n", os.Args[1])
		showHelp()
		os.Exit(1)
	}

	cfg := pipeline.DefaultConfig()
	cfg.Logging.Level = getEnv("IDEXTRACT_LOG_LEVEL", "warn")
	cfg.TessdataPrefix = getEnv("IDEXTRACT_TESSDATA", "")
	cfg.DisableTextLayer = getEnv("IDEXTRACT_NO_TEXT_LAYER", "") != ""

	if err := logging.SetupLogger(cfg.Logging); err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	p := pipeline.New(cfg)
	ctx := context.Background()

	exitCode := 0
	for _, path := range os.Args[2:] {
		result := p.Process(ctx, path, docType)
		if !result.Success {
			exitCode = 1
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode result for %s: %v", path, err)
		}
		fmt.Println(string(out))
	}
	os.Exit(exitCode)
}

func validDocumentType(t document.DocumentType) bool {
	for _, dt := range documentTypes {
		if dt == t {
			return true
		}
	}
	return false
}

func showHelp() {
	fmt.Println("Usage: idextract <document-type> <file> [file...]")
	fmt.Println()
	fmt.Println("Document types:")
	for _, dt := range documentTypes {
		fmt.Printf("  %s\n", dt)
	}
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  IDEXTRACT_LOG_LEVEL      zerolog level (default warn)")
	fmt.Println("  IDEXTRACT_TESSDATA       Tesseract trained data directory")
	fmt.Println("  IDEXTRACT_NO_TEXT_LAYER  set to force OCR on PDFs with a text layer")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
