package pipeline

import (
	"github.com/docsetu/idextract/pkg/logging"
	"github.com/docsetu/idextract/pkg/recognizer"
)

// Config holds complete pipeline configuration. OCR engine settings are
// passed in explicitly at construction; nothing is read from process-wide
// mutable state, so tests can substitute a fake engine and concurrent
// pipelines cannot interfere with each other.
type Config struct {
	// Logging configuration
	Logging *logging.LogConfig `json:"logging"`

	// TessdataPrefix points Tesseract at its trained language data
	// directory. Empty uses the system default.
	TessdataPrefix string `json:"tessdata_prefix"`

	// Engine overrides the default Tesseract recognition engine. Tests
	// inject fakes here.
	Engine recognizer.Engine `json:"-"`

	// DisableTextLayer turns off the embedded-text fast path for
	// digitally generated PDFs, forcing recognition on every input.
	DisableTextLayer bool `json:"disable_text_layer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Logging: logging.DefaultLogConfig(),
	}
}
