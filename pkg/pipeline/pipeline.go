// Package pipeline orchestrates the document-to-entities extraction flow:
// load pages, preprocess, detect language, recognize text, extract
// entities, normalize values, and attach review warnings. One Pipeline
// value holds no mutable state between calls and is safe for concurrent
// use; recognition itself is CPU-bound and blocking, so services should
// run Process on a worker and impose their own per-document deadline.
package pipeline

import (
	"context"
	"image"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/docsetu/idextract/pkg/document"
	"github.com/docsetu/idextract/pkg/extractor"
	"github.com/docsetu/idextract/pkg/langdetect"
	"github.com/docsetu/idextract/pkg/loader"
	"github.com/docsetu/idextract/pkg/logging"
	"github.com/docsetu/idextract/pkg/normalizer"
	"github.com/docsetu/idextract/pkg/preprocess"
	"github.com/docsetu/idextract/pkg/recognizer"
)

// textLayerConfidence is assigned when a PDF's embedded text layer is used
// directly instead of recognition; the text is exact by construction.
const textLayerConfidence = 0.95

// Pipeline processes one document per call into an ExtractionResult.
type Pipeline struct {
	engine       recognizer.Engine
	useTextLayer bool
	log          zerolog.Logger
}

// New builds a pipeline from explicit configuration.
func New(cfg *Config) *Pipeline {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	engine := cfg.Engine
	if engine == nil {
		engine = recognizer.NewTesseract(cfg.TessdataPrefix)
	}
	return &Pipeline{
		engine:       engine,
		useTextLayer: !cfg.DisableTextLayer,
		log:          logging.GetLogger("pipeline"),
	}
}

// Process runs the full pipeline over one document file. Load and
// recognition failures abort the document (Success=false, no entities);
// failure to extract an individual field is silently non-fatal. The
// caller owns retries and deadlines; Process honors ctx cancellation
// between stages.
func (p *Pipeline) Process(ctx context.Context, path string, docType document.DocumentType) document.ExtractionResult {
	start := time.Now()
	result := document.ExtractionResult{ID: uuid.New().String()}
	log := p.log.With().
		Str("trace_id", result.ID).
		Str("path", path).
		Str("document_type", string(docType)).
		Logger()

	if p.useTextLayer {
		if text, ok := loader.TextLayer(path); ok {
			log.Info().Int("chars", len(text)).Msg("Using embedded PDF text layer, skipping recognition")
			lang := langdetect.Identify(text)
			p.assemble(&result, text, lang, textLayerConfidence, docType)
			result.ProcessingTime = time.Since(start)
			return result
		}
	}

	pages, err := loader.LoadPages(path)
	if err != nil {
		return fail(&result, start, log, err, "document load failed")
	}
	log.Debug().Int("pages", len(pages)).Msg("Document loaded")

	processed := make([]*imagePage, 0, len(pages))
	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			return fail(&result, start, log, err, "canceled during preprocessing")
		}
		processed = append(processed, &imagePage{index: i, img: preprocess.Enhance(page)})
	}

	lang := langdetect.Detect(ctx, p.engine, processed[0].img)
	model := recognizer.LanguageModel(lang)
	log.Info().Str("language", lang).Str("language_model", model).Msg("Language detected")

	recognized := make([]recognizer.Page, 0, len(processed))
	for _, page := range processed {
		if err := ctx.Err(); err != nil {
			return fail(&result, start, log, err, "canceled during recognition")
		}
		rec, err := p.engine.Recognize(ctx, page.img, model)
		if err != nil {
			return fail(&result, start, log, err, "recognition failed")
		}
		log.Debug().Int("page", page.index).Float64("confidence", rec.Confidence).Msg("Page recognized")
		recognized = append(recognized, rec)
	}

	text, overall, err := recognizer.Transcript(recognized)
	if err != nil {
		return fail(&result, start, log, err, "no usable text recognized")
	}

	p.assemble(&result, text, lang, overall, docType)
	result.ProcessingTime = time.Since(start)
	log.Info().
		Int("entities", len(result.Entities)).
		Float64("overall_confidence", result.OverallConfidence).
		Dur("processing_time", result.ProcessingTime).
		Msg("Extraction complete")
	return result
}

// assemble fills a result from recognized text: extract, normalize per
// entity, and attach warnings.
func (p *Pipeline) assemble(result *document.ExtractionResult, text, lang string, overall float64, docType document.DocumentType) {
	entities := extractor.Extract(text, docType, lang)
	for i := range entities {
		entities[i].Value = normalizer.Normalize(entities[i].Type, entities[i].Value)
	}
	extractLog := logging.GetStageLogger(result.ID, "extract")
	extractLog.Debug().
		Int("entities", len(entities)).
		Msg("Entities extracted and normalized")

	result.Success = true
	result.DetectedLanguage = lang
	result.OverallConfidence = overall
	result.RawText = text
	result.Entities = entities
	result.Warnings = generateWarnings(entities, overall)
}

func fail(result *document.ExtractionResult, start time.Time, log zerolog.Logger, err error, msg string) document.ExtractionResult {
	log.Error().Err(err).Msg(msg)
	result.Success = false
	result.Error = err.Error()
	result.ProcessingTime = time.Since(start)
	return *result
}

type imagePage struct {
	index int
	img   image.Image
}
