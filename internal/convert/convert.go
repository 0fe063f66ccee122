// Package convert runs a full vref-to-SFM conversion: load the vref index
// and aligned text, group verses into books, and write one file per book.
package convert

import (
	"context"
	"time"

	"github.com/FocuswithJustin/vref2sfm/core/errors"
	"github.com/FocuswithJustin/vref2sfm/core/sfm"
	"github.com/FocuswithJustin/vref2sfm/core/vref"
	"github.com/FocuswithJustin/vref2sfm/internal/corpus"
	"github.com/FocuswithJustin/vref2sfm/internal/logging"
	"github.com/FocuswithJustin/vref2sfm/internal/manifest"
	"github.com/FocuswithJustin/vref2sfm/internal/validation"
	"github.com/FocuswithJustin/vref2sfm/internal/writer"
)

// ToolName identifies this tool in run manifests.
const ToolName = "vref2sfm"

// Config is the complete input to a conversion run.
type Config struct {
	// InputPath is the vref-aligned text file.
	InputPath string
	// VrefPath is the vref index file.
	VrefPath string
	// OutputDir receives the SFM files.
	OutputDir string
	// Book, when set, restricts output to one book code.
	Book string
	// ProjectID, when set, selects the project subdirectory and filename scheme.
	ProjectID string
	// Normalize is applied to verse text.
	Normalize sfm.Normalization
	// ManifestPath, when set, receives a JSON run manifest.
	ManifestPath string
	// ToolVersion is recorded in the manifest.
	ToolVersion string
}

// Result summarizes a completed run.
type Result struct {
	RunID string
	Refs  int
	Texts int
	Books int
	Files []writer.File
}

// Validate checks the configuration and normalizes the book filter.
func (c *Config) Validate() error {
	paths := []struct {
		field string
		value string
	}{
		{"input", c.InputPath},
		{"vref", c.VrefPath},
		{"output-dir", c.OutputDir},
	}
	for _, p := range paths {
		if err := validation.ValidatePath(p.value); err != nil {
			return &errors.ValidationError{Field: p.field, Value: p.value, Message: err.Error(), Err: err}
		}
	}

	if c.ManifestPath != "" {
		if err := validation.ValidatePath(c.ManifestPath); err != nil {
			return &errors.ValidationError{Field: "manifest", Value: c.ManifestPath, Message: err.Error(), Err: err}
		}
	}

	if c.Book != "" {
		book, err := validation.NormalizeBookCode(c.Book)
		if err != nil {
			return &errors.ValidationError{Field: "book", Value: c.Book, Message: err.Error(), Err: err}
		}
		c.Book = book
	}

	if c.ProjectID != "" {
		if err := validation.ValidateProjectID(c.ProjectID); err != nil {
			return &errors.ValidationError{Field: "project-id", Value: c.ProjectID, Message: err.Error(), Err: err}
		}
	}

	norm, err := sfm.ParseNormalization(string(c.Normalize))
	if err != nil {
		return err
	}
	c.Normalize = norm

	return nil
}

// Run executes a conversion. Both inputs are fully loaded and converted
// before the output directory is touched, so a malformed vref line or a
// length mismatch leaves no files behind.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	start := time.Now()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runID := manifest.NewRunID()
	ctx = logging.WithRunID(ctx, runID)
	log := logging.LoggerFromContext(ctx)

	if cfg.Book != "" && !vref.IsCanonical(cfg.Book) {
		log.Warn("book filter is not a canonical book code", "book", cfg.Book)
	}

	log.Info("loading vref", "path", cfg.VrefPath)
	refs, err := corpus.ReadRefs(cfg.VrefPath)
	if err != nil {
		return nil, err
	}
	logging.CorpusLoaded(ctx, "vref", cfg.VrefPath, len(refs))

	log.Info("loading text", "path", cfg.InputPath)
	texts, err := corpus.ReadTexts(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	logging.CorpusLoaded(ctx, "text", cfg.InputPath, len(texts))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	books, err := sfm.Convert(refs, texts, sfm.Options{Book: cfg.Book, Normalize: cfg.Normalize})
	if err != nil {
		return nil, err
	}
	log.Info("converting books", "books", books.Len())
	if books.Len() == 0 {
		log.Warn("no verses to write", "book_filter", cfg.Book)
	}

	files, err := writer.WriteBooks(ctx, books, cfg.OutputDir, cfg.ProjectID)
	for _, f := range files {
		logging.BookWritten(ctx, f.Book, f.Path, f.SizeBytes, f.BLAKE3)
	}
	if err != nil {
		return nil, err
	}

	if cfg.ManifestPath != "" {
		m := manifest.New(runID, ToolName, cfg.ToolVersion)
		m.Inputs = manifest.Inputs{
			Text: manifest.Input{Path: cfg.InputPath, Records: len(texts)},
			Vref: manifest.Input{Path: cfg.VrefPath, Records: len(refs)},
		}
		m.Options = manifest.Options{
			Book:      cfg.Book,
			ProjectID: cfg.ProjectID,
			Normalize: string(cfg.Normalize),
		}
		m.OutputDir = writer.Dir(cfg.OutputDir, cfg.ProjectID)
		m.Files = append(m.Files, files...)
		if err := m.WriteFile(cfg.ManifestPath); err != nil {
			return nil, err
		}
		log.Info("manifest written", "path", cfg.ManifestPath)
	}

	logging.ConversionSummary(ctx, books.Len(), len(files), time.Since(start))

	return &Result{
		RunID: runID,
		Refs:  len(refs),
		Texts: len(texts),
		Books: books.Len(),
		Files: files,
	}, nil
}
