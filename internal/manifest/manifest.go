// Package manifest records what a conversion run read and wrote.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/vref2sfm/core/errors"
	"github.com/FocuswithJustin/vref2sfm/internal/writer"
)

// Version is the current manifest format version.
const Version = "1.0.0"

// Manifest describes a single conversion run (written as JSON).
type Manifest struct {
	ManifestVersion string        `json:"manifest_version"`
	RunID           string        `json:"run_id"`
	CreatedAt       string        `json:"created_at"`
	Tool            ToolInfo      `json:"tool"`
	Inputs          Inputs        `json:"inputs"`
	Options         Options       `json:"options"`
	OutputDir       string        `json:"output_dir"`
	Files           []writer.File `json:"files"`
}

// ToolInfo describes the tool that produced the run.
type ToolInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Inputs records the two aligned input files.
type Inputs struct {
	Text Input `json:"text"`
	Vref Input `json:"vref"`
}

// Input records one input file and the number of records read from it.
type Input struct {
	Path    string `json:"path"`
	Records int    `json:"records"`
}

// Options records the conversion options in effect.
type Options struct {
	Book      string `json:"book,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
	Normalize string `json:"normalize,omitempty"`
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.New().String()
}

// New creates a manifest for a run.
func New(runID, toolName, toolVersion string) *Manifest {
	return &Manifest{
		ManifestVersion: Version,
		RunID:           runID,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
		Tool: ToolInfo{
			Name:    toolName,
			Version: toolVersion,
		},
		Files: []writer.File{},
	}
}

// ToJSON serializes the manifest to JSON.
func (m *Manifest) ToJSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// WriteFile writes the manifest to path, creating parent directories.
func (m *Manifest) WriteFile(path string) error {
	data, err := m.ToJSON()
	if err != nil {
		return errors.Wrap(err, "failed to serialize manifest")
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewIO("create directory", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewIO("write", path, err)
	}
	return nil
}
