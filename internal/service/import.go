package service

import (
	"fmt"
	"path/filepath"
	"time"

	"trailready/internal/importer"
	"trailready/internal/store"
)

// ImportService parses workout file exports and persists their summaries
type ImportService struct {
	store *store.Store
}

// NewImportService creates a new import service
func NewImportService(st *store.Store) *ImportService {
	return &ImportService{store: st}
}

// ImportFit parses a FIT file and stores its session summary. Returns the
// stored import record.
func (s *ImportService) ImportFit(path string) (*store.FitImport, error) {
	summary, err := importer.ParseFitFile(path)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", path, err)
	}

	imp := &store.FitImport{
		FileName:    filepath.Base(path),
		DistanceKm:  summary.DistanceKm,
		DurationSec: summary.DurationSec,
		AscentM:     summary.AscentM,
		ImportedAt:  time.Now(),
	}
	if _, err := s.store.SaveFitImport(imp); err != nil {
		return nil, err
	}
	return imp, nil
}
