package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SaveFitImport stores a parsed FIT summary and returns its generated ID
func (s *Store) SaveFitImport(imp *FitImport) (string, error) {
	if imp.ID == "" {
		imp.ID = uuid.New().String()
	}
	if imp.ImportedAt.IsZero() {
		imp.ImportedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO fit_imports (id, file_name, distance_km, duration_sec, ascent_m, imported_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, imp.ID, imp.FileName, imp.DistanceKm, imp.DurationSec, imp.AscentM,
		imp.ImportedAt.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("saving fit import: %w", err)
	}
	return imp.ID, nil
}

// ListFitImports returns the most recent imports, newest first
func (s *Store) ListFitImports(limit int) ([]FitImport, error) {
	rows, err := s.db.Query(`
		SELECT id, file_name, distance_km, duration_sec, ascent_m, imported_at
		FROM fit_imports
		ORDER BY imported_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var imports []FitImport
	for rows.Next() {
		var imp FitImport
		var importedAt string
		if err := rows.Scan(&imp.ID, &imp.FileName, &imp.DistanceKm,
			&imp.DurationSec, &imp.AscentM, &importedAt); err != nil {
			return nil, err
		}
		imp.ImportedAt, err = time.Parse(time.RFC3339, importedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing imported_at %q: %w", importedAt, err)
		}
		imports = append(imports, imp)
	}
	return imports, rows.Err()
}

// CountFitImports returns the total number of stored imports
func (s *Store) CountFitImports() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM fit_imports`).Scan(&count)
	return count, err
}
