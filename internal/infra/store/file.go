package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"booking-api/internal/domain/request"
	"booking-api/internal/infra"
)

// FileStore keeps the whole request list as one pretty-printed JSON array on
// local disk. Saves go through a temp file in the same directory followed by
// a rename, so readers never observe a partial write.
type FileStore struct {
	path   string
	logger *slog.Logger
}

func NewFileStore(path string, logger *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, infra.WrapStoreErr(logger, infra.KindIOFailure, "failed to create store directory", err)
	}
	return &FileStore{path: path, logger: logger}, nil
}

func (s *FileStore) LoadAll(_ context.Context) ([]request.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []request.Record{}, nil
		}
		return nil, infra.WrapStoreErr(s.logger, infra.KindIOFailure, "failed to read store file", err)
	}

	var records []request.Record
	if err := json.Unmarshal(data, &records); err != nil {
		// Corrupt content self-repairs to an empty sequence instead of
		// failing the request. Data-loss tolerant by long-standing policy.
		s.logger.Warn("store file is corrupt, resetting to empty sequence",
			slog.String("path", s.path), slog.String("error", err.Error()))
		return []request.Record{}, nil
	}
	if records == nil {
		records = []request.Record{}
	}

	return records, nil
}

func (s *FileStore) SaveAll(_ context.Context, records []request.Record) error {
	if records == nil {
		records = []request.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindEncoding, "failed to encode records", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".requests-*.json")
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindIOFailure, "failed to create temp file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return infra.WrapStoreErr(s.logger, infra.KindIOFailure, "failed to write temp file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return infra.WrapStoreErr(s.logger, infra.KindIOFailure, "failed to close temp file", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return infra.WrapStoreErr(s.logger, infra.KindIOFailure, "failed to replace store file", err)
	}

	return nil
}
