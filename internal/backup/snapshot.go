// Package backup defines the versioned JSON snapshot format shared by the
// server export/import endpoints and the offline persistence shim. It is
// the only exportable artifact in the system.
package backup

import (
	"encoding/json"
	"time"

	apperrors "finsense/internal/errors"
	"finsense/internal/models"
)

// Version is the current snapshot schema version.
const Version = 1

// Snapshot is a full or partial backup of a profile's data. Absent fields
// are legal: on import, each top-level field is restored only when
// present, so a snapshot holding only goals touches nothing else.
type Snapshot struct {
	Version      int                  `json:"version"`
	Date         time.Time            `json:"date"`
	User         *models.User         `json:"user,omitempty"`
	Transactions []models.Transaction `json:"transactions,omitempty"`
	Goals        []models.Goal        `json:"goals,omitempty"`
}

// Validate checks that the snapshot is usable for import. A snapshot must
// carry a version, and at least one of user or transactions; a blob with
// neither is judged empty.
func (s *Snapshot) Validate() error {
	if s.Version == 0 {
		return apperrors.ErrBackupMissingVersion
	}
	if s.User == nil && s.Transactions == nil {
		return apperrors.ErrBackupEmpty
	}
	return nil
}

// Parse decodes and validates a snapshot from raw JSON.
func Parse(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid backup file.")
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return &snap, nil
}
