package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"finsense/internal/backup"
	apperrors "finsense/internal/errors"
	"finsense/internal/models"
)

// backupService produces and restores versioned snapshots against the
// database-backed stores, using the same format as the offline shim.
type backupService struct {
	db *gorm.DB
}

// NewBackupService creates a new BackupServicer.
func NewBackupService(db *gorm.DB) BackupServicer {
	return &backupService{db: db}
}

// Export snapshots the user's profile, transactions, and goals. Export
// always succeeds on a healthy database.
func (s *backupService) Export(userID string) (*backup.Snapshot, error) {
	var user models.User
	snap := &backup.Snapshot{Version: backup.Version, Date: time.Now()}

	err := s.db.Where("id = ?", userID).First(&user).Error
	if err == nil {
		snap.User = &user
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var txns []models.Transaction
	if err := s.db.Where("owner_id = ?", userID).Order("date DESC").Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if txns == nil {
		txns = []models.Transaction{}
	}
	snap.Transactions = txns

	var goals []models.Goal
	if err := s.db.Where("owner_id = ?", userID).Order("created_at ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	snap.Goals = goals

	return snap, nil
}

// Import restores a snapshot for the user. Each top-level field replaces
// the stored data only when present; validation failures leave everything
// untouched. The restore runs in one transaction so a failed import never
// leaves a half-written store.
func (s *backupService) Import(userID string, snap *backup.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if snap.User != nil {
			fields := map[string]interface{}{
				"name":     snap.User.Name,
				"email":    snap.User.Email,
				"currency": snap.User.Currency,
			}
			if err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(fields).Error; err != nil {
				return err
			}
		}

		if snap.Transactions != nil {
			if err := tx.Where("owner_id = ?", userID).Delete(&models.Transaction{}).Error; err != nil {
				return err
			}
			for i := range snap.Transactions {
				t := snap.Transactions[i]
				t.OwnerID = userID
				t.Category = nil
				if err := tx.Create(&t).Error; err != nil {
					return err
				}
			}
		}

		if snap.Goals != nil {
			if err := tx.Where("owner_id = ?", userID).Delete(&models.Goal{}).Error; err != nil {
				return err
			}
			for i := range snap.Goals {
				g := snap.Goals[i]
				g.OwnerID = userID
				if err := tx.Create(&g).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
