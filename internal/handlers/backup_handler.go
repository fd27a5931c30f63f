package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"finsense/internal/backup"
	apperrors "finsense/internal/errors"
	"finsense/internal/services"
)

// BackupHandler handles snapshot export and import.
type BackupHandler struct {
	backupService services.BackupServicer
}

// NewBackupHandler creates a new BackupHandler.
func NewBackupHandler(backupService services.BackupServicer) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// ExportBackup handles exporting a full snapshot.
// @Summary     Export backup
// @Description Export a versioned JSON snapshot of the user's profile, transactions, and goals
// @Tags        backup
// @Produce     json
// @Success     200 {object} backup.Snapshot "Snapshot"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /backup/export [get]
func (h *BackupHandler) ExportBackup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snap, err := h.backupService.Export(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

// ImportBackup handles restoring a snapshot.
// @Summary     Import backup
// @Description Restore a snapshot. Present fields replace stored data wholesale; absent fields are untouched.
// @Tags        backup
// @Accept      json
// @Produce     json
// @Param       request body backup.Snapshot true "Snapshot"
// @Success     200 {object} MessageResponse "Backup restored"
// @Failure     400 {object} ErrorResponse "Invalid or empty backup"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /backup/import [post]
func (h *BackupHandler) ImportBackup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid backup file."))
		return
	}

	snap, err := backup.Parse(body)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.backupService.Import(userID, snap); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Backup restored"})
}
