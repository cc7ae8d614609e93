package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"bankledger/internal/bank"
	"bankledger/internal/logger"
	"bankledger/internal/models"
	"bankledger/internal/services"
)

// BackupService defines the interface that the service must implement.
// All three endpoints are admin-only; the router gates them with the auth
// middleware.
type BackupService interface {
	CreateBackup(ctx context.Context) (string, error)
	ListBackups(ctx context.Context) ([]models.BackupDB, error)
	RestoreBackup(ctx context.Context, name string) error
	RestoreLatest(ctx context.Context) error
}

// BackupInfo represents one stored backup
// swagger:model BackupInfo
type BackupInfo struct {
	// Backup name
	Name string `json:"name"`

	// When the backup was taken
	CreatedAt time.Time `json:"created_at"`
}

// ListBackupsResponse represents the backup listing
// swagger:model ListBackupsResponse
type ListBackupsResponse struct {
	// Stored backups, newest first
	Backups []BackupInfo `json:"backups"`
}

// CreateBackupResponse represents a successful backup creation
// swagger:model CreateBackupResponse
type CreateBackupResponse struct {
	// Success message
	// default: Backup created
	Message string `json:"message"`

	// Name of the new backup
	Name string `json:"name"`
}

// RestoreBackupRequest represents the JSON body for restoring a backup
// swagger:model RestoreBackupRequest
type RestoreBackupRequest struct {
	// Backup name; when empty the most recent backup is restored
	Name string `json:"name"`
}

// RestoreBackupResponse represents a successful restore
// swagger:model RestoreBackupResponse
type RestoreBackupResponse struct {
	// Success message
	// default: Backup restored
	Message string `json:"message"`
}

// BackupErrorResponse represents an error response for backup handling
// swagger:model BackupErrorResponse
type BackupErrorResponse struct {
	// Error message
	// default: Backup not found
	Error string `json:"error"`
}

// NewListBackupsHandler returns an HTTP handler listing stored backups.
// @Summary List backups
// @Description Return the stored backups, newest first.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.ListBackupsResponse "Backup listing"
// @Failure 401 {object} handlers.BackupErrorResponse "Unauthorized"
// @Router /backups [get]
// @Security BearerAuth
func NewListBackupsHandler(svc BackupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		backups, err := svc.ListBackups(ctx)
		if err != nil {
			logger.Log.Errorw("failed to list backups", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BackupErrorResponse{Error: "Internal server error"})
			return
		}

		resp := ListBackupsResponse{Backups: make([]BackupInfo, 0, len(backups))}
		for _, b := range backups {
			resp.Backups = append(resp.Backups, BackupInfo{Name: b.Name, CreatedAt: b.CreatedAt})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// NewCreateBackupHandler returns an HTTP handler persisting a full snapshot.
// @Summary Create backup
// @Description Snapshot every account with its full transaction history and persist the blob under a timestamped name.
// @Tags admin
// @Produce json
// @Success 201 {object} handlers.CreateBackupResponse "Backup created"
// @Failure 401 {object} handlers.BackupErrorResponse "Unauthorized"
// @Router /backups [post]
// @Security BearerAuth
func NewCreateBackupHandler(svc BackupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		name, err := svc.CreateBackup(ctx)
		if err != nil {
			logger.Log.Errorw("failed to create backup", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BackupErrorResponse{Error: "Internal server error"})
			return
		}

		resp := CreateBackupResponse{
			Message: "Backup created",
			Name:    name,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(resp)
	}
}

// NewRestoreBackupHandler returns an HTTP handler replacing the bank state
// from a stored backup.
// @Summary Restore backup
// @Description Replace all bank state with a stored backup. Restores the named backup, or the most recent one when no name is given. A corrupt blob leaves the current state untouched.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body handlers.RestoreBackupRequest true "Restore Backup Request"
// @Success 200 {object} handlers.RestoreBackupResponse "Backup restored"
// @Failure 401 {object} handlers.BackupErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.BackupErrorResponse "Backup not found"
// @Failure 422 {object} handlers.BackupErrorResponse "Backup blob is corrupt"
// @Router /backups/restore [post]
// @Security BearerAuth
func NewRestoreBackupHandler(svc BackupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req RestoreBackupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode restore request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BackupErrorResponse{Error: "Invalid request body"})
			return
		}

		var err error
		if req.Name == "" {
			err = svc.RestoreLatest(ctx)
		} else {
			err = svc.RestoreBackup(ctx, req.Name)
		}
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBackupNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BackupErrorResponse{Error: "Backup not found"})
			case errors.Is(err, bank.ErrCorruptSnapshot):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(BackupErrorResponse{Error: "Backup blob is corrupt"})
			default:
				logger.Log.Errorw("failed to restore backup", "name", req.Name, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BackupErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RestoreBackupResponse{Message: "Backup restored"})
	}
}
