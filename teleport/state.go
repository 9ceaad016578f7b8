package teleport

import (
	"github.com/dan13ram/teleport-relayer/models"
)

// edges lists every allowed transition. Nothing leaves a terminal status.
var edges = map[models.TeleportStatus][]models.TeleportStatus{
	models.TeleportStatusInitiated:    {models.TeleportStatusBurning},
	models.TeleportStatusBurning:      {models.TeleportStatusProofPending, models.TeleportStatusFailed},
	models.TeleportStatusProofPending: {models.TeleportStatusReadyToClaim},
	models.TeleportStatusReadyToClaim: {models.TeleportStatusClaiming},
	models.TeleportStatusClaiming:     {models.TeleportStatusCompleted, models.TeleportStatusFailed},
}

func CanTransition(from models.TeleportStatus, to models.TeleportStatus) bool {
	for _, next := range edges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Statuses returns every status in lifecycle order.
func Statuses() []models.TeleportStatus {
	return []models.TeleportStatus{
		models.TeleportStatusInitiated,
		models.TeleportStatusBurning,
		models.TeleportStatusProofPending,
		models.TeleportStatusReadyToClaim,
		models.TeleportStatusClaiming,
		models.TeleportStatusCompleted,
		models.TeleportStatusFailed,
	}
}

func IsValidStatus(status models.TeleportStatus) bool {
	for _, s := range Statuses() {
		if s == status {
			return true
		}
	}
	return false
}
