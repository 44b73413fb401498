package usecase

import "context"

// SyncResult summarizes a committed daily reconciliation.
type SyncResult struct {
	OK       bool   `json:"ok"`
	Date     string `json:"date"`
	Steps    int    `json:"steps"`
	Calories *int   `json:"calories"`
}

// SyncUsecase pulls one day of provider data into the daily record without touching manual entries.
type SyncUsecase interface {
	// ReconcileDay fetches date (YYYY-MM-DD) for userID, merges it with the stored record and commits.
	ReconcileDay(ctx context.Context, userID, date string) (*SyncResult, error)
}
