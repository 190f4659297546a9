package models

import "time"

const (
	// CO2EstimatePerTree is recorded on every tree log entry.
	CO2EstimatePerTree = 10

	// TreePoints is the number of points one logged tree earns.
	TreePoints = 5

	// NoPhotoLabel is stored when no photo was attached.
	NoPhotoLabel = "No photo"
)

// ReportStatus tracks organizer review of a report. Only the initial status
// exists today.
type ReportStatus string

const ReportStatusPendingVerification ReportStatus = "pending_verification"

// TreeLogEntry records that an account planted a tree. Entries are
// append-only.
type TreeLogEntry struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"userId"`
	Species     string    `json:"species"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"date"`
	PhotoLabel  string    `json:"photoUploaded"`
	CO2Estimate int       `json:"co2ImpactEstimate"`
}

// ReportEntry records an environmental issue raised by an account.
// Entries are append-only.
type ReportEntry struct {
	ID         string       `json:"id"`
	ReporterID string       `json:"reporterId"`
	Location   string       `json:"nearestLocation"`
	Summary    string       `json:"summary"`
	Details    string       `json:"details,omitempty"`
	Timestamp  time.Time    `json:"date"`
	PhotoLabel string       `json:"photoUploaded"`
	Status     ReportStatus `json:"status"`
}
