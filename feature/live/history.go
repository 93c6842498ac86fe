package live

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Visit is a persisted live page visit.
type Visit struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ConnectionID int64     `gorm:"index;not null" json:"connectionId"`
	IP           string    `gorm:"size:64" json:"ip"`
	ISP          string    `gorm:"size:128" json:"isp"`
	CountryCode  string    `gorm:"size:8" json:"countryCode"`
	CountryName  string    `gorm:"size:64" json:"countryName"`
	VisitedAt    time.Time `gorm:"index;not null" json:"visitedAt"`
}

// TableName overrides the gorm table name.
func (Visit) TableName() string {
	return "viewer_visits"
}

// HistoryRepository appends and reads visits.
type HistoryRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a repository on db.
func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Migrate creates or updates the visits table.
func (r *HistoryRepository) Migrate() error {
	if err := r.db.AutoMigrate(&Visit{}); err != nil {
		return fmt.Errorf("failed to migrate viewer_visits: %w", err)
	}
	return nil
}

// Record appends a visit for rec.
func (r *HistoryRepository) Record(ctx context.Context, rec ConnectionRecord, at time.Time) error {
	visit := Visit{
		ConnectionID: rec.ID,
		IP:           rec.IP,
		ISP:          rec.ISP,
		CountryCode:  rec.CountryCode,
		CountryName:  rec.CountryName,
		VisitedAt:    at,
	}
	if err := r.db.WithContext(ctx).Create(&visit).Error; err != nil {
		return fmt.Errorf("failed to record visit %d: %w", rec.ID, err)
	}
	return nil
}

// Recent returns up to limit visits, newest first.
func (r *HistoryRepository) Recent(ctx context.Context, limit int) ([]Visit, error) {
	visits := make([]Visit, 0, limit)
	err := r.db.WithContext(ctx).
		Order("visited_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&visits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load visits: %w", err)
	}
	return visits, nil
}
