package model

import (
	"time"

	"github.com/google/uuid"
)

// WearableConnectionModel is the GORM-specific struct for the 'wearable_connections' table.
// Token columns hold vault ciphertext.
type WearableConnectionModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_wearable_connections_user_provider,priority:1"`
	Provider       string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_wearable_connections_user_provider,priority:2"`
	ProviderUserID string    `gorm:"type:varchar(128)"`
	AccessToken    string    `gorm:"type:text;not null"`
	RefreshToken   string    `gorm:"type:text;not null"`
	ExpiresAt      time.Time `gorm:"not null"`
	Scope          string    `gorm:"type:text"`
	LastSyncAt     *time.Time
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false;not null"`
}

// TableName explicitly sets the table name for GORM.
func (WearableConnectionModel) TableName() string {
	return "wearable_connections"
}
