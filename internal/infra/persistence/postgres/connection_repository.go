// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/repository"
	"wearsync/internal/errors"
	"wearsync/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// connectionRepository implements the domain.ConnectionRepository interface.
type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository is the constructor for connectionRepository.
func NewConnectionRepository(db *gorm.DB) repository.ConnectionRepository {
	return &connectionRepository{db: db}
}

// UpsertConnection inserts the connection or overwrites the token columns of the existing (user_id, provider) row.
func (repo *connectionRepository) UpsertConnection(ctx context.Context, conn *entity.Connection) error {
	connM := fromConnectionDomain(conn)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "provider"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"provider_user_id",
				"access_token",
				"refresh_token",
				"expires_at",
				"scope",
				"updated_at",
			}),
		}).
		Create(connM).Error
	if err != nil {
		return storageError(err, "failed to upsert wearable connection")
	}

	return nil
}

// FindConnection reads from the primary so a caller about to write sees the latest tokens.
func (repo *connectionRepository) FindConnection(ctx context.Context, userID string, provider entity.ProviderType) (*entity.Connection, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(dbresolver.Write), userID, provider)
}

// FindConnectionForRead may be served by a replica.
func (repo *connectionRepository) FindConnectionForRead(ctx context.Context, userID string, provider entity.ProviderType) (*entity.Connection, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(dbresolver.Read), userID, provider)
}

func (repo *connectionRepository) find(db *gorm.DB, userID string, provider entity.ProviderType) (*entity.Connection, error) {
	var connM model.WearableConnectionModel

	err := db.Where("user_id = ? AND provider = ?", userID, string(provider)).Take(&connM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, domainerrors.NewStorageError(errors.WithStack(err), "failed to load wearable connection")
	}

	return toConnectionDomain(&connM), nil
}

// UpdateTokensIfUnchanged rewrites the token columns guarded by the expires_at value the caller read.
func (repo *connectionRepository) UpdateTokensIfUnchanged(
	ctx context.Context,
	userID string,
	provider entity.ProviderType,
	expectedExpiresAt time.Time,
	update *repository.TokenUpdate,
) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WearableConnectionModel{}).
		Where("user_id = ? AND provider = ? AND expires_at = ?", userID, string(provider), expectedExpiresAt).
		Updates(map[string]any{
			"access_token":  update.AccessToken,
			"refresh_token": update.RefreshToken,
			"expires_at":    storedTime(update.ExpiresAt),
			"updated_at":    update.UpdatedAt,
		})
	if result.Error != nil {
		return storageError(result.Error, "failed to update wearable tokens")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConcurrentTokenUpdate
	}

	return nil
}

// TouchLastSync records a successful sync on the connection.
func (repo *connectionRepository) TouchLastSync(ctx context.Context, userID string, provider entity.ProviderType, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WearableConnectionModel{}).
		Where("user_id = ? AND provider = ?", userID, string(provider)).
		Updates(map[string]any{
			"last_sync_at": at,
			"updated_at":   at,
		})
	if result.Error != nil {
		return storageError(result.Error, "failed to update last sync time")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConnectionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toConnectionDomain converts a GORM WearableConnectionModel to a domain Connection entity.
func toConnectionDomain(data *model.WearableConnectionModel) *entity.Connection {
	if data == nil {
		return nil
	}

	return &entity.Connection{
		UserID:         data.UserID,
		Provider:       entity.ProviderType(data.Provider),
		ProviderUserID: data.ProviderUserID,
		AccessToken:    data.AccessToken,
		RefreshToken:   data.RefreshToken,
		ExpiresAt:      data.ExpiresAt,
		Scope:          data.Scope,
		LastSyncAt:     data.LastSyncAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromConnectionDomain converts a domain Connection entity to a GORM WearableConnectionModel.
func fromConnectionDomain(data *entity.Connection) *model.WearableConnectionModel {
	if data == nil {
		return nil
	}

	return &model.WearableConnectionModel{
		UserID:         data.UserID,
		Provider:       string(data.Provider),
		ProviderUserID: data.ProviderUserID,
		AccessToken:    data.AccessToken,
		RefreshToken:   data.RefreshToken,
		ExpiresAt:      storedTime(data.ExpiresAt),
		Scope:          data.Scope,
		LastSyncAt:     data.LastSyncAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// storedTime drops precision Postgres cannot keep, so a value read back compares equal in a guard.
func storedTime(t time.Time) time.Time {
	return t.Truncate(time.Microsecond)
}
