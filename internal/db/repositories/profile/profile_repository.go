package profile

import (
	"context"
	"errors"

	"github.com/MyelinBots/tagbot-go/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -destination=mocks/profile_mock.go -package=mocks github.com/MyelinBots/tagbot-go/internal/db/repositories/profile ProfileRepository

/*
REPOSITORY INTERFACE
*/

type ProfileRepository interface {
	// RegisterProfile upserts the user row (username kept on conflict), the
	// gamer tag row (tag overwritten on conflict) and, when email is non-nil,
	// the contact row with consent granted. All writes share one transaction.
	RegisterProfile(ctx context.Context, discordID int64, username, platform, tag string, email *string) error

	GetUser(ctx context.Context, discordID int64) (*User, error)
	ListTags(ctx context.Context, discordID int64) ([]*GamerTag, error)
	GetTag(ctx context.Context, discordID int64, platform string) (*GamerTag, error)
	GetContact(ctx context.Context, discordID int64) (*ContactInfo, error)
}

/*
REPOSITORY IMPL
*/

type ProfileRepositoryImpl struct {
	db *db.DB // wrapper holding .DB *gorm.DB
}

func NewProfileRepository(database *db.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: database}
}

func (r *ProfileRepositoryImpl) RegisterProfile(ctx context.Context, discordID int64, username, platform, tag string, email *string) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "discord_id"}},
			DoNothing: true,
		}).Create(&User{DiscordID: discordID, Username: username}).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "discord_id"}, {Name: "platform"}},
			DoUpdates: clause.AssignmentColumns([]string{"tag", "updated_at"}),
		}).Create(&GamerTag{DiscordID: discordID, Platform: platform, Tag: tag}).Error; err != nil {
			return err
		}

		if email == nil {
			return nil
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "discord_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "consent", "updated_at"}),
		}).Create(&ContactInfo{DiscordID: discordID, Email: *email, Consent: true}).Error
	})
}

func (r *ProfileRepositoryImpl) GetUser(ctx context.Context, discordID int64) (*User, error) {
	var u User
	err := r.db.DB.WithContext(ctx).
		Where("discord_id = ?", discordID).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *ProfileRepositoryImpl) ListTags(ctx context.Context, discordID int64) ([]*GamerTag, error) {
	var tags []*GamerTag
	if err := r.db.DB.WithContext(ctx).
		Where("discord_id = ?", discordID).
		Order("platform ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *ProfileRepositoryImpl) GetTag(ctx context.Context, discordID int64, platform string) (*GamerTag, error) {
	var t GamerTag
	err := r.db.DB.WithContext(ctx).
		Where("discord_id = ? AND platform = ?", discordID, platform).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *ProfileRepositoryImpl) GetContact(ctx context.Context, discordID int64) (*ContactInfo, error) {
	var c ContactInfo
	err := r.db.DB.WithContext(ctx).
		Where("discord_id = ?", discordID).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
