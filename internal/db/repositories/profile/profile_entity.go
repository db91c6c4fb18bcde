package profile

import (
	"time"
)

type User struct {
	DiscordID int64  `gorm:"column:discord_id;primaryKey;autoIncrement:false" json:"discord_id"`
	Username  string `gorm:"column:username;type:text;not null" json:"username"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type GamerTag struct {
	DiscordID int64  `gorm:"column:discord_id;primaryKey;autoIncrement:false" json:"discord_id"`
	Platform  string `gorm:"column:platform;type:text;primaryKey" json:"platform"`
	Tag       string `gorm:"column:tag;type:text;not null" json:"tag"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (GamerTag) TableName() string {
	return "gamer_tags"
}

type ContactInfo struct {
	DiscordID int64  `gorm:"column:discord_id;primaryKey;autoIncrement:false" json:"discord_id"`
	Email     string `gorm:"column:email;type:text;not null" json:"email"`
	Consent   bool   `gorm:"column:consent;not null;default:false" json:"consent"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ContactInfo) TableName() string {
	return "contact_info"
}
