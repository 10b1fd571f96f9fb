// Package entity defines the domain entities for the auth feature.
package entity

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// nicknamePattern limits nicknames to characters that survive a /profile={nickname} path unescaped.
var nicknamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidNickname reports whether nickname can be used as a profile URL key.
func ValidNickname(nickname string) bool {
	return nicknamePattern.MatchString(nickname)
}

// User represents a registered author.
// Posts are not attached to the user; they are loaded by owner through explicit queries.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Nickname is the public profile key used in URLs.
	// It must be unique across all users.
	Nickname string `gorm:"uniqueIndex;size:64;not null"`

	// Name is an optional display name.
	Name string `gorm:"size:255"`

	// About is an optional free-text description.
	About string `gorm:"type:text"`

	// Email is the login credential.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// HashedPassword is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	HashedPassword string `gorm:"size:255;not null"`

	// CreatedAt is set on every insert.
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// AvatarURL returns the Gravatar image URL for the user's email at the given pixel size.
func (u *User) AvatarURL(size int) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(u.Email))))
	return fmt.Sprintf("http://www.gravatar.com/avatar/%s?d=mm&s=%d", hex.EncodeToString(sum[:]), size)
}
