package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_AvatarURL(t *testing.T) {
	t.Parallel()

	u := &User{Email: "MyEmailAddress@example.com "}

	// md5("myemailaddress@example.com")
	want := "http://www.gravatar.com/avatar/0bc83cb571cd1c50ba6f3e8a78ef1346?d=mm&s=128"
	assert.Equal(t, want, u.AvatarURL(128))
}

func TestSession_IsValid(t *testing.T) {
	t.Parallel()

	now := time.Now()
	revokedAt := now.Add(-time.Minute)

	tests := []struct {
		name    string
		session Session
		want    bool
	}{
		{"active", Session{ExpiresAt: now.Add(time.Hour)}, true},
		{"expired", Session{ExpiresAt: now.Add(-time.Hour)}, false},
		{"revoked", Session{ExpiresAt: now.Add(time.Hour), RevokedAt: &revokedAt}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.IsValid())
		})
	}
}

func TestValidNickname(t *testing.T) {
	t.Parallel()

	for _, nick := range []string{"alice", "Bob_99", "x-y", "A"} {
		assert.True(t, ValidNickname(nick), nick)
	}
	for _, nick := range []string{"", "a/b", "al ice", "bob?x", "50%", "café", "a#b"} {
		assert.False(t, ValidNickname(nick), nick)
	}
}
