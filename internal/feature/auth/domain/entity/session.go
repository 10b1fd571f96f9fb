package entity

import "time"

// Session はブラウザのログインセッションを表します。
// Cookieには署名済みのセッションIDだけを載せ、失効はサーバー側で管理します。
type Session struct {
	ID        string
	UserID    uint
	UserAgent string
	IPAddress string
	// Remember は「ログインしたままにする」が選ばれたかどうかです。
	Remember  bool
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// NewSession は now から lifetime の間有効なセッションを生成します。
func NewSession(id string, userID uint, userAgent, ipAddress string, remember bool, now time.Time, lifetime time.Duration) *Session {
	return &Session{
		ID:        id,
		UserID:    userID,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		Remember:  remember,
		CreatedAt: now,
		ExpiresAt: now.Add(lifetime),
	}
}

// Remaining は now 時点での残り有効期間を返します。期限切れなら0以下です。
func (s *Session) Remaining(now time.Time) time.Duration {
	return s.ExpiresAt.Sub(now)
}

// Revoke はセッションを失効済みにします。既に失効していれば最初の時刻を保ちます。
func (s *Session) Revoke(now time.Time) {
	if s.RevokedAt == nil {
		s.RevokedAt = &now
	}
}

func (s *Session) IsExpired() bool {
	return s.Remaining(time.Now()) <= 0
}

func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsValid は期限内かつ未失効のときにtrueを返します。
func (s *Session) IsValid() bool {
	return !s.IsExpired() && !s.IsRevoked()
}
