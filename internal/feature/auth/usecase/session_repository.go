package usecase

import (
	"context"

	"blog_backend/internal/feature/auth/domain/entity"
)

// SessionRepository はログインセッションの保存先を抽象化します。
// 実装は sessions テーブル（adapters）と Redis（platform/session）の2つです。
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error

	// FindByID は存在しないIDに対して ErrSessionNotFound を返します。
	// 期限切れや失効済みのセッションもそのまま返すため、有効性の判定は呼び出し側で行います。
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Revoke はログアウト時にセッションを失効させます。
	Revoke(ctx context.Context, id string) error

	// DeleteExpired は期限切れのセッションを削除し、削除件数を返します。
	// キーのTTLで消えるストアでは常に0を返します。
	DeleteExpired(ctx context.Context) (int64, error)
}
