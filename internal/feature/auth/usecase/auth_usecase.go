// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/platform/password"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// メールアドレスまたはニックネームが重複する場合、ErrDuplicateCredentialを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByNickname は指定されたニックネームに一致するユーザーを取得します。
	FindByNickname(ctx context.Context, nickname string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenGenerator はセッションCookie用の署名済みトークン生成を定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenGenerator interface {
	// GenerateToken はユーザーIDとセッションIDを含む署名済みトークンを生成します。
	GenerateToken(userID uint, sessionID string, expiresAt time.Time) (string, error)
}

// SessionPolicy はセッションの有効期間を定義します。
type SessionPolicy struct {
	// Lifetime は「ログインしたままにする」を選んだ場合の有効期間です。
	Lifetime time.Duration
	// ShortLifetime はそれ以外の場合の有効期間です。
	ShortLifetime time.Duration
}

// SignupInput はユーザー登録の入力値です。
type SignupInput struct {
	Nickname string
	Name     string
	About    string
	Email    string
	Password string
}

// LoginInput はログインの入力値です。
type LoginInput struct {
	Email     string
	Password  string
	Remember  bool
	UserAgent string
	IPAddress string
}

// LoginResult はログイン成功時の結果です。
type LoginResult struct {
	User    *entity.User
	Session *entity.Session
	Token   string
}

// AuthUsecase は認証ビジネスロジックを実装します。
type AuthUsecase struct {
	users    UserRepository
	sessions SessionRepository
	tokens   TokenGenerator
	policy   SessionPolicy
}

// NewAuthUsecase はAuthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, sessions SessionRepository, tokens TokenGenerator, policy SessionPolicy) *AuthUsecase {
	return &AuthUsecase{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		policy:   policy,
	}
}

// normalizeSignup は前後の空白を取り除きます。パスワードはそのまま保持します。
func normalizeSignup(in SignupInput) SignupInput {
	in.Nickname = strings.TrimSpace(in.Nickname)
	in.Name = strings.TrimSpace(in.Name)
	in.About = strings.TrimSpace(in.About)
	in.Email = strings.TrimSpace(in.Email)
	return in
}

// validateSignup は正規化済みの登録内容が要件を満たしているかチェックします。
func validateSignup(in SignupInput) error {
	if in.Nickname == "" {
		return fmt.Errorf("%w: nickname is required", ErrInvalidSignup)
	}
	if !entity.ValidNickname(in.Nickname) {
		return fmt.Errorf("%w: nickname may only contain letters, digits, '_' and '-'", ErrInvalidSignup)
	}
	if in.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidSignup)
	}
	if len(in.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long", ErrInvalidSignup, minPasswordLength)
	}
	return nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
// メールアドレスとニックネームの重複は事前に確認し、同時登録による競合はリポジトリの一意制約で検出します。
func (u *AuthUsecase) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	in = normalizeSignup(in)
	if err := validateSignup(in); err != nil {
		return nil, err
	}

	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := u.users.FindByNickname(ctx, in.Nickname); err == nil {
		return nil, ErrNicknameAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check nickname: %w", err)
	}

	hashed, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Nickname:       in.Nickname,
		Name:           in.Name,
		About:          in.About,
		Email:          in.Email,
		HashedPassword: hashed,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate はメールアドレスとパスワードを検証し、一致したユーザーを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *AuthUsecase) Authenticate(ctx context.Context, email, plain string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			password.VerifyDummy(plain)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !password.Verify(plain, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Login はユーザーを認証し、新しいセッションと署名済みトークンを発行します。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	user, err := u.Authenticate(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	lifetime := u.policy.ShortLifetime
	if in.Remember {
		lifetime = u.policy.Lifetime
	}

	session := entity.NewSession(uuid.NewString(), user.ID, in.UserAgent, in.IPAddress, in.Remember, time.Now(), lifetime)
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := u.tokens.GenerateToken(user.ID, session.ID, session.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{User: user, Session: session, Token: token}, nil
}

// Logout はセッションを失効させます。
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	return u.sessions.Revoke(ctx, sessionID)
}

// ResolveSession はセッションIDから有効なセッションのユーザーを復元します。
func (u *AuthUsecase) ResolveSession(ctx context.Context, sessionID string) (*entity.User, error) {
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsRevoked() {
		return nil, ErrSessionRevoked
	}
	if session.IsExpired() {
		return nil, ErrSessionExpired
	}
	return u.users.FindByID(ctx, session.UserID)
}

// FindByID はIDでユーザーを取得します。
func (u *AuthUsecase) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// FindByEmail はメールアドレスでユーザーを取得します。
func (u *AuthUsecase) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return u.users.FindByEmail(ctx, email)
}

// FindByNickname はニックネームでユーザーを取得します。
func (u *AuthUsecase) FindByNickname(ctx context.Context, nickname string) (*entity.User, error) {
	return u.users.FindByNickname(ctx, nickname)
}
