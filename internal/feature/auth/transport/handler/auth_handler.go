// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/feature/auth/transport/http/dto"
	"blog_backend/internal/feature/auth/usecase"
	"blog_backend/internal/platform/identity"
	"blog_backend/internal/platform/render"
)

const (
	msgPasswordMismatch   = "Passwords do not match"
	msgUserExists         = "Such a user already exists"
	msgInvalidCredentials = "Incorrect login or password"
	msgInvalidForm        = "Please fill in every required field correctly"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は新規ユーザーを登録します。
	Signup(ctx context.Context, in usecase.SignupInput) (*entity.User, error)
	// Login はユーザーを認証し、新しいセッションと署名済みトークンを返します。
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginResult, error)
	// Logout はセッションを失効させます。
	Logout(ctx context.Context, sessionID string) error
}

// CookieWriter はセッションCookieの書き込みと削除を行います。
type CookieWriter interface {
	SetCookie(c *gin.Context, token string, maxAge int)
	ClearCookie(c *gin.Context)
}

// AuthHandler は登録・ログイン・ログアウトのHTTPリクエストを処理します。
type AuthHandler struct {
	auth    AuthUsecase
	cookies CookieWriter
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase, cookies CookieWriter) *AuthHandler {
	return &AuthHandler{auth: auth, cookies: cookies}
}

// RegisterPage は登録フォームを表示します。
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	h.renderRegister(c, http.StatusOK, dto.SignupForm{}, "")
}

// Register は登録フォームの送信を処理します。
// - バリデーションエラー時は400でフォームを再表示
// - パスワード不一致・重複時はメッセージ付きでフォームを再表示
// - 成功時は /login へリダイレクト
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		h.renderRegister(c, http.StatusBadRequest, form, msgInvalidForm)
		return
	}
	if !form.PasswordsMatch() {
		h.renderRegister(c, http.StatusOK, form, msgPasswordMismatch)
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), usecase.SignupInput{
		Nickname: form.Nickname,
		Name:     form.Name,
		About:    form.About,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateCredential):
			slog.Info("signup rejected: duplicate credential", "error", err, "remote_addr", c.ClientIP())
			h.renderRegister(c, http.StatusOK, form, msgUserExists)
		case errors.Is(err, usecase.ErrInvalidSignup):
			h.renderRegister(c, http.StatusBadRequest, form, msgInvalidForm)
		default:
			slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
			render.Error(c, http.StatusInternalServerError)
		}
		return
	}

	slog.Info("user signup successful", "user_id", user.ID, "nickname", user.Nickname, "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, "/login")
}

// LoginPage はログインフォームを表示します。
func (h *AuthHandler) LoginPage(c *gin.Context) {
	h.renderLogin(c, http.StatusOK, dto.LoginForm{}, "")
}

// Login はログインフォームの送信を処理します。
// 認証失敗時はユーザー列挙を防ぐため、原因を区別しない同一メッセージで再表示します。
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		h.renderLogin(c, http.StatusBadRequest, form, msgInvalidForm)
		return
	}

	res, err := h.auth.Login(c.Request.Context(), usecase.LoginInput{
		Email:     form.Email,
		Password:  form.Password,
		Remember:  form.RememberMe,
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", form.Email, "remote_addr", c.ClientIP())
			h.renderLogin(c, http.StatusOK, form, msgInvalidCredentials)
			return
		}
		slog.Error("login error", "error", err, "remote_addr", c.ClientIP())
		render.Error(c, http.StatusInternalServerError)
		return
	}

	// 「ログイン状態を保持」がない場合はブラウザセッションCookieにする
	maxAge := 0
	if res.Session.Remember {
		maxAge = int(res.Session.Remaining(time.Now()).Seconds())
	}
	h.cookies.SetCookie(c, res.Token, maxAge)

	slog.Info("user login successful", "user_id", res.User.ID, "remember", res.Session.Remember, "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, "/")
}

// Logout は現在のセッションを失効させてCookieを削除します。
func (h *AuthHandler) Logout(c *gin.Context) {
	if id, ok := identity.From(c); ok {
		if err := h.auth.Logout(c.Request.Context(), id.SessionID); err != nil {
			slog.Warn("logout failed", "error", err, "user_id", id.UserID)
		}
	}
	h.cookies.ClearCookie(c)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) renderRegister(c *gin.Context, status int, form dto.SignupForm, message string) {
	// パスワードはフォームに戻さない
	form.Password, form.PasswordAgain = "", ""
	render.HTML(c, status, "register.html", "Registration", gin.H{"Form": form, "Message": message})
}

func (h *AuthHandler) renderLogin(c *gin.Context, status int, form dto.LoginForm, message string) {
	form.Password = ""
	render.HTML(c, status, "login.html", "Authorization", gin.H{"Form": form, "Message": message})
}
