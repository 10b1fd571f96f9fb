// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// SignupForm は /register フォームの送信内容を表します。
// パスワード確認の不一致はハンドラーで専用メッセージとして扱うため、ここでは検証しません。
type SignupForm struct {
	Nickname      string `form:"nickname" binding:"required,max=64,nickname"`
	Name          string `form:"name" binding:"max=255"`
	About         string `form:"about"`
	Email         string `form:"email" binding:"required,email"`
	Password      string `form:"password" binding:"required,min=8"`
	PasswordAgain string `form:"password_again" binding:"required"`
}

// PasswordsMatch はパスワードと確認用パスワードが一致するかを返します。
func (f SignupForm) PasswordsMatch() bool {
	return f.Password == f.PasswordAgain
}
