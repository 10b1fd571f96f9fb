// Package password はbcryptによるパスワードのハッシュ化と検証を提供します。
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash はユーザーが存在しない場合でも比較処理を行うためのダミーハッシュです。
// 平文 "dummy-password" を bcrypt.DefaultCost でハッシュ化したものです。
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Cost はハッシュ化に使用するbcryptのコストです。テストでは bcrypt.MinCost に差し替えられます。
var Cost = bcrypt.DefaultCost

// Hash は平文パスワードからソルト付きのbcryptハッシュを生成します。
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify は平文パスワードがハッシュと一致する場合にtrueを返します。
func Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// VerifyDummy はタイミング攻撃緩和のため、ダミーハッシュに対して比較を実行します。
// 結果は常にfalseです。
func VerifyDummy(plain string) bool {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plain))
	return false
}
