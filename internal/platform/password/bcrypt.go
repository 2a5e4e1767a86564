// Package password はbcryptによるパスワードのハッシュ化と照合を提供します。
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost はbcryptのコスト10です。
const DefaultCost = bcrypt.DefaultCost

// Hasher は固定のbcryptコストでパスワードをハッシュ化・照合します。
// 可変な状態を持たないため並行利用が可能です。
type Hasher struct {
	cost int
}

// NewHasher はHasherを生成します。範囲外のコストはDefaultCostになります。
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash はplaintextのソルト付きbcryptハッシュを返します。
// ソルトは出力に含まれるため、同じ入力でも毎回異なる値になります。
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify はplaintextがhashedと一致するかを返します。
// ハッシュの形式が不正な場合はエラーではなくfalseを返します。
func (h *Hasher) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
