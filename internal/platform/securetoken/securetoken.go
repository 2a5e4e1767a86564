// Package securetoken はメール検証・パスワードリセットリンク用のワンタイムトークンを生成します。
package securetoken

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Size はトークン1つあたりのランダムバイト数です。
const Size = 32

// Generator はcrypto/randから16進文字列のトークンを生成します。
type Generator struct{}

// NewGenerator はGeneratorを生成します。
func NewGenerator() Generator {
	return Generator{}
}

// Generate はSizeバイトの乱数を16進エンコードした新しいトークンを返します。
func (Generator) Generate() (string, error) {
	b := make([]byte, Size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
