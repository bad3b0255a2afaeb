// Package random генерирует URL-safe алиасы для сокращенных ссылок.
package random

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet — допустимые символы алиаса.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

// NewRandomString возвращает строку длины length из символов Alphabet,
// полученную из криптографически стойкого источника. Уникальность
// не гарантируется — её обеспечивает вызывающая сторона.
func NewRandomString(length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("alias length must be positive, got %d", length)
	}

	return gonanoid.Generate(Alphabet, length)
}
