package testutils

import "strings"

// GenerateOverBytesUnderRunes возвращает строку из count рун по 4 байта каждая. Нужна для проверки
// ограничений max_bytes на строках, которые проходят ограничение по рунам.
func GenerateOverBytesUnderRunes(count int) string {
	return strings.Repeat("😁", count)
}
