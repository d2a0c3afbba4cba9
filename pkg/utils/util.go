package utils

import "math"

// ClampToInt32 は int を genai SDK が期待する int32 へ安全に変換します。
// int32 の範囲を超える値は端に丸めます。
func ClampToInt32(n int) int32 {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	if n < math.MinInt32 {
		return math.MinInt32
	}
	return int32(n)
}
