package storage

import (
	"testing"
)

func TestNewGCSWriter_Validation(t *testing.T) {
	t.Run("クライアントが無ければエラーなのだ", func(t *testing.T) {
		if _, err := NewGCSWriter(nil, "bucket"); err == nil {
			t.Error("expected error for nil client")
		}
	})

	t.Run("バケット名が無ければエラーなのだ", func(t *testing.T) {
		// クライアント側の検証が先に走るため nil のままで良い
		if _, err := NewGCSWriter(nil, ""); err == nil {
			t.Error("expected error for empty bucket")
		}
	})
}
