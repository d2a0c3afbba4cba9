package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config はプロセス起動時に一度だけ読み込む不変の設定値です。
// ライブラリ内部で環境変数を直接参照せず、必ずこの値をコンストラクタへ渡します。
type Config struct {
	ProjectID  string // Google Cloud プロジェクトID（必須）
	Location   string // Vertex AI のリージョン
	VTOModelID string // 仮想試着モデルのID
	GCSBucket  string // 生成結果の保存先バケット（必須）
}

// Load は .env（存在すれば）と環境変数から Config を構築します。
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env が見つからないため環境変数のみを使用します")
	}

	cfg := &Config{
		ProjectID:  os.Getenv("PROJECT_ID"),
		Location:   getEnv("LOCATION", "us-central1"),
		VTOModelID: getEnv("VTO_MODEL_ID", "virtual-try-on-preview-08-04"),
		GCSBucket:  os.Getenv("GCS_BUCKET"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ProjectID == "" {
		return fmt.Errorf("環境変数 PROJECT_ID が未設定です")
	}
	if c.GCSBucket == "" {
		return fmt.Errorf("環境変数 GCS_BUCKET が未設定です")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
