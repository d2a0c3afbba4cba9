package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("必須項目が揃っていれば既定値込みで読み込めるのだ", func(t *testing.T) {
		t.Setenv("PROJECT_ID", "demo-project")
		t.Setenv("GCS_BUCKET", "demo-bucket")
		t.Setenv("LOCATION", "")
		t.Setenv("VTO_MODEL_ID", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "demo-project", cfg.ProjectID)
		assert.Equal(t, "demo-bucket", cfg.GCSBucket)
		assert.Equal(t, "us-central1", cfg.Location)
		assert.Equal(t, "virtual-try-on-preview-08-04", cfg.VTOModelID)
	})

	t.Run("明示した値は既定値より優先されるのだ", func(t *testing.T) {
		t.Setenv("PROJECT_ID", "demo-project")
		t.Setenv("GCS_BUCKET", "demo-bucket")
		t.Setenv("LOCATION", "asia-northeast1")
		t.Setenv("VTO_MODEL_ID", "virtual-try-on-exp")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "asia-northeast1", cfg.Location)
		assert.Equal(t, "virtual-try-on-exp", cfg.VTOModelID)
	})

	t.Run("PROJECT_ID が無ければエラーなのだ", func(t *testing.T) {
		t.Setenv("PROJECT_ID", "")
		t.Setenv("GCS_BUCKET", "demo-bucket")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("GCS_BUCKET が無ければエラーなのだ", func(t *testing.T) {
		t.Setenv("PROJECT_ID", "demo-project")
		t.Setenv("GCS_BUCKET", "")

		_, err := Load()
		assert.Error(t, err)
	})
}
