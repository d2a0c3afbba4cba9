package storage

import (
	"context"
	"fmt"
	"path"

	gcs "cloud.google.com/go/storage"
)

// GCSWriter は生成結果を Google Cloud Storage に保存するライターです。
// generator.ObjectWriter の実装として注入されます。
type GCSWriter struct {
	client *gcs.Client
	bucket string
}

// NewGCSWriter は保存先バケットを固定した GCSWriter を初期化します。
func NewGCSWriter(client *gcs.Client, bucket string) (*GCSWriter, error) {
	if client == nil {
		return nil, fmt.Errorf("client is required")
	}
	if bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}
	return &GCSWriter{client: client, bucket: bucket}, nil
}

// Write はバイト列をそのまま folder/fileName へ書き込み、gs:// URI を返します。
// データはデコードや変換を行わず verbatim で保存します。
func (w *GCSWriter) Write(ctx context.Context, folder, fileName, mimeType string, data []byte) (string, error) {
	object := path.Join(folder, fileName)

	wc := w.client.Bucket(w.bucket).Object(object).NewWriter(ctx)
	wc.ContentType = mimeType

	if _, err := wc.Write(data); err != nil {
		// Close を待たずに失敗が確定することがあるため、後始末してから返す
		_ = wc.Close()
		return "", fmt.Errorf("GCSへの書き込みに失敗しました (gs://%s/%s): %w", w.bucket, object, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("GCSへの書き込みに失敗しました (gs://%s/%s): %w", w.bucket, object, err)
	}

	return ObjectURI(w.bucket, object), nil
}

// ObjectURI はバケットとオブジェクトパスから gs:// URI を組み立てます。
func ObjectURI(bucket, object string) string {
	return fmt.Sprintf("gs://%s/%s", bucket, object)
}
