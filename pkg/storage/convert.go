package storage

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrUnrecognizedImageURL は画像参照を GCS URI 形式へ変換できない場合のエラーです。
var ErrUnrecognizedImageURL = errors.New("画像参照をGCS URIに変換できません")

// GCS オブジェクトを公開する HTTPS ホスト。どちらのパスも /<bucket>/<object> 形式。
const (
	gcsPublicHost  = "storage.googleapis.com"
	gcsConsoleHost = "storage.cloud.google.com"
)

// HTTPSURLToGCSURI は Web URL 形式の画像参照を gs:// 形式へ変換する純粋関数です。
// 旧APIの呼び出し元は gs:// URI をそのまま渡してくるため、gs:// は無変換で通します。
// どちらの形式でもない参照は ErrUnrecognizedImageURL を返します。
func HTTPSURLToGCSURI(rawURL string) (string, error) {
	if strings.HasPrefix(rawURL, "gs://") {
		return rawURL, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedImageURL, rawURL)
	}
	if u.Scheme != "https" || (u.Host != gcsPublicHost && u.Host != gcsConsoleHost) {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedImageURL, rawURL)
	}

	path := strings.TrimPrefix(u.Path, "/")
	bucket, object, found := strings.Cut(path, "/")
	if !found || bucket == "" || object == "" {
		return "", fmt.Errorf("%w: バケットまたはオブジェクトがありません: %q", ErrUnrecognizedImageURL, rawURL)
	}

	return fmt.Sprintf("gs://%s/%s", bucket, object), nil
}
