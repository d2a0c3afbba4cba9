package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// HTTPClient は、HTTPリクエストを実行し、URLからデータを取得するためのインターフェースです。
// httpkit のクライアントが満たす操作のうち、ここで必要な取得操作だけを切り出しています。
type HTTPClient interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// httpkit の実クライアントがこの窓口を満たすことの確認
var _ HTTPClient = (httpkit.ClientInterface)(nil)

// AssetFetcher は画像参照からバイト列を取得するコンポーネントです。
// gs:// はストレージリーダー、http(s) は HTTP クライアントで解決します。
type AssetFetcher struct {
	reader     remoteio.InputReader
	httpClient HTTPClient
}

// NewAssetFetcher は依存関係を注入して AssetFetcher を初期化します。
func NewAssetFetcher(reader remoteio.InputReader, httpClient HTTPClient) (*AssetFetcher, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	return &AssetFetcher{reader: reader, httpClient: httpClient}, nil
}

// Fetch は画像参照を解決して生のバイト列を返します。
// http(s) の参照は SSRF 対策の検証を通過した場合のみ取得します。
func (f *AssetFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if strings.HasPrefix(rawURL, "gs://") {
		rc, err := f.reader.Open(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("GCSオブジェクトの読み込みに失敗しました: %w", err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	if safe, err := isSafeURL(rawURL); err != nil || !safe {
		return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
	}
	return f.httpClient.FetchBytes(ctx, rawURL)
}

// isSafeURL は SSRF (Server-Side Request Forgery) 対策として URL を検証します。
// 許可されたスキーム (http, https) かつ、プライベートIPやループバックアドレスを
// ターゲットにしていないことを確認します。
func isSafeURL(rawURL string) (bool, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false, fmt.Errorf("URLパース失敗: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return false, fmt.Errorf("不許可スキーム: %s", parsedURL.Scheme)
	}

	host := parsedURL.Hostname()
	var ips []net.IP
	if ip := net.ParseIP(host); ip != nil {
		ips = []net.IP{ip}
	} else {
		resolvedIPs, err := net.LookupIP(host)
		if err != nil {
			return false, fmt.Errorf("ホスト '%s' の名前解決に失敗しました: %w", host, err)
		}
		ips = resolvedIPs
	}

	for _, ip := range ips {
		if ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
			return false, fmt.Errorf("制限されたネットワークへのアクセスを検知: %s", ip.String())
		}
	}

	return true, nil
}
