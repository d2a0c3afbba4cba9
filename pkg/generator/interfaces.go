package generator

import (
	"context"

	"google.golang.org/genai"
)

// RecontextModel はリモートの画像合成（仮想試着）サービスとの通信窓口です。
// genai クライアントの recontext 操作だけを切り出し、テストで差し替え可能にします。
type RecontextModel interface {
	RecontextImage(ctx context.Context, model string, source *genai.RecontextImageSource, config *genai.RecontextImageConfig) (*genai.RecontextImageResponse, error)
}

// ObjectWriter は生成結果をストレージへ書き込むコラボレーターです。
// 同一フォルダ内で fileName が重複しない限り、繰り返し呼び出して安全である必要があります。
type ObjectWriter interface {
	Write(ctx context.Context, folder, fileName, mimeType string, data []byte) (string, error)
}

// AssetFetcher は画像参照からバイト列を取得するコラボレーターです。
// インライン生成（GenerateInline）でのみ使用します。
type AssetFetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}
