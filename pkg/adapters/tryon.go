package adapters

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-vto-kit/pkg/domain"
)

// TryOnGenerator は互換アダプターが利用する生成処理の窓口です。
type TryOnGenerator interface {
	Generate(ctx context.Context, req domain.TryOnRequest) ([]string, error)
}

// VirtualTryOnAdapter は旧 predict API のレスポンス形状を維持するための互換層です。
// 移行前の呼び出し元を変更せずに生成経路だけを差し替えるために存在し、
// 変換ロジックは持ちません（レコード形状は外部契約のため本体と統合しないこと）。
type VirtualTryOnAdapter struct {
	generator TryOnGenerator
}

// NewVirtualTryOnAdapter は生成処理を注入してアダプターを初期化します。
func NewVirtualTryOnAdapter(generator TryOnGenerator) (*VirtualTryOnAdapter, error) {
	if generator == nil {
		return nil, fmt.Errorf("generator (TryOnGenerator) is required")
	}
	return &VirtualTryOnAdapter{generator: generator}, nil
}

// CallVirtualTryOn は仮想試着を実行し、結果を旧 predict API の形状で返します。
// 画像参照は未設定（空文字）でもそのまま本体へ渡し、変換段階で失敗させます。
// ステップ数は旧APIと同じ既定値に固定し、エラーは一切変換せず伝搬します。
func (a *VirtualTryOnAdapter) CallVirtualTryOn(ctx context.Context, personImageURL, productImageURL string, sampleCount int) (*domain.PredictResponse, error) {
	uris, err := a.generator.Generate(ctx, domain.TryOnRequest{
		PersonImageURL:  personImageURL,
		ProductImageURL: productImageURL,
		SampleCount:     sampleCount,
		BaseSteps:       domain.DefaultBaseSteps,
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "旧形式レスポンスへ変換", "predictions", len(uris))

	predictions := make([]domain.Prediction, 0, len(uris))
	for _, uri := range uris {
		predictions = append(predictions, domain.Prediction{GCSURI: uri})
	}

	return &domain.PredictResponse{Predictions: predictions}, nil
}
