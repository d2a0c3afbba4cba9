package generator

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/shouni/gemini-vto-kit/pkg/domain"
	"github.com/shouni/gemini-vto-kit/pkg/storage"
)

// VTOGenerator は人物画像と商品画像から仮想試着画像を生成し、
// 結果をストレージへ保存して gs:// URI の一覧を返すジェネレーターです。
type VTOGenerator struct {
	client  RecontextModel
	writer  ObjectWriter
	fetcher AssetFetcher // nil を許容（インライン生成なし）
	model   string
}

// NewVTOGenerator は依存関係を注入して VTOGenerator を初期化します。
func NewVTOGenerator(client RecontextModel, writer ObjectWriter, fetcher AssetFetcher, modelID string) (*VTOGenerator, error) {
	if client == nil {
		return nil, fmt.Errorf("client (RecontextModel) is required")
	}
	if writer == nil {
		return nil, fmt.Errorf("writer (ObjectWriter) is required")
	}
	if modelID == "" {
		return nil, fmt.Errorf("modelID is required")
	}

	return &VTOGenerator{
		client:  client,
		writer:  writer,
		fetcher: fetcher,
		model:   modelID,
	}, nil
}

// Generate は仮想試着画像を生成して保存し、保存先 URI を応答順のまま返します。
// 入力参照は Web URL 形式・gs:// 形式のどちらでも受け付け、GCS URI に
// 変換してからリモートモデルへ渡します。変換できない参照は即座にエラーとなり、
// リモート呼び出しもストレージ書き込みも発生しません。
func (g *VTOGenerator) Generate(ctx context.Context, req domain.TryOnRequest) ([]string, error) {
	if err := req.Normalize(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	personURI, err := storage.HTTPSURLToGCSURI(req.PersonImageURL)
	if err != nil {
		return nil, err
	}
	productURI, err := storage.HTTPSURLToGCSURI(req.ProductImageURL)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "VTO生成リクエスト",
		"model", g.model,
		"person_image", personURI,
		"product_image", productURI,
		"sample_count", req.SampleCount,
		"base_steps", req.BaseSteps,
	)

	source := &genai.RecontextImageSource{
		PersonImage: &genai.Image{GCSURI: personURI},
		ProductImages: []*genai.ProductImage{
			{ProductImage: &genai.Image{GCSURI: productURI}},
		},
	}

	resp, err := g.submit(ctx, source, req.SampleCount, req.BaseSteps)
	if err != nil {
		return nil, err
	}

	return g.persistResults(ctx, resp)
}

// GenerateInline は入力画像をバイト列として取得し、URI参照ではなく
// インラインデータでリモートモデルへ渡します。GCS の外にある画像を
// 試着元として使う場合の入口で、保存とエラーの扱いは Generate と同じです。
func (g *VTOGenerator) GenerateInline(ctx context.Context, req domain.TryOnRequest) ([]string, error) {
	if g.fetcher == nil {
		return nil, fmt.Errorf("%w: インライン生成には AssetFetcher が必要です", ErrInvalidRequest)
	}
	if err := req.Normalize(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	personImage, err := g.fetchSourceImage(ctx, req.PersonImageURL)
	if err != nil {
		return nil, err
	}
	productImage, err := g.fetchSourceImage(ctx, req.ProductImageURL)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "VTOインライン生成リクエスト",
		"model", g.model,
		"person_bytes", len(personImage.ImageBytes),
		"product_bytes", len(productImage.ImageBytes),
		"sample_count", req.SampleCount,
		"base_steps", req.BaseSteps,
	)

	source := &genai.RecontextImageSource{
		PersonImage: personImage,
		ProductImages: []*genai.ProductImage{
			{ProductImage: productImage},
		},
	}

	resp, err := g.submit(ctx, source, req.SampleCount, req.BaseSteps)
	if err != nil {
		return nil, err
	}

	return g.persistResults(ctx, resp)
}
