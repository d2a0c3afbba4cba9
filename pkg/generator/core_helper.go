package generator

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/shouni/gemini-vto-kit/pkg/imgutil"
	"github.com/shouni/gemini-vto-kit/pkg/utils"
)

// submit はリモートモデルを同期呼び出しし、応答の事後条件を検証します。
// タイムアウトやリトライはここでは行わず、呼び出し元がリモートの挙動を引き継ぎます。
func (g *VTOGenerator) submit(ctx context.Context, source *genai.RecontextImageSource, sampleCount, baseSteps int) (*genai.RecontextImageResponse, error) {
	cfg := &genai.RecontextImageConfig{
		BaseSteps:      genai.Ptr(utils.ClampToInt32(baseSteps)),
		NumberOfImages: genai.Ptr(utils.ClampToInt32(sampleCount)),
	}

	resp, err := g.client.RecontextImage(ctx, g.model, source, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteService, err)
	}

	if resp == nil || len(resp.GeneratedImages) == 0 {
		return nil, ErrEmptyResult
	}

	slog.InfoContext(ctx, "VTO生成レスポンス", "generated_images", len(resp.GeneratedImages))
	return resp, nil
}

// persistResults は生成画像を応答順にストレージへ保存し、URI を収集します。
// 書き込みが1件でも失敗したらその時点で中断し、以降の画像は保存しません。
func (g *VTOGenerator) persistResults(ctx context.Context, resp *genai.RecontextImageResponse) ([]string, error) {
	uris := make([]string, 0, len(resp.GeneratedImages))

	for i, generated := range resp.GeneratedImages {
		if generated == nil || generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
			return nil, fmt.Errorf("%w: %d番目の生成画像にデータがありません", ErrEmptyResult, i)
		}

		// ファイル名には衝突回避のためのUUIDと応答内の位置を埋め込む
		fileName := fmt.Sprintf("vto_result_%s-%d_.png", uuid.New(), i)

		uri, err := g.writer.Write(ctx, resultFolder, fileName, resultMIMEType, generated.Image.ImageBytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStorageWrite, err)
		}
		uris = append(uris, uri)
	}

	return uris, nil
}

// fetchSourceImage は参照先の画像を取得して genai.Image（インラインデータ）へ変換します。
// 大きな入力はリクエストサイズ削減のためJPEGに圧縮してから渡します。
func (g *VTOGenerator) fetchSourceImage(ctx context.Context, rawURL string) (*genai.Image, error) {
	data, err := g.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("入力画像の取得に失敗しました (%s): %w", rawURL, err)
	}

	finalData := data
	if UseImageCompression {
		if compressed, err := imgutil.CompressToJPEG(data, ImageCompressionQuality); err == nil {
			finalData = compressed
		}
	}

	return &genai.Image{
		ImageBytes: finalData,
		MIMEType:   http.DetectContentType(finalData),
	}, nil
}
