package generator

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// --- Mocks ---

// mockRecontextModel は RecontextModel のテスト用モックなのだ。
type mockRecontextModel struct {
	recontextFunc func(ctx context.Context, model string, source *genai.RecontextImageSource, cfg *genai.RecontextImageConfig) (*genai.RecontextImageResponse, error)

	calls      int
	lastModel  string
	lastSource *genai.RecontextImageSource
	lastConfig *genai.RecontextImageConfig
}

func (m *mockRecontextModel) RecontextImage(ctx context.Context, model string, source *genai.RecontextImageSource, cfg *genai.RecontextImageConfig) (*genai.RecontextImageResponse, error) {
	m.calls++
	m.lastModel = model
	m.lastSource = source
	m.lastConfig = cfg
	if m.recontextFunc != nil {
		return m.recontextFunc(ctx, model, source, cfg)
	}
	return nil, errors.New("recontextFunc not set")
}

type writeCall struct {
	folder   string
	fileName string
	mimeType string
	data     []byte
}

// mockWriter は ObjectWriter のテスト用モックなのだ。failAt 番目（1始まり）の
// 呼び出しで失敗させることで、中断の挙動を検証できるようにしてある。
type mockWriter struct {
	calls  []writeCall
	failAt int
	err    error
}

func (m *mockWriter) Write(ctx context.Context, folder, fileName, mimeType string, data []byte) (string, error) {
	m.calls = append(m.calls, writeCall{folder: folder, fileName: fileName, mimeType: mimeType, data: data})
	if m.failAt > 0 && len(m.calls) == m.failAt {
		return "", m.err
	}
	return "gs://test-bucket/" + folder + "/" + fileName, nil
}

// mockFetcher は AssetFetcher のテスト用モックなのだ。
type mockFetcher struct {
	data  []byte
	err   error
	calls []string
}

func (m *mockFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	m.calls = append(m.calls, rawURL)
	return m.data, m.err
}

// newRecontextResponse は指定したバイト列ごとに1枚の生成画像を持つ応答を組み立てるのだ。
func newRecontextResponse(images ...[]byte) *genai.RecontextImageResponse {
	resp := &genai.RecontextImageResponse{}
	for _, data := range images {
		resp.GeneratedImages = append(resp.GeneratedImages, &genai.GeneratedImage{
			Image: &genai.Image{ImageBytes: data, MIMEType: "image/png"},
		})
	}
	return resp
}
