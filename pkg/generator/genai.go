package generator

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/shouni/gemini-vto-kit/pkg/config"
)

// GenaiRecontextClient は genai SDK を使った RecontextModel の実装です。
// 仮想試着モデルは Vertex AI バックエンドでのみ提供されているため、
// プロジェクトIDとリージョンを指定してクライアントを構築します。
type GenaiRecontextClient struct {
	client *genai.Client
}

// NewGenaiRecontextClient は Vertex AI バックエンドの genai クライアントを初期化します。
// 認証は Application Default Credentials に委ねます。
func NewGenaiRecontextClient(ctx context.Context, cfg *config.Config) (*GenaiRecontextClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("cfg is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  cfg.ProjectID,
		Location: cfg.Location,
	})
	if err != nil {
		return nil, fmt.Errorf("genaiクライアントの作成に失敗しました: %w", err)
	}

	return &GenaiRecontextClient{client: client}, nil
}

// RecontextImage は人物画像への商品合成をリモートモデルに依頼します。
func (c *GenaiRecontextClient) RecontextImage(ctx context.Context, model string, source *genai.RecontextImageSource, cfg *genai.RecontextImageConfig) (*genai.RecontextImageResponse, error) {
	return c.client.Models.RecontextImage(ctx, model, source, cfg)
}
