package adapters

import (
	"context"

	"github.com/shouni/gemini-vto-kit/pkg/domain"
)

// mockTryOnGenerator は TryOnGenerator のテスト用モックなのだ。
type mockTryOnGenerator struct {
	generateFunc func(ctx context.Context, req domain.TryOnRequest) ([]string, error)
	lastRequest  domain.TryOnRequest
	calls        int
}

func (m *mockTryOnGenerator) Generate(ctx context.Context, req domain.TryOnRequest) ([]string, error) {
	m.calls++
	m.lastRequest = req
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return nil, nil
}
