package storage

import (
	"bytes"
	"context"
	"io"
)

// --- Mocks ---

// mockReader は remoteio.InputReader のテスト用モックなのだ。
type mockReader struct {
	data     []byte
	err      error
	lastURI  string
	openCall int
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	m.openCall++
	m.lastURI = uri
	if m.err != nil {
		return nil, m.err
	}
	return io.NopCloser(bytes.NewReader(m.data)), nil
}

func (m *mockReader) List(ctx context.Context, uri string, fn func(string) error) error {
	return nil
}

type mockHTTPClient struct {
	data    []byte
	err     error
	lastURL string
	calls   int
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.calls++
	m.lastURL = url
	return m.data, m.err
}
