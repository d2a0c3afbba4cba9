package domain

import "fmt"

// DefaultSampleCount は出力枚数が未指定の場合に適用される既定値です。
const DefaultSampleCount = 1

// DefaultBaseSteps は旧APIと互換のステップ数の既定値です。
const DefaultBaseSteps = 32

// TryOnRequest は仮想試着（Virtual Try-On）の単一の生成要求です。
// 画像参照は Web URL 形式・GCS URI 形式のどちらでも受け付けます。
type TryOnRequest struct {
	PersonImageURL  string // 人物画像の参照
	ProductImageURL string // 商品画像の参照（1点のみ）
	SampleCount     int    // 生成する画像の枚数（1以上）
	BaseSteps       int    // モデルのステップ数（1以上）
}

// Normalize は未指定のパラメータに既定値を適用し、不正値を報告します。
// SampleCount / BaseSteps がゼロの場合のみ既定値で補い、負値はエラーとします。
func (r *TryOnRequest) Normalize() error {
	if r.SampleCount == 0 {
		r.SampleCount = DefaultSampleCount
	}
	if r.BaseSteps == 0 {
		r.BaseSteps = DefaultBaseSteps
	}
	if r.SampleCount < 1 {
		return fmt.Errorf("sample count は1以上である必要があります: %d", r.SampleCount)
	}
	if r.BaseSteps < 1 {
		return fmt.Errorf("base steps は1以上である必要があります: %d", r.BaseSteps)
	}
	return nil
}

// TryOnResult は生成・保存が完了した試着画像の格納先一覧です。
// GCSURIs の順序はリモートモデルの応答順をそのまま保持します。
type TryOnResult struct {
	GCSURIs []string
}

// Prediction は旧 predict API のレスポンスに含まれる1件分のレコードです。
type Prediction struct {
	GCSURI string `json:"gcsUri"`
}

// PredictResponse は旧 predict API 互換のレスポンス形状です。
// 移行前の呼び出し元（shop the look 系ワークフロー）が期待する外部契約のため、
// フィールド名・構造を変更してはいけません。
type PredictResponse struct {
	Predictions []Prediction `json:"predictions"`
}
