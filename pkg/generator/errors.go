package generator

import "errors"

// 生成フローの失敗種別。呼び出し元は errors.Is で判別できます。
// 変換失敗（storage.ErrUnrecognizedImageURL）はコンバーターのエラーを
// そのまま伝搬し、ここでは定義しません。
var (
	// ErrInvalidRequest はリクエストパラメータが不正な場合のエラーです。
	ErrInvalidRequest = errors.New("試着リクエストが不正です")

	// ErrRemoteService は仮想試着サービスの呼び出しが失敗した場合のエラーです。
	// リトライは行わず、元のエラーをチェーンに保持したまま返します。
	ErrRemoteService = errors.New("仮想試着サービスの呼び出しに失敗しました")

	// ErrEmptyResult はサービスが成功応答で画像を1枚も返さなかった場合のエラーです。
	// 空の成功は成立しないという事後条件の明示です。
	ErrEmptyResult = errors.New("仮想試着サービスが画像を返しませんでした")

	// ErrStorageWrite は生成画像の保存に失敗した場合のエラーです。
	// 最初の失敗で残りの書き込みを中断します（部分的な結果は返しません）。
	ErrStorageWrite = errors.New("生成画像の保存に失敗しました")
)
