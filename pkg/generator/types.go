package generator

const (
	// 生成結果の保存先。ストレージポリシーは外側のアプリケーションが握るため、
	// ここでは論理フォルダ名のみを知っている。
	resultFolder   = "vto_results"
	resultMIMEType = "image/png"

	// インライン生成時の入力画像圧縮設定
	UseImageCompression     = true
	ImageCompressionQuality = 75
)
