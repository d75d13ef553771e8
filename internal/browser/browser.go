// Package browser は既定のウェブブラウザの起動を扱います
package browser

import (
	pkgbrowser "github.com/pkg/browser"
)

// Open は既定のブラウザで指定したURLを開く
// 起動はベストエフォートで、失敗してもサーバー本体の処理は継続できる
func Open(url string) error {
	return pkgbrowser.OpenURL(url)
}
