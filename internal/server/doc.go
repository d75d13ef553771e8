// Package server は、クイズアプリの静的アセットを配信するHTTPサーバーを管理します。
//
// このパッケージは、HTTPサーバーの起動、静的ファイルの配信、
// ローカル開発用CORSヘッダーの付与を担当します。
//
// 責務:
//   - HTTPサーバーの起動と管理
//   - 静的ファイル（HTML/CSS/JS/JSON）の配信
//   - すべてのレスポンスへのCORSヘッダーの付与
//   - 起動時診断メッセージの表示と既定ブラウザの起動
//
// 仕様:
//   - ルーティングにginを使用
//   - ファイル配信は標準ライブラリのhttp.FileServerを使用
//     （ディレクトリ一覧・index.html・MIME推定・404をそのまま利用）
//   - グレースフルシャットダウンに対応
package server
