package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server ServerConfig
	Serve  ServeConfig
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string // リッスンするホスト
	Port int    // リッスンするポート番号

	// タイムアウト設定
	ReadTimeout     time.Duration // 読み込みタイムアウト
	WriteTimeout    time.Duration // 書き込みタイムアウト
	ShutdownTimeout time.Duration // グレースフルシャットダウンの猶予時間
}

// ServeConfig は静的ファイル配信の設定
type ServeConfig struct {
	Root string // 配信するディレクトリ（絶対パス）
}

// Load は設定を読み込む
// ローカル開発専用のため、ポートと配信ディレクトリは固定で
// 環境変数やコマンドラインからは変更できない
func Load() (*Config, error) {
	root, err := executableDir()
	if err != nil {
		return nil, fmt.Errorf("配信ディレクトリの解決に失敗: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            3000,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    0, // 大きなアセットのダウンロードを打ち切らないため無効化
			ShutdownTimeout: 5 * time.Second,
		},
		Serve: ServeConfig{
			Root: root,
		},
	}

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	// サーバー設定の検証
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}

	// 配信ディレクトリの検証
	if c.Serve.Root == "" {
		return fmt.Errorf("配信ディレクトリが設定されていません")
	}
	if !filepath.IsAbs(c.Serve.Root) {
		return fmt.Errorf("配信ディレクトリが絶対パスではありません: %s", c.Serve.Root)
	}
	info, err := os.Stat(c.Serve.Root)
	if err != nil {
		return fmt.Errorf("配信ディレクトリにアクセスできません: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("配信ディレクトリがディレクトリではありません: %s", c.Serve.Root)
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// BaseURL は起動メッセージに表示し、ブラウザで開くURLを返す
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://localhost:%d/", c.Server.Port)
}

// executableDir は実行ファイルの置かれているディレクトリを返す
// 配信ディレクトリのデフォルト値として使う
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}

	// go run などでシンボリックリンク経由になる場合があるため解決しておく
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}

	return filepath.Dir(resolved), nil
}
