package config

import (
	"path/filepath"
	"testing"
	"time"
)

// TestConfigLoad は設定の読み込みをテストする
func TestConfigLoad(t *testing.T) {
	// 設定を読み込む
	cfg, err := Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	if cfg == nil {
		t.Fatal("設定がnilです")
	}

	// サーバー設定の検証
	if cfg.Server.Host == "" {
		t.Error("サーバーホストが設定されていません")
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("ポート番号が固定値ではありません: got %d, want 3000", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		t.Error("読み込みタイムアウトが設定されていません")
	}
	// WriteTimeout は 0（無効）でも正常
	if cfg.Server.WriteTimeout < 0 {
		t.Error("書き込みタイムアウトが負の値です")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		t.Error("シャットダウンの猶予時間が設定されていません")
	}

	// 配信ディレクトリの検証
	// テスト実行時はテストバイナリの置かれたディレクトリになる
	if cfg.Serve.Root == "" {
		t.Error("配信ディレクトリが設定されていません")
	}
	if !filepath.IsAbs(cfg.Serve.Root) {
		t.Errorf("配信ディレクトリが絶対パスではありません: %s", cfg.Serve.Root)
	}
}

// TestConfigValidation は設定の検証をテストする
func TestConfigValidation(t *testing.T) {
	validRoot := t.TempDir()

	testCases := []struct {
		name      string
		config    *Config
		expectErr bool
	}{
		{
			name: "正常な設定",
			config: &Config{
				Server: ServerConfig{
					Host:            "localhost",
					Port:            3000,
					ReadTimeout:     10 * time.Second,
					ShutdownTimeout: 5 * time.Second,
				},
				Serve: ServeConfig{
					Root: validRoot,
				},
			},
			expectErr: false,
		},
		{
			name: "無効なポート番号",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 99999, // 無効なポート
				},
				Serve: ServeConfig{
					Root: validRoot,
				},
			},
			expectErr: true,
		},
		{
			name: "ポート番号ゼロ",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 0,
				},
				Serve: ServeConfig{
					Root: validRoot,
				},
			},
			expectErr: true,
		},
		{
			name: "配信ディレクトリなし",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 3000,
				},
				Serve: ServeConfig{
					Root: "", // 空のディレクトリ
				},
			},
			expectErr: true,
		},
		{
			name: "相対パスの配信ディレクトリ",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 3000,
				},
				Serve: ServeConfig{
					Root: "relative/path",
				},
			},
			expectErr: true,
		},
		{
			name: "存在しない配信ディレクトリ",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 3000,
				},
				Serve: ServeConfig{
					Root: filepath.Join(validRoot, "no-such-dir"),
				},
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.expectErr && err == nil {
				t.Error("エラーが期待されましたが、エラーが発生しませんでした")
			}
			if !tc.expectErr && err != nil {
				t.Errorf("予期しないエラーが発生しました: %v", err)
			}
		})
	}
}

// TestServerAddress はサーバーアドレスの生成をテストする
func TestServerAddress(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{
			Host: "192.168.1.100",
			Port: 9090,
		},
	}

	expected := "192.168.1.100:9090"
	actual := cfg.ServerAddress()

	if actual != expected {
		t.Errorf("サーバーアドレスが一致しません: got %s, want %s", actual, expected)
	}
}

// TestBaseURL はブラウザで開くURLの生成をテストする
func TestBaseURL(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 3000,
		},
	}

	// すべてのインターフェースでリッスンしていても、開くのはlocalhost
	expected := "http://localhost:3000/"
	actual := cfg.BaseURL()

	if actual != expected {
		t.Errorf("URLが一致しません: got %s, want %s", actual, expected)
	}
}
