package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"quizserve/internal/browser"
	"quizserve/internal/config"

	"github.com/gin-gonic/gin"
)

// Server はHTTPサーバーを管理する構造体
type Server struct {
	config     *config.Config
	engine     *gin.Engine
	httpServer *http.Server

	// 診断メッセージの出力先とブラウザ起動関数
	// テストから差し替えられるようフィールドにしておく
	stdout  io.Writer
	openURL func(url string) error
}

// New は新しいServerインスタンスを作成する
func New(cfg *config.Config) *Server {
	engine := newEngine(cfg)

	return &Server{
		config: cfg,
		engine: engine,
		httpServer: &http.Server{
			Addr:         cfg.ServerAddress(),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		stdout:  os.Stdout,
		openURL: browser.Open,
	}
}

// newEngine は静的ファイル配信用のginエンジンを構築する
func newEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), corsMiddleware())

	// 明示的なルートは登録しない
	// すべてのリクエストがNoRoute経由で静的ファイル配信に落ちるため、
	// index.html・ディレクトリ一覧・404はhttp.FileServerの挙動をそのまま使える
	fileServer := http.FileServer(http.Dir(cfg.Serve.Root))
	engine.NoRoute(gin.WrapH(fileServer))

	return engine
}

// corsMiddleware はローカル開発用のCORSヘッダーを付与するミドルウェア
// メソッドやパスにかかわらず、404を含むすべてのレスポンスに付与する
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Next()
	}
}

// Start はサーバーを起動し、シグナルを受けるまでリクエストを処理し続ける
// 起動時エラー（アドレス使用中など）はそのまま返す（リトライや代替ポートはない）
func (s *Server) Start(ctx context.Context) error {
	// ブラウザを開く前にバインドを済ませておく
	// バインド後であればカーネルが接続をキューするので、
	// Serveの開始前にブラウザの最初のリクエストが届いても失われない
	listener, err := net.Listen("tcp", s.config.ServerAddress())
	if err != nil {
		return fmt.Errorf("アドレス %s のバインドに失敗: %w", s.config.ServerAddress(), err)
	}

	s.printBanner()

	// ブラウザの起動はベストエフォート
	if err := s.openURL(s.config.BaseURL()); err != nil {
		log.Printf("ブラウザの起動に失敗しました: %v", err)
	}

	// サーバーを別ゴルーチンで起動
	serveCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			serveCh <- fmt.Errorf("リクエスト処理に失敗: %w", err)
		}
	}()

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	// コンテキストかシグナルを待つ
	select {
	case <-ctx.Done():
	case <-sigCh:
	case err := <-serveCh:
		return err
	}

	// 割り込みはエラーではなく正常な停止要求として扱う
	fmt.Fprintln(s.stdout, "\n🛑 サーバーを停止しました")

	return s.Shutdown()
}

// Shutdown はサーバーをグレースフルにシャットダウンする
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("サーバーのシャットダウンに失敗: %w", err)
	}

	return nil
}

// printBanner は起動時の診断メッセージを標準出力に表示する
func (s *Server) printBanner() {
	fmt.Fprintln(s.stdout, "🚀 クイズツールサーバー")
	fmt.Fprintf(s.stdout, "📍 配信URL: %s\n", s.config.BaseURL())
	fmt.Fprintf(s.stdout, "📁 配信ディレクトリ: %s\n", s.config.Serve.Root)
	fmt.Fprintln(s.stdout, "🌐 ブラウザを開いています...")
	fmt.Fprintln(s.stdout, "⏹️  Ctrl+C でサーバーを停止します")
}
