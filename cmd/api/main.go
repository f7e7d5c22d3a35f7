// Package main は認証サーバーのエントリーポイントです。
package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"

	"github.com/yourusername/custom-auth/internal/auth"
	"github.com/yourusername/custom-auth/internal/config"
	"github.com/yourusername/custom-auth/internal/session"
	"github.com/yourusername/custom-auth/internal/user"
)

func main() {
	// 設定の読み込み
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ginのモードを設定
	gin.SetMode(cfg.GinMode)

	// Ginルーターの初期化（デフォルトミドルウェア: Logger, Recovery）
	router := gin.Default()
	router.LoadHTMLGlob("web/templates/*.html")

	sessionTTL := time.Duration(cfg.SessionExpireMinutes) * time.Minute

	// セッションクッキーの設定（クッキーに載るのはセッションIDのみ）
	secret := cfg.SessionSecret
	if secret == "" {
		// releaseモードではconfig.Validateが未設定を弾く
		log.Print("SESSION_SECRET is empty, using insecure development secret")
		secret = "insecure-dev-secret"
	}
	cookieStore := cookie.NewStore([]byte(secret))
	cookieStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.GinMode == gin.ReleaseMode,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(session.CookieName, cookieStore))

	// CORSミドルウェアの設定
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// ユーザストア・セッションストアの準備
	ctx := context.Background()

	userStore, closeStore, err := setupUserStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up user store: %v", err)
	}
	defer closeStore()

	sessionStore, err := setupSessionStore(cfg, sessionTTL)
	if err != nil {
		log.Fatalf("Failed to set up session store: %v", err)
	}

	// 認証まわりの配線
	sessionManager := session.NewManager(sessionStore, sessionTTL)
	backend := auth.NewBackend(userStore)
	handler := auth.NewHandler(backend, userStore, sessionManager, cfg.LoginSuccessURL)
	handler.Register(router)

	// サーバーの起動
	addr := ":" + cfg.Port
	log.Printf("Starting auth server on %s (mode: %s)", addr, cfg.GinMode)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupUserStore はDATABASE_URLが設定されていればPostgresストアを、
// 未設定ならインメモリストアを返します。
func setupUserStore(ctx context.Context, cfg *config.Config) (user.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Print("DATABASE_URL is empty, using in-memory user store")
		return user.NewMemoryStore(), func() {}, nil
	}

	store, err := user.NewPostgresStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return store, store.Close, nil
}

// setupSessionStore はSESSION_REDIS_URLが設定されていればRedisストアを、
// 未設定ならインメモリストアを返します。
func setupSessionStore(cfg *config.Config, ttl time.Duration) (session.Store, error) {
	if cfg.SessionRedisURL == "" {
		log.Print("SESSION_REDIS_URL is empty, using in-memory session store")
		return session.NewMemoryStore(), nil
	}

	opt, err := redis.ParseURL(cfg.SessionRedisURL)
	if err != nil {
		return nil, err
	}
	return session.NewRedisStore(redis.NewClient(opt), ttl), nil
}
