package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/config"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/api/handler"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/api/router"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/repository"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/service"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/database"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/jwt"
	applogger "github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/logger"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/redis"
)

func main() {
	// 1. Carrega a configuração
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "falha ao carregar configuração: %v\n", err)
		os.Exit(1)
	}

	// 2. Inicializa o logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "falha ao inicializar logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("aplicação iniciando...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Conecta no banco
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("falha ao conectar no banco", zap.Error(err))
	}

	// 3.1 Executa as migrações
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("falha ao obter sql.DB subjacente", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("falha nas migrações do banco", zap.Error(err))
	}

	// 4. Conecta no Redis (opcional: sem Redis a aplicação sobe sem
	// blacklist de tokens e sem rate limiting)
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("falha ao conectar no Redis; blacklist e rate limit desativados", zap.Error(err))
		rdb = nil
	}

	// 5. Gerenciador de JWT
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. Injeção de dependências: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 7. Roteador
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. Servidor HTTP com desligamento gracioso
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP no ar", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("falha no servidor HTTP", zap.Error(err))
		}
	}()

	// 9. Aguarda sinal de término
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("sinal de término recebido, desligando...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("falha no desligamento do servidor", zap.Error(err))
	}

	closeDB, _ := db.DB()
	if closeDB != nil {
		closeDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("servidor encerrado")
}
