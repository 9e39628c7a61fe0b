package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/config"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/api/handler"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/api/middleware"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/model"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/jwt"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/redis"
)

// Setup inicializa e retorna o roteador Gin
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middlewares globais ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	// ── Health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// autenticação (rotas públicas, com rate limit)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// rotas autenticadas
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// usuários (apenas admin)
			usuarios := authorized.Group("/usuarios")
			usuarios.Use(middleware.RoleAuth(model.RoleAdmin))
			{
				usuarios.GET("", h.Usuario.Listar)
				usuarios.GET("/:id", h.Usuario.BuscarPorID)
				usuarios.POST("", h.Usuario.Criar)
				usuarios.PUT("/:id", h.Usuario.Atualizar)
				usuarios.DELETE("/:id", h.Usuario.Excluir)
			}

			// boletins de campo (escopo aplicado na camada de serviço)
			boletins := authorized.Group("/boletins")
			{
				boletins.GET("", h.Boletim.Listar)
				boletins.GET("/:id", h.Boletim.BuscarPorID)
				boletins.POST("", h.Boletim.Criar)
				boletins.PUT("/:id", h.Boletim.Atualizar)
				boletins.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin, model.RoleGestor), h.Boletim.Excluir)
			}

			// painel consolidado
			painel := authorized.Group("/painel")
			{
				painel.GET("/consolidado", h.Painel.Consolidado)
				painel.GET("/serie-semanal", h.Painel.SeriePorSemana)
				painel.GET("/ranking", h.Painel.RankingLocalidades)
				painel.GET("/tabela", h.Painel.TabelaAgrupada)
			}

			// hierarquia de supervisão (apenas admin)
			hierarquia := authorized.Group("/hierarquia")
			hierarquia.Use(middleware.RoleAuth(model.RoleAdmin))
			{
				hierarquia.GET("", h.Hierarquia.ListarGerais)
				hierarquia.POST("/gerais", h.Hierarquia.CriarGeral)
				hierarquia.DELETE("/gerais/:id", h.Hierarquia.ExcluirGeral)
				hierarquia.POST("/areas", h.Hierarquia.CriarArea)
				hierarquia.DELETE("/areas/:id", h.Hierarquia.ExcluirArea)
				hierarquia.PUT("/areas/:id/localidades", h.Hierarquia.AtualizarLocalidades)
			}

			// exportação
			export := authorized.Group("/export")
			{
				export.GET("/tabela", h.Export.ExportarTabela)
			}
		}
	}

	return r
}
