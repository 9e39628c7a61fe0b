package handler

import "github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/service"

// Handler ponto de agregação de todos os handlers HTTP
type Handler struct {
	Auth       *AuthHandler
	Usuario    *UsuarioHandler
	Boletim    *BoletimHandler
	Painel     *PainelHandler
	Hierarquia *HierarquiaHandler
	Export     *ExportHandler
}

// NewHandler cria a agregação de handlers
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Usuario:    NewUsuarioHandler(svc.Usuario),
		Boletim:    NewBoletimHandler(svc.Boletim),
		Painel:     NewPainelHandler(svc.Painel),
		Hierarquia: NewHierarquiaHandler(svc.Hierarquia),
		Export:     NewExportHandler(svc.Export),
	}
}
