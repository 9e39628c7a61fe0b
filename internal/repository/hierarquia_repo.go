package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/model"
)

// HierarquiaRepository acesso somente-leitura e administração da
// hierarquia de supervisão. As consultas por usuário e por subárvore
// (GetGeralByUsuario → ListAreasByGeral → ListLocalidadesByAreas) são
// a base do resolvedor de acesso e devem ser testáveis contra uma
// implementação em memória.
type HierarquiaRepository interface {
	// Supervisores gerais
	CreateGeral(ctx context.Context, geral *model.SupervisorGeral) error
	DeleteGeral(ctx context.Context, id string) error
	GetGeralByID(ctx context.Context, id string) (*model.SupervisorGeral, error)
	GetGeralByUsuario(ctx context.Context, usuarioID string) (*model.SupervisorGeral, error)
	ListGerais(ctx context.Context) ([]model.SupervisorGeral, error)

	// Supervisores de área
	CreateArea(ctx context.Context, area *model.SupervisorArea) error
	DeleteArea(ctx context.Context, id string) error
	GetAreaByID(ctx context.Context, id string) (*model.SupervisorArea, error)
	GetAreaByUsuario(ctx context.Context, usuarioID string) (*model.SupervisorArea, error)
	ListAreasByGeral(ctx context.Context, geralID string) ([]model.SupervisorArea, error)

	// Localidades
	ListLocalidadesByAreas(ctx context.Context, areaIDs []string) ([]string, error)
	ReplaceLocalidades(ctx context.Context, areaID string, nomes []string) error
}

// hierarquiaRepo implementação GORM de HierarquiaRepository
type hierarquiaRepo struct {
	db *gorm.DB
}

// NewHierarquiaRepo cria uma instância de HierarquiaRepository
func NewHierarquiaRepo(db *gorm.DB) HierarquiaRepository {
	return &hierarquiaRepo{db: db}
}

func (r *hierarquiaRepo) CreateGeral(ctx context.Context, geral *model.SupervisorGeral) error {
	return r.db.WithContext(ctx).Create(geral).Error
}

func (r *hierarquiaRepo) DeleteGeral(ctx context.Context, id string) error {
	// ON DELETE CASCADE remove áreas e localidades da subárvore
	return r.db.WithContext(ctx).
		Where("supervisor_geral_id = ?", id).
		Delete(&model.SupervisorGeral{}).Error
}

func (r *hierarquiaRepo) GetGeralByID(ctx context.Context, id string) (*model.SupervisorGeral, error) {
	var geral model.SupervisorGeral
	err := r.db.WithContext(ctx).
		Preload("Areas.Localidades").
		Where("supervisor_geral_id = ?", id).
		First(&geral).Error
	if err != nil {
		return nil, err
	}
	return &geral, nil
}

func (r *hierarquiaRepo) GetGeralByUsuario(ctx context.Context, usuarioID string) (*model.SupervisorGeral, error) {
	var geral model.SupervisorGeral
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		First(&geral).Error
	if err != nil {
		return nil, err
	}
	return &geral, nil
}

func (r *hierarquiaRepo) ListGerais(ctx context.Context) ([]model.SupervisorGeral, error) {
	var gerais []model.SupervisorGeral
	err := r.db.WithContext(ctx).
		Preload("Areas.Localidades").
		Order("nome ASC").
		Find(&gerais).Error
	return gerais, err
}

func (r *hierarquiaRepo) CreateArea(ctx context.Context, area *model.SupervisorArea) error {
	return r.db.WithContext(ctx).Create(area).Error
}

func (r *hierarquiaRepo) DeleteArea(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("supervisor_area_id = ?", id).
		Delete(&model.SupervisorArea{}).Error
}

func (r *hierarquiaRepo) GetAreaByID(ctx context.Context, id string) (*model.SupervisorArea, error) {
	var area model.SupervisorArea
	err := r.db.WithContext(ctx).
		Preload("Localidades").
		Where("supervisor_area_id = ?", id).
		First(&area).Error
	if err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *hierarquiaRepo) GetAreaByUsuario(ctx context.Context, usuarioID string) (*model.SupervisorArea, error) {
	var area model.SupervisorArea
	err := r.db.WithContext(ctx).
		Preload("Localidades").
		Where("usuario_id = ?", usuarioID).
		First(&area).Error
	if err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *hierarquiaRepo) ListAreasByGeral(ctx context.Context, geralID string) ([]model.SupervisorArea, error) {
	var areas []model.SupervisorArea
	err := r.db.WithContext(ctx).
		Preload("Localidades").
		Where("supervisor_geral_id = ?", geralID).
		Order("nome ASC").
		Find(&areas).Error
	return areas, err
}

func (r *hierarquiaRepo) ListLocalidadesByAreas(ctx context.Context, areaIDs []string) ([]string, error) {
	if len(areaIDs) == 0 {
		return []string{}, nil
	}
	var nomes []string
	err := r.db.WithContext(ctx).
		Model(&model.LocalidadeAtribuida{}).
		Where("supervisor_area_id IN ?", areaIDs).
		Pluck("nome", &nomes).Error
	return nomes, err
}

// ReplaceLocalidades substitui integralmente as atribuições de um
// supervisor de área em uma única transação (delete-all-then-insert,
// sem diff)
func (r *hierarquiaRepo) ReplaceLocalidades(ctx context.Context, areaID string, nomes []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("supervisor_area_id = ?", areaID).
			Delete(&model.LocalidadeAtribuida{}).Error; err != nil {
			return err
		}
		if len(nomes) == 0 {
			return nil
		}
		novas := make([]model.LocalidadeAtribuida, 0, len(nomes))
		for _, nome := range nomes {
			novas = append(novas, model.LocalidadeAtribuida{
				SupervisorAreaID: areaID,
				Nome:             nome,
			})
		}
		return tx.Create(&novas).Error
	})
}
