package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/model"
)

// BoletimFiltro filtros opcionais da consulta de boletins.
// Slices vazios significam "sem filtro" para aquela dimensão — o
// recorte por acesso é decidido ANTES de chegar aqui, na camada de
// serviço; o repositório apenas aplica o que recebe.
type BoletimFiltro struct {
	Localidades []string
	Semanas     []string
	Ciclos      []int
	Ano         *int
}

// BoletimRepository acesso a dados de boletins de campo
type BoletimRepository interface {
	Create(ctx context.Context, boletim *model.Boletim) error
	GetByID(ctx context.Context, id string) (*model.Boletim, error)
	Update(ctx context.Context, boletim *model.Boletim) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filtro BoletimFiltro) ([]model.Boletim, error)
}

// boletimRepo implementação GORM de BoletimRepository
type boletimRepo struct {
	db *gorm.DB
}

// NewBoletimRepo cria uma instância de BoletimRepository
func NewBoletimRepo(db *gorm.DB) BoletimRepository {
	return &boletimRepo{db: db}
}

func (r *boletimRepo) Create(ctx context.Context, boletim *model.Boletim) error {
	return r.db.WithContext(ctx).Create(boletim).Error
}

func (r *boletimRepo) GetByID(ctx context.Context, id string) (*model.Boletim, error) {
	var boletim model.Boletim
	err := r.db.WithContext(ctx).
		Where("boletim_id = ?", id).
		First(&boletim).Error
	if err != nil {
		return nil, err
	}
	return &boletim, nil
}

func (r *boletimRepo) Update(ctx context.Context, boletim *model.Boletim) error {
	return r.db.WithContext(ctx).Save(boletim).Error
}

func (r *boletimRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("boletim_id = ?", id).
		Delete(&model.Boletim{}).Error
}

func (r *boletimRepo) List(ctx context.Context, filtro BoletimFiltro) ([]model.Boletim, error) {
	db := r.db.WithContext(ctx).Model(&model.Boletim{})

	if len(filtro.Localidades) > 0 {
		db = db.Where("localidade IN ?", filtro.Localidades)
	}
	if len(filtro.Semanas) > 0 {
		db = db.Where("semana IN ?", filtro.Semanas)
	}
	if len(filtro.Ciclos) > 0 {
		db = db.Where("ciclo IN ?", filtro.Ciclos)
	}
	if filtro.Ano != nil {
		db = db.Where("ano = ?", *filtro.Ano)
	}

	var boletins []model.Boletim
	err := db.Order("created_at ASC").Find(&boletins).Error
	return boletins, err
}
