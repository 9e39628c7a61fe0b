package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/model"
)

// UsuarioRepository acesso a dados de usuários
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *model.Usuario) error
	GetByID(ctx context.Context, id string) (*model.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*model.Usuario, error)
	Update(ctx context.Context, usuario *model.Usuario) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Usuario, error)
}

// usuarioRepo implementação GORM de UsuarioRepository
type usuarioRepo struct {
	db *gorm.DB
}

// NewUsuarioRepo cria uma instância de UsuarioRepository
func NewUsuarioRepo(db *gorm.DB) UsuarioRepository {
	return &usuarioRepo{db: db}
}

func (r *usuarioRepo) Create(ctx context.Context, usuario *model.Usuario) error {
	return r.db.WithContext(ctx).Create(usuario).Error
}

func (r *usuarioRepo) GetByID(ctx context.Context, id string) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", id).
		First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepo) GetByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepo) Update(ctx context.Context, usuario *model.Usuario) error {
	return r.db.WithContext(ctx).Save(usuario).Error
}

func (r *usuarioRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("usuario_id = ?", id).
		Delete(&model.Usuario{}).Error
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	err := r.db.WithContext(ctx).
		Order("nome ASC").
		Find(&usuarios).Error
	return usuarios, err
}
