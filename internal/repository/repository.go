package repository

import "gorm.io/gorm"

// Repository ponto de agregação de todos os repositórios
type Repository struct {
	Usuario    UsuarioRepository
	Boletim    BoletimRepository
	Hierarquia HierarquiaRepository
}

// NewRepository cria a agregação de repositórios
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Usuario:    NewUsuarioRepo(db),
		Boletim:    NewBoletimRepo(db),
		Hierarquia: NewHierarquiaRepo(db),
	}
}
