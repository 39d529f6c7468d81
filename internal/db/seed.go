package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/PatinhasPetShop01/petshop-api/internal/config"
	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

// Seed cria o admin e o catálogo inicial na primeira subida. Idempotente:
// se o admin já existe, nada é tocado.
func Seed(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).
		Where("username = ?", cfg.AdminUsername).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("[seed] criando admin e catálogo inicial")

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hashed),
		Name:         "Administrador",
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	products := []models.Product{
		{
			Name:        "Ração Premium Cães Adultos 15kg",
			Description: "Ração de alta qualidade para cães de todas as raças.",
			Price:       24990,
			Category:    "Ração",
			ImageURL:    "https://images.unsplash.com/photo-1589924691195-41432c84c161?w=500&q=80",
		},
		{
			Name:        "Brinquedo Mordedor Resistente",
			Description: "Ideal para cães que gostam de roer. Material atóxico.",
			Price:       4990,
			Category:    "Brinquedos",
			ImageURL:    "https://images.unsplash.com/photo-1576201836106-db1758fd1c97?w=500&q=80",
		},
		{
			Name:        "Shampoo Pet Cheirinho de Bebê",
			Description: "Hipoalergênico e com pH balanceado.",
			Price:       3500,
			Category:    "Higiene",
			ImageURL:    "https://images.unsplash.com/photo-1585846416120-3a7354ed7d6d?w=500&q=80",
		},
		{
			Name:        "Coleira Ajustável com Pingente",
			Description: "Conforto e segurança para o seu passeio.",
			Price:       5990,
			Category:    "Acessórios",
			ImageURL:    "https://images.unsplash.com/photo-1599561046251-cc796a6e932c?w=500&q=80",
		},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	services := []models.Service{
		{
			Name:        "Banho Completo",
			Description: "Lavagem, secagem, corte de unhas e limpeza de ouvidos.",
			Price:       6000,
			DurationMin: 60,
			ImageURL:    "https://images.unsplash.com/photo-1516734212186-a967f81ad0d7?w=500&q=80",
		},
		{
			Name:        "Tosa Higiênica",
			Description: "Corte dos pelos nas patas e áreas íntimas.",
			Price:       4000,
			DurationMin: 30,
			ImageURL:    "https://images.unsplash.com/photo-1599443015574-be5fe8a05783?w=500&q=80",
		},
		{
			Name:        "Consulta Veterinária",
			Description: "Avaliação geral da saúde do seu pet.",
			Price:       15000,
			DurationMin: 30,
			ImageURL:    "https://images.unsplash.com/photo-1628009368231-760335298025?w=500&q=80",
		},
		{
			Name:        "Adestramento Comportamental",
			Description: "Sessões individuais para melhorar o comportamento e obediência.",
			Price:       12000,
			DurationMin: 60,
			ImageURL:    "https://images.unsplash.com/photo-1583511655857-d19b40a7a54e?w=500&q=80",
		},
		{
			Name:        "Hospedagem Pet",
			Description: "Ambiente seguro e confortável para o seu pet passar a noite.",
			Price:       8000,
			DurationMin: 1440,
			ImageURL:    "https://images.unsplash.com/photo-1548199973-03cce0bbc87b?w=500&q=80",
		},
		{
			Name:        "Fisioterapia e Reabilitação",
			Description: "Tratamentos especializados para recuperação motora.",
			Price:       18000,
			DurationMin: 45,
			ImageURL:    "https://images.unsplash.com/photo-1576201836106-db1758fd1c97?w=500&q=80",
		},
	}
	return db.Create(&services).Error
}
