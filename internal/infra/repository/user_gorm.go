package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	return wrap("repository.CreateUser",
		r.db.WithContext(ctx).Omit(clause.Associations).Create(u).Error)
}

func (r *UserGormRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, wrap("repository.GetUserByEmail", err)
	}
	return &u, nil
}

func (r *UserGormRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return getUser(ctx, r.db, id)
}

func getUser(ctx context.Context, db *gorm.DB, id string) (*models.User, error) {
	var u models.User
	if err := db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, wrap("repository.GetUserByID", err)
	}
	return &u, nil
}

var _ user.Repository = (*UserGormRepository)(nil)
