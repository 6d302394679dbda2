package accountrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add inserts a user. Account management lives elsewhere; this is used for seeding.
func (r *GormUserRepository) Add(ctx context.Context, u *account.User) error {
	return r.db.WithContext(ctx).Create(&UserDTO{ID: u.ID().Bytes(), Identity: u.Identity().String()}).Error
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, notFound(err, "user", id.String())
	}
	return userToDomain(dto)
}

func (r *GormUserRepository) GetByIdentity(ctx context.Context, identity kernel.Identity) (*account.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "identity = ?", identity.String()).Error; err != nil {
		return nil, notFound(err, "identity", identity.String())
	}
	return userToDomain(dto)
}

// GormSellerRepository implements SellerRepository using GORM.
type GormSellerRepository struct {
	db *gorm.DB
}

func NewGormSellerRepository(db *gorm.DB) *GormSellerRepository {
	return &GormSellerRepository{db: db}
}

func (r *GormSellerRepository) Add(ctx context.Context, s *account.Seller) error {
	return r.db.WithContext(ctx).Create(&SellerDTO{ID: s.ID().Bytes(), UserID: s.UserID().Bytes()}).Error
}

func (r *GormSellerRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*account.Seller, error) {
	var dto SellerDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		return nil, notFound(err, "seller", userID.String())
	}
	return ownedToDomain(dto.ID, dto.UserID, account.NewSeller)
}

// GormShippingAddressRepository implements ShippingAddressRepository using GORM.
type GormShippingAddressRepository struct {
	db *gorm.DB
}

func NewGormShippingAddressRepository(db *gorm.DB) *GormShippingAddressRepository {
	return &GormShippingAddressRepository{db: db}
}

func (r *GormShippingAddressRepository) Add(ctx context.Context, a *account.ShippingAddress) error {
	return r.db.WithContext(ctx).Create(&ShippingAddressDTO{ID: a.ID().Bytes(), UserID: a.UserID().Bytes()}).Error
}

func (r *GormShippingAddressRepository) Get(ctx context.Context, id kernel.UUID) (*account.ShippingAddress, error) {
	var dto ShippingAddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, notFound(err, "shipping address", id.String())
	}
	return ownedToDomain(dto.ID, dto.UserID, account.NewShippingAddress)
}

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) Add(ctx context.Context, c *account.Cart) error {
	return r.db.WithContext(ctx).Create(&CartDTO{ID: c.ID().Bytes(), UserID: c.UserID().Bytes()}).Error
}

// AddItem puts a product into the cart.
func (r *GormCartRepository) AddItem(ctx context.Context, cartID, productID kernel.UUID, quantity int) error {
	return r.db.WithContext(ctx).Create(&CartItemDTO{
		ID:        kernel.NewUUID().Bytes(),
		CartID:    cartID.Bytes(),
		ProductID: productID.Bytes(),
		Quantity:  quantity,
		AddedAt:   time.Now().UTC(),
	}).Error
}

// CountItems returns the number of item rows in the cart.
func (r *GormCartRepository) CountItems(ctx context.Context, cartID kernel.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&CartItemDTO{}).Where("cart_id = ?", cartID.Bytes()).Count(&count).Error
	return count, err
}

func (r *GormCartRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*account.Cart, error) {
	var dto CartDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		return nil, notFound(err, "cart", userID.String())
	}
	return ownedToDomain(dto.ID, dto.UserID, account.NewCart)
}

// DeleteAllItems purges the cart's items and keeps the cart row.
func (r *GormCartRepository) DeleteAllItems(ctx context.Context, cartID kernel.UUID) error {
	return r.db.WithContext(ctx).Where("cart_id = ?", cartID.Bytes()).Delete(&CartItemDTO{}).Error
}

func notFound(err error, param string, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(param, id)
	}
	return err
}
