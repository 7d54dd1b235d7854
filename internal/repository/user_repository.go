package repository

import (
	"github.com/mercy-gachoki10/smartprintpro1/internal/models"

	"gorm.io/gorm"
)

// UserRepository covers the three user tables. Authentication lives outside
// this service; these lookups back ownership checks and vendor matching.
type UserRepository interface {
	CreateCustomer(customer *models.Customer) error
	GetCustomerByID(id uint) (*models.Customer, error)
	GetCustomerByEmail(email string) (*models.Customer, error)

	CreateVendor(vendor *models.Vendor) error
	GetVendorByID(id uint) (*models.Vendor, error)
	GetVendorByEmail(email string) (*models.Vendor, error)
	GetAllVendors() ([]models.Vendor, error)

	CreateAdmin(admin *models.Admin) error
	GetAdminByEmail(email string) (*models.Admin, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateCustomer(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *userRepository) GetCustomerByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *userRepository) GetCustomerByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("email = ?", email).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *userRepository) CreateVendor(vendor *models.Vendor) error {
	return r.db.Create(vendor).Error
}

func (r *userRepository) GetVendorByID(id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.First(&vendor, id).Error
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *userRepository) GetVendorByEmail(email string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.Where("email = ?", email).First(&vendor).Error
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *userRepository) GetAllVendors() ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.Find(&vendors).Error
	return vendors, err
}

func (r *userRepository) CreateAdmin(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

func (r *userRepository) GetAdminByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
