package services

import (
	"github.com/mercy-gachoki10/smartprintpro1/internal/models"
	"github.com/mercy-gachoki10/smartprintpro1/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserService registers marketplace actors. Session management and login
// live in the gateway; this service only stores bcrypt hashes so seeded and
// registered accounts are usable there.
type UserService interface {
	RegisterCustomer(customer *models.Customer, password string) error
	RegisterVendor(vendor *models.Vendor, password string) error
	RegisterAdmin(admin *models.Admin, password string) error
	GetCustomer(id uint) (*models.Customer, error)
	GetVendor(id uint) (*models.Vendor, error)
	GetAllVendors() ([]models.Vendor, error)
	CheckPassword(hash, password string) bool
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) RegisterCustomer(customer *models.Customer, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	customer.PasswordHash = string(hash)
	customer.Active = true
	return s.userRepo.CreateCustomer(customer)
}

func (s *userService) RegisterVendor(vendor *models.Vendor, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	vendor.PasswordHash = string(hash)
	vendor.Active = true
	return s.userRepo.CreateVendor(vendor)
}

func (s *userService) RegisterAdmin(admin *models.Admin, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin.PasswordHash = string(hash)
	admin.Active = true
	return s.userRepo.CreateAdmin(admin)
}

func (s *userService) GetCustomer(id uint) (*models.Customer, error) {
	customer, err := s.userRepo.GetCustomerByID(id)
	if err != nil {
		return nil, notFoundErr(err, "customer")
	}
	return customer, nil
}

func (s *userService) GetVendor(id uint) (*models.Vendor, error) {
	vendor, err := s.userRepo.GetVendorByID(id)
	if err != nil {
		return nil, notFoundErr(err, "vendor")
	}
	return vendor, nil
}

func (s *userService) GetAllVendors() ([]models.Vendor, error) {
	return s.userRepo.GetAllVendors()
}

func (s *userService) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
