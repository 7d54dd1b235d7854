package services

import (
	"testing"

	"github.com/mercy-gachoki10/smartprintpro1/internal/models"
)

func TestRegisterCustomerHashesPassword(t *testing.T) {
	env := newTestEnv(t)

	customer := &models.Customer{FullName: "New User", Email: "new@test.local"}
	if err := env.users.RegisterCustomer(customer, "hunter2hunter2"); err != nil {
		t.Fatalf("RegisterCustomer: %v", err)
	}

	if customer.PasswordHash == "hunter2hunter2" || customer.PasswordHash == "" {
		t.Fatal("password stored unhashed")
	}
	if !env.users.CheckPassword(customer.PasswordHash, "hunter2hunter2") {
		t.Error("correct password rejected")
	}
	if env.users.CheckPassword(customer.PasswordHash, "wrong") {
		t.Error("wrong password accepted")
	}
	if !customer.Active {
		t.Error("new customer should be active")
	}
}

func TestDuplicateEmailRejected(t *testing.T) {
	env := newTestEnv(t)

	dup := &models.Customer{FullName: "Dup", Email: "customer@test.local"}
	if err := env.users.RegisterCustomer(dup, "secret123"); err == nil {
		t.Fatal("duplicate email accepted")
	}
}

func TestGetVendor(t *testing.T) {
	env := newTestEnv(t)

	vendor, err := env.users.GetVendor(env.vendorA.ID)
	if err != nil {
		t.Fatalf("GetVendor: %v", err)
	}
	if !vendor.ServiceDocumentPrinting {
		t.Error("capability flag lost on round trip")
	}

	vendors, err := env.users.GetAllVendors()
	if err != nil {
		t.Fatalf("GetAllVendors: %v", err)
	}
	if len(vendors) != 2 {
		t.Errorf("vendors = %d, want 2", len(vendors))
	}
}
