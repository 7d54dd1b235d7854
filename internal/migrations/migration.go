package migrations

import (
	"github.com/mercy-gachoki10/smartprintpro1/internal/models"
	"github.com/mercy-gachoki10/smartprintpro1/internal/repository"
	"github.com/mercy-gachoki10/smartprintpro1/internal/services"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RunMigrations creates the schema and, when seed is true, the default
// catalog and admin account.
func RunMigrations(db *gorm.DB, seed bool) error {
	log.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.Customer{},
		&models.Vendor{},
		&models.Admin{},
		&models.ServicePrice{},
		&models.Order{},
		&models.OrderItem{},
		&models.Quote{},
		&models.QuoteItem{},
		&models.OrderStatusHistory{},
		&models.Review{},
	)
	if err != nil {
		return err
	}

	if seed {
		if err := createDefaultData(db); err != nil {
			log.WithError(err).Warn("Failed to create default data")
		}
	}

	log.Info("Database migrations completed")
	return nil
}

func createDefaultData(db *gorm.DB) error {
	if err := seedDefaultAdmin(db); err != nil {
		return err
	}
	return seedPricingCatalog(db)
}

func seedDefaultAdmin(db *gorm.DB) error {
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	if _, err := userRepo.GetAdminByEmail("admin@smartprintpro.com"); err == nil {
		return nil
	}

	log.Info("Creating default admin user...")
	admin := &models.Admin{
		FullName:     "Platform Admin",
		Email:        "admin@smartprintpro.com",
		Organization: "SmartPrint Pro",
	}
	return userService.RegisterAdmin(admin, "admin123")
}

type seedPrice struct {
	service string
	min     float64
	max     float64
	unit    string
	desc    string
}

// seedCatalog mirrors the launch pricing sheet. Category names are load
// bearing: vendor matching resolves capability flags against them.
var seedCatalog = map[string][]seedPrice{
	"Document Printing": {
		{"Black & White (A4)", 2, 5, "per page", "Standard office paper"},
		{"Color (A4)", 8, 12, "per page", "Standard office paper"},
		{"Black & White (A3)", 5, 8, "per page", "Larger format"},
		{"Color (A3)", 15, 25, "per page", "Larger format"},
	},
	"Pictures / Photos": {
		{"Standard photo print (4x6)", 30, 50, "per photo", "Glossy finish"},
		{"Large photo print (A4)", 150, 250, "per photo", "Poster-size"},
		{"Extra-large photo (A3)", 300, 500, "per photo", "Wall-size"},
		{"Canvas print (A2/A1)", 1500, 3000, "per photo", "Premium wall art"},
	},
	"Framing Options": {
		{"Basic plastic frame (A4)", 300, 500, "per frame", "Budget option"},
		{"Wooden frame (A4)", 500, 800, "per frame", "Classic look"},
		{"Wooden frame (A3)", 800, 1200, "per frame", "Larger format"},
		{"Decorative frame (A4/A3)", 1000, 2000, "per frame", "Ornate design"},
		{"Canvas stretch frame (A2/A1)", 2000, 4000, "per frame", "For canvas prints"},
	},
	"Uniforms": {
		{"Polo shirt with logo (embroidery)", 800, 1200, "per item", "Corporate uniforms"},
		{"T-shirt with screen print", 500, 800, "per item", "Staff/event wear"},
		{"Branded caps", 300, 500, "per item", "Promotional"},
		{"Hoodies with embroidery", 1500, 2500, "per item", "Premium option"},
	},
	"Banners (Digital & Vinyl)": {
		{"Small banner (A2)", 1000, 2000, "per banner", "Indoor use"},
		{"Medium banner (A1)", 2500, 4000, "per banner", "Event signage"},
		{"Large outdoor vinyl (A0/3m x 1m)", 5000, 8000, "per banner", "Outdoor advertising"},
	},
	"Signage": {
		{"Acrylic signage (small)", 2000, 4000, "per sign", "Office door signs"},
		{"Vinyl signage (medium)", 5000, 10000, "per sign", "Shopfront"},
		{"Billboards (per sqm)", 2000, 3500, "per sqm", "Outdoor advertising"},
	},
	"Flyers & Brochures": {
		{"Flyers (A5, 100 copies)", 1500, 2500, "per batch", "Bulk discount available"},
		{"Brochures (A4, folded, 100 copies)", 3000, 5000, "per batch", "Glossy paper"},
		{"Event prints (posters A3, 50 copies)", 2500, 4000, "per batch", "Promotional"},
	},
	"Custom Merchandise": {
		{"T-shirts (custom print)", 500, 800, "per item", "Screen or DTG printing"},
		{"Hoodies (custom print)", 1500, 2500, "per item", "Embroidery or DTG"},
		{"Caps (embroidered logo)", 300, 500, "per item", "Promotional"},
		{"Embroidery (per logo)", 200, 400, "per logo", "Add-on service"},
	},
	"Packaging & Labels": {
		{"Packaging boxes (small, 50 pcs)", 2500, 4000, "per batch", "Custom printed"},
		{"Packaging boxes (large, 50 pcs)", 5000, 8000, "per batch", "Heavy-duty"},
		{"Labels (roll of 500)", 1500, 3000, "per roll", "Stickers for branding"},
		{"Custom boxes (premium design, 50 pcs)", 8000, 12000, "per batch", "Luxury packaging"},
	},
}

func seedPricingCatalog(db *gorm.DB) error {
	priceRepo := repository.NewServicePriceRepository(db)

	count, err := priceRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Info("Seeding pricing catalog...")
	total := 0
	for category, prices := range seedCatalog {
		for _, p := range prices {
			entry := &models.ServicePrice{
				Category:     category,
				ServiceName:  p.service,
				Description:  p.desc,
				UnitPriceMin: p.min,
				UnitPriceMax: p.max,
				Unit:         p.unit,
				Active:       true,
			}
			if err := priceRepo.Create(entry); err != nil {
				return err
			}
			total++
		}
	}
	log.WithField("entries", total).Info("Pricing catalog seeded")
	return nil
}
