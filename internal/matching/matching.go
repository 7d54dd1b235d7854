// Package matching decides which catalog categories a vendor may service.
// The mapping is static and the functions are pure; "no match" is a false
// return, never an error.
package matching

import (
	"sort"

	"github.com/mercy-gachoki10/smartprintpro1/internal/models"
)

// Catalog category names, matching the seeded service catalog.
const (
	CategoryDocumentPrinting  = "Document Printing"
	CategoryPhotos            = "Pictures / Photos"
	CategoryFraming           = "Framing Options"
	CategoryUniforms          = "Uniforms"
	CategoryBanners           = "Banners (Digital & Vinyl)"
	CategorySignage           = "Signage"
	CategoryFlyers            = "Flyers & Brochures"
	CategoryMerchandise       = "Custom Merchandise"
	CategoryPackagingAndLabel = "Packaging & Labels"
)

// capabilityCategories maps each vendor capability flag to the catalog
// categories it unlocks. One-to-many: large format covers both banners and
// signage.
var capabilityCategories = []struct {
	enabled    func(*models.Vendor) bool
	categories []string
}{
	{func(v *models.Vendor) bool { return v.ServiceDocumentPrinting }, []string{CategoryDocumentPrinting, CategoryFlyers}},
	{func(v *models.Vendor) bool { return v.ServicePhotos }, []string{CategoryPhotos, CategoryFraming}},
	{func(v *models.Vendor) bool { return v.ServiceUniforms }, []string{CategoryUniforms}},
	{func(v *models.Vendor) bool { return v.ServiceMerchandise }, []string{CategoryMerchandise, CategoryPackagingAndLabel}},
	{func(v *models.Vendor) bool { return v.ServiceLargeFormat }, []string{CategoryBanners, CategorySignage}},
}

// CategoriesForVendor returns the sorted union of categories unlocked by the
// vendor's capability flags. All flags false yields an empty slice.
func CategoriesForVendor(vendor *models.Vendor) []string {
	set := make(map[string]struct{})
	for _, cap := range capabilityCategories {
		if cap.enabled(vendor) {
			for _, c := range cap.categories {
				set[c] = struct{}{}
			}
		}
	}
	categories := make([]string, 0, len(set))
	for c := range set {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// VendorCanServiceOrder reports whether the vendor may view and quote on the
// order. The assigned vendor always sees its own order regardless of flags;
// assignment overrides matching for viewing, not for being offered new work.
func VendorCanServiceOrder(vendor *models.Vendor, order *models.Order) bool {
	if order.VendorID != nil && *order.VendorID == vendor.ID {
		return true
	}
	for _, c := range CategoriesForVendor(vendor) {
		if c == order.ServiceCategory {
			return true
		}
	}
	return false
}
