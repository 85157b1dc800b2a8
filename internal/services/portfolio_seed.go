package services

import "atelier_backend/internal/models"

func strPtr(s string) *string { return &s }

// SamplePortfolio is the catalogue a fresh studio site starts with.
func SamplePortfolio() []models.PortfolioItem {
	return []models.PortfolioItem{
		{
			Name:        "Evening Elegance",
			Category:    "Formal",
			ImageURL:    "https://images.unsplash.com/photo-1566174053879-31528523f8ae?ixlib=rb-4.0.3&auto=format&fit=crop&w=870&q=80",
			Description: strPtr("A stunning evening gown designed for red carpet events."),
			Featured:    true,
		},
		{
			Name:        "Urban Chic",
			Category:    "Cocktail",
			ImageURL:    "https://images.unsplash.com/photo-1575351881847-b3bf188d9d0a?ixlib=rb-4.0.3&auto=format&fit=crop&w=870&q=80",
			Description: strPtr("Modern cocktail dress perfect for urban social events."),
			Featured:    true,
		},
		{
			Name:        "Summer Breeze",
			Category:    "Casual",
			ImageURL:    "https://images.unsplash.com/photo-1525507119028-ed4c629a60a3?ixlib=rb-4.0.3&auto=format&fit=crop&w=435&q=80",
			Description: strPtr("Light and airy summer dress for casual outings."),
			Featured:    true,
		},
		{
			Name:        "Ethereal Dreams",
			Category:    "Bridal",
			ImageURL:    "https://images.unsplash.com/photo-1581044777550-4cfa60707c03?ixlib=rb-4.0.3&auto=format&fit=crop&w=386&q=80",
			Description: strPtr("Romantic bridal gown with delicate lace details."),
			Featured:    true,
		},
		{
			Name:        "Ruby Silk Gown",
			Category:    "Formal",
			ImageURL:    "https://images.unsplash.com/photo-1585487000160-6ebcfceb0d03?ixlib=rb-4.0.3&auto=format&fit=crop&w=434&q=80",
			Description: strPtr("Elegant red silk gown for formal occasions."),
		},
		{
			Name:        "Floral Day Dress",
			Category:    "Casual",
			ImageURL:    "https://images.unsplash.com/photo-1499939667766-4afceb292d05?ixlib=rb-4.0.3&auto=format&fit=crop&w=873&q=80",
			Description: strPtr("Charming floral print dress for daytime events."),
		},
		{
			Name:        "Classic Lace Wedding Dress",
			Category:    "Bridal",
			ImageURL:    "https://images.unsplash.com/photo-1594612076467-8e9a8d6d6825?ixlib=rb-4.0.3&auto=format&fit=crop&w=387&q=80",
			Description: strPtr("Traditional lace wedding gown with classic silhouette."),
		},
	}
}
