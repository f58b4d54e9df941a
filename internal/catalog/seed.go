package catalog

import (
	"time"

	"github.com/msmahatha/agroCart-harvest-hub/internal/domain"
)

func salePrice(v float64) *float64 { return &v }

var seedBase = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

// SeedCategories returns the built-in category list.
func SeedCategories() []domain.Category {
	return []domain.Category{
		{ID: "cat_seeds", Name: "Seeds", Description: "High-quality seeds for all types of crops", ImageURL: "https://images.unsplash.com/photo-1465146344425-f00d5f5c8f07", Slug: "seeds", Featured: true},
		{ID: "cat_fertilizers", Name: "Fertilizers", Description: "Organic and chemical fertilizers for optimal plant growth", ImageURL: "https://images.unsplash.com/photo-1509316975850-ff9c5deb0cd9", Slug: "fertilizers", Featured: true},
		{ID: "cat_pesticides", Name: "Pesticides", Description: "Effective pest control solutions for your crops", ImageURL: "https://images.unsplash.com/photo-1513836279014-a89f7a76ae86", Slug: "pesticides", Featured: false},
		{ID: "cat_tools", Name: "Tools & Equipment", Description: "Essential tools for farming and gardening", ImageURL: "https://images.unsplash.com/photo-1472396961693-142e6e269027", Slug: "tools-equipment", Featured: true},
		{ID: "cat_machinery", Name: "Machinery", Description: "Modern farming machinery for efficient agriculture", ImageURL: "https://images.unsplash.com/photo-1466721591366-2d5fba72006d", Slug: "machinery", Featured: false},
		{ID: "cat_irrigation", Name: "Irrigation Systems", Description: "Water management systems for farms and gardens", ImageURL: "https://images.unsplash.com/photo-1493962853295-0fd70327578a", Slug: "irrigation-systems", Featured: true},
	}
}

// SeedProducts returns the built-in product list. Prices are authored in USD.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "prod_001", Name: "Premium Wheat Seeds",
			Description: "High-yield wheat seeds perfect for a variety of climate conditions. These premium seeds have been carefully selected to provide optimal growth and resistance to common diseases.",
			Price:       129.99, SalePrice: salePrice(99.99),
			ImageURL:   "https://images.unsplash.com/photo-1465146344425-f00d5f5c8f07",
			Gallery:    []string{"https://images.unsplash.com/photo-1465146344425-f00d5f5c8f07", "https://images.unsplash.com/photo-1509316975850-ff9c5deb0cd9", "https://images.unsplash.com/photo-1513836279014-a89f7a76ae86"},
			CategoryID: "cat_seeds", Stock: 120, Rating: 4.8, ReviewCount: 56,
			Brand: "GrowWell", Tags: []string{"wheat", "seeds", "high-yield"},
			Featured: true, Slug: "premium-wheat-seeds",
			Specifications: map[string]string{"Weight": "5 kg", "Germination Rate": "95%", "Seed Count": "~5000 seeds", "Growing Season": "All year", "Harvest Time": "90-120 days"},
			CreatedAt:      seedBase,
		},
		{
			ID: "prod_002", Name: "Organic Compost Fertilizer",
			Description: "100% organic compost fertilizer, perfect for all types of plants. Enriches soil and promotes healthy plant growth without harmful chemicals.",
			Price:       49.99,
			ImageURL:    "https://images.unsplash.com/photo-1509316975850-ff9c5deb0cd9",
			CategoryID:  "cat_fertilizers", Stock: 85, Rating: 4.9, ReviewCount: 123,
			IsOrganic: true, Brand: "EcoGrow", Tags: []string{"organic", "fertilizer", "compost"},
			Featured: true, Slug: "organic-compost-fertilizer",
			Specifications: map[string]string{"Weight": "20 kg", "Type": "Organic", "NPK Ratio": "5-5-5", "Suitable For": "All plants", "Usage": "Apply 1kg per 10 square meters"},
			CreatedAt:      seedBase.Add(24 * time.Hour),
		},
		{
			ID: "prod_003", Name: "Advanced Irrigation Kit",
			Description: "Complete drip irrigation system for efficient water usage. Perfect for small to medium gardens and farms.",
			Price:       259.99, SalePrice: salePrice(199.99),
			ImageURL:   "https://images.unsplash.com/photo-1513836279014-a89f7a76ae86",
			CategoryID: "cat_irrigation", Stock: 32, Rating: 4.7, ReviewCount: 87,
			Brand: "AquaFlow", Tags: []string{"irrigation", "water-saving", "kit"},
			Featured: true, Slug: "advanced-irrigation-kit",
			Specifications: map[string]string{"Coverage": "Up to 500 square meters", "Hose Length": "100 meters", "Components": "Drippers, connectors, timer", "Material": "UV-resistant plastic", "Warranty": "2 years"},
			CreatedAt:      seedBase.Add(48 * time.Hour),
		},
		{
			ID: "prod_004", Name: "Premium Garden Tool Set",
			Description: "Complete set of high-quality garden tools made with durable materials. Includes pruners, trowel, fork, and more.",
			Price:       89.99,
			ImageURL:    "https://images.unsplash.com/photo-1472396961693-142e6e269027",
			CategoryID:  "cat_tools", Stock: 45, Rating: 4.6, ReviewCount: 92,
			Brand: "GardenPro", Tags: []string{"tools", "gardening", "set"},
			Featured: false, Slug: "premium-garden-tool-set",
			Specifications: map[string]string{"Pieces": "7 tools", "Material": "Stainless steel with oak handles", "Includes": "Trowel, fork, pruner, weeder, rake, hoe, gloves", "Carrying Case": "Canvas bag included", "Warranty": "Lifetime warranty"},
			CreatedAt:      seedBase.Add(72 * time.Hour),
		},
		{
			ID: "prod_005", Name: "Eco-Friendly Pest Control Spray",
			Description: "Natural pest control solution that's safe for beneficial insects and the environment. Effective against common garden pests.",
			Price:       32.99,
			ImageURL:    "https://images.unsplash.com/photo-1466721591366-2d5fba72006d",
			CategoryID:  "cat_pesticides", Stock: 110, Rating: 4.4, ReviewCount: 67,
			IsOrganic: true, Brand: "NatureDef", Tags: []string{"organic", "pest-control", "spray"},
			Featured: false, Slug: "eco-friendly-pest-control",
			Specifications: map[string]string{"Volume": "1 liter", "Active Ingredients": "Neem oil, essential oils", "Target Pests": "Aphids, whiteflies, mites", "Application": "Spray every 7-10 days", "Safe For": "Edible plants, pets, beneficial insects"},
			CreatedAt:      seedBase.Add(96 * time.Hour),
		},
		{
			ID: "prod_006", Name: "Mini Cultivator Machine",
			Description: "Compact and powerful cultivator for small farms and large gardens. Easy to operate and maintain.",
			Price:       699.99, SalePrice: salePrice(599.99),
			ImageURL:   "https://images.unsplash.com/photo-1493962853295-0fd70327578a",
			CategoryID: "cat_machinery", Stock: 15, Rating: 4.7, ReviewCount: 38,
			Brand: "FarmTech", Tags: []string{"machinery", "cultivator", "small-farm"},
			Featured: true, Slug: "mini-cultivator-machine",
			Specifications: map[string]string{"Engine": "4-stroke, 5HP", "Working Width": "50 cm", "Fuel Type": "Unleaded gasoline", "Weight": "35 kg", "Warranty": "3 years"},
			CreatedAt:      seedBase.Add(120 * time.Hour),
		},
		{
			ID: "prod_007", Name: "Organic Tomato Seeds",
			Description: "Heirloom tomato seeds grown organically for the best flavor and yield. Perfect for home gardens.",
			Price:       19.99,
			ImageURL:    "https://images.unsplash.com/photo-1469041797191-50ace28483c3",
			CategoryID:  "cat_seeds", Stock: 78, Rating: 4.9, ReviewCount: 112,
			IsOrganic: true, Brand: "SeedWell", Tags: []string{"organic", "tomato", "seeds", "heirloom"},
			Featured: false, Slug: "organic-tomato-seeds",
			Specifications: map[string]string{"Quantity": "100 seeds", "Variety": "Beefsteak", "Germination Rate": "92%", "Growing Season": "Spring to Summer", "Days to Maturity": "75-85 days"},
			CreatedAt:      seedBase.Add(144 * time.Hour),
		},
		{
			ID: "prod_008", Name: "Professional Pruning Shears",
			Description: "High-quality pruning shears with ergonomic design for comfortable use. Perfect for precision cutting of branches and stems.",
			Price:       45.99,
			ImageURL:    "https://images.unsplash.com/photo-1452378174528-3090a4bba7b2",
			CategoryID:  "cat_tools", Stock: 62, Rating: 4.8, ReviewCount: 94,
			Brand: "CutMaster", Tags: []string{"pruning", "shears", "gardening"},
			Featured: false, Slug: "professional-pruning-shears",
			Specifications: map[string]string{"Blade Material": "Hardened steel", "Handle": "Ergonomic rubber grip", "Cutting Capacity": "Up to 20mm diameter", "Lock Mechanism": "Safety lock included", "Length": "22 cm"},
			CreatedAt:      seedBase.Add(168 * time.Hour),
		},
	}
}
