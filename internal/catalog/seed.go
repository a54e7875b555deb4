package catalog

import "github.com/sparkbazaar/storefront-backend/internal/entity"

// SeedProducts is the static catalog loaded into the database on first
// start. Prices are whole rupees.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: "fw-001", Name: "Golden Sparkler Pack (10pc)", Description: "Classic 30cm gold sparklers with a steady, low-smoke burn.", Category: "Sparklers", OriginalPrice: 500, DiscountedPrice: 50, Image: "/assets/golden-sparklers.jpg", InStock: true, Featured: true, SafetyRating: "Kid Safe"},
		{ID: "fw-002", Name: "Electric Sparkler Deluxe (10pc)", Description: "Crackling electric sparklers with a bright white finish.", Category: "Sparklers", OriginalPrice: 750, DiscountedPrice: 75, Image: "/assets/electric-sparklers.jpg", InStock: true, SafetyRating: "Kid Safe"},
		{ID: "fw-003", Name: "Colour Sparkler Mix (20pc)", Description: "Red, green and gold sparklers in one family pack.", Category: "Sparklers", OriginalPrice: 1200, DiscountedPrice: 120, Image: "/assets/colour-sparklers.jpg", InStock: true},
		{ID: "fw-004", Name: "Sky Shot 25 Burst", Description: "25-shot aerial repeater with peony and willow breaks.", Category: "Aerial Shots", OriginalPrice: 5000, DiscountedPrice: 500, Image: "/assets/sky-shot-25.jpg", InStock: true, Featured: true, SafetyRating: "Adult Supervision"},
		{ID: "fw-005", Name: "Sky Shot 50 Burst", Description: "50-shot barrage alternating crackling palms and colour comets.", Category: "Aerial Shots", OriginalPrice: 9000, DiscountedPrice: 900, Image: "/assets/sky-shot-50.jpg", InStock: true, SafetyRating: "Adult Supervision"},
		{ID: "fw-006", Name: "Thunder King 100 Burst", Description: "Finale-grade 100-shot cake with titanium salutes.", Category: "Aerial Shots", OriginalPrice: 20000, DiscountedPrice: 2000, Image: "/assets/thunder-king.jpg", InStock: false, SafetyRating: "Adult Supervision"},
		{ID: "fw-007", Name: "Ground Chakkar Classic (10pc)", Description: "Spinning ground wheels throwing gold and crimson sparks.", Category: "Ground Spinners", OriginalPrice: 800, DiscountedPrice: 80, Image: "/assets/ground-chakkar.jpg", InStock: true, SafetyRating: "Kid Safe"},
		{ID: "fw-008", Name: "Ground Chakkar Deluxe (5pc)", Description: "Large twin-ring chakkars with a two-stage colour change.", Category: "Ground Spinners", OriginalPrice: 1000, DiscountedPrice: 100, Image: "/assets/chakkar-deluxe.jpg", InStock: true},
		{ID: "fw-009", Name: "Flower Pot Small (10pc)", Description: "Table-top fountains with a gentle 1m silver spray.", Category: "Flower Pots", OriginalPrice: 600, DiscountedPrice: 60, Image: "/assets/flower-pot-small.jpg", InStock: true, SafetyRating: "Kid Safe"},
		{ID: "fw-010", Name: "Flower Pot Giant (5pc)", Description: "3m crackling fountains with a colour-shifting core.", Category: "Flower Pots", OriginalPrice: 1500, DiscountedPrice: 150, Image: "/assets/flower-pot-giant.jpg", InStock: true, Featured: true},
		{ID: "fw-011", Name: "Whistling Rocket (10pc)", Description: "Screeching rockets ending in a silver chrysanthemum burst.", Category: "Rockets", OriginalPrice: 1200, DiscountedPrice: 120, Image: "/assets/whistling-rocket.jpg", InStock: true, SafetyRating: "Adult Supervision"},
		{ID: "fw-012", Name: "Colour Rocket Assortment (10pc)", Description: "Mixed-colour breaking rockets for open grounds.", Category: "Rockets", OriginalPrice: 1800, DiscountedPrice: 180, Image: "/assets/colour-rocket.jpg", InStock: true, SafetyRating: "Adult Supervision"},
		{ID: "fw-013", Name: "Festival Gift Box Standard", Description: "Curated box: sparklers, chakkars, flower pots and one 25-shot cake.", Category: "Gift Boxes", OriginalPrice: 10000, DiscountedPrice: 1000, Image: "/assets/gift-box-standard.jpg", InStock: true, Featured: true},
		{ID: "fw-014", Name: "Festival Gift Box Premium", Description: "Everything in the standard box plus rockets and a 50-shot finale.", Category: "Gift Boxes", OriginalPrice: 20000, DiscountedPrice: 2000, Image: "/assets/gift-box-premium.jpg", InStock: true},
	}
}
