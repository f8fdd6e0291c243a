package domain

// SeedRestaurants returns a fresh copy of the demo catalog.
func SeedRestaurants() []Restaurant {
	return []Restaurant{
		{
			ID:         "fastrestaurant",
			Name:       "FastRestaurant",
			Cuisine:    "Fast Food",
			ThemeColor: "#FF6B35",
			Tables:     20,
			Logo:       "https://images.unsplash.com/photo-1514933651103-005eec06c04b?w=200&h=200&fit=crop&crop=center",
			Menu: []MenuItem{
				{ID: "burger-classic", Name: "Classic Burger", Description: "Juicy beef patty with lettuce, tomato, and special sauce", Price: 299, Image: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=300&h=200&fit=crop"},
				{ID: "fries-premium", Name: "Truffle Fries", Description: "Premium fries with truffle oil and parmesan - AR preview available", Price: 450, Image: "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?w=300&h=200&fit=crop", IsPremium: true},
				{ID: "pizza-margherita", Name: "Margherita Pizza", Description: "Fresh mozzarella, basil, and tomato sauce", Price: 399, Image: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=300&h=200&fit=crop"},
				{ID: "shake-vanilla", Name: "Vanilla Milkshake", Description: "Creamy vanilla milkshake with whipped cream", Price: 149, Image: "https://images.unsplash.com/photo-1579952363873-27d3bfad9c0d?w=300&h=200&fit=crop"},
			},
		},
		{
			ID:         "spice-palace",
			Name:       "Spice Palace",
			Cuisine:    "Indian",
			ThemeColor: "#D4AF37",
			Tables:     15,
			Logo:       "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=200&h=200&fit=crop&crop=center",
			Menu: []MenuItem{
				{ID: "biryani-chicken", Name: "Chicken Biryani", Description: "Aromatic basmati rice with tender chicken and spices", Price: 349, Image: "https://images.unsplash.com/photo-1563379091339-03246963d94c?w=300&h=200&fit=crop"},
				{ID: "curry-premium", Name: "Royal Butter Chicken", Description: "Premium butter chicken with 3D portion visualization", Price: 450, Image: "https://images.unsplash.com/photo-1588166524941-3bf61a9c41db?w=300&h=200&fit=crop", IsPremium: true},
				{ID: "naan-garlic", Name: "Garlic Naan", Description: "Fresh baked naan bread with garlic and herbs", Price: 89, Image: "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?w=300&h=200&fit=crop"},
				{ID: "lassi-mango", Name: "Mango Lassi", Description: "Traditional yogurt drink with fresh mango", Price: 120, Image: "https://images.unsplash.com/photo-1561336313-0bd5e0b27ec8?w=300&h=200&fit=crop"},
			},
		},
		{
			ID:         "ocean-breeze",
			Name:       "Ocean Breeze",
			Cuisine:    "Seafood",
			ThemeColor: "#0077BE",
			Tables:     25,
			Logo:       "https://images.unsplash.com/photo-1559339352-11d035aa65de?w=200&h=200&fit=crop&crop=center",
			Menu: []MenuItem{
				{ID: "salmon-grilled", Name: "Grilled Salmon", Description: "Fresh Atlantic salmon with lemon herbs", Price: 599, Image: "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=300&h=200&fit=crop"},
				{ID: "lobster-premium", Name: "Maine Lobster", Description: "Fresh Maine lobster with AR ingredient breakdown", Price: 899, Image: "https://images.unsplash.com/photo-1559717865-a99cac1c95d8?w=300&h=200&fit=crop", IsPremium: true},
				{ID: "shrimp-scampi", Name: "Shrimp Scampi", Description: "Garlic butter shrimp with pasta", Price: 449, Image: "https://images.unsplash.com/photo-1563379091339-03246963d94c?w=300&h=200&fit=crop"},
				{ID: "soup-clam", Name: "Clam Chowder", Description: "Creamy New England clam chowder", Price: 199, Image: "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=300&h=200&fit=crop"},
			},
		},
		{
			ID:         "pasta-corner",
			Name:       "Pasta Corner",
			Cuisine:    "Italian",
			ThemeColor: "#228B22",
			Tables:     18,
			Logo:       "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=200&h=200&fit=crop&crop=center",
			Menu: []MenuItem{
				{ID: "pasta-carbonara", Name: "Spaghetti Carbonara", Description: "Classic carbonara with pancetta and parmesan", Price: 329, Image: "https://images.unsplash.com/photo-1621996346565-e3dbc353d2e5?w=300&h=200&fit=crop"},
				{ID: "pasta-truffle", Name: "Truffle Pasta", Description: "Premium pasta with black truffle and VR dining experience", Price: 699, Image: "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=300&h=200&fit=crop", IsPremium: true},
				{ID: "lasagna-classic", Name: "Classic Lasagna", Description: "Layers of pasta, meat sauce, and cheese", Price: 399, Image: "https://images.unsplash.com/photo-1574894709920-11b28e7367e3?w=300&h=200&fit=crop"},
				{ID: "tiramisu", Name: "Tiramisu", Description: "Traditional Italian dessert with coffee and mascarpone", Price: 199, Image: "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=300&h=200&fit=crop"},
			},
		},
		{
			ID:         "green-garden",
			Name:       "Green Garden",
			Cuisine:    "Healthy/Vegan",
			ThemeColor: "#32CD32",
			Tables:     12,
			Logo:       "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=200&h=200&fit=crop&crop=center",
			Menu: []MenuItem{
				{ID: "bowl-buddha", Name: "Buddha Bowl", Description: "Quinoa, avocado, chickpeas, and tahini dressing", Price: 279, Image: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=300&h=200&fit=crop"},
				{ID: "smoothie-premium", Name: "Superfood Smoothie", Description: "Premium smoothie with nutritional AR visualization", Price: 349, Image: "https://images.unsplash.com/photo-1553530666-ba11a7da3888?w=300&h=200&fit=crop", IsPremium: true},
				{ID: "salad-kale", Name: "Kale Caesar Salad", Description: "Fresh kale with vegan caesar dressing", Price: 229, Image: "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=300&h=200&fit=crop"},
				{ID: "wrap-veggie", Name: "Veggie Wrap", Description: "Grilled vegetables in whole wheat tortilla", Price: 199, Image: "https://images.unsplash.com/photo-1565299585323-38174c2d8cbd?w=300&h=200&fit=crop"},
			},
		},
	}
}

var PremiumFeatures = []PremiumFeature{
	{Title: "AR Menu Preview", Description: "See exactly how your dish will look before ordering with augmented reality"},
	{Title: "3D Portion Visualization", Description: "Interactive 3D models showing exact portion sizes and presentation"},
	{Title: "Ingredient Breakdown", Description: "Detailed nutritional information and ingredient sourcing with AR overlay"},
	{Title: "VR Dining Experience", Description: "Virtual reality preview of the restaurant ambiance and your table setting"},
}
