// internal/domain/catalog/data.go
package catalog

import "github.com/shopspring/decimal"

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// seedProducts returns the storefront's static product data
func seedProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "Premium Wireless Headphones",
			Description:   "Experience unparalleled sound quality with our premium wireless headphones. Featuring active noise cancellation, 30-hour battery life, and premium comfort for extended listening sessions.",
			Price:         dec("299.99"),
			DiscountPrice: decPtr("249.99"),
			Rating:        4.8,
			ReviewCount:   124,
			Images: []string{
				"https://images.pexels.com/photos/577769/pexels-photo-577769.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Category: "Electronics",
			Tags:     []string{"wireless", "headphones", "audio", "premium"},
			InStock:  true,
			Features: []string{
				"Active Noise Cancellation",
				"30-hour battery life",
				"Premium comfort materials",
				"Voice assistant compatible",
				"Bluetooth 5.2 connectivity",
			},
			Specifications: map[string]string{
				"Brand":        "SoundMaster",
				"Model":        "WH-1000X",
				"Battery Life": "30 hours",
				"Connectivity": "Bluetooth 5.2",
				"Weight":       "250g",
				"Warranty":     "2 years",
			},
		},
		{
			ID:          "2",
			Name:        "Ultra-light Laptop",
			Description: "Our thinnest and lightest laptop yet, perfect for professionals on the go. Featuring a powerful processor, stunning display, and all-day battery life.",
			Price:       dec("1299.99"),
			Rating:      4.6,
			ReviewCount: 89,
			Images: []string{
				"https://images.pexels.com/photos/18105/pexels-photo.jpg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/2528118/pexels-photo-2528118.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Category: "Electronics",
			Tags:     []string{"laptop", "ultrabook", "professional", "lightweight"},
			InStock:  true,
			Features: []string{
				"Intel Core i7 processor",
				"16GB RAM",
				"512GB SSD storage",
				"14\" 4K display",
				"Fingerprint reader",
			},
			Specifications: map[string]string{
				"Brand":    "TechPro",
				"Model":    "UltraBook Pro",
				"RAM":      "16GB",
				"Storage":  "512GB SSD",
				"Display":  "14\" 4K IPS",
				"Weight":   "1.2kg",
				"Warranty": "1 year",
			},
		},
		{
			ID:            "3",
			Name:          "Smart Fitness Watch",
			Description:   "Track your fitness goals with precision using our advanced smart watch. Monitor heart rate, sleep patterns, and activities with a beautiful display and long battery life.",
			Price:         dec("199.99"),
			DiscountPrice: decPtr("179.99"),
			Rating:        4.7,
			ReviewCount:   203,
			Images: []string{
				"https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/4482936/pexels-photo-4482936.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Category: "Wearables",
			Tags:     []string{"fitness", "smartwatch", "health", "wearable"},
			InStock:  true,
			Features: []string{
				"Heart rate monitoring",
				"Sleep tracking",
				"GPS tracking",
				"Water resistant to 50m",
				"7-day battery life",
			},
			Specifications: map[string]string{
				"Brand":            "FitTech",
				"Model":            "Pulse Pro",
				"Display":          "1.4\" AMOLED",
				"Battery":          "7 days typical use",
				"Water Resistance": "50m",
				"Warranty":         "1 year",
			},
		},
		{
			ID:          "4",
			Name:        "Designer Leather Bag",
			Description: "Handcrafted premium leather bag that combines style with functionality. Perfect for work or casual outings with multiple compartments and durable construction.",
			Price:       dec("149.99"),
			Rating:      4.5,
			ReviewCount: 67,
			Images: []string{
				"https://images.pexels.com/photos/1152077/pexels-photo-1152077.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/6044227/pexels-photo-6044227.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Category: "Fashion",
			Tags:     []string{"bag", "leather", "designer", "accessory"},
			InStock:  true,
			Features: []string{
				"Genuine full-grain leather",
				"Multiple compartments",
				"Adjustable shoulder strap",
				"Premium metal hardware",
			},
			Specifications: map[string]string{
				"Brand":      "LuxLeather",
				"Model":      "Urban Classic",
				"Material":   "Full-grain leather",
				"Dimensions": "30cm × 25cm × 10cm",
				"Weight":     "0.8kg",
			},
		},
		{
			ID:            "5",
			Name:          "Smart Home Speaker",
			Description:   "Transform your home with our intelligent speaker system. Voice control your music, get answers to questions, control smart home devices, and more.",
			Price:         dec("129.99"),
			DiscountPrice: decPtr("99.99"),
			Rating:        4.4,
			ReviewCount:   156,
			Images: []string{
				"https://images.pexels.com/photos/8088458/pexels-photo-8088458.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/4219883/pexels-photo-4219883.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Category: "Smart Home",
			Tags:     []string{"speaker", "smart home", "voice assistant", "audio"},
			InStock:  true,
			Features: []string{
				"Voice control",
				"Smart home integration",
				"High-quality audio",
				"Multi-room synchronization",
			},
			Specifications: map[string]string{
				"Brand":        "SmartLife",
				"Model":        "HomeHub 2",
				"Connectivity": "WiFi, Bluetooth",
				"Microphones":  "6-mic array",
				"Warranty":     "1 year",
			},
		},
		{
			ID:          "6",
			Name:        "Professional Camera Kit",
			Description: "Capture stunning photos and videos with our professional-grade camera kit. Includes camera body, two lenses, and essential accessories for photographers of all levels.",
			Price:       dec("899.99"),
			Rating:      4.9,
			ReviewCount: 42,
			Images: []string{
				"https://images.pexels.com/photos/243757/pexels-photo-243757.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				"https://images.pexels.com/photos/1787220/pexels-photo-1787220.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			},
			Category: "Photography",
			Tags:     []string{"camera", "photography", "professional", "kit"},
			InStock:  false,
			Features: []string{
				"24.2MP sensor",
				"4K video recording",
				"Dual lens kit (18-55mm, 55-200mm)",
				"Weather-sealed body",
			},
			Specifications: map[string]string{
				"Brand":    "OptiView",
				"Model":    "ProShot X2",
				"Sensor":   "24.2MP APS-C CMOS",
				"Video":    "4K/30fps, 1080p/120fps",
				"Weight":   "680g (body only)",
				"Warranty": "2 years",
			},
		},
	}
}

// seedReviews returns the static customer reviews
func seedReviews() []Review {
	return []Review{
		{
			ID:        "101",
			ProductID: "1",
			UserID:    "user1",
			UserName:  "Michael T.",
			Rating:    5,
			Title:     "Best headphones I've ever owned",
			Comment:   "The sound quality is incredible and the noise cancellation works perfectly even in noisy environments. Battery life is as advertised - I get around 28-30 hours on a single charge. Extremely comfortable for long listening sessions too.",
			Date:      "2023-08-15",
			Verified:  true,
		},
		{
			ID:        "102",
			ProductID: "1",
			UserID:    "user2",
			UserName:  "Sarah J.",
			Rating:    4,
			Title:     "Great sound, slightly tight fit",
			Comment:   "The sound quality is excellent and I love the noise cancellation feature. My only complaint is that they feel a bit tight on my head after a few hours. Otherwise, they're perfect!",
			Date:      "2023-07-22",
			Verified:  true,
		},
		{
			ID:        "103",
			ProductID: "1",
			UserID:    "user3",
			UserName:  "David L.",
			Rating:    5,
			Title:     "Worth every penny",
			Comment:   "I was hesitant to spend this much on headphones, but after using these for a month, I can confidently say they're worth every penny. The sound is crisp, the ANC is effective, and they're comfortable for all-day wear.",
			Date:      "2023-09-05",
			Verified:  true,
		},
		{
			ID:        "201",
			ProductID: "2",
			UserID:    "user4",
			UserName:  "Emma R.",
			Rating:    5,
			Title:     "Perfect for business travel",
			Comment:   "This laptop has been my companion on multiple business trips, and it has exceeded my expectations. Lightweight, powerful, and with a battery that lasts through long workdays. The display is gorgeous too!",
			Date:      "2023-08-30",
			Verified:  true,
		},
		{
			ID:        "202",
			ProductID: "2",
			UserID:    "user5",
			UserName:  "Jason M.",
			Rating:    4,
			Title:     "Great performance but runs warm",
			Comment:   "Performance is excellent for coding and multitasking. My only issue is that it can get quite warm during intensive tasks. Otherwise, it's been a reliable machine for my work.",
			Date:      "2023-09-10",
			Verified:  true,
		},
		{
			ID:        "301",
			ProductID: "3",
			UserID:    "user6",
			UserName:  "Laura T.",
			Rating:    5,
			Title:     "Transformed my fitness routine",
			Comment:   "This watch has completely transformed how I approach fitness. The tracking is accurate, the battery lasts for days, and the app integration is seamless. Highly recommend for anyone serious about fitness.",
			Date:      "2023-07-15",
			Verified:  true,
		},
		{
			ID:        "302",
			ProductID: "3",
			UserID:    "user7",
			UserName:  "Carlos P.",
			Rating:    4,
			Title:     "Great for running, swimming needs improvement",
			Comment:   "As a runner, I find this watch perfect for tracking my routes and heart rate. The swimming tracking isn't as accurate as I'd like, but overall, it's a great fitness companion.",
			Date:      "2023-08-22",
			Verified:  true,
		},
	}
}
