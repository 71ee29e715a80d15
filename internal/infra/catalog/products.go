package catalog

import "stylemart/internal/domain/entity"

// products is the seeded catalog. Prices are whole currency units.
var products = []entity.Product{
	{
		ID: "m1", Slug: "classic-oxford-shirt", Name: "Classic Oxford Shirt",
		Category: "Shirts", Mode: entity.ModeMen, Price: 1499,
		Rating: 4.5, Reviews: 128, Image: "/images/men/classic-oxford-shirt.jpg",
		Sizes: []string{"S", "M", "L", "XL", "XXL"}, Colors: []string{"White", "Blue", "Black"},
		Description: "A timeless button-down oxford in breathable cotton.",
	},
	{
		ID: "m2", Slug: "slim-fit-chinos", Name: "Slim Fit Chinos",
		Category: "Trousers", Mode: entity.ModeMen, Price: 1299, OriginalPrice: 1899, Discount: 32,
		Rating: 4.3, Reviews: 86, Image: "/images/men/slim-fit-chinos.jpg",
		Sizes: []string{"30", "32", "34", "36"}, Colors: []string{"Khaki", "Navy", "Olive"},
		Description: "Tailored chinos with a touch of stretch for all-day comfort.",
	},
	{
		ID: "m3", Slug: "denim-jacket-men", Name: "Washed Denim Jacket",
		Category: "Jackets", Mode: entity.ModeMen, Price: 2499,
		Rating: 4.7, Reviews: 201, Image: "/images/men/denim-jacket.jpg",
		Sizes: []string{"M", "L", "XL"}, Colors: []string{"Indigo", "Black"},
		Description: "Heavyweight denim jacket with a lived-in stone wash.",
	},
	{
		ID: "m4", Slug: "graphic-tee-men", Name: "Graphic Print T-Shirt",
		Category: "T-Shirts", Mode: entity.ModeMen, Price: 599, OriginalPrice: 799, Discount: 25,
		Rating: 4.1, Reviews: 342, Image: "/images/men/graphic-tee.jpg",
		Sizes: []string{"S", "M", "L", "XL"}, Colors: []string{"White", "Grey", "Black"},
		Description: "Soft combed-cotton tee with an original print.",
	},
	{
		ID: "w1", Slug: "floral-midi-dress", Name: "Floral Midi Dress",
		Category: "Dresses", Mode: entity.ModeWomen, Price: 1899,
		Rating: 4.6, Reviews: 167, Image: "/images/women/floral-midi-dress.jpg",
		Sizes: []string{"XS", "S", "M", "L"}, Colors: []string{"Blush", "Sage"},
		Description: "Flowing midi dress in a hand-drawn floral print.",
	},
	{
		ID: "w2", Slug: "high-rise-jeans", Name: "High-Rise Skinny Jeans",
		Category: "Jeans", Mode: entity.ModeWomen, Price: 1599, OriginalPrice: 2199, Discount: 27,
		Rating: 4.4, Reviews: 289, Image: "/images/women/high-rise-jeans.jpg",
		Sizes: []string{"26", "28", "30", "32"}, Colors: []string{"Light Blue", "Dark Blue", "Black"},
		Description: "Sculpting high-rise denim with recovery stretch.",
	},
	{
		ID: "w3", Slug: "knit-cardigan", Name: "Chunky Knit Cardigan",
		Category: "Knitwear", Mode: entity.ModeWomen, Price: 2199,
		Rating: 4.8, Reviews: 94, Image: "/images/women/knit-cardigan.jpg",
		Sizes: []string{"S", "M", "L"}, Colors: []string{"Cream", "Rust", "Charcoal"},
		Description: "Oversized cable-knit cardigan for layered looks.",
	},
	{
		ID: "w4", Slug: "satin-blouse", Name: "Satin Wrap Blouse",
		Category: "Tops", Mode: entity.ModeWomen, Price: 999, OriginalPrice: 1399, Discount: 29,
		Rating: 4.2, Reviews: 121, Image: "/images/women/satin-blouse.jpg",
		Sizes: []string{"XS", "S", "M", "L", "XL"}, Colors: []string{"Champagne", "Emerald", "Black"},
		Description: "Fluid satin blouse with a flattering wrap front.",
	},
	{
		ID: "k1", Slug: "dino-hoodie", Name: "Dino Print Hoodie",
		Category: "Hoodies", Mode: entity.ModeKids, Price: 799,
		Rating: 4.9, Reviews: 210, Image: "/images/kids/dino-hoodie.jpg",
		Sizes: []string{"4-5Y", "6-7Y", "8-9Y", "10-11Y"}, Colors: []string{"Green", "Navy"},
		Description: "Cozy fleece hoodie with a roaring dinosaur print.",
	},
	{
		ID: "k2", Slug: "rainbow-leggings", Name: "Rainbow Stripe Leggings",
		Category: "Leggings", Mode: entity.ModeKids, Price: 449, OriginalPrice: 599, Discount: 25,
		Rating: 4.5, Reviews: 154, Image: "/images/kids/rainbow-leggings.jpg",
		Sizes: []string{"2-3Y", "4-5Y", "6-7Y"}, Colors: []string{"Multi"},
		Description: "Stretchy cotton leggings in playful rainbow stripes.",
	},
	{
		ID: "k3", Slug: "cargo-shorts-kids", Name: "Adventure Cargo Shorts",
		Category: "Shorts", Mode: entity.ModeKids, Price: 649,
		Rating: 4.3, Reviews: 77, Image: "/images/kids/cargo-shorts.jpg",
		Sizes: []string{"4-5Y", "6-7Y", "8-9Y"}, Colors: []string{"Khaki", "Grey"},
		Description: "Durable cargo shorts with pockets for every treasure.",
	},
	{
		ID: "k4", Slug: "puffer-jacket-kids", Name: "Padded Puffer Jacket",
		Category: "Jackets", Mode: entity.ModeKids, Price: 1599, OriginalPrice: 1999, Discount: 20,
		Rating: 4.6, Reviews: 63, Image: "/images/kids/puffer-jacket.jpg",
		Sizes: []string{"4-5Y", "6-7Y", "8-9Y", "10-11Y"}, Colors: []string{"Red", "Blue"},
		Description: "Lightweight warmth with a water-repellent shell.",
	},
}
