package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed returns the Larana launch collection.
func Seed() []Product {
	return []Product{
		{
			ID: "1", Name: "Gold Chain Necklace", Category: "Necklace", Subcategory: "Chain",
			Price:       decimal.RequireFromString("129.99"),
			Description: "Elegant gold chain necklace with pendant disc, perfect for everyday wear.",
			Details:     []string{"18k gold plated", "Pendant: 15mm diameter", "Chain length: 18 inches", "Lobster clasp closure"},
			Images:      []string{"/image/img1.png", "/image/img2.png"},
			Featured:    true, InStock: true,
			Materials: []string{"18k Gold Plated", "Stainless Steel"},
			CreatedAt: ts("2023-05-15T10:30:00Z"),
		},
		{
			ID: "2", Name: "Layered Chain Necklace", Category: "Necklace", Subcategory: "Layered",
			Price:       decimal.RequireFromString("159.99"),
			Description: "Stunning layered chain necklace with pendant discs, adds elegance to any outfit.",
			Details:     []string{"18k gold plated", "Multiple pendants on different chains", "Chain lengths: 16, 18 and 20 inches", "Lobster clasp closure"},
			Images:      []string{"/image/img3.png", "/image/img4.png"},
			Featured:    true, InStock: true,
			Materials: []string{"18k Gold Plated", "Brass"},
			CreatedAt: ts("2023-05-20T14:45:00Z"),
		},
		{
			ID: "3", Name: "Twisted Gold Bracelet", Category: "Bracelet", Subcategory: "Bangle",
			Price:       decimal.RequireFromString("99.99"),
			Description: "Sophisticated twisted gold bracelet that adds a touch of luxury to your wrist.",
			Details:     []string{"18k gold plated", "Inner diameter: 2.5 inches", "Width: 6mm", "Toggle clasp"},
			Images:      []string{"/image/img2.png", "/image/img4.png"},
			Featured:    true, InStock: true,
			Materials: []string{"18k Gold Plated", "Brass", "Cubic Zirconia"},
			CreatedAt: ts("2023-06-01T09:15:00Z"),
		},
		{
			ID: "4", Name: "Curved Hoop Earrings", Category: "Earring", Subcategory: "Hoop",
			Price:       decimal.RequireFromString("79.99"),
			Description: "Modern curved hoop earrings that make a bold statement with any look.",
			Details:     []string{"18k gold plated", "Diameter: 30mm", "Post back closure", "Nickel-free"},
			Images:      []string{"/image/img1.png", "/image/img3.png"},
			Featured:    true, InStock: true,
			Materials: []string{"18k Gold Plated", "Stainless Steel"},
			CreatedAt: ts("2023-06-15T11:30:00Z"),
		},
		{
			ID: "5", Name: "Pearl Statement Necklace", Category: "Necklace", Subcategory: "Statement",
			Price:       decimal.RequireFromString("199.99"),
			Description: "Luxurious pearl statement necklace that brings timeless elegance to special occasions.",
			Details:     []string{"Freshwater pearls", "18k gold plated chain", "Length: 16 inches with 2-inch extender", "Lobster clasp closure"},
			Images:      []string{"/image/img3.png", "/image/img2.png"},
			InStock:     true,
			Materials:   []string{"Freshwater Pearls", "18k Gold Plated"},
			CreatedAt:   ts("2023-07-01T15:00:00Z"),
		},
		{
			ID: "6", Name: "Stacking Gold Rings Set", Category: "Ring", Subcategory: "Stacking",
			Price:       decimal.RequireFromString("149.99"),
			Description: "Set of three stacking gold rings, perfect for mixing and matching.",
			Details:     []string{"18k gold plated", "Available sizes: 5-9", "Band width: 2mm each", "Sold as a set of 3"},
			Images:      []string{"/image/img3.png", "/image/img4.png"},
			InStock:     true,
			Materials:   []string{"18k Gold Plated", "Brass"},
			CreatedAt:   ts("2023-07-15T10:30:00Z"),
		},
		{
			ID: "7", Name: "Crystal Tennis Bracelet", Category: "Bracelet", Subcategory: "Tennis",
			Price:       decimal.RequireFromString("189.99"),
			Description: "Dazzling crystal tennis bracelet that adds sparkle to any occasion.",
			Details:     []string{"18k gold plated", "Length: 7 inches with 1-inch extender", "Cubic zirconia crystals", "Box clasp with safety latch"},
			Images:      []string{"/image/img3.png", "/image/img4.png"},
			InStock:     true,
			Materials:   []string{"18k Gold Plated", "Cubic Zirconia"},
			CreatedAt:   ts("2023-08-01T09:45:00Z"),
		},
		{
			ID: "8", Name: "Sapphire Drop Earrings", Category: "Earring", Subcategory: "Drop",
			Price:       decimal.RequireFromString("229.99"),
			Description: "Elegant sapphire drop earrings that add a touch of color to your ensemble.",
			Details:     []string{"18k gold plated", "Length: 1.5 inches", "Lab-created sapphires", "French wire hooks"},
			Images:      []string{"/image/img3.png", "/image/img4.png"},
			InStock:     true,
			Materials:   []string{"18k Gold Plated", "Lab-created Sapphires"},
			CreatedAt:   ts("2023-08-15T14:15:00Z"),
		},
		{
			ID: "9", Name: "Minimalist Bar Necklace", Category: "Necklace", Subcategory: "Pendant",
			Price:       decimal.RequireFromString("89.99"),
			Description: "Simple yet elegant minimalist bar necklace, perfect for layering.",
			Details:     []string{"18k gold plated", "Bar length: 1.5 inches", "Chain length: 18 inches with 2-inch extender", "Spring ring clasp"},
			Images:      []string{"/image/img3.png", "/image/img4.png"},
			InStock:     true,
			Materials:   []string{"18k Gold Plated", "Stainless Steel"},
			CreatedAt:   ts("2023-09-01T11:00:00Z"),
		},
		{
			ID: "10", Name: "Rose Gold Heart Ring", Category: "Ring", Subcategory: "Statement",
			Price:       decimal.RequireFromString("119.99"),
			Description: "Charming rose gold heart ring that symbolizes love and affection.",
			Details:     []string{"Rose gold plated", "Available sizes: A-Z", "Heart dimensions: 10mm x 10mm", "Band width: 2mm"},
			Images:      []string{"/image/img3.png", "/image/img4.png"},
			InStock:     true,
			Materials:   []string{"Rose Gold Plated", "Brass", "Cubic Zirconia"},
			CreatedAt:   ts("2023-09-15T15:30:00Z"),
		},
		{
			ID: "11", Name: "Diamond Stud Earrings", Category: "Earring", Subcategory: "Stud",
			Price:       decimal.RequireFromString("299.99"),
			Description: "Classic diamond stud earrings that never go out of style.",
			Details:     []string{"14k solid gold", "0.25 carat lab-grown diamonds", "4-prong setting", "Push back closure"},
			Images:      []string{"/image/img3.png", "/image/img4.png"},
			InStock:     true,
			Materials:   []string{"14k Solid Gold", "Lab-grown Diamonds"},
			CreatedAt:   ts("2023-10-01T10:00:00Z"),
		},
		{
			ID: "12", Name: "Infinity Charm Bracelet", Category: "Bracelet", Subcategory: "Charm",
			Price:       decimal.RequireFromString("109.99"),
			Description: "Meaningful infinity charm bracelet that represents endless love and possibilities.",
			Details:     []string{"18k gold plated", "Length: 7 inches with 1.5-inch extender", "Infinity charm: 15mm x 8mm", "Lobster clasp closure"},
			Images:      []string{"/image/img3.png", "/image/img4.png"},
			InStock:     true,
			Materials:   []string{"18k Gold Plated", "Stainless Steel"},
			CreatedAt:   ts("2023-10-15T13:45:00Z"),
		},
	}
}
