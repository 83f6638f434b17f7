package seed

import (
	"EcoMart-Backend/domain"
	"EcoMart-Backend/entities"
	"EcoMart-Backend/pkg/catalog"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

// defaultItems is the starter catalog. Prices are in cents; the impact
// score grades how eco-friendly the item is (higher is better).
var defaultItems = []domain.SeedItem{
	{
		Name:                "Bamboo Toothbrush",
		Description:         "Biodegradable toothbrush with a bamboo handle and charcoal bristles.",
		Price:               450,
		EnvironmentalImpact: 92,
	},
	{
		Name:                "Reusable Water Bottle",
		Description:         "Insulated stainless steel bottle, 750ml, keeps drinks cold for 24 hours.",
		Price:               2200,
		EnvironmentalImpact: 85,
	},
	{
		Name:                "Organic Cotton Tote",
		Description:         "Heavy duty tote bag made from certified organic cotton.",
		Price:               1200,
		EnvironmentalImpact: 78,
	},
	{
		Name:                "Beeswax Food Wraps",
		Description:         "Set of three washable wraps that replace cling film.",
		Price:               1600,
		EnvironmentalImpact: 88,
	},
	{
		Name:                "Solar Power Bank",
		Description:         "10000mAh power bank with a foldable solar panel.",
		Price:               3900,
		EnvironmentalImpact: 64,
	},
	{
		Name:                "Compostable Phone Case",
		Description:         "Plant-based phone case that fully composts within a year.",
		Price:               2500,
		EnvironmentalImpact: 71,
	},
}

// loadItems prefers seed_items.yaml when one is present next to the
// binary, so deployments can ship their own catalog.
func loadItems() []domain.SeedItem {
	file, err := os.ReadFile("seed_items.yaml")
	if err != nil {
		return defaultItems
	}

	var items []domain.SeedItem
	if err := yaml.Unmarshal(file, &items); err != nil {
		fmt.Printf("Error parsing seed_items.yaml, using defaults: %v\n", err)
		return defaultItems
	}
	return items
}

// Seed upserts the starter catalog by item name so repeated startups
// refresh the rows instead of duplicating them.
func Seed(db *gorm.DB) error {
	catalogRepository := catalog.NewCatalogRepository(db)

	for _, seedItem := range loadItems() {
		item := &entities.Item{
			Name:                seedItem.Name,
			Description:         seedItem.Description,
			Price:               seedItem.Price,
			EnvironmentalImpact: seedItem.EnvironmentalImpact,
			ImageURL:            seedItem.ImageURL,
		}
		if err := catalogRepository.UpsertItemByName(context.Background(), item); err != nil {
			return err
		}
	}

	fmt.Println("Catalog seeding complete")
	return nil
}
