package services

import (
	"context"
	"strings"

	"local-booster/models"
)

// StoreClassifier maps a free-text shopping query to the store category
// the nearby search should run against. Implementations must not fail the
// request: when in doubt, StoreTypeGeneralStore.
type StoreClassifier interface {
	Classify(ctx context.Context, query string) (models.StoreType, error)
}

// KeywordStoreClassifier is the offline classifier used outside prod. A
// handful of substring rules covers the common query shapes; everything
// else is a general store.
type KeywordStoreClassifier struct {
}

func NewKeywordStoreClassifier() *KeywordStoreClassifier {
	return &KeywordStoreClassifier{}
}

var keywordRules = []struct {
	keyword   string
	storeType models.StoreType
}{
	{"usb", models.StoreTypeElectronicsStore},
	{"hdmi", models.StoreTypeElectronicsStore},
	{"kabel", models.StoreTypeElectronicsStore},
	{"laptop", models.StoreTypeElectronicsStore},
	{"buch", models.StoreTypeBookStore},
	{"book", models.StoreTypeBookStore},
	{"schuhe", models.StoreTypeShoeStore},
	{"shoes", models.StoreTypeShoeStore},
	{"jacke", models.StoreTypeClothingStore},
	{"shirt", models.StoreTypeClothingStore},
	{"blumen", models.StoreTypeFlorist},
	{"flowers", models.StoreTypeFlorist},
	{"wein", models.StoreTypeWineBar},
	{"fahrrad", models.StoreTypeBicycleStore},
	{"bike", models.StoreTypeBicycleStore},
	{"werkzeug", models.StoreTypeHardwareStore},
	{"möbel", models.StoreTypeFurnitureStore},
	{"schmuck", models.StoreTypeJewelryStore},
	{"apotheke", models.StoreTypePharmacy},
}

func (c *KeywordStoreClassifier) Classify(ctx context.Context, query string) (models.StoreType, error) {
	lowered := strings.ToLower(query)
	for _, rule := range keywordRules {
		if strings.Contains(lowered, rule.keyword) {
			return rule.storeType, nil
		}
	}
	return models.StoreTypeGeneralStore, nil
}
