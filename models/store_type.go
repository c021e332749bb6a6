package models

// StoreType is the Google Places category a shopping query is classified
// into before the nearby search runs.
type StoreType string

const (
	StoreTypeCarDealer                StoreType = "car_dealer"
	StoreTypeGasStation               StoreType = "gas_station"
	StoreTypeArtGallery               StoreType = "art_gallery"
	StoreTypeLibrary                  StoreType = "library"
	StoreTypeWineBar                  StoreType = "wine_bar"
	StoreTypeDrugstore                StoreType = "drugstore"
	StoreTypePharmacy                 StoreType = "pharmacy"
	StoreTypeFlorist                  StoreType = "florist"
	StoreTypeStorage                  StoreType = "storage"
	StoreTypeTailor                   StoreType = "tailor"
	StoreTypeTourAgency               StoreType = "tour_agency"
	StoreTypeTouristInformationCenter StoreType = "tourist_information_center"
	StoreTypeTravelAgency             StoreType = "travel_agency"
	StoreTypeBicycleStore             StoreType = "bicycle_store"
	StoreTypeBookStore                StoreType = "book_store"
	StoreTypeClothingStore            StoreType = "clothing_store"
	StoreTypeConvenienceStore         StoreType = "convenience_store"
	StoreTypeDepartmentStore          StoreType = "department_store"
	StoreTypeElectronicsStore         StoreType = "electronics_store"
	StoreTypeFurnitureStore           StoreType = "furniture_store"
	StoreTypeGreengrocer              StoreType = "grocery_or_supermarket"
	StoreTypeHardwareStore            StoreType = "hardware_store"
	StoreTypeHomeGoodsStore           StoreType = "home_goods_store"
	StoreTypeJewelryStore             StoreType = "jewelry_store"
	StoreTypeLiquorStore              StoreType = "liquor_store"
	StoreTypePetStore                 StoreType = "pet_store"
	StoreTypeShoeStore                StoreType = "shoe_store"
	StoreTypeShoppingMall             StoreType = "shopping_mall"
	StoreTypeSportingGoodsStore       StoreType = "sporting_goods_store"
	StoreTypeGeneralStore             StoreType = "store"
	StoreTypeSupermarket              StoreType = "supermarket"
)

// AllStoreTypes lists every classifiable category, in the order the
// classifier prompt presents them.
var AllStoreTypes = []StoreType{
	StoreTypeCarDealer, StoreTypeGasStation, StoreTypeArtGallery,
	StoreTypeLibrary, StoreTypeWineBar, StoreTypeDrugstore,
	StoreTypePharmacy, StoreTypeFlorist, StoreTypeStorage,
	StoreTypeTailor, StoreTypeTourAgency, StoreTypeTouristInformationCenter,
	StoreTypeTravelAgency, StoreTypeBicycleStore, StoreTypeBookStore,
	StoreTypeClothingStore, StoreTypeConvenienceStore, StoreTypeDepartmentStore,
	StoreTypeElectronicsStore, StoreTypeFurnitureStore, StoreTypeGreengrocer,
	StoreTypeHardwareStore, StoreTypeHomeGoodsStore, StoreTypeJewelryStore,
	StoreTypeLiquorStore, StoreTypePetStore, StoreTypeShoeStore,
	StoreTypeShoppingMall, StoreTypeSportingGoodsStore, StoreTypeGeneralStore,
	StoreTypeSupermarket,
}

// IsValid reports whether s is one of the known store types.
func (s StoreType) IsValid() bool {
	for _, t := range AllStoreTypes {
		if s == t {
			return true
		}
	}
	return false
}
