package overlay

import (
	"fmt"

	"local-booster/config"
	"local-booster/models"
)

// PreviewURL builds the map preview URL. With origin and destination it is
// a walking-directions preview; without a destination it shows the origin
// as a single point. A nil origin falls back to the fixed reference
// location so the preview always renders something sensible.
func PreviewURL(origin, destination *models.LatLng) string {
	if origin == nil {
		origin = &models.LatLng{
			Lat: config.FALLBACK_ORIGIN_LAT,
			Lng: config.FALLBACK_ORIGIN_LON,
		}
	}
	if destination == nil {
		return fmt.Sprintf("https://www.google.com/maps?q=%.6f,%.6f", origin.Lat, origin.Lng)
	}
	return fmt.Sprintf("https://www.google.com/maps?saddr=%.6f,%.6f&daddr=%.6f,%.6f&dirflg=w",
		origin.Lat, origin.Lng, destination.Lat, destination.Lng)
}
