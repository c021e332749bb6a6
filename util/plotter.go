package util

import (
	"fmt"
	"log"
	"os"

	"local-booster/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// PlotPlaces generates an HTML file rendering the fetched places around
// the user location as a scatter map. Handy for eyeballing a ranked
// result set.
func PlotPlaces(placeSet []models.Place, origin *models.LatLng) {
	points := make([]opts.GeoData, 0, len(placeSet)+1)
	if origin != nil {
		points = append(points, opts.GeoData{Name: "You", Value: []float64{origin.Lng, origin.Lat}})
	}
	for _, p := range placeSet {
		points = append(points, opts.GeoData{Name: p.Name, Value: []float64{p.Lon, p.Lat}})
	}

	// Create a new Geo chart.
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Nearby Places Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true), // Disables interactivity on the map background.
		}),
	)

	geo.AddSeries("Places", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	// Create an HTML file to render the chart.
	f, err := os.Create("nearby_places_map.html")
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := geo.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Nearby places map generated: nearby_places_map.html")
}
