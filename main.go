package main

import (
	"fmt"
	"log"
	"time"

	"local-booster/api/places"
	"local-booster/config"
	"local-booster/db"
	"local-booster/di"
	"local-booster/models"
	"local-booster/util"
)

func testRedisClient(redisClient db.RedisClient) db.RedisClient {
	// Set a key-value pair
	if err := redisClient.Set("mykey", "myvalue"); err != nil {
		log.Fatalf("Failed to set key: %v", err)
	}

	// Get the value for the key
	val, err := redisClient.Get("mykey")
	if err != nil {
		log.Fatalf("Failed to get key: %v", err)
	}
	fmt.Printf("mykey: %s\n", val)

	return redisClient
}

func testPlacesAPIClient(placesAPI places.PlacesAPI) {
	log.Println("Running: testPlacesAPIClient")
	response, err := placesAPI.GetPlaces("usb_cable", &models.LatLng{
		Lat: config.FALLBACK_ORIGIN_LAT,
		Lng: config.FALLBACK_ORIGIN_LON,
	})
	if err != nil {
		log.Println("Error while running testPlacesAPIClient: ", err)
		return
	}

	util.PrintGetPlacesResponsePartially(response)

	if response.Data != nil {
		util.PlotPlaces(response.Data.Places, &models.LatLng{
			Lat: config.FALLBACK_ORIGIN_LAT,
			Lng: config.FALLBACK_ORIGIN_LON,
		})
	}
}

// testShoppingNavigation drives the simulated page through a shopping
// search and prints whether the overlay came up.
func testShoppingNavigation(container *di.Container) {
	log.Println("Running: testShoppingNavigation")
	container.Page.Load(
		"https://www.google.com/search?q=usb+cable&tbm=shop",
		"<html><head></head><body><div id=\"search\"></div></body></html>",
	)

	// Give the watcher a couple of poll intervals to pick the URL up.
	time.Sleep(3 * config.NAVIGATION_POLL_INTERVAL)

	state := container.StateMachine.State()
	log.Printf("Overlay presence: %v, phase: %v, places: %d",
		state.Presence, state.Phase(), len(state.Places))
}

func main() {
	container := di.NewContainer("prod")

	// testRedisClient(container.RedisClient)
	// testPlacesAPIClient(container.PlacesAPI)
	// testShoppingNavigation(container)

	fmt.Println("starting navigation watcher!")
	container.NavigationWatcher.Start()

	fmt.Println("starting server!")
	container.LocalBoosterHttpServer.Start()
	fmt.Println("server stopped!")
}
