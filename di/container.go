package di

import (
	"context"
	"fmt"
	"local-booster/api"
	"local-booster/api/google"
	"local-booster/api/places"
	"local-booster/browser"
	"local-booster/config"
	redisdao "local-booster/dao/redis"
	"local-booster/db"
	"local-booster/models"
	"local-booster/orchestrator"
	"local-booster/overlay"
	"local-booster/progression"
	"local-booster/server"
	"local-booster/server/handlers"
	"local-booster/watcher"
	"log"

	services "local-booster/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient            db.RedisClient
	RedisPlaceDao          *redisdao.RedisPlaceDAO
	GooglePlacesAPI        google.GooglePlacesAPI
	StoreClassifier        services.StoreClassifier
	PlaceService           *services.PlaceService
	PlaceHandler           *handlers.PlaceHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	LocalBoosterHttpServer *server.LocalBoosterHttpServer

	PlacesAPI         places.PlacesAPI
	Page              *browser.SimPage
	ProgressionStore  progression.Store
	StateMachine      *overlay.StateMachine
	DataOrchestrator  *orchestrator.DataOrchestrator
	Controller        *overlay.Controller
	NavigationWatcher *watcher.NavigationWatcher
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using mock redis client")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.REDIS_DB_ADDRESS,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Initialize Redis Place DAO
	redisPlaceDao := redisdao.NewRedisPlaceDAO(redisClient)

	// Initialize the Google Places client
	searchClient := api.NewHTTPClient(config.GOOGLE_PLACES_ENDPOINT_BASE)
	detailsClient := api.NewHTTPClient(config.GOOGLE_PLACE_DETAILS_ENDPOINT_BASE)
	googleAPI := google.NewGooglePlacesClient(searchClient, detailsClient, config.GoogleAPIKey())

	// Initialize the store classifier - Gemini in prod, keywords otherwise
	var classifier services.StoreClassifier
	if env != "prod" {
		classifier = services.NewKeywordStoreClassifier()
		log.Printf("Using keyword store classifier")
	} else {
		geminiClassifier, err := services.NewGeminiStoreClassifier(ctx, config.GoogleAPIKey())
		if err != nil {
			log.Printf("Gemini classifier unavailable, falling back to keywords: %v", err)
			classifier = services.NewKeywordStoreClassifier()
		} else {
			classifier = geminiClassifier
		}
	}

	// Initialize service layer
	placeService := services.NewPlaceService(redisPlaceDao, googleAPI)

	// Initialize place handler
	placeHandler := handlers.NewPlaceHandler(classifier, placeService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(placeHandler, muxRouter)

	// initialize the local booster server
	localBoosterHttpServer := server.NewLocalBoosterHttpServer(router, muxRouter, config.SERVER_ADDRESS)

	// Initialize the overlay side: places API client, page, stores
	var placesAPI places.PlacesAPI
	if env != "prod" {
		placesAPI = places.NewPlacesApiClientMock()
		log.Printf("Using mock places api")
	} else {
		placesAPI = places.NewPlacesApiClient(api.NewHTTPClient(config.PLACES_ENDPOINT_BASE_V1))
	}

	var progressionStore progression.Store
	if env != "prod" {
		progressionStore = progression.NewMemoryStore()
	} else {
		progressionStore = progression.NewRedisStore(redisClient)
	}

	page := browser.NewSimPage("about:blank", "<html><head></head><body></body></html>")
	locator := overlay.FixedLocator{Loc: &models.LatLng{
		Lat: config.FALLBACK_ORIGIN_LAT,
		Lng: config.FALLBACK_ORIGIN_LON,
	}}

	stateMachine := overlay.NewStateMachine(page, progressionStore, locator, nil)
	dataOrchestrator := orchestrator.NewDataOrchestrator(placesAPI)
	controller := overlay.NewController(page, stateMachine, dataOrchestrator, locator)
	navigationWatcher := watcher.NewNavigationWatcher(page, config.NAVIGATION_POLL_INTERVAL, controller.RunCycle)

	return &Container{
		RedisClient:            redisClient,
		RedisPlaceDao:          redisPlaceDao,
		GooglePlacesAPI:        googleAPI,
		StoreClassifier:        classifier,
		PlaceService:           placeService,
		PlaceHandler:           placeHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		LocalBoosterHttpServer: localBoosterHttpServer,
		PlacesAPI:              placesAPI,
		Page:                   page,
		ProgressionStore:       progressionStore,
		StateMachine:           stateMachine,
		DataOrchestrator:       dataOrchestrator,
		Controller:             controller,
		NavigationWatcher:      navigationWatcher,
	}
}
