package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// PlaceRoutes is the handler surface the router needs.
type PlaceRoutes interface {
	GetPlaces(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	placeHandler PlaceRoutes
	router       *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	placeHandler PlaceRoutes,
	router *mux.Router) *Router {
	return &Router{
		placeHandler: placeHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?query={query}&lat={latitude(float)}&lon={longitude(float)}
	r.router.HandleFunc("/v1/places", r.placeHandler.GetPlaces).Methods("GET")

	r.router.HandleFunc("/ping", r.placeHandler.Ping).Methods("GET")
}
