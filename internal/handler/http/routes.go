package http

import (
	"net/http"

	"github.com/buckylist/bucky/internal/utils"
	"github.com/buckylist/bucky/models"
	"github.com/go-chi/chi/v5"
)

// apiPrefix is the versioned base path of the resource API. Location values
// in create/update responses are built against it.
const apiPrefix = "/api/v1.0"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecover)

	router.Route(apiPrefix, func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
		})

		// resource routes behind the auth gate
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/bucketlists", func(r chi.Router) {
				r.Get("/", h.listBucketLists)
				r.Post("/", h.createBucketList)

				r.Route("/{bucketlistID}", func(r chi.Router) {
					r.Get("/", h.getBucketList)
					r.Put("/", h.updateBucketList)
					r.Delete("/", h.deleteBucketList)

					r.Route("/items", func(r chi.Router) {
						r.Get("/", h.listItems)
						r.Post("/", h.createItem)
						r.Get("/{itemID}", h.getItem)
						r.Put("/{itemID}", h.updateItem)
						r.Delete("/{itemID}", h.deleteItem)
					})
				})
			})
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.ErrorResponse{Error: "not found", Message: "Resource not found."}, http.StatusNotFound)
	})

	return router
}
