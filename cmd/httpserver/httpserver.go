// Package httpserver manages server creation and api routing.
package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/engine"
	"github.com/go-petr/pet-ledger/internal/ledgerdelivery"
	"github.com/go-petr/pet-ledger/internal/ledgerservice"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

// Server holds the ledger, handlers router and configuration.
type Server struct {
	Ledger *ledgerservice.Service
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with an empty ledger and routes.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	ledgerService := ledgerservice.New(engine.New(), engine.Options{Strict: config.StrictParse})
	ledgerHandler := ledgerdelivery.NewHandler(ledgerService)

	router := gin.New()

	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.Recovery())

	router.POST("/events", ledgerHandler.CreateEvent)
	router.POST("/events/csv", ledgerHandler.ReplayCSV)

	router.GET("/accounts", ledgerHandler.List)
	router.GET("/accounts/:client", ledgerHandler.Get)

	if err := ledgerdelivery.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("cannot register validators: %w", err)
	}

	server := &Server{
		Ledger: ledgerService,
		Engine: router,
		Config: config,
	}

	return server, nil
}
