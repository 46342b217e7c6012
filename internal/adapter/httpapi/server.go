package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/assetbook/backend/internal/usecase/accounts"
	"github.com/assetbook/backend/internal/usecase/catalog"
	"github.com/assetbook/backend/internal/usecase/portfolio"
)

// Server routes HTTP requests to the use case services. The portfolio routes
// are account scoped through the X-Account-ID middleware; accounts and catalog
// are administrative and unscoped.
type Server struct {
	router *chi.Mux
	logger *logrus.Logger

	accountService  *accounts.AccountService
	catalogService  *catalog.AssetMasterService
	categoryService *portfolio.CategoryService
	groupingService *portfolio.GroupingService
	holdingService  *portfolio.HoldingService
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(
	logger *logrus.Logger,
	accountService *accounts.AccountService,
	catalogService *catalog.AssetMasterService,
	categoryService *portfolio.CategoryService,
	groupingService *portfolio.GroupingService,
	holdingService *portfolio.HoldingService,
) *Server {
	s := &Server{
		router:          chi.NewRouter(),
		logger:          logger,
		accountService:  accountService,
		catalogService:  catalogService,
		categoryService: categoryService,
		groupingService: groupingService,
		holdingService:  holdingService,
	}
	s.initRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) initRoutes() {
	s.router.Use(s.requestLogger)

	s.router.Get("/alive", func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, r, map[string]string{"status": "ok"}, http.StatusOK)
	})

	s.router.Route("/api/v1/accounts", func(r chi.Router) {
		r.Post("/", s.createAccount)
		r.Get("/", s.listAccounts)
		r.Get("/{id}", s.getAccount)
		r.Put("/{id}", s.updateAccount)
		r.Delete("/{id}", s.deleteAccount)
	})

	s.router.Route("/api/v1/catalog/assets", func(r chi.Router) {
		r.Post("/", s.createCatalogAsset)
		r.Get("/", s.listCatalogAssets)
		r.Get("/{id}", s.getCatalogAsset)
		r.Put("/{id}", s.updateCatalogAsset)
		r.Delete("/{id}", s.deleteCatalogAsset)
	})

	s.router.Route("/api/v1/portfolio", func(r chi.Router) {
		r.Use(s.requireAccount)

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", s.createCategory)
			r.Get("/", s.listCategories)
			r.Get("/{id}", s.getCategory)
			r.Put("/{id}", s.updateCategory)
			r.Delete("/{id}", s.deleteCategory)
		})

		r.Route("/groupings", func(r chi.Router) {
			r.Post("/", s.createGrouping)
			r.Get("/", s.listGroupings)
			r.Get("/{id}", s.getGrouping)
			r.Put("/{id}", s.updateGrouping)
			r.Delete("/{id}", s.deleteGrouping)
		})

		r.Route("/assets", func(r chi.Router) {
			r.Post("/", s.createHolding)
			r.Get("/", s.listHoldings)
			r.Get("/{id}", s.getHolding)
			r.Put("/{id}", s.updateHolding)
			r.Delete("/{id}", s.deleteHolding)
		})
	})
}

// NewHTTPServer wraps the server in an http.Server with sane timeouts.
func NewHTTPServer(server *Server, port string) *http.Server {
	return &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
}
