package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"uzbekistan/internal/cache"
	"uzbekistan/internal/config"
	"uzbekistan/internal/division"
	"uzbekistan/internal/geodb"
	"uzbekistan/internal/logging"
	"uzbekistan/internal/registry"
)

// Module is the registry module name the division endpoints live under.
const Module = "divisions"

var registerOnce sync.Once

// ensureRegistered installs the endpoint descriptors. Registration happens
// once per process; Resolve decides per configuration which of them mount.
func ensureRegistered() {
	registerOnce.Do(func() {
		registry.Register(Module,
			registry.Descriptor{Name: "region", Model: division.EntityRegion, Path: "/api/regions", RouteName: "region-list"},
			registry.Descriptor{Name: "district", Model: division.EntityDistrict, Path: "/api/districts", RouteName: "district-list"},
			registry.Descriptor{Name: "village", Model: division.EntityVillage, Path: "/api/villages", RouteName: "village-list"},
		)
	})
}

// Server mounts the active division endpoints and a health probe.
type Server struct {
	cfg    *config.Config
	store  *geodb.Store
	cache  *cache.Cache
	logger *slog.Logger

	handler  http.Handler
	listener net.Listener
	server   *http.Server
}

// NewServer resolves the endpoint registry against cfg and builds the HTTP
// surface. Endpoints whose view or model is disabled are simply not mounted.
func NewServer(cfg *config.Config, store *geodb.Store, responseCache *cache.Cache, logger *slog.Logger) (*Server, error) {
	ensureRegistered()

	srv := &Server{cfg: cfg, store: store, cache: responseCache, logger: logger}

	descriptors, err := registry.Resolve(cfg, Module, registry.CategoryViews)
	if err != nil {
		return nil, fmt.Errorf("resolve endpoints: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", srv.handleHealth)
	for _, desc := range descriptors {
		switch desc.Model {
		case division.EntityRegion:
			mux.HandleFunc(desc.Path, srv.handleRegions)
		case division.EntityDistrict:
			mux.HandleFunc(desc.Path, srv.handleDistricts)
		case division.EntityVillage:
			mux.HandleFunc(desc.Path, srv.handleVillages)
		}
		srv.log().Debug("endpoint mounted",
			logging.String("route", desc.RouteName),
			logging.String("path", desc.Path))
	}

	srv.handler = srv.withRequestID(mux)
	srv.server = &http.Server{
		Handler:           srv.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Handler exposes the routed handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start binds the configured address and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	bind := strings.TrimSpace(s.cfg.Server.Bind)
	listener, err := net.Listen("tcp", bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log().Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.log().Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Stop shuts the server down, waiting briefly for in-flight requests.
func (s *Server) Stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

// Addr returns the bound address after Start, or empty before it.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		reqLogger := s.log().With(logging.String("request_id", requestID))
		r = r.WithContext(logging.WithContext(r.Context(), reqLogger))
		start := time.Now()
		next.ServeHTTP(w, r)
		reqLogger.Debug("request served",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Duration("elapsed", time.Since(start)))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	cacheState := "disabled"
	if s.cache.Enabled() {
		cacheState = "ok"
		if err := s.cache.Check(r.Context()); err != nil {
			s.writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Cache: err.Error()})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Cache: cacheState})
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	if !s.gate(w, r, division.EntityRegion) {
		return
	}
	s.serveCached(w, r, "regions", func(ctx context.Context) (any, error) {
		regions, err := s.store.ListRegions(ctx)
		if err != nil {
			return nil, err
		}
		query := strings.TrimSpace(r.URL.Query().Get("name"))
		payload := RegionListResponse{Regions: []Region{}}
		for _, region := range regions {
			if query != "" && !region.MatchesName(query) {
				continue
			}
			payload.Regions = append(payload.Regions, fromRegion(region))
		}
		payload.Count = len(payload.Regions)
		return payload, nil
	})
}

func (s *Server) handleDistricts(w http.ResponseWriter, r *http.Request) {
	if !s.gate(w, r, division.EntityDistrict) {
		return
	}
	regionID, ok := s.parseIDParam(w, r, "region_id")
	if !ok {
		return
	}
	s.serveCached(w, r, "districts", func(ctx context.Context) (any, error) {
		districts, err := s.store.ListDistricts(ctx, geodb.DistrictFilter{RegionID: regionID})
		if err != nil {
			return nil, err
		}
		query := strings.TrimSpace(r.URL.Query().Get("name"))
		payload := DistrictListResponse{Districts: []District{}}
		for _, district := range districts {
			if query != "" && !district.MatchesName(query) {
				continue
			}
			payload.Districts = append(payload.Districts, fromDistrict(district))
		}
		payload.Count = len(payload.Districts)
		return payload, nil
	})
}

func (s *Server) handleVillages(w http.ResponseWriter, r *http.Request) {
	if !s.gate(w, r, division.EntityVillage) {
		return
	}
	districtID, ok := s.parseIDParam(w, r, "district_id")
	if !ok {
		return
	}
	s.serveCached(w, r, "villages", func(ctx context.Context) (any, error) {
		villages, err := s.store.ListVillages(ctx, geodb.VillageFilter{DistrictID: districtID})
		if err != nil {
			return nil, err
		}
		query := strings.TrimSpace(r.URL.Query().Get("name"))
		payload := VillageListResponse{Villages: []Village{}}
		for _, village := range villages {
			if query != "" && !village.MatchesName(query) {
				continue
			}
			payload.Villages = append(payload.Villages, fromVillage(village))
		}
		payload.Count = len(payload.Villages)
		return payload, nil
	})
}

// gate enforces the method and re-verifies the model against the live
// configuration. Mounting happened at startup; a model disabled since then
// answers 503 rather than serving stale data.
func (s *Server) gate(w http.ResponseWriter, r *http.Request, entity division.Entity) bool {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	if err := config.CheckModelEnabled(s.cfg, entity); err != nil {
		s.writeError(w, http.StatusServiceUnavailable, err.Error())
		return false
	}
	return true
}

func (s *Server) parseIDParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s", name))
		return 0, false
	}
	return id, true
}

// serveCached answers from the response cache when possible, otherwise builds
// the payload, stores it, and writes it.
func (s *Server) serveCached(w http.ResponseWriter, r *http.Request, view string, build func(ctx context.Context) (any, error)) {
	key := cache.ResponseKey(s.cache.Settings().KeyPrefix, view, r.URL.Query())
	if payload, ok := s.cache.GetResponse(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
		return
	}

	payload, err := build(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("list query failed", logging.Error(err))
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.cache.SetResponse(r.Context(), key, encoded)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(encoded)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log().Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) log() *slog.Logger {
	if s.logger != nil {
		return s.logger.With(logging.String("component", "api-server"))
	}
	return logging.NewNop()
}
