package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"visgraph-planner/visgraph"
)

// maxBodyBytes bounds a planning request body.
const maxBodyBytes = 1 << 20

// Server answers planning queries over HTTP. Every request builds its own
// graph, so handlers share nothing but the rate limiter.
type Server struct {
	config  Config
	limiter *rate.Limiter
	logOut  io.Writer
}

func NewServer(config Config, logOut io.Writer) *Server {
	return &Server{
		config:  config,
		limiter: rate.NewLimiter(rate.Limit(config.Rate), config.Burst),
		logOut:  logOut,
	}
}

// Handler returns the router wrapped in CORS and access logging.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Handle("/route", s.rateLimited(http.HandlerFunc(s.routeHandler))).Methods("POST")
	router.Handle("/graph", s.rateLimited(http.HandlerFunc(s.graphHandler))).Methods("POST")
	router.HandleFunc("/octagon", s.octagonHandler).Methods("GET")
	router.HandleFunc("/health", s.healthHandler).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return handlers.CombinedLoggingHandler(s.logOut, cors(router))
}

func (s *Server) ListenAndServe() error {
	log.Println("========================================")
	log.Println("🚀 Visibility Graph Planner Server")
	log.Println("========================================")
	log.Printf("Server starting on %s\n", s.config.Addr)
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST /route     - Shortest path for a scene")
	log.Println("  POST /graph     - Visibility graph of a scene for visualization")
	log.Println("  GET  /octagon   - Octagon obstacle vertices (cx, cy, r)")
	log.Println("  GET  /health    - Check server status")
	log.Println("")
	log.Printf("Rate limit: %.1f req/s (burst %d), vertex limit: %d\n",
		s.config.Rate, s.config.Burst, s.config.MaxVertices)
	log.Println("CORS enabled for all origins")
	log.Println("========================================")

	return http.ListenAndServe(s.config.Addr, s.Handler())
}

func (s *Server) rateLimited(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger tags the log lines of one request with a fresh request id,
// which is also returned to the client.
func (s *Server) requestLogger(w http.ResponseWriter) *log.Logger {
	id := uuid.NewString()
	w.Header().Set("X-Request-Id", id)
	return log.New(s.logOut, "["+id[:8]+"] ", log.LstdFlags)
}

func (s *Server) decodeAndBuild(w http.ResponseWriter, r *http.Request, logger *log.Logger) (*visgraph.Graph, bool) {
	var req RouteRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Printf("❌ Request body over %d bytes\n", tooLarge.Limit)
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return nil, false
		}
		logger.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return nil, false
	}

	logger.Printf("   Start: (%.3f, %.3f)\n", req.Start.X, req.Start.Y)
	logger.Printf("   End:   (%.3f, %.3f)\n", req.End.X, req.End.Y)
	logger.Printf("   Obstacles: %d, agent radius: %.3f\n", len(req.Obstacles), req.AgentRadius)

	graph, err := req.build(visgraph.WithLogger(logger), visgraph.WithMaxVertices(s.config.MaxVertices))
	if err != nil {
		logger.Printf("❌ %v\n", err)
		writeJSON(w, statusFor(err), map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return nil, false
	}
	return graph, true
}

// POST /route - shortest path from start to end
func (s *Server) routeHandler(w http.ResponseWriter, r *http.Request) {
	logger := s.requestLogger(w)
	logger.Println("📍 Route request received")

	graph, ok := s.decodeAndBuild(w, r, logger)
	if !ok {
		return
	}

	logger.Println("🔍 Running A* on visibility graph...")
	response := newRouteResponse(graph)
	if response.Success {
		logger.Printf("✅ Path found with %d waypoints, length %.3f\n", len(response.Path), *response.Length)
	} else {
		logger.Println("❌ No path found")
	}

	writeJSON(w, http.StatusOK, response)
}

// POST /graph - graph vertices and edges for visualization
func (s *Server) graphHandler(w http.ResponseWriter, r *http.Request) {
	logger := s.requestLogger(w)
	logger.Println("📊 Graph request received")

	graph, ok := s.decodeAndBuild(w, r, logger)
	if !ok {
		return
	}

	response := newGraphResponse(graph)
	logger.Printf("   Returning %d vertices, %d obstacle lines, %d visibility lines\n",
		len(response.Vertices), len(response.ObstacleLines), len(response.VisibilityLines))

	writeJSON(w, http.StatusOK, response)
}

// GET /octagon?cx=..&cy=..&r=..
func (s *Server) octagonHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var values [3]float64
	for i, name := range []string{"cx", "cy", "r"} {
		v, err := strconv.ParseFloat(query.Get(name), 64)
		if err != nil {
			http.Error(w, "Invalid or missing parameter "+name, http.StatusBadRequest)
			return
		}
		values[i] = v
	}
	if values[2] <= 0 {
		http.Error(w, "Radius must be positive", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vertices": visgraph.Octagon(visgraph.Point{X: values[0], Y: values[1]}, values[2]),
	})
}

// GET /health
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ready",
		"maxVertices": s.config.MaxVertices,
	})
}

func statusFor(err error) int {
	switch errors.Cause(err) {
	case visgraph.ErrInvalidInput:
		return http.StatusBadRequest
	case visgraph.ErrTooManyVertices:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("⚠️  Failed to write response: %v\n", err)
	}
}
