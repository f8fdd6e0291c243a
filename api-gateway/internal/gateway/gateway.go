package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	MenuSvcURL        string
	ReservationSvcURL string
	AnalyticsSvcURL   string
	FrontendDir       string
	AuthSecret        string
	GoogleClientID    string
}

type Gateway struct {
	config Config
	client HTTPClient
	logger *zap.Logger
}

func NewGateway(config Config, client HTTPClient, logger *zap.Logger) *Gateway {
	if config.FrontendDir == "" {
		config.FrontendDir = "./frontend"
	}
	if config.GoogleClientID == "" {
		config.GoogleClientID = demoClientID
	}
	return &Gateway{
		config: config,
		client: client,
		logger: logger,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	g.logger.Debug("proxy", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.String("target", targetURL))

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.logger.Error("failed to create proxy request", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("proxy failed", zap.String("target", targetURL), zap.Error(err))
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.logger.Warn("failed to copy response", zap.Error(err))
	}
}

// upstream picks the service that owns an /api path. Reservation and
// analytics sub-resources of a restaurant are matched before the generic
// restaurant prefix.
func (g *Gateway) upstream(path string) (string, bool) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 || segments[0] != "api" {
		return "", false
	}

	if segments[1] == "restaurants" && len(segments) >= 4 {
		switch segments[3] {
		case "reservations":
			return g.config.ReservationSvcURL, true
		case "analytics":
			return g.config.AnalyticsSvcURL, true
		}
	}

	switch segments[1] {
	case "reservations":
		return g.config.ReservationSvcURL, true
	case "analytics":
		return g.config.AnalyticsSvcURL, true
	case "restaurants", "carts", "orders", "premium", "check":
		return g.config.MenuSvcURL, true
	}
	return "", false
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if strings.HasPrefix(path, "/api/") {
		target, ok := g.upstream(path)
		if !ok {
			g.logger.Info("unmatched API route", zap.String("path", path))
			http.Error(w, "API route not found", http.StatusNotFound)
			return
		}
		g.ProxyRequest(w, r, target)
		return
	}

	g.servePage(w, r, "index.html")
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/auth/").HandlerFunc(g.Auth).Methods("GET", "POST")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(g.config.FrontendDir))))
	r.HandleFunc("/", g.HomePage).Methods("GET")
	r.HandleFunc("/premium", g.PremiumPage).Methods("GET")
	r.HandleFunc("/restaurant/{id}", g.RestaurantPage).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
