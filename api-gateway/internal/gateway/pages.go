package gateway

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func (g *Gateway) HomePage(w http.ResponseWriter, r *http.Request) {
	g.servePage(w, r, "index.html")
}

func (g *Gateway) PremiumPage(w http.ResponseWriter, r *http.Request) {
	g.servePage(w, r, "premium.html")
}

// RestaurantPage is where table QR codes land. The table range itself is
// checked by menu-svc when the page loads the menu.
func (g *Gateway) RestaurantPage(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("table"); raw != "" {
		if table, err := strconv.Atoi(raw); err != nil || table < 1 {
			http.Error(w, "invalid table number", http.StatusBadRequest)
			return
		}
	}
	g.logger.Debug("restaurant page", zap.String("restaurant_id", mux.Vars(r)["id"]))
	g.servePage(w, r, "restaurant.html")
}

// servePage falls back to the single-page bundle when a dedicated page is
// not shipped.
func (g *Gateway) servePage(w http.ResponseWriter, r *http.Request, page string) {
	path := filepath.Join(g.config.FrontendDir, page)
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(g.config.FrontendDir, "index.html")
	}
	http.ServeFile(w, r, path)
}
