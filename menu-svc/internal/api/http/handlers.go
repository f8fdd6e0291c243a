package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"menuverse/menu-svc/internal/domain"
	"menuverse/menu-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Handler struct {
	Catalog   service.CatalogServiceInterface
	Premium   service.PremiumServiceInterface
	Carts     service.CartServiceInterface
	Orders    service.OrderServiceInterface
	Tables    service.TableQRServiceInterface
	Logger    *zap.Logger
	UploadDir string
}

func NewHandler(catalog service.CatalogServiceInterface, premium service.PremiumServiceInterface, carts service.CartServiceInterface,
	orders service.OrderServiceInterface, tables service.TableQRServiceInterface, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog:   catalog,
		Premium:   premium,
		Carts:     carts,
		Orders:    orders,
		Tables:    tables,
		Logger:    logger,
		UploadDir: "./uploads",
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/settings", h.updateSettings).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/logo", h.uploadLogo).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/menu", h.addMenuItem).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/menu/{itemId}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/menu/{itemId}", h.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{id}/menu/{itemId}/image", h.uploadMenuItemImage).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/menu/{itemId}/premium", h.getPremiumPreview).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/orders", h.getRestaurantOrders).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/tables", h.getTableCodes).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/tables/{table}/qrcode", h.getTableQRCode).Methods("GET")

	r.HandleFunc("/api/premium/features", h.getPremiumFeatures).Methods("GET")

	r.HandleFunc("/api/carts", h.openCart).Methods("POST")
	r.HandleFunc("/api/carts/{id}", h.getCart).Methods("GET")
	r.HandleFunc("/api/carts/{id}", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/carts/{id}/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/carts/{id}/items/{itemId}", h.setCartItemQuantity).Methods("PUT")
	r.HandleFunc("/api/carts/{id}/items/{itemId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/carts/{id}/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/check/{id}", h.getOrder).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto status codes. Anything unrecognised is
// logged and reported as a 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var validation *domain.ValidationError
	switch {
	case errors.As(err, &validation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrRestaurantNotFound),
		errors.Is(err, domain.ErrMenuItemNotFound),
		errors.Is(err, domain.ErrCartNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidTable),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrNotPremium):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrDuplicateMenuItem),
		errors.Is(err, domain.ErrPremiumItem),
		errors.Is(err, domain.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.Logger.Error("request failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.List()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Catalog.Create(&rest); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Catalog.Get(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	view, err := h.Catalog.Menu(mux.Vars(r)["id"], r.URL.Query().Get("table"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.RestaurantSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest, err := h.Catalog.UpdateSettings(mux.Vars(r)["id"], settings)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Catalog.AddMenuItem(mux.Vars(r)["id"], &item); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = vars["itemId"]
	if err := h.Catalog.UpdateMenuItem(vars["id"], &item); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Catalog.DeleteMenuItem(vars["id"], vars["itemId"]); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadLogo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.Catalog.Get(id); err != nil {
		h.writeError(w, err)
		return
	}
	imageURL, ok := h.saveUpload(w, r, "restaurant_"+id+"_")
	if !ok {
		return
	}
	if err := h.Catalog.UpdateLogo(id, imageURL); err != nil {
		h.removeUpload(imageURL)
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"logo": imageURL})
}

func (h *Handler) uploadMenuItemImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rest, err := h.Catalog.Get(vars["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	if rest.Item(vars["itemId"]) == nil {
		h.writeError(w, domain.ErrMenuItemNotFound)
		return
	}
	imageURL, ok := h.saveUpload(w, r, "item_"+vars["id"]+"_"+vars["itemId"]+"_")
	if !ok {
		return
	}
	if err := h.Catalog.UpdateMenuItemImage(vars["id"], vars["itemId"], imageURL); err != nil {
		h.removeUpload(imageURL)
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Image uploaded successfully",
		"image_url": imageURL,
	})
}

// saveUpload stores the multipart "image" field under UploadDir and returns
// its public path. It writes the error response itself when it fails.
func (h *Handler) saveUpload(w http.ResponseWriter, r *http.Request, prefix string) (string, bool) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return "", false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return "", false
	}
	defer file.Close()

	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		http.Error(w, "Invalid file type. Only JPEG, PNG, GIF, WebP allowed", http.StatusBadRequest)
		return "", false
	}

	if err := os.MkdirAll(h.UploadDir, 0755); err != nil {
		http.Error(w, "Failed to create upload directory", http.StatusInternalServerError)
		return "", false
	}

	filename := prefix + filepath.Base(header.Filename)
	dst, err := os.Create(filepath.Join(h.UploadDir, filename))
	if err != nil {
		http.Error(w, "Failed to create file", http.StatusInternalServerError)
		return "", false
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return "", false
	}
	return "/uploads/" + filename, true
}

func (h *Handler) removeUpload(imageURL string) {
	path := filepath.Join(h.UploadDir, filepath.Base(imageURL))
	if err := os.Remove(path); err != nil {
		h.Logger.Warn("failed to remove orphaned upload", zap.String("path", path), zap.Error(err))
	}
}

func (h *Handler) getPremiumFeatures(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Premium.Features())
}

func (h *Handler) getPremiumPreview(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	preview, err := h.Premium.Preview(vars["id"], vars["itemId"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

func (h *Handler) getTableCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.Tables.Codes(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, codes)
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	table, err := strconv.Atoi(vars["table"])
	if err != nil {
		h.writeError(w, domain.ErrInvalidTable)
		return
	}

	if r.URL.Query().Get("format") == "svg" {
		svg, err := h.Tables.SVG(vars["id"], table)
		if err != nil {
			h.writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(svg)
		return
	}

	png, err := h.Tables.PNG(vars["id"], table)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(png)
}

type openCartRequest struct {
	RestaurantID string `json:"restaurant_id"`
	TableNumber  int    `json:"table_number"`
}

func (h *Handler) openCart(w http.ResponseWriter, r *http.Request) {
	var req openCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cart, err := h.Carts.Open(r.Context(), req.RestaurantID, req.TableNumber)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cart)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Carts.Summary(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.Clear(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type cartItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	cartID := mux.Vars(r)["id"]
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	summary, err := h.Carts.Add(r.Context(), cartID, req.ItemID)
	if errors.Is(err, domain.ErrPremiumItem) {
		h.premiumConflict(w, r, cartID, req.ItemID)
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// premiumConflict answers a rejected premium add with the preview the page
// shows instead of adding the item.
func (h *Handler) premiumConflict(w http.ResponseWriter, r *http.Request, cartID, itemID string) {
	summary, err := h.Carts.Summary(r.Context(), cartID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	preview, err := h.Premium.Preview(summary.RestaurantID, itemID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusConflict, map[string]interface{}{
		"error":   domain.ErrPremiumItem.Error(),
		"preview": preview,
	})
}

func (h *Handler) setCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	summary, err := h.Carts.SetQuantity(r.Context(), vars["id"], vars["itemId"], req.Quantity)
	if errors.Is(err, domain.ErrPremiumItem) {
		h.premiumConflict(w, r, vars["id"], vars["itemId"])
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	summary, err := h.Carts.RemoveOne(r.Context(), vars["id"], vars["itemId"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

type checkoutRequest struct {
	Notes map[string]string `json:"notes"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
			return
		}
	}
	order, err := h.Orders.Checkout(r.Context(), mux.Vars(r)["id"], req.Notes)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.URL.Query().Get("restaurant_id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getRestaurantOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	order.QRCode = h.Orders.QRLink(order.ID)
	writeJSON(w, http.StatusOK, order)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.AdvanceStatus(mux.Vars(r)["id"], req.Status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Orders.GetQRCode(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	if len(qrCode) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}
