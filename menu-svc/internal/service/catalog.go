package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"menuverse/menu-svc/internal/domain"

	"github.com/google/uuid"
)

const (
	defaultThemeColor = "#FF6B35"
	defaultTables     = 10
)

type CatalogService struct {
	repo RestaurantRepository
	now  func() time.Time
}

func NewCatalogService(repo RestaurantRepository) *CatalogService {
	return &CatalogService{repo: repo, now: time.Now}
}

func (s *CatalogService) List() ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants()
}

func (s *CatalogService) Get(id string) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(id)
}

// Menu returns the restaurant for the menu page. A non-empty table must name
// one of the restaurant's tables.
func (s *CatalogService) Menu(id, table string) (*domain.MenuView, error) {
	rest, err := s.repo.GetRestaurant(id)
	if err != nil {
		return nil, err
	}

	view := &domain.MenuView{Restaurant: rest}
	if table == "" {
		return view, nil
	}

	number, err := ParseTable(rest, table)
	if err != nil {
		return nil, err
	}
	scannedAt := s.now()
	view.TableNumber = number
	view.Banner = fmt.Sprintf("Table %d • %s", number, rest.Name)
	view.ScannedAt = &scannedAt
	return view, nil
}

func (s *CatalogService) Create(rest *domain.Restaurant) error {
	rest.Name = strings.TrimSpace(rest.Name)
	if rest.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	if rest.ID == "" {
		rest.ID = slugOrRandom(rest.Name, "restaurant")
	}
	if rest.ThemeColor == "" {
		rest.ThemeColor = defaultThemeColor
	}
	if rest.Tables == 0 {
		rest.Tables = defaultTables
	}
	if rest.Tables < 0 {
		return &domain.ValidationError{Field: "tables", Reason: "must be at least 1"}
	}
	for i := range rest.Menu {
		if err := prepareMenuItem(&rest.Menu[i]); err != nil {
			return err
		}
	}
	if rest.Menu == nil {
		rest.Menu = []domain.MenuItem{}
	}
	id, err := s.freeID(rest.ID)
	if err != nil {
		return err
	}
	rest.ID = id
	return s.repo.CreateRestaurant(rest)
}

// freeID appends -2, -3, ... to base until no restaurant owns the id.
func (s *CatalogService) freeID(base string) (string, error) {
	id := base
	for n := 2; ; n++ {
		_, err := s.repo.GetRestaurant(id)
		if errors.Is(err, domain.ErrRestaurantNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
		id = base + "-" + strconv.Itoa(n)
	}
}

func (s *CatalogService) UpdateSettings(id string, settings domain.RestaurantSettings) (*domain.Restaurant, error) {
	rest, err := s.repo.GetRestaurant(id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(settings.Name); name != "" {
		rest.Name = name
	}
	if settings.Cuisine != "" {
		rest.Cuisine = settings.Cuisine
	}
	if settings.ThemeColor != "" {
		rest.ThemeColor = settings.ThemeColor
	}
	if settings.Logo != "" {
		rest.Logo = settings.Logo
	}
	if settings.Tables < 0 {
		return nil, &domain.ValidationError{Field: "tables", Reason: "must be at least 1"}
	}
	if settings.Tables > 0 {
		rest.Tables = settings.Tables
	}

	if err := s.repo.UpdateRestaurant(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *CatalogService) UpdateLogo(id, logo string) error {
	return s.repo.UpdateRestaurantLogo(id, logo)
}

func (s *CatalogService) AddMenuItem(restaurantID string, item *domain.MenuItem) error {
	if err := prepareMenuItem(item); err != nil {
		return err
	}
	return s.repo.AddMenuItem(restaurantID, item)
}

func (s *CatalogService) UpdateMenuItem(restaurantID string, item *domain.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	if item.Price < 0 {
		return &domain.ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return s.repo.UpdateMenuItem(restaurantID, item)
}

func (s *CatalogService) DeleteMenuItem(restaurantID, itemID string) error {
	rows, err := s.repo.DeleteMenuItem(restaurantID, itemID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (s *CatalogService) UpdateMenuItemImage(restaurantID, itemID, image string) error {
	return s.repo.UpdateMenuItemImage(restaurantID, itemID, image)
}

func prepareMenuItem(item *domain.MenuItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	if item.Price < 0 {
		return &domain.ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if item.ID == "" {
		item.ID = slugOrRandom(item.Name, "item")
	}
	return nil
}

// ParseTable validates a table query parameter against the restaurant's
// table count.
func ParseTable(rest *domain.Restaurant, raw string) (int, error) {
	number, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || number < 1 || number > rest.Tables {
		return 0, domain.ErrInvalidTable
	}
	return number, nil
}

// slugOrRandom falls back to a random id when name has no ASCII letters or
// digits to slug.
func slugOrRandom(name, prefix string) string {
	if slug := Slugify(name); slug != "" {
		return slug
	}
	return prefix + "-" + uuid.NewString()[:8]
}

func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
