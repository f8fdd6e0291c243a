package service

import (
	"fmt"
	"html"

	"menuverse/menu-svc/internal/domain"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(content string) ([]byte, error)
}

type DefaultQRGenerator struct {
	Size int
}

func (g DefaultQRGenerator) Generate(content string) ([]byte, error) {
	size := g.Size
	if size == 0 {
		size = 256
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}

// TableQRService renders the code printed on each table. Scanning it opens
// the restaurant's menu page for that table.
type TableQRService struct {
	catalog   RestaurantRepository
	qrEncoder QRGenerator
	baseURL   string
}

func NewTableQRService(catalog RestaurantRepository, qr QRGenerator, baseURL string) *TableQRService {
	return &TableQRService{catalog: catalog, qrEncoder: qr, baseURL: baseURL}
}

func (s *TableQRService) TableURL(restaurantID string, table int) string {
	return fmt.Sprintf("%s/restaurant/%s?table=%d", s.baseURL, restaurantID, table)
}

func (s *TableQRService) Codes(restaurantID string) ([]domain.TableCode, error) {
	rest, err := s.catalog.GetRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}

	codes := make([]domain.TableCode, 0, rest.Tables)
	for table := 1; table <= rest.Tables; table++ {
		base := fmt.Sprintf("/api/restaurants/%s/tables/%d/qrcode", rest.ID, table)
		codes = append(codes, domain.TableCode{
			Table:  table,
			URL:    s.TableURL(rest.ID, table),
			PNGURL: base,
			SVGURL: base + "?format=svg",
		})
	}
	return codes, nil
}

func (s *TableQRService) PNG(restaurantID string, table int) ([]byte, error) {
	rest, err := s.table(restaurantID, table)
	if err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(s.TableURL(rest.ID, table))
}

// SVG renders the printable placeholder card with the table number and
// restaurant name.
func (s *TableQRService) SVG(restaurantID string, table int) ([]byte, error) {
	rest, err := s.table(restaurantID, table)
	if err != nil {
		return nil, err
	}
	svg := fmt.Sprintf(`<svg width="200" height="200" xmlns="http://www.w3.org/2000/svg">
  <rect width="200" height="200" fill="white"/>
  <rect x="20" y="20" width="160" height="160" fill="black" rx="8"/>
  <rect x="40" y="40" width="120" height="120" fill="white" rx="4"/>
  <text x="100" y="110" text-anchor="middle" font-size="14" font-family="Arial" fill="black">TABLE %d</text>
  <text x="100" y="130" text-anchor="middle" font-size="10" font-family="Arial" fill="black">%s</text>
</svg>
`, table, html.EscapeString(rest.Name))
	return []byte(svg), nil
}

func (s *TableQRService) table(restaurantID string, table int) (*domain.Restaurant, error) {
	rest, err := s.catalog.GetRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	if table < 1 || table > rest.Tables {
		return nil, domain.ErrInvalidTable
	}
	return rest, nil
}
