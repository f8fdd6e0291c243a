package service

import (
	"menuverse/menu-svc/internal/domain"
)

const comingSoon = "AR/VR previews are coming soon. We're working hard to bring you the most immersive dining experience ever created."

type PremiumService struct {
	repo RestaurantRepository
}

func NewPremiumService(repo RestaurantRepository) *PremiumService {
	return &PremiumService{repo: repo}
}

func (s *PremiumService) Features() []domain.PremiumFeature {
	features := make([]domain.PremiumFeature, len(domain.PremiumFeatures))
	copy(features, domain.PremiumFeatures)
	return features
}

func (s *PremiumService) Preview(restaurantID, itemID string) (*domain.PremiumPreview, error) {
	rest, err := s.repo.GetRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	item := rest.Item(itemID)
	if item == nil {
		return nil, domain.ErrMenuItemNotFound
	}
	if !item.IsPremium {
		return nil, domain.ErrNotPremium
	}
	return &domain.PremiumPreview{
		Item:      *item,
		Features:  s.Features(),
		Available: false,
		Message:   comingSoon,
	}, nil
}
