package services

import (
	"context"
	"strings"

	"github.com/indrishabhtech/ap/internal/domain/billboard"
	"github.com/indrishabhtech/ap/internal/repository"
	aperrors "github.com/indrishabhtech/ap/pkg/errors"
)

type BillboardService struct {
	repo repository.BillboardRepository
}

func NewBillboardService(repo repository.BillboardRepository) *BillboardService {
	return &BillboardService{repo: repo}
}

func (s *BillboardService) Get(ctx context.Context) (billboard.Billboard, error) {
	return s.repo.Get(ctx)
}

func (s *BillboardService) Set(ctx context.Context, message string) (billboard.Billboard, error) {
	if strings.TrimSpace(message) == "" {
		return billboard.Billboard{}, aperrors.ErrInvalidInput
	}
	return s.repo.Upsert(ctx, message)
}

func (s *BillboardService) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
