package services

import (
	"context"
	"strings"
	"time"

	"github.com/indrishabhtech/ap/internal/domain/devicelog"
	"github.com/indrishabhtech/ap/internal/repository"
	aperrors "github.com/indrishabhtech/ap/pkg/errors"
)

type DeviceLogService struct {
	repo repository.DeviceLogRepository
}

func NewDeviceLogService(repo repository.DeviceLogRepository) *DeviceLogService {
	return &DeviceLogService{repo: repo}
}

// Record appends a visit entry. Source address and user agent are captured
// by the HTTP layer, not trusted from the request body.
func (s *DeviceLogService) Record(ctx context.Context, name, sourceAddress, userAgent string) (devicelog.Entry, error) {
	if strings.TrimSpace(name) == "" {
		return devicelog.Entry{}, aperrors.ErrInvalidInput
	}
	entry := devicelog.Entry{
		Name:           name,
		NormalizedName: devicelog.Normalize(name),
		Timestamp:      time.Now().UTC(),
		SourceAddress:  sourceAddress,
		UserAgent:      userAgent,
	}
	if err := s.repo.Create(ctx, &entry); err != nil {
		return devicelog.Entry{}, err
	}
	return entry, nil
}

func (s *DeviceLogService) List(ctx context.Context, limit int64) ([]devicelog.Entry, error) {
	return s.repo.List(ctx, limit)
}

func (s *DeviceLogService) Clear(ctx context.Context) (int64, error) {
	return s.repo.Clear(ctx)
}
