package flow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mes-analytics/internal/storage"
)

type FlowStorage interface {
	GetActiveWorkOrders(ctx context.Context) ([]*storage.WorkOrderSnapshot, error)
}

type Service struct {
	storage    FlowStorage
	thresholds Thresholds
	log        *slog.Logger
}

func NewService(storage FlowStorage, thresholds Thresholds, log *slog.Logger) *Service {
	return &Service{storage: storage, thresholds: thresholds, log: log}
}

type Status struct {
	Buckets      map[Category][]BucketItem `json:"buckets"`
	Titles       map[Category]string       `json:"titles"`
	Flowing      int                       `json:"flowing"`
	TotalActive  int                       `json:"total_active"`
	TotalBlocked int                       `json:"total_blocked"`
	SeverelyAged int                       `json:"severely_aged"`
	Health       Health                    `json:"health"`
}

// FlowStatus — полный проход аналитики потока: выборка активных заказов,
// корзины блокировок и вердикт. Момент now передаётся снаружи, чтобы
// результат был воспроизводим.
func (s *Service) FlowStatus(ctx context.Context, now time.Time) (*Status, error) {
	const op = "service.flow.FlowStatus"

	orders, err := s.storage.GetActiveWorkOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения активных заказов: %w", op, err)
	}

	buckets := BuildBuckets(orders, now)
	if buckets.BadTimestamps > 0 {
		s.log.Warn("Не у всех заказов удалось разобрать дату создания",
			slog.String("op", op),
			slog.Int("count", buckets.BadTimestamps),
		)
	}

	severelyAged := buckets.SeverelyAged()
	health := ScoreHealth(buckets.Counts(), len(orders), severelyAged, s.thresholds)

	return &Status{
		Buckets:      buckets.Items,
		Titles:       CategoryTitles,
		Flowing:      buckets.Flowing,
		TotalActive:  len(orders),
		TotalBlocked: buckets.TotalBlocked(),
		SeverelyAged: severelyAged,
		Health:       health,
	}, nil
}
