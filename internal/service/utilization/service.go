package utilization

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"mes-analytics/internal/constants"
	"mes-analytics/internal/storage"
)

type UtilizationStorage interface {
	GetMachines(ctx context.Context) ([]*storage.Machine, error)
	GetProductionLogs(ctx context.Context, from, to string, machineID int) ([]*storage.ProductionLog, error)
	GetDowntimeEvents(ctx context.Context, from, to string) ([]*storage.DowntimeEvent, error)
	GetScrapByMachine(ctx context.Context, from, to string) ([]*storage.ScrapRow, error)
	GetReviews(ctx context.Context, from, to string) ([]*storage.UtilizationReview, error)
}

type Service struct {
	storage UtilizationStorage
	cfg     Config
}

func NewService(storage UtilizationStorage, cfg Config) *Service {
	return &Service{storage: storage, cfg: cfg}
}

// MachineReport — метрика станка вместе с состоянием разбора.
type MachineReport struct {
	Metric      *MachineMetric             `json:"metric"`
	NeedsReview bool                       `json:"needs_review"`
	ReviewState ReviewState                `json:"review_state"`
	Review      *storage.UtilizationReview `json:"review,omitempty"`
}

// MachineUtilization — загрузка станков за диапазон дат. machineID = 0
// значит весь парк. Справочник, журналы и разборы тянем параллельно.
func (s *Service) MachineUtilization(ctx context.Context, from, to string, machineID int) ([]*MachineReport, error) {
	const op = "service.utilization.MachineUtilization"

	var (
		machines []*storage.Machine
		logs     []*storage.ProductionLog
		reviews  []*storage.UtilizationReview
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		machines, err = s.storage.GetMachines(gCtx)
		if err != nil {
			return fmt.Errorf("machines: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		logs, err = s.storage.GetProductionLogs(gCtx, from, to, machineID)
		if err != nil {
			return fmt.Errorf("logs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		reviews, err = s.storage.GetReviews(gCtx, from, to)
		if err != nil {
			return fmt.Errorf("reviews: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if machineID != 0 {
		filtered := machines[:0]
		for _, m := range machines {
			if m.ID == machineID {
				filtered = append(filtered, m)
			}
		}
		machines = filtered
	}

	metrics := AggregateMachines(machines, logs, s.cfg)

	// Для диапазона берём самый свежий разбор по станку.
	latest := make(map[int]*storage.UtilizationReview)
	for _, r := range reviews {
		cur, ok := latest[r.MachineID]
		if !ok || r.LogDate > cur.LogDate {
			latest[r.MachineID] = r
		}
	}

	reports := make([]*MachineReport, 0, len(metrics))
	for _, m := range metrics {
		review := latest[m.MachineID]
		reports = append(reports, &MachineReport{
			Metric:      m,
			NeedsReview: NeedsReview(m.Utilization, s.cfg.ReviewThreshold, review),
			ReviewState: StateFor(m.Utilization, s.cfg.ReviewThreshold, review),
			Review:      review,
		})
	}

	return reports, nil
}

type DowntimeReport struct {
	Pareto []CategoryTotal `json:"pareto"`
	Scrap  []MachineScrap  `json:"scrap"`
}

// DowntimeAnalysis — Парето простоев по категориям плюс вклад станков в
// брак за диапазон дат.
func (s *Service) DowntimeAnalysis(ctx context.Context, from, to string) (*DowntimeReport, error) {
	const op = "service.utilization.DowntimeAnalysis"

	var (
		events []*storage.DowntimeEvent
		scrap  []*storage.ScrapRow
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.storage.GetDowntimeEvents(gCtx, from, to)
		if err != nil {
			return fmt.Errorf("downtime: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		scrap, err = s.storage.GetScrapByMachine(gCtx, from, to)
		if err != nil {
			return fmt.Errorf("scrap: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &DowntimeReport{
		Pareto: DowntimePareto(events, constants.DowntimeReasonCategory, constants.DowntimeFallbackCategory),
		Scrap:  ScrapByMachine(scrap),
	}, nil
}
