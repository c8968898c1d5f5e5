package utilization

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mes-analytics/internal/storage"
)

type MockUtilizationStorage struct {
	mock.Mock
}

func (m *MockUtilizationStorage) GetMachines(ctx context.Context) ([]*storage.Machine, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	machines, ok := args.Get(0).([]*storage.Machine)
	if !ok {
		return nil, fmt.Errorf("expected []*storage.Machine, got %T", args.Get(0))
	}

	return machines, args.Error(1)
}

func (m *MockUtilizationStorage) GetProductionLogs(ctx context.Context, from, to string, machineID int) ([]*storage.ProductionLog, error) {
	args := m.Called(ctx, from, to, machineID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	logs, ok := args.Get(0).([]*storage.ProductionLog)
	if !ok {
		return nil, fmt.Errorf("expected []*storage.ProductionLog, got %T", args.Get(0))
	}

	return logs, args.Error(1)
}

func (m *MockUtilizationStorage) GetDowntimeEvents(ctx context.Context, from, to string) ([]*storage.DowntimeEvent, error) {
	args := m.Called(ctx, from, to)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	events, ok := args.Get(0).([]*storage.DowntimeEvent)
	if !ok {
		return nil, fmt.Errorf("expected []*storage.DowntimeEvent, got %T", args.Get(0))
	}

	return events, args.Error(1)
}

func (m *MockUtilizationStorage) GetScrapByMachine(ctx context.Context, from, to string) ([]*storage.ScrapRow, error) {
	args := m.Called(ctx, from, to)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	rows, ok := args.Get(0).([]*storage.ScrapRow)
	if !ok {
		return nil, fmt.Errorf("expected []*storage.ScrapRow, got %T", args.Get(0))
	}

	return rows, args.Error(1)
}

func (m *MockUtilizationStorage) GetReviews(ctx context.Context, from, to string) ([]*storage.UtilizationReview, error) {
	args := m.Called(ctx, from, to)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	reviews, ok := args.Get(0).([]*storage.UtilizationReview)
	if !ok {
		return nil, fmt.Errorf("expected []*storage.UtilizationReview, got %T", args.Get(0))
	}

	return reviews, args.Error(1)
}

func TestMachineUtilization(t *testing.T) {
	// 1. Мок хранилища: два станка, журналы и один разбор
	mockStorage := new(MockUtilizationStorage)

	machines := []*storage.Machine{
		{ID: 1, Name: "ЧПУ-1"},
		{ID: 2, Name: "Пила-2"},
	}
	logs := []*storage.ProductionLog{
		shiftRow(1, "2026-03-09", 600),
		shiftRow(1, "2026-03-10", 345),
		shiftRow(2, "2026-03-09", 300),
	}
	reviews := []*storage.UtilizationReview{
		{ID: 7, MachineID: 2, LogDate: "2026-03-09", Reason: "Переналадка полдня", Reviewer: "Мастер смены"},
	}

	mockStorage.On("GetMachines", mock.Anything).Return(machines, nil)
	mockStorage.On("GetProductionLogs", mock.Anything, "2026-03-09", "2026-03-10", 0).Return(logs, nil)
	mockStorage.On("GetReviews", mock.Anything, "2026-03-09", "2026-03-10").Return(reviews, nil)

	// 2. Запускаем расчёт
	service := NewService(mockStorage, DefaultConfig())
	reports, err := service.MachineUtilization(context.Background(), "2026-03-09", "2026-03-10", 0)

	// 3. Проверяем метрики и состояние разборов
	assert.NoError(t, err)
	assert.Equal(t, 2, len(reports))

	first := reports[0]
	assert.Equal(t, "ЧПУ-1", first.Metric.MachineName)
	assert.Equal(t, 68.48, first.Metric.Utilization)
	// 68.48 < 80, записи нет — нужен разбор
	assert.True(t, first.NeedsReview)
	assert.Equal(t, ReviewNeeded, first.ReviewState)

	second := reports[1]
	assert.Equal(t, "Пила-2", second.Metric.MachineName)
	// низкая загрузка, но разбор с причиной уже есть
	assert.False(t, second.NeedsReview)
	assert.Equal(t, ReviewDone, second.ReviewState)
	assert.Equal(t, 7, second.Review.ID)

	mockStorage.AssertExpectations(t)
}

func TestMachineUtilization_SingleMachine(t *testing.T) {
	mockStorage := new(MockUtilizationStorage)

	machines := []*storage.Machine{
		{ID: 1, Name: "ЧПУ-1"},
		{ID: 2, Name: "Пила-2"},
	}
	logs := []*storage.ProductionLog{shiftRow(2, "2026-03-09", 650)}

	mockStorage.On("GetMachines", mock.Anything).Return(machines, nil)
	mockStorage.On("GetProductionLogs", mock.Anything, "2026-03-09", "2026-03-09", 2).Return(logs, nil)
	mockStorage.On("GetReviews", mock.Anything, "2026-03-09", "2026-03-09").Return([]*storage.UtilizationReview{}, nil)

	service := NewService(mockStorage, DefaultConfig())
	reports, err := service.MachineUtilization(context.Background(), "2026-03-09", "2026-03-09", 2)

	// фильтр по станку сужает и справочник
	assert.NoError(t, err)
	assert.Equal(t, 1, len(reports))
	assert.Equal(t, "Пила-2", reports[0].Metric.MachineName)
	assert.Equal(t, 94.2, reports[0].Metric.Utilization)
}

func TestMachineUtilization_StorageError(t *testing.T) {
	mockStorage := new(MockUtilizationStorage)

	mockStorage.On("GetMachines", mock.Anything).Return(nil, errors.New("db down"))
	mockStorage.On("GetProductionLogs", mock.Anything, "2026-03-09", "2026-03-09", 0).Return([]*storage.ProductionLog{}, nil).Maybe()
	mockStorage.On("GetReviews", mock.Anything, "2026-03-09", "2026-03-09").Return([]*storage.UtilizationReview{}, nil).Maybe()

	service := NewService(mockStorage, DefaultConfig())
	reports, err := service.MachineUtilization(context.Background(), "2026-03-09", "2026-03-09", 0)

	assert.Error(t, err)
	assert.Nil(t, reports)
}

func TestDowntimeAnalysis(t *testing.T) {
	mockStorage := new(MockUtilizationStorage)

	events := []*storage.DowntimeEvent{
		{MachineID: 1, Reason: "Поломка шпинделя", Minutes: 120},
		{MachineID: 2, Reason: "Что-то непонятное", Minutes: 30},
	}
	scrap := []*storage.ScrapRow{
		{MachineID: 1, MachineName: "ЧПУ-1", Rejections: 4, Output: 196},
	}

	mockStorage.On("GetDowntimeEvents", mock.Anything, "2026-03-09", "2026-03-10").Return(events, nil)
	mockStorage.On("GetScrapByMachine", mock.Anything, "2026-03-09", "2026-03-10").Return(scrap, nil)

	service := NewService(mockStorage, DefaultConfig())
	report, err := service.DowntimeAnalysis(context.Background(), "2026-03-09", "2026-03-10")

	assert.NoError(t, err)
	assert.Equal(t, 2, len(report.Pareto))
	assert.Equal(t, "Поломка оборудования", report.Pareto[0].Category)
	// неизвестная причина не потерялась, ушла в "Прочее"
	assert.Equal(t, "Прочее", report.Pareto[1].Category)
	assert.Equal(t, 1, len(report.Scrap))
	assert.Equal(t, 2.0, report.Scrap[0].ScrapPct)

	mockStorage.AssertExpectations(t)
}
