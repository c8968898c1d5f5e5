package utilization

import (
	"math"
	"time"

	"mes-analytics/internal/storage"
)

// Config — настройки расчёта загрузки, приходят из конфига приложения.
type Config struct {
	// DefaultShiftMinutes — длина смены, когда в журнале нет времени
	// начала или конца. 690 минут = 11.5 часов.
	DefaultShiftMinutes float64
	// ReviewThreshold — ниже этой загрузки нужен разбор причин.
	ReviewThreshold float64
}

func DefaultConfig() Config {
	return Config{
		DefaultShiftMinutes: 690,
		ReviewThreshold:     80,
	}
}

// MachineMetric — загрузка одного станка за выбранный диапазон.
// Utilization ограничена сверху 100 для отображения, RawUtilization хранит
// исходное отношение для средних.
type MachineMetric struct {
	MachineID       int     `json:"machine_id"`
	MachineName     string  `json:"machine_name"`
	ExpectedMinutes float64 `json:"expected_minutes"`
	ActualMinutes   float64 `json:"actual_minutes"`
	Utilization     float64 `json:"utilization"`
	RawUtilization  float64 `json:"raw_utilization"`
	AvgEfficiency   float64 `json:"avg_efficiency"`
	HasEfficiency   bool    `json:"has_efficiency"`
	TotalOutput     int     `json:"total_output"`
	TotalRejections int     `json:"total_rejections"`
}

// AggregateMachines сводит сменные журналы в метрику по каждому станку из
// справочника. Станок без записей тоже попадает в результат: нулевая
// наработка против одной смены по умолчанию. Ожидаемое и фактическое время
// по диапазону суммируются, это итог за период, а не средние за день.
func AggregateMachines(machines []*storage.Machine, logs []*storage.ProductionLog, cfg Config) []*MachineMetric {
	metrics := make([]*MachineMetric, 0, len(machines))
	byMachine := make(map[int]*MachineMetric, len(machines))
	for _, m := range machines {
		metric := &MachineMetric{MachineID: m.ID, MachineName: m.Name}
		byMachine[m.ID] = metric
		metrics = append(metrics, metric)
	}

	rowCount := make(map[int]int)
	effSum := make(map[int]float64)
	effCount := make(map[int]int)

	for _, row := range logs {
		metric, ok := byMachine[row.MachineID]
		if !ok {
			// станок вне справочника, строку пропускаем
			continue
		}

		rowCount[row.MachineID]++
		metric.ExpectedMinutes += expectedMinutes(row, cfg)
		metric.ActualMinutes += row.RuntimeMinutes
		metric.TotalOutput += row.Output
		metric.TotalRejections += row.Rejections

		// Эффективность усредняем только по сменам, где она записана:
		// простаивавший станок средние не портит.
		if row.Efficiency != nil {
			effSum[row.MachineID] += *row.Efficiency
			effCount[row.MachineID]++
		}
	}

	for _, metric := range metrics {
		if rowCount[metric.MachineID] == 0 {
			metric.ExpectedMinutes = cfg.DefaultShiftMinutes
		}

		if metric.ExpectedMinutes > 0 {
			metric.RawUtilization = round2(metric.ActualMinutes / metric.ExpectedMinutes * 100)
		}
		metric.Utilization = metric.RawUtilization
		if metric.Utilization > 100 {
			metric.Utilization = 100
		}

		if n := effCount[metric.MachineID]; n > 0 {
			metric.AvgEfficiency = round2(effSum[metric.MachineID] / float64(n))
			metric.HasEfficiency = true
		}
	}

	return metrics
}

// expectedMinutes — плановая длительность смены по одной записи журнала.
// Конец раньше начала значит смену через полночь.
func expectedMinutes(row *storage.ProductionLog, cfg Config) float64 {
	if row.ShiftStart == nil || row.ShiftEnd == nil {
		return cfg.DefaultShiftMinutes
	}

	start, errStart := time.Parse("15:04", *row.ShiftStart)
	end, errEnd := time.Parse("15:04", *row.ShiftEnd)
	if errStart != nil || errEnd != nil {
		return cfg.DefaultShiftMinutes
	}

	minutes := end.Sub(start).Minutes()
	if minutes < 0 {
		minutes += 24 * 60
	}

	return minutes
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
