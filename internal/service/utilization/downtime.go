package utilization

import (
	"sort"

	"mes-analytics/internal/storage"
)

type CategoryTotal struct {
	Category string  `json:"category"`
	Minutes  float64 `json:"minutes"`
	Hours    float64 `json:"hours"`
	Percent  float64 `json:"percent"`
}

// DowntimePareto сворачивает простои в итоги по категориям. Причина без
// записи в справочнике уходит в категорию fallback, а не теряется. Пустые
// категории в результат не попадают, сортировка по минутам по убыванию,
// при равенстве по имени категории.
func DowntimePareto(events []*storage.DowntimeEvent, categories map[string]string, fallback string) []CategoryTotal {
	totals := make(map[string]float64)
	var totalMinutes float64

	for _, e := range events {
		cat, ok := categories[e.Reason]
		if !ok {
			cat = fallback
		}
		totals[cat] += e.Minutes
		totalMinutes += e.Minutes
	}

	result := make([]CategoryTotal, 0, len(totals))
	for cat, minutes := range totals {
		if minutes <= 0 {
			continue
		}

		ct := CategoryTotal{
			Category: cat,
			Minutes:  minutes,
			Hours:    round1(minutes / 60),
		}
		if totalMinutes > 0 {
			ct.Percent = round1(minutes / totalMinutes * 100)
		}
		result = append(result, ct)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Minutes != result[j].Minutes {
			return result[i].Minutes > result[j].Minutes
		}
		return result[i].Category < result[j].Category
	})

	return result
}

type MachineScrap struct {
	MachineID   int     `json:"machine_id"`
	MachineName string  `json:"machine_name"`
	Rejections  int     `json:"rejections"`
	Output      int     `json:"output"`
	ScrapPct    float64 `json:"scrap_pct"`
}

// ScrapByMachine — вклад станков в брак. Станки без выпуска и без брака
// дают 0%, сортировка по числу забракованных по убыванию.
func ScrapByMachine(rows []*storage.ScrapRow) []MachineScrap {
	result := make([]MachineScrap, 0, len(rows))
	for _, row := range rows {
		ms := MachineScrap{
			MachineID:   row.MachineID,
			MachineName: row.MachineName,
			Rejections:  row.Rejections,
			Output:      row.Output,
		}
		if total := row.Rejections + row.Output; total > 0 {
			ms.ScrapPct = round1(float64(row.Rejections) / float64(total) * 100)
		}
		result = append(result, ms)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Rejections != result[j].Rejections {
			return result[i].Rejections > result[j].Rejections
		}
		return result[i].MachineName < result[j].MachineName
	})

	return result
}
