package utilization

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mes-analytics/internal/storage"
)

var testCategories = map[string]string{
	"Поломка шпинделя":              "Поломка оборудования",
	"Замена пильного диска":         "Поломка оборудования",
	"Переналадка на другой профиль": "Переналадка",
}

func TestDowntimePareto(t *testing.T) {
	events := []*storage.DowntimeEvent{
		{Reason: "Поломка шпинделя", Minutes: 90},
		{Reason: "Замена пильного диска", Minutes: 30},
		{Reason: "Переналадка на другой профиль", Minutes: 45},
		// причины нет в справочнике — уходит в "Прочее"
		{Reason: "Ждали кран", Minutes: 15},
	}

	pareto := DowntimePareto(events, testCategories, "Прочее")

	assert.Equal(t, 3, len(pareto))
	assert.Equal(t, "Поломка оборудования", pareto[0].Category)
	assert.Equal(t, float64(120), pareto[0].Minutes)
	assert.Equal(t, 2.0, pareto[0].Hours)
	assert.Equal(t, 66.7, pareto[0].Percent)

	assert.Equal(t, "Переналадка", pareto[1].Category)
	assert.Equal(t, "Прочее", pareto[2].Category)
	assert.Equal(t, 8.3, pareto[2].Percent)
}

func TestDowntimePareto_Empty(t *testing.T) {
	pareto := DowntimePareto(nil, testCategories, "Прочее")
	assert.Empty(t, pareto)
}

func TestDowntimePareto_TieBreak(t *testing.T) {
	// при равных минутах порядок по имени категории, стабильно
	events := []*storage.DowntimeEvent{
		{Reason: "Переналадка на другой профиль", Minutes: 60},
		{Reason: "Поломка шпинделя", Minutes: 60},
	}

	pareto := DowntimePareto(events, testCategories, "Прочее")
	assert.Equal(t, "Переналадка", pareto[0].Category)
	assert.Equal(t, "Поломка оборудования", pareto[1].Category)
}

func TestScrapByMachine(t *testing.T) {
	rows := []*storage.ScrapRow{
		{MachineID: 1, MachineName: "ЧПУ-1", Rejections: 5, Output: 95},
		{MachineID: 2, MachineName: "Пила-2", Rejections: 12, Output: 188},
		// ни выпуска, ни брака — 0%, не деление на ноль
		{MachineID: 3, MachineName: "Фреза-3", Rejections: 0, Output: 0},
	}

	scrap := ScrapByMachine(rows)

	assert.Equal(t, 3, len(scrap))
	// сортировка по абсолютному числу забракованных
	assert.Equal(t, "Пила-2", scrap[0].MachineName)
	assert.Equal(t, 6.0, scrap[0].ScrapPct)
	assert.Equal(t, "ЧПУ-1", scrap[1].MachineName)
	assert.Equal(t, 5.0, scrap[1].ScrapPct)
	assert.Equal(t, 0.0, scrap[2].ScrapPct)
}
