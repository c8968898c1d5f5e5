package flow

import (
	"fmt"
	"time"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Границы возраста блокировки в часах. Нижняя граница полосы включается,
// верхняя нет: ровно 24 часа это уже medium, ровно 72 — high.
const (
	mediumAgeHours = 24
	highAgeHours   = 72
)

var createdAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ElapsedHours считает целые часы от момента создания до now. Дата приходит
// строкой из базы; если разобрать её не удалось, возвращаем 0 часов и ошибку —
// вызывающий логирует её как проблему качества данных, дальше она не идёт.
func ElapsedHours(createdAt string, now time.Time) (int, error) {
	const op = "service.flow.ElapsedHours"

	var created time.Time
	var err error
	for _, layout := range createdAtLayouts {
		created, err = time.Parse(layout, createdAt)
		if err == nil {
			break
		}
	}
	if err != nil {
		return 0, fmt.Errorf("%s: не удалось разобрать дату создания %q", op, createdAt)
	}

	hours := int(now.Sub(created).Hours())
	if hours < 0 {
		return 0, nil
	}

	return hours, nil
}

func SeverityFor(hours int) Severity {
	switch {
	case hours >= highAgeHours:
		return SeverityHigh
	case hours >= mediumAgeHours:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
