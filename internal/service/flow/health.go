package flow

import (
	"fmt"
)

type HealthLevel string

const (
	HealthHealthy  HealthLevel = "healthy"
	HealthWarning  HealthLevel = "warning"
	HealthCritical HealthLevel = "critical"
)

// Thresholds — пороги оценки потока. Числа согласованы с производством,
// правятся только через конфиг.
type Thresholds struct {
	CriticalBlockedRatio float64
	CriticalAgedCount    int
	WarningBlockedRatio  float64
	ImbalanceShare       float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		CriticalBlockedRatio: 0.5,
		CriticalAgedCount:    3,
		WarningBlockedRatio:  0.25,
		ImbalanceShare:       0.6,
	}
}

type Health struct {
	Level   HealthLevel `json:"level"`
	Reasons []string    `json:"reasons"`
}

// ScoreHealth сводит счётчики корзин в вердикт по потоку. Деления на ноль
// нет: при пустом входе обе доли равны нулю и вердикт healthy.
func ScoreHealth(counts map[Category]int, totalActive, severelyAged int, th Thresholds) Health {
	totalBlocked := 0
	maxCount := 0
	var maxCategory Category
	for _, cat := range Categories {
		n := counts[cat]
		totalBlocked += n
		if n > maxCount {
			maxCount = n
			maxCategory = cat
		}
	}

	var blockedRatio, maxShare float64
	if totalActive > 0 {
		blockedRatio = float64(totalBlocked) / float64(totalActive)
	}
	if totalBlocked > 0 {
		maxShare = float64(maxCount) / float64(totalBlocked)
	}

	ratioCritical := blockedRatio > th.CriticalBlockedRatio
	agedCritical := severelyAged > th.CriticalAgedCount
	ratioWarning := blockedRatio > th.WarningBlockedRatio
	imbalance := maxShare > th.ImbalanceShare

	level := HealthHealthy
	switch {
	case ratioCritical || agedCritical:
		level = HealthCritical
	case ratioWarning || severelyAged > 0 || imbalance:
		level = HealthWarning
	}

	// Причины в фиксированном порядке: доля блокировок, возраст, перекос.
	var reasons []string
	if ratioCritical || ratioWarning {
		reasons = append(reasons, fmt.Sprintf(
			"Заблокировано %d из %d активных заказов (%.0f%%)",
			totalBlocked, totalActive, blockedRatio*100))
	}
	if severelyAged > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"Заказов в блокировке дольше 72 часов: %d", severelyAged))
	}
	if imbalance {
		reasons = append(reasons, fmt.Sprintf(
			"Скопление в категории «%s»: %.0f%% всех блокировок",
			CategoryTitles[maxCategory], maxShare*100))
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "Поток стабильный, заказы движутся без задержек")
	}

	return Health{Level: level, Reasons: reasons}
}
