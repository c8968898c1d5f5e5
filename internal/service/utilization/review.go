package utilization

import (
	"mes-analytics/internal/storage"
)

type ReviewState string

const (
	ReviewNotNeeded ReviewState = "no_review_needed"
	ReviewNeeded    ReviewState = "needs_review"
	ReviewDone      ReviewState = "reviewed"
)

// NeedsReview — нужен ли разбор низкой загрузки. Разбор закрывает только
// запись с непустой причиной; сам движок записи не создаёт и не меняет.
func NeedsReview(utilization, threshold float64, review *storage.UtilizationReview) bool {
	return utilization < threshold && (review == nil || review.Reason == "")
}

// StateFor — текущее состояние станко-дня относительно разбора. Переходы
// между состояниями делают внешние записи и смена порога, не движок.
func StateFor(utilization, threshold float64, review *storage.UtilizationReview) ReviewState {
	if utilization >= threshold {
		return ReviewNotNeeded
	}
	if review == nil || review.Reason == "" {
		return ReviewNeeded
	}
	return ReviewDone
}
