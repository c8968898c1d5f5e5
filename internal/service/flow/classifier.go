package flow

import (
	"mes-analytics/internal/storage"
)

type Category string

const (
	CategoryMaterialQC         Category = "material_qc"
	CategoryFirstPieceQC       Category = "first_piece_qc"
	CategoryExternalProcessing Category = "external_processing"
	CategoryReadyNotStarted    Category = "ready_not_started"
	// CategoryNone — заказ движется, ни в какую корзину не попадает.
	CategoryNone Category = "none"
)

// Categories — все категории блокировок в порядке приоритета.
var Categories = []Category{
	CategoryMaterialQC,
	CategoryFirstPieceQC,
	CategoryExternalProcessing,
	CategoryReadyNotStarted,
}

var CategoryTitles = map[Category]string{
	CategoryMaterialQC:         "Входной контроль материала",
	CategoryFirstPieceQC:       "Контроль первой детали",
	CategoryExternalProcessing: "Кооперация",
	CategoryReadyNotStarted:    "Готов, не запущен",
}

type classifierRule struct {
	category Category
	matches  func(wo *storage.WorkOrderSnapshot) bool
}

// Порядок правил фиксирован технологами: материал держит заказ раньше, чем
// первая деталь, та раньше кооперации и т.д. Побеждает первое совпадение,
// менять порядок нельзя.
var classifierRules = []classifierRule{
	{CategoryMaterialQC, func(wo *storage.WorkOrderSnapshot) bool {
		return !wo.MaterialQcPassed
	}},
	{CategoryFirstPieceQC, func(wo *storage.WorkOrderSnapshot) bool {
		return !wo.FirstPieceQcPassed
	}},
	{CategoryExternalProcessing, func(wo *storage.WorkOrderSnapshot) bool {
		if wo.ExternalStatus == nil {
			return false
		}
		return *wo.ExternalStatus == storage.ExternalStatusPending ||
			*wo.ExternalStatus == storage.ExternalStatusInProgress
	}},
	{CategoryReadyNotStarted, func(wo *storage.WorkOrderSnapshot) bool {
		return wo.ProgressPct == 0
	}},
}

// Classify возвращает ровно одну категорию блокировки заказа либо
// CategoryNone. Чистая функция, результат зависит только от среза заказа.
func Classify(wo *storage.WorkOrderSnapshot) Category {
	for _, rule := range classifierRules {
		if rule.matches(wo) {
			return rule.category
		}
	}

	return CategoryNone
}
