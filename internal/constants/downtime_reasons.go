package constants

// Категория для причин, которых нет в справочнике.
const DowntimeFallbackCategory = "Прочее"

const (
	CategoryBreakdown   = "Поломка оборудования"
	CategoryChangeover  = "Переналадка"
	CategoryNoMaterial  = "Отсутствие материала"
	CategoryNoOperator  = "Отсутствие оператора"
	CategoryMaintenance = "Плановое обслуживание"
)

var DowntimeCategories = []string{
	CategoryBreakdown,
	CategoryChangeover,
	CategoryNoMaterial,
	CategoryNoOperator,
	CategoryMaintenance,
	DowntimeFallbackCategory,
}

// DowntimeReasonCategory — причина из сменного журнала -> категория.
// Причины пишут операторы, список пополняется по мере появления новых.
var DowntimeReasonCategory = map[string]string{
	// TODO поломки
	"Поломка шпинделя":          CategoryBreakdown,
	"Поломка гидравлики":        CategoryBreakdown,
	"Отказ ЧПУ":                 CategoryBreakdown,
	"Обрыв пильного диска":      CategoryBreakdown,
	"Замена пильного диска":     CategoryBreakdown,
	"Ремонт электрики":          CategoryBreakdown,
	"Не работает подача прутка": CategoryBreakdown,

	// TODO переналадка
	"Переналадка на другой профиль": CategoryChangeover,
	"Переналадка оснастки":          CategoryChangeover,
	"Смена программы":               CategoryChangeover,
	"Пробная деталь после наладки":  CategoryChangeover,

	// TODO материал
	"Ожидание профиля со склада": CategoryNoMaterial,
	"Нет заготовки":              CategoryNoMaterial,
	"Ожидание фурнитуры":         CategoryNoMaterial,
	"Брак заготовки":             CategoryNoMaterial,

	// TODO оператор
	"Нет оператора":     CategoryNoOperator,
	"Оператор на учебе": CategoryNoOperator,
	"Обед сверх нормы":  CategoryNoOperator,

	// TODO ППР
	"Плановое ТО":         CategoryMaintenance,
	"Смазка направляющих": CategoryMaintenance,
	"Чистка станка":       CategoryMaintenance,
	"Поверка инструмента": CategoryMaintenance,
}
