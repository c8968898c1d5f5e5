package storage

// Статусы кооперации (внешней обработки) у заказа.
const (
	ExternalStatusPending    = "pending"
	ExternalStatusInProgress = "in_progress"
	ExternalStatusDone       = "done"
)

// WorkOrderSnapshot — срез заказа на момент выборки. Движок аналитики его
// не изменяет и не сохраняет.
type WorkOrderSnapshot struct {
	ID                 int     `json:"id"`
	OrderNum           string  `json:"order_num"`
	Customer           string  `json:"customer"`
	ItemCode           string  `json:"item_code"`
	Quantity           int     `json:"quantity"`
	DueDate            string  `json:"due_date"`
	CreatedAt          string  `json:"created_at"`
	MaterialQcPassed   bool    `json:"material_qc_passed"`
	FirstPieceQcPassed bool    `json:"first_piece_qc_passed"`
	ExternalStatus     *string `json:"external_status"`
	ProgressPct        float64 `json:"progress_pct"`
}
