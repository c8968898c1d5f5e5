package storage

// UtilizationReview — объяснение низкой загрузки станка за день. Пишет его
// человек через обработчик сохранения, движок аналитики только читает.
type UtilizationReview struct {
	ID              int     `json:"id"`
	MachineID       int     `json:"machine_id"`
	LogDate         string  `json:"log_date"`
	ExpectedMinutes float64 `json:"expected_minutes"`
	ActualMinutes   float64 `json:"actual_minutes"`
	Utilization     float64 `json:"utilization"`
	Reason          string  `json:"reason"`
	ActionTaken     *string `json:"action_taken"`
	Reviewer        string  `json:"reviewer"`
	CreatedAt       string  `json:"created_at"`
}

type SaveReviewRequest struct {
	MachineID       int     `json:"machine_id"`
	LogDate         string  `json:"log_date"`
	ExpectedMinutes float64 `json:"expected_minutes"`
	ActualMinutes   float64 `json:"actual_minutes"`
	Utilization     float64 `json:"utilization"`
	Reason          string  `json:"reason"`
	ActionTaken     *string `json:"action_taken"`
	Reviewer        string  `json:"reviewer"`
}
