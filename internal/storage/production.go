package storage

type Machine struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductionLog — сменный журнал по станку. Время смены хранится строками
// вида "08:30"; обе границы могут отсутствовать у старых записей.
type ProductionLog struct {
	ID             int      `json:"id"`
	MachineID      int      `json:"machine_id"`
	LogDate        string   `json:"log_date"`
	ShiftStart     *string  `json:"shift_start"`
	ShiftEnd       *string  `json:"shift_end"`
	RuntimeMinutes float64  `json:"runtime_minutes"`
	Efficiency     *float64 `json:"efficiency"`
	Output         int      `json:"output"`
	Rejections     int      `json:"rejections"`
}

// DowntimeEvent — простой с причиной свободным текстом, категорию
// назначает справочник constants.DowntimeReasonCategory.
type DowntimeEvent struct {
	MachineID int     `json:"machine_id"`
	LogDate   string  `json:"log_date"`
	Reason    string  `json:"reason"`
	Minutes   float64 `json:"minutes"`
}

type ScrapRow struct {
	MachineID   int    `json:"machine_id"`
	MachineName string `json:"machine_name"`
	Rejections  int    `json:"rejections"`
	Output      int    `json:"output"`
}
