package mysql

import (
	"context"
	"fmt"

	"mes-analytics/internal/storage"
)

func (s *Storage) GetMachines(ctx context.Context) ([]*storage.Machine, error) {
	const op = "storage.mysql.GetMachines"

	query := `SELECT m.id, m.name FROM machines m
		WHERE m.is_active = TRUE
		ORDER BY m.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения справочника станков: %w", op, err)
	}
	defer rows.Close()

	var machines []*storage.Machine
	for rows.Next() {
		var m storage.Machine

		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования станка: %w", op, err)
		}

		machines = append(machines, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return machines, nil
}

// GetProductionLogs — сменные журналы за диапазон дат включительно.
// machineID = 0 значит все станки.
func (s *Storage) GetProductionLogs(ctx context.Context, from, to string, machineID int) ([]*storage.ProductionLog, error) {
	const op = "storage.mysql.GetProductionLogs"

	query := `SELECT pl.id, pl.machine_id, pl.log_date, pl.shift_start, pl.shift_end,
		pl.runtime_minutes, pl.efficiency, pl.output, pl.rejections
		FROM production_logs pl
		WHERE pl.log_date BETWEEN ? AND ?`
	args := []interface{}{from, to}

	if machineID != 0 {
		query += ` AND pl.machine_id = ?`
		args = append(args, machineID)
	}
	query += ` ORDER BY pl.log_date ASC, pl.machine_id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения сменных журналов: %w", op, err)
	}
	defer rows.Close()

	var logs []*storage.ProductionLog
	for rows.Next() {
		var pl storage.ProductionLog

		err := rows.Scan(
			&pl.ID,
			&pl.MachineID,
			&pl.LogDate,
			&pl.ShiftStart,
			&pl.ShiftEnd,
			&pl.RuntimeMinutes,
			&pl.Efficiency,
			&pl.Output,
			&pl.Rejections,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования журнала: %w", op, err)
		}

		logs = append(logs, &pl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return logs, nil
}

func (s *Storage) GetDowntimeEvents(ctx context.Context, from, to string) ([]*storage.DowntimeEvent, error) {
	const op = "storage.mysql.GetDowntimeEvents"

	query := `SELECT de.machine_id, de.log_date, de.reason, de.minutes
		FROM downtime_events de
		WHERE de.log_date BETWEEN ? AND ? AND de.minutes > 0
		ORDER BY de.log_date ASC`

	rows, err := s.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения простоев: %w", op, err)
	}
	defer rows.Close()

	var events []*storage.DowntimeEvent
	for rows.Next() {
		var e storage.DowntimeEvent

		if err := rows.Scan(&e.MachineID, &e.LogDate, &e.Reason, &e.Minutes); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования простоя: %w", op, err)
		}

		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// GetScrapByMachine — выпуск и брак по станкам за диапазон, свёрнутые базой.
func (s *Storage) GetScrapByMachine(ctx context.Context, from, to string) ([]*storage.ScrapRow, error) {
	const op = "storage.mysql.GetScrapByMachine"

	query := `SELECT m.id, m.name,
		COALESCE(SUM(pl.rejections), 0), COALESCE(SUM(pl.output), 0)
		FROM machines m
		JOIN production_logs pl ON pl.machine_id = m.id
		WHERE pl.log_date BETWEEN ? AND ?
		GROUP BY m.id, m.name`

	rows, err := s.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения брака по станкам: %w", op, err)
	}
	defer rows.Close()

	var result []*storage.ScrapRow
	for rows.Next() {
		var sr storage.ScrapRow

		if err := rows.Scan(&sr.MachineID, &sr.MachineName, &sr.Rejections, &sr.Output); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования брака: %w", op, err)
		}

		result = append(result, &sr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
