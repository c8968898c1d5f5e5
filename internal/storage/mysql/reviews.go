package mysql

import (
	"context"
	"fmt"

	"mes-analytics/internal/storage"
)

func (s *Storage) GetReviews(ctx context.Context, from, to string) ([]*storage.UtilizationReview, error) {
	const op = "storage.mysql.GetReviews"

	query := `SELECT ur.id, ur.machine_id, ur.log_date, ur.expected_minutes,
		ur.actual_minutes, ur.utilization, ur.reason, ur.action_taken,
		ur.reviewer, ur.created_at
		FROM utilization_reviews ur
		WHERE ur.log_date BETWEEN ? AND ?
		ORDER BY ur.log_date ASC`

	rows, err := s.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения разборов загрузки: %w", op, err)
	}
	defer rows.Close()

	var reviews []*storage.UtilizationReview
	for rows.Next() {
		var r storage.UtilizationReview

		err := rows.Scan(
			&r.ID,
			&r.MachineID,
			&r.LogDate,
			&r.ExpectedMinutes,
			&r.ActualMinutes,
			&r.Utilization,
			&r.Reason,
			&r.ActionTaken,
			&r.Reviewer,
			&r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования разбора: %w", op, err)
		}

		reviews = append(reviews, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reviews, nil
}

// SaveReview — запись разбора низкой загрузки. На пару (станок, дата)
// хранится один разбор, повторная отправка обновляет его.
func (s *Storage) SaveReview(ctx context.Context, req storage.SaveReviewRequest) error {
	const op = "storage.mysql.SaveReview"

	query := `INSERT INTO utilization_reviews
		(machine_id, log_date, expected_minutes, actual_minutes, utilization,
		 reason, action_taken, reviewer, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE
		expected_minutes = VALUES(expected_minutes),
		actual_minutes = VALUES(actual_minutes),
		utilization = VALUES(utilization),
		reason = VALUES(reason),
		action_taken = VALUES(action_taken),
		reviewer = VALUES(reviewer)`

	_, err := s.db.ExecContext(ctx, query,
		req.MachineID,
		req.LogDate,
		req.ExpectedMinutes,
		req.ActualMinutes,
		req.Utilization,
		req.Reason,
		req.ActionTaken,
		req.Reviewer,
	)
	if err != nil {
		return fmt.Errorf("%s: ошибка сохранения разбора загрузки: %w", op, err)
	}

	return nil
}
