package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"mes-analytics/internal/storage"
)

type SaveReview interface {
	SaveReview(ctx context.Context, req storage.SaveReviewRequest) error
}

// SaveReviewOperation — приём разбора низкой загрузки от мастера. Движок
// аналитики эти записи только читает, вся запись идёт через этот обработчик.
func SaveReviewOperation(log *slog.Logger, result SaveReview) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.review.save.SaveReviewOperation"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req storage.SaveReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.MachineID == 0 {
			log.Error("Не указан станок", slog.Any("review", req))
			http.Error(w, "machine_id is required", http.StatusBadRequest)
			return
		}
		if req.LogDate == "" {
			log.Error("Не указана дата", slog.Any("review", req))
			http.Error(w, "log_date is required", http.StatusBadRequest)
			return
		}
		if req.Reason == "" {
			log.Error("Пустая причина низкой загрузки", slog.Any("review", req))
			http.Error(w, "reason is required", http.StatusBadRequest)
			return
		}
		if req.Reviewer == "" {
			log.Error("Не указан автор разбора", slog.Any("review", req))
			http.Error(w, "reviewer is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := result.SaveReview(ctx, req); err != nil {
			log.Error("Ошибка сохранения разбора загрузки", slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("Разбор загрузки сохранён",
			slog.Int("machine_id", req.MachineID),
			slog.String("log_date", req.LogDate),
		)

		render.JSON(w, r, map[string]interface{}{
			"status":  "success",
			"machine": req.MachineID,
			"date":    req.LogDate,
		})
	}
}
