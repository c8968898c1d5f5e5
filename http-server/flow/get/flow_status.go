package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"mes-analytics/internal/service/flow"
)

type ResponseFlow struct {
	Flow   *flow.Status `json:"flow"`
	Status string       `json:"status"`
	Error  string       `json:"error"`
}

type FlowAnalytics interface {
	FlowStatus(ctx context.Context, now time.Time) (*flow.Status, error)
}

func GetFlowStatus(log *slog.Logger, analytics FlowAnalytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.flow.get.GetFlowStatus"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		status, err := analytics.FlowStatus(ctx, time.Now())
		if err != nil {
			log.Error("Ошибка расчёта аналитики потока", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseFlow{Error: "Не удалось рассчитать аналитику потока"})
			return
		}

		log.Info("Аналитика потока рассчитана",
			slog.Int("total_active", status.TotalActive),
			slog.Int("total_blocked", status.TotalBlocked),
			slog.String("health", string(status.Health.Level)),
		)

		render.JSON(w, r, ResponseFlow{
			Flow:   status,
			Status: strconv.Itoa(http.StatusOK),
		})
	}
}
