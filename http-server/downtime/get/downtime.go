package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"mes-analytics/internal/service/utilization"
)

type ResponseDowntime struct {
	Report *utilization.DowntimeReport `json:"report"`
	Status string                      `json:"status"`
	Error  string                      `json:"error"`
}

type DowntimeAnalysis interface {
	DowntimeAnalysis(ctx context.Context, from, to string) (*utilization.DowntimeReport, error)
}

func GetDowntime(log *slog.Logger, analytics DowntimeAnalysis) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.downtime.get.GetDowntime"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		if from == "" || to == "" {
			log.Error("Не указан диапазон дат")
			http.Error(w, "Missing from or to", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		report, err := analytics.DowntimeAnalysis(ctx, from, to)
		if err != nil {
			log.Error("Ошибка анализа простоев", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseDowntime{Error: "Не удалось рассчитать анализ простоев"})
			return
		}

		render.JSON(w, r, ResponseDowntime{
			Report: report,
			Status: strconv.Itoa(http.StatusOK),
		})
	}
}
