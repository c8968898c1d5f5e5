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

type ResponseUtilization struct {
	Machines []*utilization.MachineReport `json:"machines"`
	Status   string                       `json:"status"`
	Error    string                       `json:"error"`
}

type MachineUtilization interface {
	MachineUtilization(ctx context.Context, from, to string, machineID int) ([]*utilization.MachineReport, error)
}

// GetUtilization — загрузка станков за диапазон ?from=...&to=...,
// необязательный ?machine= сужает до одного станка.
func GetUtilization(log *slog.Logger, analytics MachineUtilization) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.utilization.get.GetUtilization"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		machineStr := r.URL.Query().Get("machine")

		if from == "" || to == "" {
			log.Error("Не указан диапазон дат")
			http.Error(w, "Missing from or to", http.StatusBadRequest)
			return
		}

		var machineID int
		var err error
		if machineStr != "" {
			machineID, err = strconv.Atoi(machineStr)
			if err != nil {
				log.Error("Некорректный id станка", slog.String("machine", machineStr))
				http.Error(w, "Invalid machine", http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		machines, err := analytics.MachineUtilization(ctx, from, to, machineID)
		if err != nil {
			log.Error("Ошибка расчёта загрузки станков", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseUtilization{Error: "Не удалось рассчитать загрузку станков"})
			return
		}

		render.JSON(w, r, ResponseUtilization{
			Machines: machines,
			Status:   strconv.Itoa(http.StatusOK),
		})
	}
}
