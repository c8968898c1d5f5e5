package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"mes-analytics/internal/storage"
)

type ResponseReviews struct {
	Reviews []*storage.UtilizationReview `json:"reviews"`
	Status  string                       `json:"status"`
	Error   string                       `json:"error"`
}

type GetReviewsStorage interface {
	GetReviews(ctx context.Context, from, to string) ([]*storage.UtilizationReview, error)
}

func GetReviews(log *slog.Logger, reviews GetReviewsStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.review.get.GetReviews"

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

		result, err := reviews.GetReviews(ctx, from, to)
		if err != nil {
			log.Error("Ошибка получения разборов загрузки", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseReviews{Error: "Не удалось получить разборы загрузки"})
			return
		}

		render.JSON(w, r, ResponseReviews{
			Reviews: result,
			Status:  strconv.Itoa(http.StatusOK),
		})
	}
}
