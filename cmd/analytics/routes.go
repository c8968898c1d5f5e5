package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getdowntime "mes-analytics/http-server/downtime/get"
	getflow "mes-analytics/http-server/flow/get"
	getreview "mes-analytics/http-server/review/get"
	savereview "mes-analytics/http-server/review/save"
	getutilization "mes-analytics/http-server/utilization/get"
	"mes-analytics/internal/service/flow"
	"mes-analytics/internal/service/utilization"
	"mes-analytics/internal/storage/mysql"
)

func routes(log *slog.Logger, storage *mysql.Storage, flowService *flow.Service, utilService *utilization.Service) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Корзины блокировок и вердикт по потоку для дашборда
	router.Get("/api/analytics/flow", getflow.GetFlowStatus(log, flowService))

	// Загрузка станков за диапазон дат
	router.Get("/api/analytics/utilization", getutilization.GetUtilization(log, utilService))

	// Парето простоев и брак по станкам
	router.Get("/api/analytics/downtime", getdowntime.GetDowntime(log, utilService))

	// Разборы низкой загрузки: чтение и отправка мастером
	router.Get("/api/utilization/reviews", getreview.GetReviews(log, storage))
	router.Post("/api/utilization/review", savereview.SaveReviewOperation(log, storage))

	// Статика дашборда; сервер работает и без собранного фронтенда
	frontendDir := "./frontend-dist"
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("Папка фронтенда не найдена, отдаём только API", "path", frontendDir)
		return router
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	// SPA fallback: любой другой путь → index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
