package save

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mes-analytics/internal/storage"
)

type MockSaveReview struct {
	mock.Mock
}

func (m *MockSaveReview) SaveReview(ctx context.Context, req storage.SaveReviewRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func TestSaveReviewOperation_Success(t *testing.T) {
	mockStore := new(MockSaveReview)
	mockStore.On("SaveReview", mock.Anything, mock.MatchedBy(func(req storage.SaveReviewRequest) bool {
		return req.MachineID == 1 && req.Reason == "Переналадка полдня"
	})).Return(nil)

	body := `{
		"machine_id": 1,
		"log_date": "2026-03-09",
		"expected_minutes": 690,
		"actual_minutes": 500,
		"utilization": 72.46,
		"reason": "Переналадка полдня",
		"reviewer": "Мастер смены"
	}`

	handler := SaveReviewOperation(slog.New(slog.NewTextHandler(io.Discard, nil)), mockStore)
	req := httptest.NewRequest(http.MethodPost, "/api/utilization/review", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockStore.AssertExpectations(t)
}

func TestSaveReviewOperation_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"битый json", `{machine_id`},
		{"без станка", `{"log_date":"2026-03-09","reason":"x","reviewer":"y"}`},
		{"без даты", `{"machine_id":1,"reason":"x","reviewer":"y"}`},
		{"без причины", `{"machine_id":1,"log_date":"2026-03-09","reviewer":"y"}`},
		{"без автора", `{"machine_id":1,"log_date":"2026-03-09","reason":"x"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockStore := new(MockSaveReview)

			handler := SaveReviewOperation(slog.New(slog.NewTextHandler(io.Discard, nil)), mockStore)
			req := httptest.NewRequest(http.MethodPost, "/api/utilization/review", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			// до хранилища запрос не дошёл
			mockStore.AssertNotCalled(t, "SaveReview", mock.Anything, mock.Anything)
		})
	}
}
