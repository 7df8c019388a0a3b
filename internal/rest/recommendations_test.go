package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"societyBackend/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecommendationService struct {
	forYouResult domain.ForYouResult
	forYouErr    error
	teaser       []domain.ScoredCompanion
	trackErr     error
	refreshErr   error

	trackedInputs []domain.InteractionInput
	refreshCalls  int
}

func (s *stubRecommendationService) GetForYou(_ context.Context, _ domain.UserID, _, _ int) (domain.ForYouResult, error) {
	return s.forYouResult, s.forYouErr
}

func (s *stubRecommendationService) GetTeaser(_ context.Context, _ domain.UserID, _ int) ([]domain.ScoredCompanion, error) {
	return s.teaser, s.forYouErr
}

func (s *stubRecommendationService) TrackInteraction(_ context.Context, _ domain.UserID, input domain.InteractionInput) error {
	s.trackedInputs = append(s.trackedInputs, input)
	return s.trackErr
}

func (s *stubRecommendationService) Refresh(_ context.Context, _ domain.UserID) error {
	s.refreshCalls++
	return s.refreshErr
}

func newAuthedContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := echo.New().NewContext(req, rec)
	c.Set("user_id", uint(42))
	return c, rec
}

func TestForYou_Success(t *testing.T) {
	svc := &stubRecommendationService{
		forYouResult: domain.ForYouResult{
			Companions: []domain.ScoredCompanion{{CompanionID: 3, Score: 0.8}},
			HasMore:    true,
			Total:      40,
			Strategy:   domain.StrategyHybrid,
		},
	}
	h := NewRecommendationHandler(svc)

	c, rec := newAuthedContext(t, http.MethodGet, "/recommendations/for-you?limit=20&offset=0", "")

	require.NoError(t, h.ForYou(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"strategy":"hybrid"`)
	assert.Contains(t, rec.Body.String(), `"total":40`)
}

func TestForYou_Unauthorized(t *testing.T) {
	h := NewRecommendationHandler(&stubRecommendationService{})

	req := httptest.NewRequest(http.MethodGet, "/recommendations/for-you", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.ForYou(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestForYou_RejectsBadQuery(t *testing.T) {
	h := NewRecommendationHandler(&stubRecommendationService{})

	c, rec := newAuthedContext(t, http.MethodGet, "/recommendations/for-you?limit=500", "")

	require.NoError(t, h.ForYou(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestForYou_ServiceError(t *testing.T) {
	svc := &stubRecommendationService{forYouErr: errors.New("boom")}
	h := NewRecommendationHandler(svc)

	c, rec := newAuthedContext(t, http.MethodGet, "/recommendations/for-you", "")

	require.NoError(t, h.ForYou(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// internals never leak to the client
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestTeaser_Success(t *testing.T) {
	svc := &stubRecommendationService{
		teaser: []domain.ScoredCompanion{{CompanionID: 1}, {CompanionID: 2}},
	}
	h := NewRecommendationHandler(svc)

	c, rec := newAuthedContext(t, http.MethodGet, "/recommendations/for-you/teaser?limit=5", "")

	require.NoError(t, h.Teaser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"companions"`)
}

func TestTrackInteraction_Success(t *testing.T) {
	svc := &stubRecommendationService{}
	h := NewRecommendationHandler(svc)

	body := `{"companion_id": 7, "event_type": "BOOKMARK", "session_id": "s1"}`
	c, rec := newAuthedContext(t, http.MethodPost, "/recommendations/interactions", body)

	require.NoError(t, h.TrackInteraction(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, svc.trackedInputs, 1)
	assert.Equal(t, uint(7), svc.trackedInputs[0].CompanionRef)
	assert.Equal(t, domain.EventBookmark, svc.trackedInputs[0].EventType)
	assert.Equal(t, "s1", svc.trackedInputs[0].SessionID)
}

func TestTrackInteraction_FireAndForget(t *testing.T) {
	svc := &stubRecommendationService{trackErr: errors.New("db down")}
	h := NewRecommendationHandler(svc)

	body := `{"companion_id": 7, "event_type": "VIEW"}`
	c, rec := newAuthedContext(t, http.MethodPost, "/recommendations/interactions", body)

	require.NoError(t, h.TrackInteraction(c))
	// tracking failures never surface to the client
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestTrackInteraction_RejectsMissingFields(t *testing.T) {
	svc := &stubRecommendationService{}
	h := NewRecommendationHandler(svc)

	c, rec := newAuthedContext(t, http.MethodPost, "/recommendations/interactions", `{"companion_id": 7}`)

	require.NoError(t, h.TrackInteraction(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.trackedInputs)
}

func TestRefresh(t *testing.T) {
	svc := &stubRecommendationService{}
	h := NewRecommendationHandler(svc)

	c, rec := newAuthedContext(t, http.MethodPost, "/recommendations/refresh", "")

	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.refreshCalls)
}
