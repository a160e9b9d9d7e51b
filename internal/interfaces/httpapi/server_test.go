package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-views/internal/domain/match"
	matchmock "github.com/riskibarqy/league-views/internal/mocks/domain/match"
	"github.com/riskibarqy/league-views/internal/platform/logging"
	"github.com/riskibarqy/league-views/internal/usecase"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const hour = int64(3_600_000)

func rawMatch(id int64, home, away, status string, kickoff int64, homeGoals, awayGoals int) match.RawMatch {
	return match.RawMatch{
		ID:             id,
		HomeTeam:       match.RawTeam{ID: id * 10, Name: home},
		AwayTeam:       match.RawTeam{ID: id*10 + 1, Name: away},
		LiveStatus:     status,
		DateTimeUTC:    kickoff,
		CurrentMinute:  "FT",
		HomeTeamResult: &match.RawResult{Current: homeGoals},
		AwayTeamResult: &match.RawResult{Current: awayGoals},
	}
}

func scheduled(id int64, home, away string, kickoff int64) match.RawMatch {
	return match.RawMatch{
		ID:          id,
		HomeTeam:    match.RawTeam{ID: id * 10, Name: home},
		AwayTeam:    match.RawTeam{ID: id*10 + 1, Name: away},
		LiveStatus:  "SCHEDULED",
		DateTimeUTC: kickoff,
	}
}

func newTestRouter(t *testing.T) (http.Handler, *matchmock.Source) {
	t.Helper()

	source := matchmock.NewSource(t)
	matches := usecase.NewMatchService(source, match.NewNormalizer(""), usecase.MatchServiceConfig{PageSize: 100}, logging.NewNop())
	handler := NewHandler(
		matches,
		usecase.NewStandingService(matches, nil, 0),
		usecase.NewTopScoreService(matches),
		logging.NewNop(),
	)
	return NewRouter(handler, logging.NewNop(), []string{"*"}), source
}

type envelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       []map[string]any `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func serve(t *testing.T, router http.Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body envelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRouter_ListStandings(t *testing.T) {
	t.Parallel()

	router, source := newTestRouter(t)
	source.On("FetchMatches", mock.Anything, match.RangePast, 1, 100).Return([]match.RawMatch{
		rawMatch(1, "A", "B", "PLAYED", 1*hour, 2, 0),
		rawMatch(2, "B", "C", "PLAYED", 2*hour, 1, 1),
		rawMatch(3, "C", "DESCANSA", "PLAYED", 3*hour, 0, 0),
	}, nil).Once()

	rec, body := serve(t, router, "/v1/standings")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "2.0", body.APIVersion)
	require.Len(t, body.Data, 3)
	first := body.Data[0]
	require.EqualValues(t, 1, first["position"])
	require.EqualValues(t, 3, first["points"])
	require.Equal(t, "A", first["team"].(map[string]any)["name"])
}

func TestRouter_ListTopScorers(t *testing.T) {
	t.Parallel()

	router, source := newTestRouter(t)
	source.On("FetchMatches", mock.Anything, match.RangePast, 1, 100).Return([]match.RawMatch{
		rawMatch(1, "A", "B", "PLAYED", 1*hour, 3, 2),
		rawMatch(2, "C", "A", "PLAYED", 2*hour, 3, 1),
	}, nil).Once()

	rec, body := serve(t, router, "/v1/topscorers")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, body.Data, 3)
	require.Equal(t, "A", body.Data[0]["team"].(map[string]any)["name"])
	require.EqualValues(t, 4, body.Data[0]["goalsFor"])
	require.Equal(t, "C", body.Data[1]["team"].(map[string]any)["name"])
}

func TestRouter_ListUpcomingMatches(t *testing.T) {
	t.Parallel()

	router, source := newTestRouter(t)
	source.On("FetchMatches", mock.Anything, match.RangeFuture, 1, 100).Return([]match.RawMatch{
		scheduled(12, "C", "D", 12*hour),
		scheduled(11, "A", "B", 11*hour),
		scheduled(13, "E", "F", 13*hour),
	}, nil).Once()

	rec, body := serve(t, router, "/v1/matches/upcoming?limit=2")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, body.Data, 2)
	require.EqualValues(t, 11, body.Data[0]["id"])
	require.EqualValues(t, 12, body.Data[1]["id"])
	_, hasScore := body.Data[0]["homeGoals"]
	require.False(t, hasScore, "scheduled match must not carry a score")
}

func TestRouter_ListUpcomingMatches_RejectsBadLimit(t *testing.T) {
	t.Parallel()

	for _, target := range []string{
		"/v1/matches/upcoming?limit=0",
		"/v1/matches/upcoming?limit=11",
		"/v1/matches/upcoming?limit=-1",
		"/v1/matches/upcoming?limit=ten",
	} {
		t.Run(target, func(t *testing.T) {
			t.Parallel()

			router, _ := newTestRouter(t)
			rec, body := serve(t, router, target)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", rec.Code)
			}
			if body.Error == nil || body.Error.Status != "INVALID_ARGUMENT" {
				t.Fatalf("expected INVALID_ARGUMENT error, got %+v", body.Error)
			}
		})
	}
}

func TestRouter_ListPlayedMatches(t *testing.T) {
	t.Parallel()

	router, source := newTestRouter(t)
	source.On("FetchMatches", mock.Anything, match.RangePast, 1, 100).Return([]match.RawMatch{
		rawMatch(1, "A", "B", "PLAYED", 1*hour, 1, 0),
		rawMatch(2, "C", "D", "PLAYED", 2*hour, 0, 0),
	}, nil).Once()

	rec, body := serve(t, router, "/v1/matches/played")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, body.Data, 2)
	require.EqualValues(t, 2, body.Data[0]["id"])
	require.EqualValues(t, 0, body.Data[0]["homeGoals"])
}

func TestRouter_ListMatches_SourceUnavailable(t *testing.T) {
	t.Parallel()

	router, source := newTestRouter(t)
	source.On("FetchMatches", mock.Anything, match.RangePast, 1, 100).Return(nil, errors.New("dial tcp: timeout")).Maybe()
	source.On("FetchMatches", mock.Anything, match.RangeFuture, 1, 100).Return(nil, errors.New("dial tcp: timeout")).Maybe()

	rec, body := serve(t, router, "/v1/matches")

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
	if body.Error == nil || body.Error.Status != "UNAVAILABLE" {
		t.Fatalf("expected UNAVAILABLE error, got %+v", body.Error)
	}
	if body.Error.Message != "competition feed is unavailable" {
		t.Fatalf("upstream error leaked into response: %q", body.Error.Message)
	}
}

func TestRouter_UnknownMethod(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/standings", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}

func TestRecoverPanic(t *testing.T) {
	t.Parallel()

	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/standings", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}
