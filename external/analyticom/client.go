package analyticom

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-views/internal/domain/match"
	"github.com/riskibarqy/league-views/internal/domain/rawdata"
	"github.com/riskibarqy/league-views/internal/platform/logging"
	"github.com/riskibarqy/league-views/internal/platform/resilience"
	"github.com/riskibarqy/league-views/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultBaseURL       = "https://api-latam.analyticom.de/api/live/FCF"
	DefaultCompetitionID = "274811838"

	SourceName         = "analyticom"
	entityTypeMatches  = "matches_page"
	defaultTimeout     = 15 * time.Second
	maxResponseBody    = 16 << 20
	maxLoggedBodyBytes = 512
)

var errFeedTransient = crerr.New("analyticom transient failure")

var tracer = otel.Tracer("league-views/external/analyticom")

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	CompetitionID  string
	APIKey         string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	// Archive receives every successfully decoded page. Optional.
	Archive rawdata.Repository
}

// Client reads the competition feed. It implements match.Source.
type Client struct {
	httpClient    *fasthttp.Client
	baseURL       string
	competitionID string
	apiKey        string
	timeout       time.Duration
	logger        *logging.Logger
	breaker       *resilience.CircuitBreaker
	archive       rawdata.Repository
}

type matchesEnvelope struct {
	Result []match.RawMatch `json:"result"`
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                "league-views",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxResponseBody,
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	competitionID := strings.TrimSpace(cfg.CompetitionID)
	if competitionID == "" {
		competitionID = DefaultCompetitionID
	}

	breaker := resilience.NewCircuitBreaker(cfg.CircuitBreaker)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("analyticom circuit breaker state changed", "from", from, "to", to)
	})

	return &Client{
		httpClient:    httpClient,
		baseURL:       baseURL,
		competitionID: competitionID,
		apiKey:        strings.TrimSpace(cfg.APIKey),
		timeout:       timeout,
		logger:        logger,
		breaker:       breaker,
		archive:       cfg.Archive,
	}
}

func (c *Client) FetchMatches(ctx context.Context, r match.Range, page, pageSize int) ([]match.RawMatch, error) {
	if r != match.RangePast && r != match.RangeFuture {
		return nil, fmt.Errorf("%w: unsupported range %q", usecase.ErrInvalidInput, r)
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = usecase.DefaultPageSize
	}

	ctx, span := tracer.Start(ctx, "analyticom.Client.FetchMatches", trace.WithAttributes(
		attribute.String("feed.range", string(r)),
		attribute.Int("feed.page", page),
		attribute.Int("feed.page_size", pageSize),
	))
	defer span.End()

	fullURL := c.matchesURL(r, page, pageSize)

	var raw []byte
	err := c.breaker.Do(func() error {
		body, reqErr := c.execute(ctx, fullURL)
		raw = body
		return reqErr
	}, isCircuitFailure)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "analyticom circuit breaker rejected request", "state", c.breaker.State(), "range", r)
			return nil, fmt.Errorf("%w: competition feed is temporarily unavailable", usecase.ErrSourceUnavailable)
		}
		c.logger.WarnContext(ctx, "analyticom request failed", "url", fullURL, "error", err)
		return nil, fmt.Errorf("%w: fetch %s matches: %w", usecase.ErrSourceUnavailable, r, err)
	}

	var envelope matchesEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: decode %s matches body=%s: %w", usecase.ErrSourceUnavailable, r, abbreviateBody(raw), err)
	}
	span.SetAttributes(attribute.Int("feed.records", len(envelope.Result)))

	c.archivePage(ctx, r, page, pageSize, raw)
	return envelope.Result, nil
}

func (c *Client) execute(ctx context.Context, fullURL string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	// the feed expects the credential header name verbatim
	req.Header.DisableNormalizing()
	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("accept", "application/json")
	req.Header.Set("api_key", c.apiKey)

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		return nil, crerr.Wrapf(errFeedTransient, "send request: %v", err)
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	switch {
	case status >= 200 && status < 300:
		return body, nil
	case isRetryableStatus(status):
		return nil, crerr.Wrapf(errFeedTransient, "feed status=%d body=%s", status, abbreviateBody(body))
	default:
		return nil, crerr.Newf("feed status=%d body=%s", status, abbreviateBody(body))
	}
}

func (c *Client) archivePage(ctx context.Context, r match.Range, page, pageSize int, raw []byte) {
	if c.archive == nil {
		return
	}

	sum := sha256.Sum256(raw)
	payload := rawdata.Payload{
		Source:        SourceName,
		EntityType:    entityTypeMatches,
		EntityKey:     c.entityKey(r, page, pageSize),
		CompetitionID: c.competitionID,
		PayloadJSON:   string(raw),
		PayloadHash:   hex.EncodeToString(sum[:]),
		FetchedAt:     time.Now().UTC(),
	}
	if err := c.archive.UpsertMany(ctx, []rawdata.Payload{payload}); err != nil {
		c.logger.WarnContext(ctx, "archive feed page failed", "entity_key", payload.EntityKey, "error", err)
	}
}

func (c *Client) matchesURL(r match.Range, page, pageSize int) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	_, _ = buf.WriteString("/competition/")
	_, _ = buf.WriteString(c.competitionID)
	_, _ = buf.WriteString("/matches/paginated/")
	_, _ = buf.WriteString(string(r))
	_, _ = buf.WriteString("/0?page=")
	_, _ = buf.WriteString(strconv.Itoa(page))
	_, _ = buf.WriteString("&pageSize=")
	_, _ = buf.WriteString(strconv.Itoa(pageSize))

	return buf.String()
}

func (c *Client) entityKey(r match.Range, page, pageSize int) string {
	return fmt.Sprintf("competition/%s/%s?page=%d&pageSize=%d", c.competitionID, r, page, pageSize)
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errFeedTransient)
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	text := strings.TrimSpace(string(raw))
	if len(text) <= maxLoggedBodyBytes {
		return text
	}
	return text[:maxLoggedBodyBytes] + "..."
}
