package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	models "TradeScout/internal/domain/models"
	icache "TradeScout/internal/service/cache"
	"TradeScout/internal/service/metrics"
	"TradeScout/internal/service/ratelimit"
	"TradeScout/internal/services/analysis"
	"TradeScout/internal/usecase"
	xhttp "TradeScout/pkg/http"
	applogger "TradeScout/pkg/logger"
	"TradeScout/pkg/util"

	"github.com/labstack/echo/v4"
)

// SignalsHandler exposes the analytics endpoints over Echo.
type SignalsHandler struct {
	scanner  *usecase.SignalScanner
	forecast *usecase.ForecastUseCase
	briefing *usecase.BriefingUseCase
	cache    icache.BytesCache
	cacheTTL time.Duration
	rl       *ratelimit.Limiter
	l        *applogger.Logger
}

func NewSignalsHandler(scanner *usecase.SignalScanner, forecast *usecase.ForecastUseCase, briefing *usecase.BriefingUseCase) *SignalsHandler {
	metrics.Register()
	return &SignalsHandler{
		scanner:  scanner,
		forecast: forecast,
		briefing: briefing,
		cacheTTL: 5 * time.Minute,
		rl:       ratelimit.New(),
	}
}

func (h *SignalsHandler) SetCache(c icache.BytesCache) { h.cache = c }

// SetCacheTTL overrides how long cached response bodies live.
func (h *SignalsHandler) SetCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		h.cacheTTL = ttl
	}
}

// SetLogger injects a structured logger.
func (h *SignalsHandler) SetLogger(l *applogger.Logger) { h.l = l }

func (h *SignalsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/extrema", h.Extrema)
	g.GET("/forecast", h.Forecast)
	g.GET("/forecasts", h.RecentForecasts)
	g.GET("/briefing", h.Briefing)
}

func (h *SignalsHandler) Extrema(c echo.Context) error {
	start := time.Now()
	endpoint := "extrema"
	defer func() { metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.ExtremaRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":"+endpoint, 5, 2) {
		if h.l != nil {
			h.l.Warn("signals.extrema rate_limited", applogger.String("remote", c.RealIP()))
		}
		return xhttp.TooManyRequestsResponse(c)
	}

	now := util.Midnight(time.Now().UTC())
	to := util.ParseDateDefault(req.To, now)
	from := util.ParseDateDefault(req.From, to.AddDate(-1, 0, 0))

	cacheKey := "extrema:" + req.Symbol + ":" + from.Format(util.DateFormat) + ":" + to.Format(util.DateFormat)
	if b, ok := h.cached(cacheKey, endpoint); ok {
		return c.JSONBlob(http.StatusOK, b)
	}

	res, err := h.scanner.Scan(c.Request().Context(), usecase.ScanParams{
		Symbol: req.Symbol,
		From:   from,
		To:     to,
		Stride: req.Stride,
	})
	if err != nil {
		metrics.APIErrors.WithLabelValues(endpoint).Inc()
		if h.l != nil {
			h.l.Error("signals.extrema error", applogger.Error(err))
		}
		if errors.Is(err, analysis.ErrInvalidInput) {
			return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()).WithError(err))
		}
		return xhttp.AppErrorResponse(c, err)
	}
	h.store(cacheKey, endpoint, res)
	return xhttp.SuccessResponse(c, res)
}

func (h *SignalsHandler) Forecast(c echo.Context) error {
	start := time.Now()
	endpoint := "forecast"
	defer func() { metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.ForecastRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":"+endpoint, 5, 2) {
		if h.l != nil {
			h.l.Warn("signals.forecast rate_limited", applogger.String("remote", c.RealIP()))
		}
		return xhttp.TooManyRequestsResponse(c)
	}

	date := util.ParseDateDefault(req.Date, util.Midnight(time.Now().UTC()))

	res, err := h.forecast.Compute(c.Request().Context(), usecase.ForecastParams{
		Symbol:   req.Symbol,
		Date:     date,
		Horizons: req.Horizons,
	})
	if err != nil {
		metrics.APIErrors.WithLabelValues(endpoint).Inc()
		if h.l != nil {
			h.l.Error("signals.forecast error", applogger.Error(err))
		}
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, forecastView(res))
}

func (h *SignalsHandler) RecentForecasts(c echo.Context) error {
	start := time.Now()
	endpoint := "forecasts"
	defer func() { metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.RecentForecastsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":"+endpoint, 5, 2) {
		if h.l != nil {
			h.l.Warn("signals.forecasts rate_limited", applogger.String("remote", c.RealIP()))
		}
		return xhttp.TooManyRequestsResponse(c)
	}

	list, err := h.forecast.Recent(c.Request().Context(), req.Symbol, req.Limit)
	if err != nil {
		metrics.APIErrors.WithLabelValues(endpoint).Inc()
		if h.l != nil {
			h.l.Error("signals.forecasts error", applogger.Error(err))
		}
		return xhttp.AppErrorResponse(c, err)
	}

	views := make([]forecastResponse, len(list))
	for i, f := range list {
		views[i] = forecastView(f)
	}
	return xhttp.SuccessResponse(c, views)
}

func (h *SignalsHandler) Briefing(c echo.Context) error {
	start := time.Now()
	endpoint := "briefing"
	defer func() { metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.BriefingRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":"+endpoint, 2, 1) {
		if h.l != nil {
			h.l.Warn("signals.briefing rate_limited", applogger.String("remote", c.RealIP()))
		}
		return xhttp.TooManyRequestsResponse(c)
	}

	res, err := h.briefing.Brief(c.Request().Context(), usecase.BriefingParams{
		Symbol: req.Symbol,
		Query:  req.Query,
		Days:   req.Days,
	})
	if err != nil {
		metrics.APIErrors.WithLabelValues(endpoint).Inc()
		if h.l != nil {
			h.l.Error("signals.briefing error", applogger.Error(err))
		}
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SignalsHandler) cached(key, endpoint string) ([]byte, bool) {
	if h.cache == nil {
		return nil, false
	}
	b, ok, err := h.cache.GetBytes(key)
	if err != nil {
		if h.l != nil {
			h.l.Warn("signals."+endpoint+" cache_get_error", applogger.Error(err))
		}
		return nil, false
	}
	if ok && h.l != nil {
		h.l.Debug("signals."+endpoint+" cache_hit", applogger.String("key", key))
	}
	return b, ok
}

func (h *SignalsHandler) store(key, endpoint string, v interface{}) {
	if h.cache == nil {
		return
	}
	env := xhttp.APIResponse{Status: http.StatusOK, Message: http.StatusText(http.StatusOK), Data: v}
	b, err := json.Marshal(env)
	if err != nil {
		return
	}
	if err := h.cache.SetBytes(key, b, h.cacheTTL); err != nil && h.l != nil {
		h.l.Warn("signals."+endpoint+" cache_set_error", applogger.Error(err))
	}
}
