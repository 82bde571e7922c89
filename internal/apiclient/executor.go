package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"assigna/internal/credentials"
	"assigna/internal/metrics"
	"assigna/internal/service"
)

var errNoData = errors.New("response has no data")

// Refresher exchanges a refresh token for a new token pair.
type Refresher interface {
	RefreshToken(ctx context.Context, refreshToken string) service.AuthResult
}

// Executor sends bearer-authenticated requests. A 401 or 403 triggers one
// refresh exchange and exactly one retry of the same request.
type Executor struct {
	client  *Client
	auth    Refresher
	store   *credentials.Store
	metrics *metrics.Metrics
	logger  *slog.Logger

	// refreshes is keyed by the rejected access token so concurrent
	// rejections of the same token share one exchange.
	refreshes singleflight.Group
}

// NewExecutor creates an executor. A nil m gets a private metrics set.
func NewExecutor(client *Client, auth Refresher, store *credentials.Store, m *metrics.Metrics) *Executor {
	if m == nil {
		m = metrics.New()
	}
	return &Executor{
		client:  client,
		auth:    auth,
		store:   store,
		metrics: m,
		logger:  client.logger.With("component", "executor"),
	}
}

// GetList issues a GET and decodes a list envelope. On success the result is
// always {true, "Ok", data}: the wire-level success flag is not consulted.
func GetList[T any](ctx context.Context, e *Executor, path string) service.Result[[]T] {
	resp, err := e.execute(ctx, http.MethodGet, path, nil)
	if err != nil {
		return service.InternalError[[]T]()
	}
	if !resp.ok() {
		return service.Result[[]T]{Message: service.MsgRequestFailed}
	}

	var env service.Result[[]T]
	if err := json.Unmarshal(resp.body, &env); err != nil {
		e.logger.Error("unmarshal response", "path", path, "error", err)
		return service.InternalError[[]T]()
	}
	if env.Data == nil {
		e.logger.Error("unmarshal response", "path", path, "error", errNoData)
		return service.InternalError[[]T]()
	}

	return service.Result[[]T]{Success: true, Message: service.MsgOK, Data: env.Data}
}

// Post issues a POST with body encoded as JSON. The wire-level envelope is
// returned as-is; an empty body yields a zero Status.
func (e *Executor) Post(ctx context.Context, path string, body any) service.Status {
	data, err := json.Marshal(body)
	if err != nil {
		e.logger.Error("marshal request", "path", path, "error", err)
		return service.Status{Message: service.MsgInternalError}
	}

	resp, err := e.execute(ctx, http.MethodPost, path, data)
	if err != nil {
		return service.Status{Message: service.MsgInternalError}
	}
	if !resp.ok() {
		return service.Status{Message: service.MsgRequestFailed}
	}

	var st service.Status
	if isEmpty(resp.body) {
		return st
	}
	if err := json.Unmarshal(resp.body, &st); err != nil {
		e.logger.Error("unmarshal response", "path", path, "error", err)
		return service.Status{Message: service.MsgInternalError}
	}
	return st
}

// execute runs the attach/send/refresh/retry sequence. Transport errors are
// logged here; the returned response may carry a non-2xx status.
func (e *Executor) execute(ctx context.Context, method, path string, body []byte) (*response, error) {
	requestID := uuid.NewString()
	logger := e.logger.With("request_id", requestID, "method", method, "path", path)

	token := e.store.Token()
	resp, err := e.client.send(ctx, method, path, body, &token, requestID)
	if err != nil {
		logger.Error("request failed", "error", err)
		e.metrics.Requests.WithLabelValues(method, metrics.OutcomeInternal).Inc()
		return nil, err
	}

	if resp.unauthorized() {
		logger.Debug("authorization rejected", "status", resp.status)
		e.refresh(ctx, token.AccessToken, logger)

		token = e.store.Token()
		e.metrics.Retries.Inc()
		resp, err = e.client.send(ctx, method, path, body, &token, requestID)
		if err != nil {
			logger.Error("retry failed", "error", err)
			e.metrics.Requests.WithLabelValues(method, metrics.OutcomeInternal).Inc()
			return nil, err
		}
	}

	if resp.ok() {
		e.metrics.Requests.WithLabelValues(method, metrics.OutcomeOK).Inc()
	} else {
		logger.Debug("request not succeeded", "status", resp.status)
		e.metrics.Requests.WithLabelValues(method, metrics.OutcomeFailed).Inc()
	}
	return resp, nil
}

// refresh exchanges the stored refresh token unless the rejected access token
// has already been replaced. On failure the store is left as it was and the
// caller retries with the old token.
//
// The exchange is detached from ctx so a cancelled caller cannot fail it for
// the other waiters. The HTTP client timeout bounds it.
func (e *Executor) refresh(ctx context.Context, rejected string, logger *slog.Logger) {
	ctx = context.WithoutCancel(ctx)
	e.refreshes.Do(rejected, func() (any, error) {
		current := e.store.Token()
		if current.AccessToken != rejected {
			e.metrics.Refreshes.WithLabelValues(metrics.RefreshShared).Inc()
			return nil, nil
		}

		res := e.auth.RefreshToken(ctx, current.RefreshToken)
		if !res.Success {
			logger.Warn("token refresh failed", "message", res.Message)
			e.metrics.Refreshes.WithLabelValues(metrics.RefreshFailed).Inc()
			return nil, nil
		}

		var expiry time.Time
		if claims, err := ParseClaims(res.Token); err == nil {
			expiry = claims.Expiry()
		}
		e.store.SetTokens(res.Token, res.RefreshToken, expiry)
		e.metrics.Refreshes.WithLabelValues(metrics.RefreshSucceeded).Inc()
		logger.Debug("token refreshed")
		return nil, nil
	})
}
