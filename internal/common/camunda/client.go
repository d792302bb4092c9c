// internal/common/camunda/client.go
package camunda

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"orientation-workers/internal/common/errors"
	"orientation-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Client wraps the Zeebe gRPC client with broker error mapping and retry logic.
type Client struct {
	client zbc.Client
	config *ClientConfig
}

// ClientConfig holds configuration for the Camunda/Zeebe client.
type ClientConfig struct {
	GatewayAddress         string
	UsePlaintextConnection bool
	ConnectionTimeout      time.Duration
	RequestTimeout         time.Duration
	RetryConfig            *RetryConfig
}

// RetryConfig defines retry behavior for transient failures.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

var DefaultRetryConfig = &RetryConfig{
	MaxRetries: 3,
	BaseDelay:  1 * time.Second,
	MaxDelay:   10 * time.Second,
}

// newZeebeClient is replaced in tests.
var newZeebeClient = zbc.NewClient

// NewClient creates a new Camunda client with default configuration.
func NewClient(ctx context.Context, address string, log logger.Logger) (*Client, error) {
	return NewClientWithConfig(ctx, &ClientConfig{
		GatewayAddress:         address,
		UsePlaintextConnection: true,
		ConnectionTimeout:      10 * time.Second,
		RequestTimeout:         30 * time.Second,
		RetryConfig:            DefaultRetryConfig,
	}, log)
}

// NewClientWithConfig dials the gateway and checks the topology, retrying while the
// broker is unavailable.
func NewClientWithConfig(ctx context.Context, config *ClientConfig, log logger.Logger) (*Client, error) {
	if config.RetryConfig == nil {
		config.RetryConfig = DefaultRetryConfig
	}
	if config.ConnectionTimeout <= 0 {
		config.ConnectionTimeout = 10 * time.Second
	}

	var zeebeClient zbc.Client
	err := Retry(ctx, config.RetryConfig, log, "topology", func(ctx context.Context) error {
		c, err := newZeebeClient(&zbc.ClientConfig{
			GatewayAddress:         config.GatewayAddress,
			UsePlaintextConnection: config.UsePlaintextConnection,
		})
		if err != nil {
			return err
		}

		checkCtx, cancel := context.WithTimeout(ctx, config.ConnectionTimeout)
		defer cancel()
		if _, err := c.NewTopologyCommand().Send(checkCtx); err != nil {
			_ = c.Close()
			return err
		}
		zeebeClient = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Zeebe broker at %s: %w", config.GatewayAddress, err)
	}

	return &Client{
		client: zeebeClient,
		config: config,
	}, nil
}

// GetClient returns the raw Zeebe client for job worker registration.
func (c *Client) GetClient() zbc.Client {
	return c.client
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// HealthCheck performs a topology request against the broker.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.ConnectionTimeout)
	defer cancel()

	if _, err := c.client.NewTopologyCommand().Send(ctx); err != nil {
		return MapZeebeError(err, "topology")
	}
	return nil
}

// Retry runs fn with exponential backoff until it succeeds, fails with a
// non-retryable broker error, or the retry budget is spent. The returned error is
// always a *errors.StandardError carrying a broker code.
func Retry(ctx context.Context, cfg *RetryConfig, log logger.Logger, operation string, fn func(context.Context) error) error {
	if cfg == nil {
		cfg = DefaultRetryConfig
	}

	delay := cfg.BaseDelay
	for attempt := 0; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		mapped := MapZeebeError(err, operation)
		if !mapped.Retryable || attempt >= cfg.MaxRetries {
			return mapped.WithMetadata("attempts", attempt+1)
		}

		log.Warn("zeebe operation failed, retrying", map[string]interface{}{
			"operation":   operation,
			"attempt":     attempt + 1,
			"maxRetries":  cfg.MaxRetries,
			"nextRetryIn": delay.String(),
			"error":       err.Error(),
		})

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return errors.NewBrokerError(errors.ErrCodeBrokerTimeout, operation, ctx.Err()).
				WithMetadata("attempts", attempt+1)
		}

		delay *= 2
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
}

// MapZeebeError converts a gateway error into a broker StandardError. gRPC status
// codes are used when present, otherwise the message is matched.
func MapZeebeError(err error, operation string) *errors.StandardError {
	if stdErr, ok := errors.AsStandardError(err); ok {
		return stdErr
	}
	return errors.NewBrokerError(brokerCode(err), operation, err)
}

func brokerCode(err error) errors.ErrorCode {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.ErrCodeBrokerTimeout
	}

	if st, ok := status.FromError(err); ok && st.Code() != codes.Unknown {
		switch st.Code() {
		case codes.Unavailable, codes.ResourceExhausted, codes.Aborted:
			return errors.ErrCodeBrokerUnavailable
		case codes.DeadlineExceeded, codes.Canceled:
			return errors.ErrCodeBrokerTimeout
		default:
			return errors.ErrCodeBrokerRejected
		}
	}

	lowerMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lowerMsg, "timeout") ||
		strings.Contains(lowerMsg, "deadline exceeded"):
		return errors.ErrCodeBrokerTimeout

	case strings.Contains(lowerMsg, "connection refused") ||
		strings.Contains(lowerMsg, "connection reset") ||
		strings.Contains(lowerMsg, "unavailable") ||
		strings.Contains(lowerMsg, "unreachable") ||
		strings.Contains(lowerMsg, "broken pipe"):
		return errors.ErrCodeBrokerUnavailable

	default:
		return errors.ErrCodeBrokerRejected
	}
}
