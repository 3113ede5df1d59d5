package omni

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"omni-client/internal/constants"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Config holds the settings of a Client. Zero values fall back to the defaults.
type Config struct {
	// Root address of the OpenAI-compatible service, e.g. "http://localhost:8002"
	BaseURL string

	// Upper bound for the whole call, including reading the response body
	Timeout time.Duration

	// Optional; sent as a Bearer token when set
	APIKey string

	// Where the console report is written, defaults to os.Stdout
	Output io.Writer
}

// Client talks to the chat-completion endpoint of an inference service.
// It performs exactly one attempt per call.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *retryablehttp.Client
	reporter   *Reporter
}

// Completion is a successful chat-completion exchange
type Completion struct {
	RequestID string
	Content   string
	Usage     *Usage
	// Payload is the whole decoded response body
	Payload   map[string]interface{}
}

// NewClient creates a Client from config
func NewClient(config Config) *Client {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultTimeout
	}
	output := config.Output
	if output == nil {
		output = os.Stdout
	}

	logger := log.WithFields(logrus.Fields{
		"base_url": baseURL,
		"timeout":  timeout,
	})
	logger.Debug("Creating new omni client")

	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = &leveledLogger{entry: logger}
	client.HTTPClient.Timeout = timeout
	if config.APIKey != "" {
		client.HTTPClient.Transport = &HttpTransportWithBearer{
			BaseTransport: client.HTTPClient.Transport,
			Token:         config.APIKey,
		}
	}

	return &Client{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: client,
		reporter:   NewReporter(output),
	}
}

// Endpoint returns the chat-completion URL the client posts to
func (c *Client) Endpoint() string {
	return c.baseURL + constants.ChatCompletionsPath
}

// Complete sends request and decodes the response. Every returned error is a *RequestError.
func (c *Client) Complete(ctx context.Context, request Request) (*Completion, error) {
	requestID := uuid.New().String()
	logger := log.WithFields(logrus.Fields{
		"request_id": requestID,
		"endpoint":   c.Endpoint(),
		"video_url":  request.VideoURL,
	})

	body, err := json.Marshal(request.payload())
	if err != nil {
		logger.WithError(err).Error("Failed to encode request body")
		return nil, unexpectedError(fmt.Errorf("error encoding request body: %w", err))
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), body)
	if err != nil {
		logger.WithError(err).Error("Failed to create HTTP request")
		return nil, unexpectedError(fmt.Errorf("error creating request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	logger.Debug("Sending chat completion request")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Error("Chat completion request failed")
		return nil, c.transportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.WithError(err).Error("Failed to read response body")
		return nil, c.transportError(err)
	}

	logger = logger.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"duration":    time.Since(start).Round(time.Millisecond),
	})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.WithField("response", string(respBody)).Error("Received non-2xx status")
		return nil, httpStatusError(resp.StatusCode, string(respBody))
	}

	var decoded interface{}
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		logger.WithError(err).WithField("response", string(respBody)).Error("Failed to parse response JSON")
		return nil, unexpectedError(fmt.Errorf("error parsing response JSON: %w", err))
	}
	payload, ok := decoded.(map[string]interface{})
	if !ok {
		logger.WithField("response", string(respBody)).Warn("Response is not a JSON object")
		return nil, unexpectedFormatError(string(respBody))
	}

	var parsed ChatCompletionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		logger.WithError(err).WithField("response", string(respBody)).Error("Response does not match chat completion schema")
		return nil, unexpectedError(fmt.Errorf("error decoding chat completion: %w", err))
	}

	if len(parsed.Choices) == 0 {
		logger.Warn("Response contains no choices")
		return nil, unexpectedFormatError(string(respBody))
	}
	message := parsed.Choices[0].Message
	if message == nil {
		logger.Warn("First choice has no message")
		return nil, unexpectedError(fmt.Errorf("first choice has no message"))
	}

	logger.WithField("content_length", len(message.Content)).Info("Received chat completion")
	return &Completion{
		RequestID: requestID,
		Content:   message.Content,
		Usage:     usageFromPayload(payload),
		Payload:   payload,
	}, nil
}

// transportError sorts a failed round trip into timeout, connection or unexpected.
func (c *Client) transportError(err error) *RequestError {
	if errors.Is(err, context.Canceled) {
		return unexpectedError(err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return timeoutError(c.timeout, err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return connectionError(c.baseURL, err)
	}
	return unexpectedError(err)
}

// SetLogLevel sets the logging level for the omni package
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// SetLogOutput redirects the omni package logs
func SetLogOutput(out io.Writer) {
	log.SetOutput(out)
}

// leveledLogger adapts logrus to retryablehttp so its per-attempt chatter lands at debug level.
type leveledLogger struct {
	entry *logrus.Entry
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Error(msg)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Warn(msg)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Debug(msg)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Debug(msg)
}

func (l *leveledLogger) with(keysAndValues []interface{}) *logrus.Entry {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return l.entry.WithFields(fields)
}
