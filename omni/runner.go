package omni

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// Result is the outcome of Run. When Success is false only Error is set.
type Result struct {
	Success     bool
	Response    string
	RawResponse string
	FullPayload map[string]interface{}
	Usage       *Usage
	// TokensSaved is a word-count estimate, zero unless stripping changed the text
	TokensSaved int
	Error       string
}

// Run performs one chat-completion call for request, reports progress on the
// client's output and folds the outcome into a Result. It never retries.
func (c *Client) Run(ctx context.Context, request Request, stripThinking bool) *Result {
	c.reporter.RequestStarted(c.Endpoint(), request)

	completion, err := c.Complete(ctx, request)
	if err != nil {
		var reqErr *RequestError
		if !errors.As(err, &reqErr) {
			reqErr = unexpectedError(err)
		}
		log.WithFields(logrus.Fields{
			"kind":        reqErr.Kind.String(),
			"status_code": reqErr.StatusCode,
		}).WithError(reqErr).Error("Run failed")
		c.reporter.Failure(reqErr.Error())
		if reqErr.Kind == ErrorKindUnexpectedFormat {
			c.reporter.RawPayload(reqErr.Body)
		}
		return &Result{Success: false, Error: reqErr.Error()}
	}

	response := completion.Content
	if stripThinking {
		response = StripThinking(completion.Content)
	}

	c.reporter.Success(stripThinking)
	c.reporter.Caption(response)

	result := &Result{
		Success:     true,
		Response:    response,
		RawResponse: completion.Content,
		FullPayload: completion.Payload,
		Usage:       completion.Usage,
	}
	changed := stripThinking && response != completion.Content
	if changed {
		result.TokensSaved = EstimateTokensSaved(completion.Content, response)
	}

	if completion.Usage != nil {
		c.reporter.Usage(completion.Usage)
		if changed {
			c.reporter.TokensSaved(result.TokensSaved)
		}
	}

	log.WithFields(logrus.Fields{
		"request_id":   completion.RequestID,
		"stripped":     stripThinking,
		"tokens_saved": result.TokensSaved,
	}).Debug("Run finished")
	return result
}
