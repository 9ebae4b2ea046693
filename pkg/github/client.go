package github

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/arthur-debert/gitcal/pkg/errors"
	"github.com/arthur-debert/gitcal/pkg/logging"
)

const (
	// DefaultEndpoint is the public GitHub GraphQL endpoint.
	DefaultEndpoint = "https://api.github.com/graphql"

	defaultUserAgent = "gitcal"

	// maxErrorBody caps how much of a failed response is kept for the error
	maxErrorBody = 1024
)

const calendarFields = `contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        weeks {
          contributionDays {
            weekday
            contributionLevel
          }
        }
        months {
          name
          totalWeeks
        }
      }
    }`

var (
	viewerQuery = `query($from: DateTime!, $to: DateTime!) {
  viewer {
    ` + calendarFields + `
  }
}`

	userQuery = `query($login: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $login) {
    ` + calendarFields + `
  }
}`
)

// HTTPClient is the subset of *http.Client the Client needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the GitHub GraphQL API.
type Client struct {
	Endpoint  string
	Token     string
	UserAgent string
	HTTP      HTTPClient
}

// NewClient returns a client for the public API using http.DefaultClient.
func NewClient(token string) *Client {
	return &Client{
		Endpoint:  DefaultEndpoint,
		Token:     token,
		UserAgent: defaultUserAgent,
		HTTP:      http.DefaultClient,
	}
}

// Request describes whose calendar to fetch and over which interval.
type Request struct {
	// Username is the login to query. Empty means the token's owner.
	Username string
	From     time.Time
	To       time.Time
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

type collectionOwner struct {
	ContributionsCollection struct {
		ContributionCalendar ContributionCalendar `json:"contributionCalendar"`
	} `json:"contributionsCollection"`
}

type graphQLResponse struct {
	Data struct {
		Viewer *collectionOwner `json:"viewer"`
		User   *collectionOwner `json:"user"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// FetchCalendar performs a single GraphQL round trip and returns the
// contribution calendar for the request.
func (c *Client) FetchCalendar(ctx context.Context, req Request) (*ContributionCalendar, error) {
	logger := logging.GetLogger("github.Client")
	done := logging.LogOperationStart(logger, "fetch calendar")
	defer done()

	payload := graphQLRequest{
		Query: viewerQuery,
		Variables: map[string]interface{}{
			"from": req.From.Format(time.RFC3339),
			"to":   req.To.Format(time.RFC3339),
		},
	}
	if req.Username != "" {
		payload.Query = userQuery
		payload.Variables["login"] = req.Username
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode query")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRequest, "failed to create request")
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent())
	httpReq.Header.Set("Authorization", "Bearer "+c.Token)

	logger.Debug().
		Str("endpoint", c.Endpoint).
		Str("username", req.Username).
		Time("from", req.From).
		Time("to", req.To).
		Msg("Requesting contribution calendar")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRequest, "request to GitHub failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, errors.Newf(errors.ErrAPIStatus,
			"GitHub returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))).
			WithDetail("status", resp.StatusCode)
	}

	var decoded graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, errors.ErrAPIResponse, "failed to decode GitHub response")
	}

	if len(decoded.Errors) > 0 {
		messages := make([]string, len(decoded.Errors))
		for i, e := range decoded.Errors {
			messages[i] = e.Message
		}
		return nil, errors.Newf(errors.ErrAPIResponse,
			"GitHub query failed: %s", strings.Join(messages, "; ")).
			WithDetail("errors", messages)
	}

	owner := decoded.Data.Viewer
	if req.Username != "" {
		owner = decoded.Data.User
	}
	if owner == nil {
		return nil, errors.New(errors.ErrAPIResponse, "GitHub response has no contribution data")
	}

	cal := &owner.ContributionsCollection.ContributionCalendar
	logger.Info().
		Int("weeks", len(cal.Weeks)).
		Int("months", len(cal.Months)).
		Msg("Fetched contribution calendar")
	return cal, nil
}

func (c *Client) userAgent() string {
	if c.UserAgent == "" {
		return defaultUserAgent
	}
	return c.UserAgent
}
