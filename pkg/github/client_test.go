package github_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	stderrors "errors"

	"github.com/arthur-debert/gitcal/pkg/calendar"
	"github.com/arthur-debert/gitcal/pkg/errors"
	"github.com/arthur-debert/gitcal/pkg/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func newMockClient(doFunc func(req *http.Request) (*http.Response, error)) *mockClient {
	return &mockClient{doFunc: doFunc}
}

func mustLoadFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

var (
	from = time.Date(2026, time.February, 27, 0, 0, 0, 0, time.UTC)
	to   = time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
)

func TestFetchCalendar_Viewer(t *testing.T) {
	fixture := mustLoadFile(t, "testdata/viewer-calendar.json")

	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "gitcal-test", r.Header.Get("User-Agent"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(fixture)
	}))
	defer server.Close()

	client := github.NewClient("secret-token")
	client.Endpoint = server.URL
	client.UserAgent = "gitcal-test"
	client.HTTP = server.Client()

	cal, err := client.FetchCalendar(context.Background(), github.Request{From: from, To: to})
	require.NoError(t, err)

	require.Len(t, cal.Weeks, 3)
	assert.Equal(t, []github.Month{{Name: "Feb", TotalWeeks: 1}, {Name: "Mar", TotalWeeks: 2}}, cal.Months)

	assert.Contains(t, gotBody["query"], "viewer")
	assert.NotContains(t, gotBody["query"], "user(login")
	variables := gotBody["variables"].(map[string]interface{})
	assert.Equal(t, "2026-02-27T00:00:00Z", variables["from"])
	assert.Equal(t, "2026-03-10T00:00:00Z", variables["to"])
	assert.NotContains(t, variables, "login")

	grid, months, err := cal.Grid()
	require.NoError(t, err)
	assert.Equal(t, calendar.LevelFirst, grid.At(5, 0))
	assert.Equal(t, calendar.LevelFourth, grid.At(3, 1))
	assert.Equal(t, calendar.LevelFourth, grid.At(0, 2))
	assert.Equal(t, calendar.LevelNone, grid.At(6, 2))
	assert.NoError(t, calendar.New().WithGrid(grid).WithMonths(months).Validate())
}

func TestFetchCalendar_User(t *testing.T) {
	var gotBody map[string]interface{}
	client := github.NewClient("tkn")
	client.HTTP = newMockClient(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, github.DefaultEndpoint, req.URL.String())
		require.NoError(t, json.NewDecoder(req.Body).Decode(&gotBody))
		return response(http.StatusOK, `{"data":{"user":{"contributionsCollection":{"contributionCalendar":{"weeks":[],"months":[]}}}}}`), nil
	})

	cal, err := client.FetchCalendar(context.Background(), github.Request{Username: "octocat", From: from, To: to})
	require.NoError(t, err)
	assert.Empty(t, cal.Weeks)

	assert.Contains(t, gotBody["query"], "user(login: $login)")
	assert.Equal(t, "octocat", gotBody["variables"].(map[string]interface{})["login"])
}

func TestFetchCalendar_Errors(t *testing.T) {
	tests := []struct {
		name     string
		username string
		doFunc   func(req *http.Request) (*http.Response, error)
		wantCode errors.ErrorCode
		wantMsg  string
	}{
		{
			name: "transport failure",
			doFunc: func(req *http.Request) (*http.Response, error) {
				return nil, stderrors.New("connection refused")
			},
			wantCode: errors.ErrRequest,
			wantMsg:  "connection refused",
		},
		{
			name: "unauthorized",
			doFunc: func(req *http.Request) (*http.Response, error) {
				return response(http.StatusUnauthorized, `{"message":"Bad credentials"}`), nil
			},
			wantCode: errors.ErrAPIStatus,
			wantMsg:  "Bad credentials",
		},
		{
			name: "invalid json",
			doFunc: func(req *http.Request) (*http.Response, error) {
				return response(http.StatusOK, `{"data":`), nil
			},
			wantCode: errors.ErrAPIResponse,
		},
		{
			name:     "graphql errors",
			username: "nobody-here",
			doFunc: func(req *http.Request) (*http.Response, error) {
				return response(http.StatusOK, string(mustLoadFile(t, "testdata/user-not-found.json"))), nil
			},
			wantCode: errors.ErrAPIResponse,
			wantMsg:  "Could not resolve to a User",
		},
		{
			name: "missing data",
			doFunc: func(req *http.Request) (*http.Response, error) {
				return response(http.StatusOK, `{"data":{}}`), nil
			},
			wantCode: errors.ErrAPIResponse,
			wantMsg:  "no contribution data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := github.NewClient("tkn")
			client.HTTP = newMockClient(tt.doFunc)

			_, err := client.FetchCalendar(context.Background(), github.Request{Username: tt.username, From: from, To: to})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestFetchCalendar_StatusDetail(t *testing.T) {
	client := github.NewClient("tkn")
	client.HTTP = newMockClient(func(req *http.Request) (*http.Response, error) {
		return response(http.StatusBadGateway, "upstream down"), nil
	})

	_, err := client.FetchCalendar(context.Background(), github.Request{From: from, To: to})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, errors.GetErrorDetails(err)["status"])
}

func TestFetchCalendar_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	defer server.Close()

	client := github.NewClient("tkn")
	client.Endpoint = server.URL
	client.HTTP = server.Client()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchCalendar(ctx, github.Request{From: from, To: to})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRequest))
	assert.ErrorIs(t, err, context.Canceled)
}
