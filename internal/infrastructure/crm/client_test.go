package crm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reachdesk/internal/domain/response"
	"reachdesk/internal/domain/ticket"
	vo "reachdesk/internal/domain/ticket/valueobjects"
	"reachdesk/internal/shared/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, opts...)
}

func TestDoRequestSendsSessionCookies(t *testing.T) {
	var gotSession, gotCSRFCookie, gotCSRFHeader string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("sessionid"); err == nil {
			gotSession = c.Value
		}
		if c, err := r.Cookie("csrftoken"); err == nil {
			gotCSRFCookie = c.Value
		}
		gotCSRFHeader = r.Header.Get("X-CSRFToken")
		w.WriteHeader(http.StatusOK)
	})
	bound := client.WithSession(Session{SessionID: "sess-1", CSRFToken: "tok-1"})

	err := bound.doRequest(context.Background(), http.MethodGet, "/api/tickets/", nil, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "sess-1", gotSession)
	assert.Equal(t, "tok-1", gotCSRFCookie)
	assert.Empty(t, gotCSRFHeader, "safe methods must not carry the CSRF header")
}

func TestDoRequestSetsCSRFHeaderOnWrites(t *testing.T) {
	var gotHeader string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-CSRFToken")
		w.WriteHeader(http.StatusOK)
	})
	bound := client.WithSession(Session{SessionID: "sess-1", CSRFToken: "tok-1"})

	err := bound.doRequest(context.Background(), http.MethodPost, "/api/tickets/1/claim", nil, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "tok-1", gotHeader)
}

func TestDoRequestMapsBackendErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		errorType  errors.ErrorType
		wantStatus int
	}{
		{
			name:       "not found",
			statusCode: http.StatusNotFound,
			body:       `{"detail":"No Ticket matches the given query."}`,
			errorType:  errors.ErrorTypeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unauthorized",
			statusCode: http.StatusUnauthorized,
			body:       `{"detail":"Authentication credentials were not provided."}`,
			errorType:  errors.ErrorTypeUnauthorized,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "forbidden",
			statusCode: http.StatusForbidden,
			body:       `{"detail":"You do not have permission."}`,
			errorType:  errors.ErrorTypeForbidden,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "validation failure keeps backend status",
			statusCode: http.StatusBadRequest,
			body:       `{"ticket_status":["invalid transition"]}`,
			errorType:  errors.ErrorTypeUpstream,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "server error",
			statusCode: http.StatusInternalServerError,
			body:       "boom",
			errorType:  errors.ErrorTypeUpstream,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			})

			err := client.doRequest(context.Background(), http.MethodGet, "/api/tickets/1", nil, nil, nil)

			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.errorType, appErr.Type)
			assert.Equal(t, tt.wantStatus, appErr.Code)
			assert.Contains(t, appErr.Details, tt.body, "backend payload must survive verbatim")
		})
	}
}

func TestDecodeListAcceptsBothWireShapes(t *testing.T) {
	type item struct {
		ID int `json:"id"`
	}

	t.Run("bare array", func(t *testing.T) {
		items, total, err := decodeList[item](json.RawMessage(`[{"id":1},{"id":2}]`))
		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, int64(2), total)
	})

	t.Run("paginated envelope", func(t *testing.T) {
		items, total, err := decodeList[item](json.RawMessage(`{"results":[{"id":7}],"count":41}`))
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, int64(41), total)
	})

	t.Run("empty envelope yields empty slice", func(t *testing.T) {
		items, total, err := decodeList[item](json.RawMessage(`{"count":0}`))
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
		assert.Equal(t, int64(0), total)
	})

	t.Run("malformed payload", func(t *testing.T) {
		_, _, err := decodeList[item](json.RawMessage(`"nope"`))
		require.Error(t, err)
		assert.True(t, errors.IsUpstreamError(err))
	})
}

func TestListTicketsLegacyServesFromReaches(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[
			{"rid":10,"status":1,"assigned":"123","title":"Call Alice","description":"","type":"call","priority":4},
			{"rid":11,"status":0,"assigned":null,"title":"Call Bob","description":"","type":"call","priority":0}
		]`))
	}, WithLegacyNumericEncoding())

	tickets, total, err := client.ListTickets(context.Background(), ticket.ListFilter{Page: 1, PageSize: 20})

	require.NoError(t, err)
	assert.Equal(t, "/api/reaches/priority/", gotPath)
	assert.Equal(t, int64(2), total)
	require.Len(t, tickets, 2)

	assert.Equal(t, 10, tickets[0].ID)
	assert.Equal(t, vo.StatusTodo, tickets[0].Status)
	assert.Equal(t, vo.Priority(0), tickets[0].Priority, "legacy ascending priority is mirrored")
	assert.True(t, tickets[0].IsClaimed())

	assert.Equal(t, vo.StatusOpen, tickets[1].Status)
	assert.Equal(t, vo.Priority(4), tickets[1].Priority)
	assert.False(t, tickets[1].IsClaimed())
}

func TestListTicketsLegacyStatusFilter(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[
			{"rid":2,"status":3,"assigned":null,"title":"b","description":"","type":"","priority":2}
		]`))
	}, WithLegacyNumericEncoding())

	status := vo.StatusBlocked
	tickets, total, err := client.ListTickets(context.Background(), ticket.ListFilter{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, "/api/reaches/by-status/3/", gotPath)
	assert.Equal(t, int64(1), total)
	require.Len(t, tickets, 1)
	assert.Equal(t, 2, tickets[0].ID)
}

func TestListTicketsLegacyCanceledHasNoEncoding(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}, WithLegacyNumericEncoding())

	status := vo.StatusCanceled
	tickets, total, err := client.ListTickets(context.Background(), ticket.ListFilter{Status: &status})

	require.NoError(t, err)
	assert.Empty(t, tickets)
	assert.Zero(t, total)
}

func TestListTicketsLegacyTypeFilter(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}, WithLegacyNumericEncoding())

	ticketType := vo.TypeRecruit
	_, _, err := client.ListTickets(context.Background(), ticket.ListFilter{Type: &ticketType})

	require.NoError(t, err)
	assert.Equal(t, "/api/reaches/by-type/recruit/", gotPath)
}

func TestUpdateTicketStatusBodyShapes(t *testing.T) {
	t.Run("canonical sends string status", func(t *testing.T) {
		var gotBody map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Write([]byte(`{"id":5,"title":"t","ticket_status":"IN_PROGRESS","ticket_type":"RECRUIT","priority":2}`))
		})

		updated, err := client.UpdateTicketStatus(context.Background(), 5, vo.StatusInProgress)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"ticket_status": "IN_PROGRESS"}, gotBody)
		assert.Equal(t, vo.StatusInProgress, updated.Status)
	})

	t.Run("legacy sends numeric code", func(t *testing.T) {
		var gotBody map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Write([]byte(`{}`))
		}, WithLegacyNumericEncoding())

		_, err := client.UpdateTicketStatus(context.Background(), 5, vo.StatusCompleted)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"status": float64(4)}, gotBody)
	})

	t.Run("legacy rejects canceled", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("no request expected")
		}, WithLegacyNumericEncoding())

		_, err := client.UpdateTicketStatus(context.Background(), 5, vo.StatusCanceled)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no legacy encoding")
	})
}

func TestCreateAndUpdateResponseUseDistinctEndpoints(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody responsePayload
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(responsePayload{ID: 99, ReachID: gotBody.ReachID, PersonID: gotBody.PersonID, Response: gotBody.Response})
	}
	key := response.Key{ReachID: 7, PersonID: "555"}

	t.Run("create", func(t *testing.T) {
		client := newTestClient(t, handler)

		created, err := client.CreateResponse(context.Background(), key, response.ValueAccepted)

		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/api/volunteer-responses/", gotPath)
		assert.Equal(t, 1, gotBody.Response)
		assert.Equal(t, 99, created.ID)
		assert.Equal(t, key, created.Key())
	})

	t.Run("update by composite key", func(t *testing.T) {
		client := newTestClient(t, handler)

		updated, err := client.UpdateResponseByKeys(context.Background(), key, response.ValueRejected)

		require.NoError(t, err)
		assert.Equal(t, http.MethodPatch, gotMethod)
		assert.Equal(t, "/api/volunteer-responses/update-by-keys/", gotPath)
		assert.Equal(t, 2, gotBody.Response)
		assert.Equal(t, response.ValueRejected, updated.Value)
	})
}

func TestResponseLegacyValueEncoding(t *testing.T) {
	var gotBody responsePayload
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(responsePayload{ID: 1, ReachID: gotBody.ReachID, PersonID: gotBody.PersonID, Response: gotBody.Response})
	}, WithLegacyNumericEncoding())
	key := response.Key{ReachID: 3, PersonID: "42"}

	accepted, err := client.CreateResponse(context.Background(), key, response.ValueAccepted)
	require.NoError(t, err)
	assert.Equal(t, 1, gotBody.Response)
	assert.Equal(t, response.ValueAccepted, accepted.Value)

	rejected, err := client.UpdateResponseByKeys(context.Background(), key, response.ValueRejected)
	require.NoError(t, err)
	assert.Equal(t, 0, gotBody.Response, "legacy revision encodes rejection as 0")
	assert.Equal(t, response.ValueRejected, rejected.Value)
}

func TestSearchPeopleSendsQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/people/search/", r.URL.Path)
		assert.Equal(t, "ali", r.URL.Query().Get("q"))
		w.Write([]byte(`[{"did":"123","name":"Alice","email":null,"phone":null}]`))
	})

	people, err := client.SearchPeople(context.Background(), "ali")

	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "123", people[0].DID)
	assert.Equal(t, "Alice", people[0].Name)
}

func TestLoginCapturesSessionCookies(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/accounts/login/", r.URL.Path)
		if r.Method == http.MethodGet {
			http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "anon-tok"})
			return
		}

		assert.Equal(t, "anon-tok", r.Header.Get("X-CSRFToken"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "alice", r.PostFormValue("login"))
		assert.Equal(t, "secret", r.PostFormValue("password"))

		http.SetCookie(w, &http.Cookie{Name: "sessionid", Value: "sess-9"})
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "rotated-tok"})
		w.Header().Set("Location", "/")
		w.WriteHeader(http.StatusFound)
	})

	session, err := client.Login(context.Background(), "alice", "secret")

	require.NoError(t, err)
	assert.Equal(t, "sess-9", session.SessionID)
	assert.Equal(t, "rotated-tok", session.CSRFToken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "anon-tok"})
		// The form re-renders with a 200 when credentials are wrong.
		w.WriteHeader(http.StatusOK)
	})

	_, err := client.Login(context.Background(), "alice", "wrong")

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestCurrentUserRequiresSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("sessionid"); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Authentication credentials were not provided."}`))
			return
		}
		w.Write([]byte(`{"id":1,"username":"alice","email":"alice@example.org","first_name":"Alice","last_name":"Smith"}`))
	})

	_, err := client.CurrentUser(context.Background())
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)

	user, err := client.WithSession(Session{SessionID: "sess-1"}).CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Alice Smith", user.DisplayName())
}
