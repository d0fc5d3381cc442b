package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshydv24/event-nexus-backend/internal/bootstrap"
	eventdomain "github.com/harshydv24/event-nexus-backend/internal/events/domain"
)

// portal drives the full HTTP surface against miniredis: real router,
// real middleware, real services, no database.
type portal struct {
	t      *testing.T
	router *gin.Engine
}

func newPortal(t *testing.T) *portal {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	deps := bootstrap.RouterDeps{
		ServiceName: "event-nexus",
		Version:     "test",
		JWTSecret:   "integration-secret",
		SessionTTL:  time.Hour,
		Redis:       client,
	}
	svc := bootstrap.BuildServices(deps)
	return &portal{t: t, router: bootstrap.BuildRouter(deps, svc)}
}

func (p *portal) do(method, path, token string, body any) *httptest.ResponseRecorder {
	p.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(p.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	p.router.ServeHTTP(w, req)
	return w
}

// account signs up and logs in one user, returning the session token.
func (p *portal) account(email, name, role, uid string) string {
	p.t.Helper()

	w := p.do(http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email": email, "password": "portal-pass-123", "name": name, "role": role, "uid": uid,
	})
	require.Equal(p.t, http.StatusCreated, w.Code, w.Body.String())

	w = p.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": email, "password": "portal-pass-123", "role": role,
	})
	require.Equal(p.t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(p.t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(p.t, resp.Token)
	return resp.Token
}

func decodeEvent(t *testing.T, w *httptest.ResponseRecorder) eventdomain.Event {
	t.Helper()
	var resp struct {
		Event eventdomain.Event `json:"event"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Event
}

func TestEventLifecycle(t *testing.T) {
	p := newPortal(t)

	club := p.account("tech@campus.edu", "Tech Innovators Club", "club", "")
	dept := p.account("dean@campus.edu", "Dean of Students", "department", "")
	student := p.account("priya@campus.edu", "Priya Sharma", "student", "U1")

	// Clubs propose; the proposal always starts pending.
	w := p.do(http.MethodPost, "/api/v1/events", club, gin.H{
		"name":                  "Annual Hackathon",
		"description":           "A 24-hour coding competition.",
		"date":                  "2099-03-15",
		"expected_participants": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	event := decodeEvent(t, w)
	assert.Equal(t, eventdomain.StatusPendingApproval, event.Status)
	assert.Empty(t, event.Participants)
	eventPath := "/api/v1/events/" + event.ID

	// Registration is closed until a venue is set.
	w = p.do(http.MethodPost, eventPath+"/register", student, gin.H{})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Students cannot approve.
	w = p.do(http.MethodPost, eventPath+"/approve", student, nil)
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	// The department approves, then the club picks a venue.
	w = p.do(http.MethodPost, eventPath+"/approve", dept, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, eventdomain.StatusApproved, decodeEvent(t, w).Status)

	w = p.do(http.MethodPost, eventPath+"/venue", club, gin.H{
		"venue": "C1 Auditorium", "time": "09:00",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	event = decodeEvent(t, w)
	assert.Equal(t, eventdomain.StatusVenueSelected, event.Status)
	assert.Equal(t, "C1 Auditorium", event.Venue)
	assert.Equal(t, "09:00", event.Time)

	// Approving twice is an invalid transition.
	w = p.do(http.MethodPost, eventPath+"/approve", dept, nil)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Now the student can register, once.
	w = p.do(http.MethodPost, eventPath+"/register", student, gin.H{})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	event = decodeEvent(t, w)
	require.Len(t, event.Participants, 1)
	assert.Equal(t, "U1", event.Participants[0].StudentUID)

	w = p.do(http.MethodPost, eventPath+"/register", student, gin.H{})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Capacity: expected_participants is 2, one slot left.
	w = p.do(http.MethodPost, eventPath+"/register-team", student, gin.H{
		"members": []gin.H{
			{"student_uid": "U2", "student_name": "Ravi"},
			{"student_uid": "U3", "student_name": "Meera"},
		},
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	w = p.do(http.MethodGet, eventPath+"/participants", student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var parts struct {
		Participants []eventdomain.EventParticipant `json:"participants"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parts))
	assert.Len(t, parts.Participants, 1)

	// The department closes the event out.
	w = p.do(http.MethodPost, eventPath+"/complete", dept, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, eventdomain.StatusCompleted, decodeEvent(t, w).Status)
}

func TestRejectionCarriesFeedback(t *testing.T) {
	p := newPortal(t)

	club := p.account("tech@campus.edu", "Tech Innovators Club", "club", "")
	dept := p.account("dean@campus.edu", "Dean of Students", "department", "")

	w := p.do(http.MethodPost, "/api/v1/events", club, gin.H{
		"name":                  "AI Workshop Series",
		"description":           "Weekly hands-on sessions.",
		"date":                  "2099-04-01",
		"expected_participants": 50,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	event := decodeEvent(t, w)
	eventPath := "/api/v1/events/" + event.ID

	// Rejection without feedback is refused.
	w = p.do(http.MethodPost, eventPath+"/reject", dept, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	w = p.do(http.MethodPost, eventPath+"/reject", dept, gin.H{"feedback": "Budget too high"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rejected := decodeEvent(t, w)
	assert.Equal(t, eventdomain.StatusRejected, rejected.Status)
	assert.Equal(t, "Budget too high", rejected.Feedback)

	// The club still sees the event, feedback attached.
	w = p.do(http.MethodGet, fmt.Sprintf("/api/v1/events?club_id=%s&status=rejected", event.ClubID), club, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var list struct {
		Events []eventdomain.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Events, 1)
	assert.Equal(t, "Budget too high", list.Events[0].Feedback)

	// Rejected events are terminal.
	w = p.do(http.MethodPost, eventPath+"/approve", dept, nil)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestSessionLifecycle(t *testing.T) {
	p := newPortal(t)

	club := p.account("tech@campus.edu", "Tech Innovators Club", "club", "")

	// Requests without a token are refused outright.
	w := p.do(http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = p.do(http.MethodGet, "/api/v1/auth/me", club, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = p.do(http.MethodPost, "/api/v1/auth/logout", club, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The token is dead after logout even though it has not expired.
	w = p.do(http.MethodGet, "/api/v1/auth/me", club, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
}
