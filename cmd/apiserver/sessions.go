package main

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillsenselab/restkit/di"
	apperrors "github.com/skillsenselab/restkit/errors"
	"github.com/skillsenselab/restkit/rest"
	"github.com/skillsenselab/restkit/server"
	"github.com/skillsenselab/restkit/validation"
)

const sessionStoreKey = "session_store"

func init() {
	rest.MustRegister(namespace, &sessionResource{})
}

// Session is a demo API entity.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

type createSessionRequest struct {
	Username string `json:"username" validate:"required,min=2"`
}

// sessionStore is an in-memory session table.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]Session)}
}

func (s *sessionStore) list() []Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	return out
}

func (s *sessionStore) get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *sessionStore) create(username string) Session {
	sess := Session{
		ID:        uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

func (s *sessionStore) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// sessionResource exposes the session table as a REST resource.
type sessionResource struct{}

func (r *sessionResource) Definition() rest.Definition {
	return rest.Definition{
		Name: "sessions",
		Path: "/sessions",
		Operations: []rest.Operation{
			{Method: "GET", Path: "", Summary: "List active sessions", OperationID: "listSessions"},
			{Method: "POST", Path: "", Summary: "Create a session", OperationID: "createSession"},
			{Method: "GET", Path: "/:id", Summary: "Get a session", OperationID: "getSession"},
			{Method: "DELETE", Path: "/:id", Summary: "Delete a session", OperationID: "deleteSession"},
		},
	}
}

func (r *sessionResource) Mount(group *gin.RouterGroup, c di.Container) error {
	v, err := c.Resolve(sessionStoreKey)
	if err != nil {
		return err
	}
	store := v.(*sessionStore)

	group.GET("/sessions", func(c *gin.Context) {
		server.RespondOK(c, store.list())
	})

	group.POST("/sessions", func(c *gin.Context) {
		var req createSessionRequest
		if !rest.BindJSON(c, &req) {
			return
		}
		if err := validation.Validate(&req); err != nil {
			server.RespondWithError(c, err)
			return
		}
		server.RespondCreated(c, store.create(req.Username))
	})

	group.GET("/sessions/:id", func(c *gin.Context) {
		sess, ok := store.get(c.Param("id"))
		if !ok {
			server.RespondWithError(c, apperrors.NotFound("session", c.Param("id")))
			return
		}
		server.RespondOK(c, sess)
	})

	group.DELETE("/sessions/:id", func(c *gin.Context) {
		if !store.delete(c.Param("id")) {
			server.RespondWithError(c, apperrors.NotFound("session", c.Param("id")))
			return
		}
		server.RespondNoContent(c)
	})

	return nil
}
