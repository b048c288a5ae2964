package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/pellham/nlgram/internal/ambiguity"
	"github.com/pellham/nlgram/internal/config"
	"github.com/pellham/nlgram/internal/editrules"
	"github.com/pellham/nlgram/internal/grammar"
	"github.com/pellham/nlgram/internal/report"
	"github.com/pellham/nlgram/internal/serialize"
	"github.com/pellham/nlgram/internal/version"
	"github.com/pellham/nlgram/server/serr"
)

// Server holds the dependencies of the compile-as-a-service HTTP API.
// BuildFixture compiles a named demo grammar; it is injected rather than
// hardcoded so cmd/gramsvc can supply the same fixture set cmd/gramc
// uses without server importing a cmd package.
type Server struct {
	Store        *Store
	Secret       []byte
	BuildFixture func(name string) (*grammar.Grammar, error)
}

// Router builds the chi-routed HTTP API: grammar compilation, ambiguity
// reporting, and account/session management under JWT auth.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/info", s.handleInfo)
		r.Post("/auth/token", s.handleAuthToken)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/compile", s.handleCompile)
			r.Get("/compile/{id}", s.handleGetCompile)
		})
	})

	return r
}

type ctxKey string

const ctxKeyAccountID ctxKey = "accountID"

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		authHeader := strings.TrimSpace(req.Header.Get("Authorization"))
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		tok := strings.TrimPrefix(authHeader, "Bearer ")

		sub, err := verifyToken(tok, s.Secret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(req.Context(), ctxKeyAccountID, sub)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

func (s *Server) handleInfo(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": version.Current,
	})
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleAuthToken(w http.ResponseWriter, req *http.Request) {
	var body tokenRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, serr.ErrBodyUnmarshal.Error())
		return
	}

	acct, err := s.Store.GetAccountByUsername(req.Context(), body.Username)
	if err != nil {
		writeError(w, http.StatusUnauthorized, serr.ErrBadCredentials.Error())
		return
	}
	if err := checkPassword(acct.PasswordHash, body.Password); err != nil {
		writeError(w, http.StatusUnauthorized, serr.ErrBadCredentials.Error())
		return
	}

	tok, err := generateToken(acct, s.Secret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": tok})
}

type compileRequest struct {
	Fixture  string                `json:"fixture"`
	Detector config.DetectorConfig `json:"detector"`
}

type compileResponse struct {
	ID       string `json:"id"`
	Artifact string `json:"artifact"`
	Report   string `json:"report"`
}

func (s *Server) handleCompile(w http.ResponseWriter, req *http.Request) {
	var body compileRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, serr.ErrBodyUnmarshal.Error())
		return
	}
	if err := body.Detector.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	build := s.BuildFixture
	if body.Detector.UseTestRules {
		build = func(string) (*grammar.Grammar, error) { return ambiguity.BuildTestGrammar() }
	}
	g, err := build(body.Fixture)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	editrules.Generate(g)
	witnesses := ambiguity.Detect(g, body.Detector)

	artifact := serialize.FromGrammar(g)
	data, err := artifact.MarshalBinary()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	id, err := uuid.NewRandom()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	reportText := report.RenderWitnesses(witnesses)
	cfgJSON, _ := json.Marshal(body.Detector)
	artifactB64 := base64.StdEncoding.EncodeToString(data)

	job := Job{
		ID:          id,
		Fixture:     body.Fixture,
		ConfigJSON:  string(cfgJSON),
		ArtifactB64: artifactB64,
		Report:      reportText,
		CreatedAt:   time.Now(),
	}
	if err := s.Store.SaveJob(req.Context(), job); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, compileResponse{
		ID:       id.String(),
		Artifact: artifactB64,
		Report:   reportText,
	})
}

func (s *Server) handleGetCompile(w http.ResponseWriter, req *http.Request) {
	idStr := chi.URLParam(req, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, serr.ErrBadArgument.Error())
		return
	}

	job, err := s.Store.GetJob(req.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, serr.ErrNotFound.Error())
		return
	}

	writeJSON(w, http.StatusOK, compileResponse{
		ID:       job.ID.String(),
		Artifact: job.ArtifactB64,
		Report:   job.Report,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
