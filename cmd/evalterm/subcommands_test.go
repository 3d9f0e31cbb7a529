package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"evalterm/internal/api"
	"evalterm/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type evalServer struct {
	*httptest.Server

	mu           sync.Mutex
	history      []string
	clearCalls   int
	healthStatus int
}

func (s *evalServer) setHealth(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.healthStatus = status
}

func (s *evalServer) clears() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearCalls
}

func newEvalServer(t *testing.T) *evalServer {
	t.Helper()
	s := &evalServer{history: []string{"x = 1", "y = 2", "x + y"}, healthStatus: http.StatusOK}
	mux := http.NewServeMux()
	mux.HandleFunc(api.PathExecute, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Input string `json:"input"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		if req.Input == "1 / 0" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"division by zero"}`))
			return
		}
		if req.Input == "void 0" {
			_, _ = w.Write([]byte(`{}`))
			return
		}
		_, _ = w.Write([]byte(`{"result":{"x":1,"input":` + mustJSON(req.Input) + `}}`))
	})
	mux.HandleFunc(api.PathVars, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"x":1,"y":2}`))
	})
	mux.HandleFunc(api.PathHistory, func(w http.ResponseWriter, _ *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		_ = json.NewEncoder(w).Encode(s.history)
	})
	mux.HandleFunc(api.PathClearHistory, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method", http.StatusMethodNotAllowed)
			return
		}
		s.mu.Lock()
		s.clearCalls++
		s.history = nil
		s.mu.Unlock()
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc(api.PathHealth, func(w http.ResponseWriter, _ *http.Request) {
		s.mu.Lock()
		status := s.healthStatus
		s.mu.Unlock()
		w.WriteHeader(status)
	})
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func mustJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// runCLI 以隔离的配置文件执行一次命令行。
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.URLEnv, "")
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	return runCLIWithConfig(t, cfgPath, args...)
}

func runCLIWithConfig(t *testing.T, cfgPath string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfgPath, "--log-file", ""}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestExecPrintsPrettyResult(t *testing.T) {
	srv := newEvalServer(t)

	out, _, err := runCLI(t, "--url", srv.URL, "exec", "x", "=", "1")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"x\": 1,\n  \"input\": \"x = 1\"\n}\n", out)
}

func TestExecRemoteErrorIsReturned(t *testing.T) {
	srv := newEvalServer(t)

	out, _, err := runCLI(t, "--url", srv.URL, "exec", "1 / 0")
	require.Error(t, err)
	assert.Equal(t, "division by zero", err.Error())
	assert.Empty(t, out)
}

func TestExecUndefinedResult(t *testing.T) {
	srv := newEvalServer(t)

	out, _, err := runCLI(t, "--url", srv.URL, "exec", "void", "0")
	require.NoError(t, err)
	assert.Equal(t, "undefined\n", out)
}

func TestExecRequiresInput(t *testing.T) {
	_, _, err := runCLI(t, "exec")
	require.Error(t, err)

	_, _, err = runCLI(t, "exec", "  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input is empty")
}

func TestExecTransportError(t *testing.T) {
	srv := newEvalServer(t)
	url := srv.URL
	srv.Close()

	_, _, err := runCLI(t, "--url", url, "exec", "1")
	require.Error(t, err)
	var te *api.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "execute", te.Op)
}

func TestVarsPrintsJSON(t *testing.T) {
	srv := newEvalServer(t)

	out, _, err := runCLI(t, "--url", srv.URL, "vars")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"x\": 1,\n  \"y\": 2\n}\n", out)
}

func TestHistoryNewestFirst(t *testing.T) {
	srv := newEvalServer(t)

	out, _, err := runCLI(t, "--url", srv.URL, "history")
	require.NoError(t, err)
	assert.Equal(t, "x + y\ny = 2\nx = 1\n", out)
}

func TestClearHistory(t *testing.T) {
	srv := newEvalServer(t)

	out, _, err := runCLI(t, "--url", srv.URL, "clear-history")
	require.NoError(t, err)
	assert.Equal(t, "history cleared\n", out)
	assert.Equal(t, 1, srv.clears())

	out, _, err = runCLI(t, "--url", srv.URL, "history")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestPing(t *testing.T) {
	srv := newEvalServer(t)

	out, _, err := runCLI(t, "--url", srv.URL+"/", "ping")
	require.NoError(t, err)
	assert.Equal(t, "ok: "+srv.URL+"\n", out)

	srv.setHealth(http.StatusServiceUnavailable)
	_, _, err = runCLI(t, "--url", srv.URL, "ping")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrStatus)
}

func TestInvalidURL(t *testing.T) {
	_, _, err := runCLI(t, "--url", "localhost:8080", "ping")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrInvalidURL)
}

func TestURLPrecedence(t *testing.T) {
	srv := newEvalServer(t)
	t.Setenv(config.URLEnv, "")
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, config.Save(cfgPath, config.Config{URL: "http://127.0.0.1:1"}))

	out, _, err := runCLIWithConfig(t, cfgPath, "-c", "url="+srv.URL, "ping")
	require.NoError(t, err)
	assert.Equal(t, "ok: "+srv.URL+"\n", out)

	_, _, err = runCLIWithConfig(t, cfgPath, "-c", "url="+srv.URL, "--url", "http://127.0.0.1:1", "ping")
	require.Error(t, err, "--url wins over -c")
}

func TestConfigInit(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, _, err := runCLIWithConfig(t, cfgPath, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, "wrote "+cfgPath+"\n", out)

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), config.DefaultURL)

	_, _, err = runCLIWithConfig(t, cfgPath, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = runCLIWithConfig(t, cfgPath, "config", "init", "--force")
	require.NoError(t, err)
}
