package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-todo-backend/internal/chat/gateway"
	"ai-todo-backend/internal/chat/intent"
	"ai-todo-backend/internal/chat/usecase"
	"ai-todo-backend/pkg/llmprovider"
	"ai-todo-backend/pkg/log"
)

type failingGenerator struct{}

func (failingGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return nil, errors.New("dial tcp: connection refused")
}

type echoGenerator struct{}

func (echoGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return &llmprovider.Response{
		Content: llmprovider.Message{Parts: []llmprovider.Part{{Text: "You said: " + req.Messages[0].Text()}}},
	}, nil
}

func newTestRouter(gen gateway.Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	uc := usecase.New(l, intent.New(l), gateway.New(l, gen, gateway.Config{}, nil), usecase.Config{}, nil)

	r := gin.New()
	RegisterRoutes(r, New(l, uc))
	return r
}

func postChat(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChat_OK(t *testing.T) {
	r := newTestRouter(echoGenerator{})

	w := postChat(r, `{"message":"delete buy milk","tasks":[{"id":3,"title":"buy milk"}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "You said: delete buy milk", resp["response"])
	assert.Equal(t, "delete_task", resp["action"])
	assert.Equal(t, float64(3), resp["task_id"])
	assert.Nil(t, resp["task"])
	assert.Nil(t, resp["updated_task"])
}

func TestChat_UpstreamFailureStill200(t *testing.T) {
	r := newTestRouter(failingGenerator{})

	w := postChat(r, `{"message":"add task to call mom","tasks":[]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp chatResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Response)
	require.NotNil(t, resp.Action)
	assert.Equal(t, "add_task", *resp.Action)
	require.NotNil(t, resp.Task)
	assert.Equal(t, "call mom", resp.Task.Title)
	assert.Equal(t, "Medium", string(resp.Task.Priority))
}

func TestChat_NoProviderStill200(t *testing.T) {
	r := newTestRouter(llmprovider.NewManager(nil, nil, log.NewNop()))

	w := postChat(r, `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"response": "Sorry, I'm having trouble thinking right now. Please try again in a moment.",
		"action": null,
		"task": null,
		"task_id": null,
		"updated_task": null
	}`, w.Body.String())
}

func TestChat_PartialTasks(t *testing.T) {
	r := newTestRouter(echoGenerator{})

	// Missing fields take defaults; unknown fields are ignored.
	w := postChat(r, `{"message":"rename gym to gym session","tasks":[{"id":9,"title":"gym","createdAt":"x"}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp chatResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.UpdatedTask)
	assert.Equal(t, "gym session", resp.UpdatedTask.Title)
	assert.Equal(t, "Personal", resp.UpdatedTask.Category)
	assert.Equal(t, "No Repeat", resp.UpdatedTask.Repeat)
	assert.Equal(t, int64(9), *resp.TaskID)
}

func TestChat_BadRequest(t *testing.T) {
	r := newTestRouter(echoGenerator{})

	for _, body := range []string{`{}`, `{"message":`, `{"message":"hi","tasks":"nope"}`} {
		w := postChat(r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestChat_EmptyMessageAccepted(t *testing.T) {
	r := newTestRouter(echoGenerator{})

	w := postChat(r, `{"message":""}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChatOptions(t *testing.T) {
	r := newTestRouter(echoGenerator{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/chat", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Headers"))
}
