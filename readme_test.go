package mcpcore_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	mcpcore "github.com/robbyt/go-mcpcore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noteStore is the store used by the README quick start: explicitly owned
// state guarded by one lock, injected into the handlers.
type noteStore struct {
	mu     sync.Mutex
	notes  map[string]string
	nextID int
}

func newNoteStore() *noteStore {
	return &noteStore{notes: make(map[string]string), nextID: 1}
}

func (s *noteStore) Create(title, content string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("%d", s.nextID)
	s.nextID++
	s.notes[id] = title + "\n" + content
	return id
}

func (s *noteStore) GetJSON(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := s.notes[id]
	if !ok {
		return "", mcpcore.NewToolError("note not found: " + id)
	}
	data, err := json.Marshal(map[string]string{"id": id, "body": body})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func newReadmeHandler(t *testing.T, store *noteStore) *mcpcore.Handler {
	t.Helper()

	handler, err := mcpcore.New(
		mcpcore.WithName("notes-server"),
		mcpcore.WithTool(mcpcore.ToolDef{
			Name:        "create_note",
			Description: "Create a new note",
			InputSchema: mcpcore.InputSchema{
				{Name: "title", Type: mcpcore.TypeString, Required: true},
				{Name: "content", Type: mcpcore.TypeString, Required: true},
			},
			Handler: func(ctx context.Context, args map[string]any) ([]mcpcore.Content, error) {
				id := store.Create(args["title"].(string), args["content"].(string))
				return []mcpcore.Content{mcpcore.TextContent("Created note with ID: " + id)}, nil
			},
		}),
		mcpcore.WithResource(mcpcore.ResourceDef{
			URIPattern: "notes://note/{id}",
			Name:       "Note by ID",
			MIMEType:   "application/json",
			Handler: func(ctx context.Context, bindings map[string]string) (string, error) {
				return store.GetJSON(bindings["id"])
			},
		}),
	)
	require.NoError(t, err)
	return handler
}

func TestReadmeQuickStart(t *testing.T) {
	store := newNoteStore()
	handler := newReadmeHandler(t, store)

	res := handler.Dispatcher().Dispatch(context.Background(), mcpcore.ToolCallRequest{
		Name:      "create_note",
		Arguments: map[string]any{"title": "Welcome", "content": "hello"},
	})
	require.False(t, res.IsError())
	require.Len(t, res.Content, 1)
	assert.Equal(t, "Created note with ID: 1", res.Content[0].Text)

	res = handler.Dispatcher().Dispatch(context.Background(), mcpcore.ResourceReadRequest{
		URI: "notes://note/1",
	})
	require.False(t, res.IsError())
	assert.Equal(t, "application/json", res.Content[0].MIMEType)
	assert.JSONEq(t, `{"id":"1","body":"Welcome\nhello"}`, res.Content[0].Text)
}

func TestReadmeFailurePath(t *testing.T) {
	handler := newReadmeHandler(t, newNoteStore())

	res := handler.Dispatcher().Dispatch(context.Background(), mcpcore.ToolCallRequest{
		Name:      "create_note",
		Arguments: map[string]any{"title": "Welcome"},
	})
	require.True(t, res.IsError())
	assert.Equal(t, mcpcore.FailureInvalidArguments, res.Failure.Kind)
	assert.Contains(t, res.Failure.Message, `missing required argument "content"`)
}

func TestReadmeHTTPTransport(t *testing.T) {
	handler := newReadmeHandler(t, newNoteStore())

	server := httptest.NewServer(handler)
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer func() {
		err := resp.Body.Close()
		require.NoError(t, err)
	}()

	assert.NotEqual(t, 0, resp.StatusCode)
}
