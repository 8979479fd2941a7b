package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	answer string
	err    error

	calls  int
	system string
	user   string
}

func (f *fakeCompleter) Complete(_ context.Context, system, user string) (string, error) {
	f.calls++
	f.system = system
	f.user = user
	return f.answer, f.err
}

func TestProcessNotConfigured(t *testing.T) {
	svc := NewService(nil, zerolog.Nop())

	_, err := svc.Process(context.Background(), Request{Prompt: "Fix grammar", Content: "x"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestProcessFormatsAnswer(t *testing.T) {
	fake := &fakeCompleter{answer: "## Action items\n\n- [ ] Email Dana"}
	svc := NewService(fake, zerolog.Nop())

	resp, err := svc.Process(context.Background(), Request{Prompt: "Turn the meeting into notes", Content: "We met."})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Contains(t, resp.Content, "<h2>Action items</h2>")
	assert.Contains(t, resp.Content, `<ul data-type="taskList">`)

	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, systemPrompts[KindMeetingNotes], fake.system)
	assert.Contains(t, fake.user, "Content: We met.")
}

func TestProcessConvertsHTMLContent(t *testing.T) {
	fake := &fakeCompleter{answer: "Done"}
	svc := NewService(fake, zerolog.Nop())

	_, err := svc.Process(context.Background(), Request{Prompt: "bullet points", Content: "<p>First <em>idea</em></p>"})
	require.NoError(t, err)

	assert.Contains(t, fake.user, "Content: First *idea*")
	assert.NotContains(t, fake.user, "<p>")
}

func TestProcessEmptyContent(t *testing.T) {
	fake := &fakeCompleter{answer: "Example"}
	svc := NewService(fake, zerolog.Nop())

	_, err := svc.Process(context.Background(), Request{Prompt: "Create a survey"})
	require.NoError(t, err)
	assert.Contains(t, fake.user, "Content: "+emptyContent)
}

func TestProcessCompletionErrorIsGeneric(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("429 rate limited")}
	svc := NewService(fake, zerolog.Nop())

	_, err := svc.Process(context.Background(), Request{Prompt: "anything"})
	assert.ErrorIs(t, err, ErrProcessing)
	assert.NotContains(t, err.Error(), "429")
}

func TestOpenAICompleter(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Stream   bool   `json:"stream"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","model":"gpt-4o-mini","choices":[{"index":0,"message":{"role":"assistant","content":"# Hi"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	c := NewOpenAICompleter(OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/v1", Timeout: 5 * time.Second})
	answer, err := c.Complete(context.Background(), "sys", "usr")
	require.NoError(t, err)

	assert.Equal(t, "# Hi", answer)
	assert.Equal(t, "Bearer sk-test", auth)
	assert.Equal(t, DefaultModel, got.Model)
	assert.False(t, got.Stream)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "sys", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
}

func TestOpenAICompleterNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","choices":[]}`))
	}))
	defer srv.Close()

	c := NewOpenAICompleter(OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/v1"})
	_, err := c.Complete(context.Background(), "sys", "usr")
	assert.ErrorIs(t, err, errEmptyCompletion)
}
