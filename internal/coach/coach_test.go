package coach_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numeraai/numera/internal/coach"
)

func TestClient_Ask(t *testing.T) {
	type testCase struct {
		name    string
		handler http.HandlerFunc
		lang    coach.Language
		want    string
	}

	tests := []testCase{
		{
			name: "Success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var body map[string]string
				_ = json.NewDecoder(r.Body).Decode(&body)

				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(map[string]string{"answer": "echo: " + body["question"]})
			},
			lang: coach.English,
			want: "echo: how do i price maize?",
		},
		{
			name: "ServerErrorEnglish",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			lang: coach.English,
			want: coach.Fallback(coach.English),
		},
		{
			name: "ServerErrorSwahili",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			lang: coach.Swahili,
			want: coach.Fallback(coach.Swahili),
		},
		{
			name: "MalformedBody",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("<html>tunnel offline</html>"))
			},
			lang: coach.English,
			want: coach.Fallback(coach.English),
		},
		{
			name: "MissingAnswer",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"result":"ok"}`))
			},
			lang: coach.Swahili,
			want: coach.Fallback(coach.Swahili),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			c := coach.NewClient(ts.URL+"/ask", 5*time.Second)
			got := c.Ask(context.Background(), "How do I price MAIZE?", tt.lang)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Ask_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	got := coach.NewClient(url, time.Second).Ask(context.Background(), "hi", coach.English)
	assert.Equal(t, coach.Fallback(coach.English), got)
}

func TestQuickReply(t *testing.T) {
	assert.Contains(t, coach.QuickReply("Help me optimize my product PRICING", coach.English), "Research competitor prices")
	assert.Contains(t, coach.QuickReply("bei ya unga", coach.Swahili), "Chunguza bei za washindani")
	assert.Contains(t, coach.QuickReply("marketing ideas", coach.English), "WhatsApp")
	assert.Contains(t, coach.QuickReply("low stock", coach.Swahili), "Usimamizi wa stock")
	assert.Contains(t, coach.QuickReply("set up mpesa", coach.English), "Paybill")
	assert.Equal(t, "I understand your question. Could you tell me more so I can give you more detailed help?",
		coach.QuickReply("hello", coach.English))
}

func TestQuickActions(t *testing.T) {
	for _, a := range coach.QuickActions {
		got, ok := coach.FindQuickAction(a.ID)
		require.True(t, ok)
		assert.NotEqual(t, coach.QuickReply("", coach.English), coach.QuickReply(got.Query, coach.English), a.Label)
	}

	_, ok := coach.FindQuickAction("99")
	assert.False(t, ok)
}

type noDelay struct{}

func (noDelay) Wait(context.Context) error { return nil }

type blockingDelay struct{}

func (blockingDelay) Wait(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

type staticAsker string

func (s staticAsker) Ask(context.Context, string, coach.Language) string { return string(s) }

func TestConversation_Seeded(t *testing.T) {
	c := coach.NewConversation(staticAsker("x"), noDelay{})

	msgs := c.Messages()
	require.Len(t, msgs, 3)
	assert.True(t, msgs[0].IsBot)
	assert.False(t, msgs[1].IsBot)
	assert.Equal(t, coach.Swahili, msgs[2].Language)
	assert.True(t, msgs[0].Timestamp.Before(msgs[2].Timestamp))
}

func TestConversation_Send(t *testing.T) {
	c := coach.NewConversation(staticAsker("Use a Till number."), noDelay{})

	bot, err := c.Send(context.Background(), "How do I accept M-Pesa?", coach.English)
	require.NoError(t, err)
	assert.True(t, bot.IsBot)
	assert.Equal(t, "Use a Till number.", bot.Content)

	msgs := c.Messages()
	require.Len(t, msgs, 5)
	assert.Equal(t, "How do I accept M-Pesa?", msgs[3].Content)
	assert.Equal(t, bot, msgs[4])
	assert.False(t, c.Typing())

	_, err = c.Send(context.Background(), "   ", coach.English)
	assert.ErrorIs(t, err, coach.ErrEmptyMessage)
	assert.Len(t, c.Messages(), 5)
}

func TestConversation_QuickAction(t *testing.T) {
	c := coach.NewConversation(staticAsker("unused"), noDelay{})

	bot, err := c.QuickAction(context.Background(), "Give me marketing ideas for my business", coach.Swahili)
	require.NoError(t, err)
	assert.Contains(t, bot.Content, "Mikakati ya masoko")
}

func TestConversation_CanceledDropsReply(t *testing.T) {
	c := coach.NewConversation(staticAsker("late answer"), blockingDelay{})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := c.Send(ctx, "hello", coach.English)
		done <- err
	}()

	require.Eventually(t, c.Typing, time.Second, 5*time.Millisecond)
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
	assert.False(t, c.Typing())

	msgs := c.Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, "hello", msgs[3].Content)
}

func TestConversation_ConcurrentSends(t *testing.T) {
	c := coach.NewConversation(staticAsker("ok"), coach.TypingDelay{Max: 5 * time.Millisecond})

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := c.Send(context.Background(), "ping", coach.English)
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	assert.Len(t, c.Messages(), 3+20)
	assert.False(t, c.Typing())
}

func TestTypingDelay_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := coach.TypingDelay{Min: time.Hour, Max: 2 * time.Hour}.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, coach.Swahili, coach.ParseLanguage(" SW "))
	assert.Equal(t, coach.English, coach.ParseLanguage("fr"))
}
