package bot

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
	"github.com/Jamolkhon5/projassist/internal/ai/project/prompts"
	"github.com/Jamolkhon5/projassist/internal/ai/project/service"
	"github.com/Jamolkhon5/projassist/internal/repository"
)

const advice = "نصيحة من النموذج"

type recordingSender struct {
	mu      sync.Mutex
	prompts []string
}

func (s *recordingSender) Send(_ context.Context, prompt string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	return advice
}

type sentMessage struct {
	Text    string
	Buttons []telebot.InlineButton
}

// fakeTelegram answers Bot API calls and records every sendMessage.
type fakeTelegram struct {
	mu       sync.Mutex
	messages []sentMessage
}

func (f *fakeTelegram) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if path.Base(r.URL.Path) == "sendMessage" {
		var params map[string]string
		if err := json.NewDecoder(r.Body).Decode(&params); err == nil {
			msg := sentMessage{Text: params["text"]}
			if raw := params["reply_markup"]; raw != "" {
				var markup telebot.ReplyMarkup
				if err := json.Unmarshal([]byte(raw), &markup); err == nil {
					for _, row := range markup.InlineKeyboard {
						msg.Buttons = append(msg.Buttons, row...)
					}
				}
			}
			f.mu.Lock()
			f.messages = append(f.messages, msg)
			f.mu.Unlock()
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":7,"type":"private"}}}`)
}

func (f *fakeTelegram) last() sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		return sentMessage{}
	}
	return f.messages[len(f.messages)-1]
}

func (f *fakeTelegram) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.messages))
	for _, m := range f.messages {
		out = append(out, m.Text)
	}
	return out
}

type testChat struct {
	t      *testing.T
	bot    *Bot
	tg     *fakeTelegram
	sender *recordingSender
	repo   *repository.Repository
	user   *telebot.User
	chat   *telebot.Chat
	nextID int
}

func newTestChat(t *testing.T) *testChat {
	t.Helper()
	tg := &fakeTelegram{}
	srv := httptest.NewServer(tg)
	t.Cleanup(srv.Close)

	store := prompts.Default()
	sender := &recordingSender{}
	repo := repository.NewRepository(store)
	b, err := newBot(telebot.Settings{
		Token:       "test-token",
		URL:         srv.URL,
		Offline:     true,
		Synchronous: true,
		OnError: func(err error, _ telebot.Context) {
			t.Errorf("handler error: %v", err)
		},
	}, service.NewDialogue(service.NewProjectAssistant(store, sender)), repo, nil)
	require.NoError(t, err)

	return &testChat{
		t:      t,
		bot:    b,
		tg:     tg,
		sender: sender,
		repo:   repo,
		user:   &telebot.User{ID: 7},
		chat:   &telebot.Chat{ID: 7, Type: telebot.ChatPrivate},
	}
}

func (c *testChat) say(text string) {
	c.nextID++
	c.bot.bot.ProcessUpdate(telebot.Update{
		ID: c.nextID,
		Message: &telebot.Message{
			ID:     c.nextID,
			Sender: c.user,
			Chat:   c.chat,
			Text:   text,
		},
	})
}

// press taps the button with the given text on the last keyboard sent.
func (c *testChat) press(label string) {
	c.t.Helper()
	var data string
	for _, btn := range c.tg.last().Buttons {
		if btn.Text == label {
			data = btn.Data
		}
	}
	require.NotEmpty(c.t, data, "no button %q on the last message", label)
	c.sendCallback(data)
}

func (c *testChat) sendCallback(data string) {
	c.nextID++
	c.bot.bot.ProcessUpdate(telebot.Update{
		ID: c.nextID,
		Callback: &telebot.Callback{
			ID:      "cb",
			Sender:  c.user,
			Message: &telebot.Message{ID: c.nextID, Chat: c.chat},
			Data:    data,
		},
	})
}

func (c *testChat) session() *service.Session {
	var out *service.Session
	_ = c.repo.WithSession(sessionKey(c.user), func(s *service.Session) error {
		out = s
		return nil
	})
	return out
}

func TestModeButtonEntersGuidedMode(t *testing.T) {
	c := newTestChat(t)
	c.say("/start")
	require.Contains(t, c.tg.last().Text, prompts.ChooseModeText)

	c.press(prompts.GuidedModeLabel)

	assert.Equal(t, service.ModeGuided, c.session().Mode)
	assert.Contains(t, c.tg.last().Text, prompts.ChooseProjectTypeText)
}

func TestGuidedQuestionnaireByButtons(t *testing.T) {
	c := newTestChat(t)
	c.say("/guided")
	c.press(models.ProjectManagement.Label())

	q := c.session().Questionnaire
	require.Equal(t, service.PhaseAskingField, q.Phase())
	assert.Equal(t, 0, q.Cursor())

	c.press("2. متوسط")
	assert.Equal(t, 1, q.Cursor())
	got, ok := q.Answers().Get("experience")
	require.True(t, ok)
	assert.Equal(t, "متوسط", got)

	c.press(prompts.BackLabel)
	assert.Equal(t, 0, q.Cursor())
}

func TestGuidedQuestionnaireGenerate(t *testing.T) {
	c := newTestChat(t)
	c.say("/pm")
	c.say("/guided")
	for _, answer := range []string{"1", "1", "5", "1", "1", "ضيق الوقت", "تسليم المشروع في موعده"} {
		c.say(answer)
	}
	require.Equal(t, service.PhaseComplete, c.session().Questionnaire.Phase())
	assert.Contains(t, c.tg.last().Text, prompts.SummaryHeader)

	c.press(prompts.GenerateLabel)

	require.Len(t, c.sender.prompts, 1)
	assert.Contains(t, c.sender.prompts[0], "ضيق الوقت")
	assert.Contains(t, c.tg.texts(), prompts.GeneratingText)
	assert.Equal(t, advice, c.tg.last().Text)
	assert.Equal(t, service.ModeDirect, c.session().Mode)
}

func TestClearCommand(t *testing.T) {
	c := newTestChat(t)
	c.say("/guided")
	c.press(models.GraduationProject.Label())
	c.say("1")

	c.say("/clear")

	s := c.session()
	assert.Equal(t, service.ModeNone, s.Mode)
	assert.Equal(t, models.ProjectType(""), s.ProjectType)
	assert.Equal(t, 0, s.Questionnaire.Answers().Len())
	assert.True(t, strings.HasPrefix(c.tg.last().Text, prompts.ClearedText))
}

func TestTopicsPick(t *testing.T) {
	c := newTestChat(t)
	c.say("/topics")
	topic := prompts.GraduationProjectCategories[0]

	c.press(topic)

	require.Len(t, c.sender.prompts, 1)
	assert.Contains(t, c.sender.prompts[0], "اقترح علي أفكار لمشاريع تخرج في مجال "+topic)
	assert.Equal(t, models.GraduationProject, c.session().ProjectType)
	assert.Contains(t, c.tg.texts(), prompts.ThinkingText)
	assert.Equal(t, advice, c.tg.last().Text)
}

func TestDirectTextShowsThinking(t *testing.T) {
	c := newTestChat(t)
	c.say("/direct")
	c.say("كيف أدير المخاطر في مشروعي؟")

	require.Len(t, c.sender.prompts, 1)
	texts := c.tg.texts()
	require.GreaterOrEqual(t, len(texts), 2)
	assert.Equal(t, prompts.ThinkingText, texts[len(texts)-2])
	assert.Equal(t, advice, texts[len(texts)-1])
}

func TestUnknownCallbackShowsWelcome(t *testing.T) {
	c := newTestChat(t)
	c.sendCallback("\fobsolete|x")

	assert.Contains(t, c.tg.last().Text, prompts.ChooseModeText)
	assert.Empty(t, c.sender.prompts)
}
