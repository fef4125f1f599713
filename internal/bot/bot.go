// Package bot is the Telegram chat front-end of the assistant.
package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"gopkg.in/telebot.v3"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
	"github.com/Jamolkhon5/projassist/internal/ai/project/prompts"
	"github.com/Jamolkhon5/projassist/internal/ai/project/service"
	"github.com/Jamolkhon5/projassist/internal/repository"
)

const helpText = `الأوامر المتاحة:
/start - بدء المحادثة
/guided - الاستبيان الموجه
/direct - طرح سؤال مباشر
/pm - إدارة المشاريع البرمجية
/gp - مشاريع التخرج
/topics - موضوعات شائعة
/clear - مسح المحادثة`

// UpdateCounter is ticked once per handled update.
type UpdateCounter interface {
	IncBotUpdates()
}

// callbackKinds are the button kinds the dialogue can put on a keyboard.
// Each one is registered as its own callback endpoint.
var callbackKinds = []models.ActionKind{
	models.ActionChooseMode,
	models.ActionChooseProjectType,
	models.ActionAnswer,
	models.ActionBack,
	models.ActionGenerate,
	models.ActionRestart,
	models.ActionTopic,
}

// Bot connects Telegram chats to dialogue sessions, one session per chat user.
type Bot struct {
	bot      *telebot.Bot
	dialogue *service.Dialogue
	repo     *repository.Repository
	counter  UpdateCounter
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewBot(token string, pollTimeout time.Duration, dialogue *service.Dialogue, repo *repository.Repository, counter UpdateCounter) (*Bot, error) {
	return newBot(telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: pollTimeout},
	}, dialogue, repo, counter)
}

func newBot(settings telebot.Settings, dialogue *service.Dialogue, repo *repository.Repository, counter UpdateCounter) (*Bot, error) {
	b, err := telebot.NewBot(settings)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	bot := &Bot{
		bot:      b,
		dialogue: dialogue,
		repo:     repo,
		counter:  counter,
		ctx:      ctx,
		cancel:   cancel,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.bot.Handle("/start", b.handleStart)
	b.bot.Handle("/help", b.handleHelp)
	b.bot.Handle("/guided", b.withSession(func(_ telebot.Context, s *service.Session) *models.AssistantResponse {
		return b.dialogue.EnterGuided(s)
	}))
	b.bot.Handle("/direct", b.withSession(func(_ telebot.Context, s *service.Session) *models.AssistantResponse {
		return b.dialogue.EnterDirect(s)
	}))
	b.bot.Handle("/pm", b.withSession(func(_ telebot.Context, s *service.Session) *models.AssistantResponse {
		return b.dialogue.SwitchProjectType(s, models.ProjectManagement)
	}))
	b.bot.Handle("/gp", b.withSession(func(_ telebot.Context, s *service.Session) *models.AssistantResponse {
		return b.dialogue.SwitchProjectType(s, models.GraduationProject)
	}))
	b.bot.Handle("/topics", b.withSession(func(telebot.Context, *service.Session) *models.AssistantResponse {
		return b.dialogue.Topics()
	}))
	b.bot.Handle("/clear", b.handleClear)

	for _, kind := range callbackKinds {
		b.bot.Handle(&telebot.Btn{Unique: string(kind)}, b.handleCallback)
	}
	// Buttons from older keyboards land here and get the welcome screen.
	b.bot.Handle(telebot.OnCallback, b.handleCallback)
	b.bot.Handle(telebot.OnText, b.withSession(b.handleText))
}

func (b *Bot) handleStart(c telebot.Context) error {
	return b.reply(c, b.dialogue.Welcome())
}

func (b *Bot) handleHelp(c telebot.Context) error {
	return c.Send(helpText)
}

// handleClear drops the chat's session and starts over with a fresh one.
func (b *Bot) handleClear(c telebot.Context) error {
	b.repo.ClearUserHistory(sessionKey(c.Sender()))
	return b.withSession(func(_ telebot.Context, s *service.Session) *models.AssistantResponse {
		return b.dialogue.Clear(s)
	})(c)
}

func (b *Bot) handleText(c telebot.Context, s *service.Session) *models.AssistantResponse {
	if s.Mode == service.ModeDirect {
		_ = c.Send(prompts.ThinkingText)
	}
	return b.dialogue.HandleText(b.ctx, s, c.Text())
}

// handleCallback runs the action behind an inline button.
func (b *Bot) handleCallback(c telebot.Context) error {
	cb := c.Callback()
	if err := c.Respond(); err != nil {
		log.Printf("Error answering callback: %v", err)
	}
	kind := models.ActionKind(cb.Unique)
	value := cb.Data
	return b.withSession(func(c telebot.Context, s *service.Session) *models.AssistantResponse {
		switch kind {
		case models.ActionGenerate:
			_ = c.Send(prompts.GeneratingText)
		case models.ActionTopic:
			_ = c.Send(prompts.ThinkingText)
		}
		return b.dialogue.Dispatch(b.ctx, s, kind, value)
	})(c)
}

// withSession adapts a dialogue step to a telebot handler. The session is
// held exclusively while the step runs, including any model call.
func (b *Bot) withSession(step func(c telebot.Context, s *service.Session) *models.AssistantResponse) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		if b.counter != nil {
			b.counter.IncBotUpdates()
		}
		_ = c.Notify(telebot.Typing)

		var resp *models.AssistantResponse
		err := b.repo.WithSession(sessionKey(c.Sender()), func(s *service.Session) error {
			resp = step(c, s)
			return nil
		})
		if err != nil {
			return err
		}
		return b.reply(c, resp)
	}
}

func (b *Bot) reply(c telebot.Context, resp *models.AssistantResponse) error {
	chunks := splitMessage(resp.Message, maxMessageLength)
	for i, chunk := range chunks {
		var opts []interface{}
		if i == len(chunks)-1 && len(resp.Actions) > 0 {
			opts = append(opts, keyboard(resp.Actions))
		}
		if err := c.Send(chunk, opts...); err != nil {
			log.Printf("Error sending message to %s: %v", sessionKey(c.Sender()), err)
			return err
		}
	}
	return nil
}

// Start begins long polling in the background.
func (b *Bot) Start() {
	log.Printf("Telegram bot @%s started", b.bot.Me.Username)
	go b.bot.Start()
}

// Stop ends polling and cancels running model calls.
func (b *Bot) Stop() {
	log.Printf("Stopping Telegram bot with %d sessions in memory", b.repo.CountSessions())
	b.cancel()
	b.bot.Stop()
}

func sessionKey(u *telebot.User) string {
	if u == nil {
		return "telegram:anonymous"
	}
	return "telegram:" + strconv.FormatInt(u.ID, 10)
}
