package server

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/domain"
	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/repo"
	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/usecase"
	"github.com/cryptopulse/telegram-sentiment-bridge/internal/conf"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const pollTimeoutSeconds = 30

// TelegramServer monitors the configured channels and feeds the ingestion
// path. It resolves every configured channel at startup, registers it with
// the channel registry, then consumes the long-poll update stream until its
// context is cancelled.
type TelegramServer struct {
	bot         *tgbotapi.BotAPI
	ingestUC    *usecase.IngestUsecase
	sessionRepo repo.SessionRepo
	channels    *conf.ChannelsConfig
}

// NewTelegramServer creates a new Telegram monitor
func NewTelegramServer(botToken string, channels *conf.ChannelsConfig, ingestUC *usecase.IngestUsecase, sessionRepo repo.SessionRepo) (*TelegramServer, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}

	return &TelegramServer{
		bot:         bot,
		ingestUC:    ingestUC,
		sessionRepo: sessionRepo,
		channels:    channels,
	}, nil
}

// Start resolves the configured channels and runs the polling loop until ctx
// is cancelled. Individual channel resolution failures are logged and
// skipped; they never abort monitoring of the remaining channels.
func (s *TelegramServer) Start(ctx context.Context) error {
	fmt.Printf("[Telegram] Authorized as @%s\n", s.bot.Self.UserName)

	// Pump-and-dump registers first: a channel listed in both categories is
	// claimed by this pass and the news pass below leaves it alone.
	for _, entry := range s.channels.PumpDump {
		s.resolveAndRegister(ctx, entry, domain.CategoryPumpDump)
	}
	for _, entry := range s.channels.News {
		s.resolveAndRegister(ctx, entry, domain.CategoryNews)
	}

	offset, err := s.sessionRepo.GetOffset(ctx)
	if err != nil {
		fmt.Printf("[Telegram] Failed to load update offset, starting fresh: %v\n", err)
		offset = 0
	}

	u := tgbotapi.NewUpdate(offset)
	u.Timeout = pollTimeoutSeconds
	updates := s.bot.GetUpdatesChan(u)

	fmt.Println("[Telegram] Listening for new messages...")

	return s.consumeUpdates(ctx, updates)
}

// consumeUpdates drains the update stream until ctx is cancelled. A stream
// that closes without cancellation is an error: the monitor must not exit
// silently while the process looks healthy.
func (s *TelegramServer) consumeUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	for {
		select {
		case <-ctx.Done():
			fmt.Println("[Telegram] Monitor stopping")
			s.bot.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("telegram update stream closed unexpectedly")
			}
			s.handleUpdate(ctx, update)
		}
	}
}

// resolveAndRegister resolves one configured channel and claims it for a
// category. Resolution failure is non-fatal.
func (s *TelegramServer) resolveAndRegister(ctx context.Context, entry string, category domain.Category) {
	chat, err := s.resolveChat(entry)
	if err != nil {
		fmt.Printf("[Telegram] Failed to monitor %s: %v\n", entry, err)
		return
	}

	title := chat.Title
	if title == "" {
		title = normalizeChannelEntry(entry)
	}

	if !s.ingestUC.RegisterChannel(chat.ID, title, category) {
		fmt.Printf("[Telegram] %s already registered, keeping first category\n", title)
		return
	}

	if err := s.sessionRepo.SaveChannel(ctx, domain.RegisteredChannel{
		ChatID:   chat.ID,
		Title:    title,
		Category: category,
	}); err != nil {
		fmt.Printf("[Telegram] Failed to cache channel %s: %v\n", title, err)
	}

	fmt.Printf("[Telegram] Monitoring channel: %s\n", title)
}

// resolveChat looks a configured entry up via the Bot API. Entries may be
// t.me links, @usernames or numeric chat IDs.
func (s *TelegramServer) resolveChat(entry string) (tgbotapi.Chat, error) {
	name := normalizeChannelEntry(entry)

	var chatConfig tgbotapi.ChatConfig
	if id, err := strconv.ParseInt(name, 10, 64); err == nil {
		chatConfig = tgbotapi.ChatConfig{ChatID: id}
	} else {
		chatConfig = tgbotapi.ChatConfig{SuperGroupUsername: "@" + name}
	}

	return s.bot.GetChat(tgbotapi.ChatInfoConfig{ChatConfig: chatConfig})
}

// handleUpdate forwards one update into the ingestion path and persists the
// advanced offset so a restart resumes instead of replaying.
func (s *TelegramServer) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil {
		msg = update.ChannelPost
	}

	if msg != nil && msg.Chat != nil {
		var sender int64
		if msg.From != nil {
			sender = msg.From.ID
		} else if msg.SenderChat != nil {
			sender = msg.SenderChat.ID
		}

		s.ingestUC.HandleMessage(usecase.InboundMessage{
			ChatID:    msg.Chat.ID,
			ChatTitle: msg.Chat.Title,
			MessageID: msg.MessageID,
			SenderID:  sender,
			Text:      msg.Text,
			Time:      time.Unix(int64(msg.Date), 0),
		})
	}

	if err := s.sessionRepo.SaveOffset(ctx, update.UpdateID+1); err != nil {
		fmt.Printf("[Telegram] Failed to persist update offset: %v\n", err)
	}
}

// normalizeChannelEntry strips t.me link prefixes and a leading @.
func normalizeChannelEntry(entry string) string {
	name := strings.TrimSpace(entry)
	for _, prefix := range []string{"https://t.me/", "http://t.me/", "t.me/"} {
		if strings.HasPrefix(name, prefix) {
			name = strings.TrimPrefix(name, prefix)
			break
		}
	}
	return strings.TrimPrefix(name, "@")
}
