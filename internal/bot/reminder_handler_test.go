package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	mock_bot "github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/bot/mock"
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/service"
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/storage/state"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const optInSuccessText = "✅ You've successfully opted in to receive daily reminders! You'll receive one random reminder every 24 hours."

func TestReminderT_OptIn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mockInit  func(s *mock_bot.MockServiceI)
		wantTexts []string
	}{
		{
			name: "success",
			mockInit: func(s *mock_bot.MockServiceI) {
				s.EXPECT().OptIn(gomock.Any(), int64(100), "Khalid").Return(nil)
			},
			wantTexts: []string{optInSuccessText},
		},
		{
			name: "persist failure confirms and warns",
			mockInit: func(s *mock_bot.MockServiceI) {
				s.EXPECT().OptIn(gomock.Any(), int64(100), "Khalid").Return(service.ErrPersistence)
			},
			wantTexts: []string{optInSuccessText, persistWarnText},
		},
		{
			name: "lock timeout",
			mockInit: func(s *mock_bot.MockServiceI) {
				s.EXPECT().OptIn(gomock.Any(), int64(100), "Khalid").Return(state.ErrLockTimeout)
			},
			wantTexts: []string{busyText},
		},
		{
			name: "unexpected error",
			mockInit: func(s *mock_bot.MockServiceI) {
				s.EXPECT().OptIn(gomock.Any(), int64(100), "Khalid").Return(errors.New("boom"))
			},
			wantTexts: []string{busyText},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			svc := mock_bot.NewMockServiceI(ctrl)
			tt.mockInit(svc)

			mb := &mock_bot.MockBot{}
			handler := NewReminderTAPI(mb, svc, zap.NewNop())

			handler.optIn(context.Background(), chatMessage(100))

			assert.Equal(t, tt.wantTexts, sentTexts(t, mb))
		})
	}
}

func TestReminderT_OptIn_MissingSender(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_bot.NewMockServiceI(ctrl)

	mb := &mock_bot.MockBot{}
	handler := NewReminderTAPI(mb, svc, zap.NewNop())

	msg := chatMessage(100)
	msg.From = nil
	handler.optIn(context.Background(), msg)

	assert.Empty(t, mb.SentMessages)
}

func TestReminderT_OptOut(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mockInit  func(s *mock_bot.MockServiceI)
		wantTexts []string
	}{
		{
			name: "record flipped",
			mockInit: func(s *mock_bot.MockServiceI) {
				s.EXPECT().OptOut(gomock.Any(), int64(100)).Return(true, nil)
			},
			wantTexts: []string{"✅ You've successfully opted out of reminders. Use /optin anytime to start receiving them again."},
		},
		{
			name: "no record is silent",
			mockInit: func(s *mock_bot.MockServiceI) {
				s.EXPECT().OptOut(gomock.Any(), int64(100)).Return(false, nil)
			},
		},
		{
			name: "persist failure warns before confirming",
			mockInit: func(s *mock_bot.MockServiceI) {
				s.EXPECT().OptOut(gomock.Any(), int64(100)).Return(true, service.ErrPersistence)
			},
			wantTexts: []string{
				persistWarnText,
				"✅ You've successfully opted out of reminders. Use /optin anytime to start receiving them again.",
			},
		},
		{
			name: "lock timeout",
			mockInit: func(s *mock_bot.MockServiceI) {
				s.EXPECT().OptOut(gomock.Any(), int64(100)).Return(false, state.ErrLockTimeout)
			},
			wantTexts: []string{busyText},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			svc := mock_bot.NewMockServiceI(ctrl)
			tt.mockInit(svc)

			mb := &mock_bot.MockBot{}
			handler := NewReminderTAPI(mb, svc, zap.NewNop())

			handler.optOut(context.Background(), chatMessage(100))

			assert.Equal(t, tt.wantTexts, sentTexts(t, mb))
		})
	}
}

func TestReminderT_ShowPreferences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mockInit  func(s *mock_bot.MockServiceI)
		wantTexts []string
	}{
		{
			name: "relays the formatted settings",
			mockInit: func(s *mock_bot.MockServiceI) {
				s.EXPECT().Preferences(gomock.Any(), int64(100)).
					Return("Your reminder preferences:\nStatus: opted in\nLast reminder: Never", nil)
			},
			wantTexts: []string{"Your reminder preferences:\nStatus: opted in\nLast reminder: Never"},
		},
		{
			name: "lock timeout",
			mockInit: func(s *mock_bot.MockServiceI) {
				s.EXPECT().Preferences(gomock.Any(), int64(100)).Return("", state.ErrLockTimeout)
			},
			wantTexts: []string{busyText},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			svc := mock_bot.NewMockServiceI(ctrl)
			tt.mockInit(svc)

			mb := &mock_bot.MockBot{}
			handler := NewReminderTAPI(mb, svc, zap.NewNop())

			handler.showPreferences(context.Background(), chatMessage(100))

			assert.Equal(t, tt.wantTexts, sentTexts(t, mb))
		})
	}
}
