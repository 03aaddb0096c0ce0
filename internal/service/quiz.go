package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/catalog"
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/models"
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/storage/state"
	"go.uber.org/zap"
)

// EndQuizAction is the callback value of the end-quiz button.
const EndQuizAction = "end_quiz"

// LeaderboardSize caps how many entries the leaderboard shows.
const LeaderboardSize = 10

var ErrNoQuestionsInCategory = errors.New("no questions found for this category")

// QuizS runs the quiz state machine: it draws questions, evaluates answers,
// advances or removes sessions, and credits scores.
type QuizS struct {
	catalog  *catalog.Catalog
	sessions *state.Sessions
	scores   *state.Scores
	rng      *state.Rand
	repo     ScoreStoreI
	notifier Notifier
	log      *zap.Logger
}

func NewQuizService(
	cat *catalog.Catalog,
	sessions *state.Sessions,
	scores *state.Scores,
	rng *state.Rand,
	repo ScoreStoreI,
	notifier Notifier,
	log *zap.Logger,
) *QuizS {
	return &QuizS{
		catalog:  cat,
		sessions: sessions,
		scores:   scores,
		rng:      rng,
		repo:     repo,
		notifier: notifier,
		log:      log,
	}
}

// StartQuiz draws a random question and opens a maxQuestions-long session for
// the chat. An existing session for the chat is replaced.
func (q *QuizS) StartQuiz(ctx context.Context, chatID int64, maxQuestions int) error {
	question, ok := q.rng.Pick(q.catalog.Questions)
	if !ok {
		return errors.New("question catalog is empty")
	}

	text := fmt.Sprintf("Question 1/%d\n\n%s", maxQuestions, question.Question)
	messageID, err := q.notifier.SendQuestion(chatID, text, question)
	if err != nil {
		return fmt.Errorf("failed to send question: %w", err)
	}

	q.sessions.Set(chatID, models.ActiveQuestion{
		Question:  question,
		MessageID: messageID,
		State: models.GameState{
			QuestionsAsked: 1,
			MaxQuestions:   maxQuestions,
		},
	})

	return nil
}

// StartThemedQuiz draws one question from the category subset. A themed
// session starts in the ended state, so answering it never triggers a
// follow-up question.
func (q *QuizS) StartThemedQuiz(ctx context.Context, chatID int64, category string) error {
	question, ok := q.rng.Pick(q.catalog.ByCategory(category))
	if !ok {
		return ErrNoQuestionsInCategory
	}

	messageID, err := q.notifier.SendQuestion(chatID, question.Question, question)
	if err != nil {
		return fmt.Errorf("failed to send question: %w", err)
	}

	q.sessions.Set(chatID, models.ActiveQuestion{
		Question:  question,
		MessageID: messageID,
		State: models.GameState{
			QuestionsAsked: 1,
			MaxQuestions:   1,
			Ended:          true,
		},
	})

	return nil
}

// HandleAnswer evaluates one answer selection. A callback for a chat with no
// active session is a stale tap on an old keyboard and is silently ignored.
func (q *QuizS) HandleAnswer(ctx context.Context, chatID, userID int64, username, data string) error {
	if data == EndQuizAction {
		if q.sessions.Delete(chatID) {
			if score, ok := q.scores.Get(userID); ok {
				return q.notifier.SendMessage(chatID, fmt.Sprintf("Quiz ended! Your final score: %d points", score.Score))
			}
		}
		return nil
	}

	session, ok := q.sessions.Get(chatID)
	if !ok {
		return nil
	}

	isCorrect := data == session.Question.CorrectAnswer

	// Reveal correctness on the keyboard whichever way the answer went.
	if err := q.notifier.RevealAnswer(chatID, session.MessageID, session.Question, data); err != nil {
		q.log.Warn("failed to update answer keyboard", zap.Int64("chat_id", chatID), zap.Error(err))
	}

	if isCorrect {
		q.scores.AddPoints(userID, username, session.Question.Points, time.Now())
		q.saveScoresAsync()

		if err := q.notifier.SendMessage(chatID, fmt.Sprintf("🎉 Correct! You earned %d points!", session.Question.Points)); err != nil {
			return err
		}
	} else {
		if err := q.notifier.SendMessage(chatID, "❌ Sorry, that's incorrect!"); err != nil {
			return err
		}
	}

	return q.advance(chatID, userID, session.State)
}

// advance moves the session's state machine one step after an evaluated
// answer. Follow-up questions always come from the full catalog, even for a
// quiz that started themed.
func (q *QuizS) advance(chatID, userID int64, st models.GameState) error {
	if st.Ended {
		return nil
	}

	if st.QuestionsAsked < st.MaxQuestions {
		next, ok := q.rng.Pick(q.catalog.Questions)
		if !ok {
			return errors.New("question catalog is empty")
		}

		text := fmt.Sprintf("Question %d/%d\n\n%s", st.QuestionsAsked+1, st.MaxQuestions, next.Question)
		messageID, err := q.notifier.SendQuestion(chatID, text, next)
		if err != nil {
			return fmt.Errorf("failed to send next question: %w", err)
		}

		q.sessions.Set(chatID, models.ActiveQuestion{
			Question:  next,
			MessageID: messageID,
			State: models.GameState{
				QuestionsAsked: st.QuestionsAsked + 1,
				MaxQuestions:   st.MaxQuestions,
			},
		})
		return nil
	}

	if score, ok := q.scores.Get(userID); ok {
		if err := q.notifier.SendMessage(chatID, fmt.Sprintf("Quiz completed! Your final score: %d points", score.Score)); err != nil {
			return err
		}
	}
	q.sessions.Delete(chatID)

	return nil
}

// Leaderboard formats the top scores, best first.
func (q *QuizS) Leaderboard() string {
	top := q.scores.TopN(LeaderboardSize)

	var sb strings.Builder
	sb.WriteString("🏆 Leaderboard:\n\n")
	for i, score := range top {
		sb.WriteString(fmt.Sprintf("%d. %s - %d points\n", i+1, score.Username, score.Score))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// saveScoresAsync persists the ledger without blocking the reply. Failures
// are logged, never surfaced to the user.
func (q *QuizS) saveScoresAsync() {
	snapshot := q.scores.Snapshot()
	go func() {
		if err := q.repo.SaveScores(snapshot); err != nil {
			q.log.Error("failed to save scores", zap.Error(err))
		}
	}()
}
