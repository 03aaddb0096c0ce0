package models

// Question is a single trivia question from the catalog. Loaded once at
// startup and never mutated; sessions hold their own copy.
type Question struct {
	ID            int
	Question      string
	CorrectAnswer string
	Option1       string
	Option2       string
	Option3       string
	Option4       string
	Category      string
	Points        int
}

func (q Question) Options() []string {
	return []string{q.Option1, q.Option2, q.Option3, q.Option4}
}

// GameState tracks quiz progress for one chat. Ended is terminal: a themed
// question starts ended, a 5-question quiz becomes ended after the last
// evaluated answer.
type GameState struct {
	QuestionsAsked int
	MaxQuestions   int
	Ended          bool
}

// ActiveQuestion is the quiz session for one chat: the question currently
// shown, the id of the message carrying the answer keyboard, and progress.
type ActiveQuestion struct {
	Question  Question
	MessageID int
	State     GameState
}
