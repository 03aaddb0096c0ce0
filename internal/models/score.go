package models

// UserScore is one user's cumulative score record. The username is captured
// at the first scoring event and kept as-is afterwards. LastAnswerTime is
// epoch seconds, matching the on-disk snapshot format.
type UserScore struct {
	UserID         int64  `json:"user_id"`
	Username       string `json:"username"`
	Score          int    `json:"score"`
	LastAnswerTime int64  `json:"last_answer_time"`
}
