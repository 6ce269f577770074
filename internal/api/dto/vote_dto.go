package dto

type VoteTallyDTO struct {
	Upvotes   int64 `json:"upvotes"`
	Downvotes int64 `json:"downvotes"`
	Score     int64 `json:"score"`
}

// VoteResultDTO 投票操作的迁移结果与最新票数
type VoteResultDTO struct {
	Transition string        `json:"transition"`
	From       string        `json:"from,omitempty"`
	To         string        `json:"to,omitempty"`
	Tally      *VoteTallyDTO `json:"tally"`
}
