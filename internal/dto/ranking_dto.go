package dto

// ClanRank is one clan's accepted-member count, ordered descending.
type ClanRank struct {
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

// MemberRank is one user's score in the top-10 member board.
type MemberRank struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}
