package models

import "time"

// Candidate is a swipeable profile from the discovery feed. The feed returns
// a trimmed-down view of a profile; UserID is the key all like/skip calls use.
type Candidate struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"user_id"`
	DisplayName  string  `json:"display_name"`
	Gender       *Gender `json:"gender,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	FavoriteJoke *string `json:"favorite_joke,omitempty"`
}

// FeedPage is one page of candidates from GET /feed.
type FeedPage struct {
	Profiles []Candidate `json:"profiles"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	Size     int         `json:"size"`
	HasNext  bool        `json:"has_next"`
	HasPrev  bool        `json:"has_prev"`
}

// LikeResult is the backend's answer to POST /feed/{userId}/like.
// Mutual means the target had already liked the current user, so a match
// now exists server-side.
type LikeResult struct {
	ID        int64     `json:"id"`
	LikerID   int64     `json:"liker_id"`
	TargetID  int64     `json:"target_id"`
	Mutual    bool      `json:"mutual"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchProfile is the counterpart's side of a match, nested under
// "matched_with" in the response.
type MatchProfile struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"user_id"`
	DisplayName  string  `json:"display_name"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	FavoriteJoke *string `json:"favorite_joke,omitempty"`
}

// Match is one confirmed mutual pair from GET /feed/matches.
type Match struct {
	ID          int64        `json:"id"`
	LikerID     int64        `json:"liker_id"`
	TargetID    int64        `json:"target_id"`
	CreatedAt   time.Time    `json:"created_at"`
	MatchedWith MatchProfile `json:"matched_with"`
}

// MatchList is the envelope for GET /feed/matches.
type MatchList struct {
	Matches []Match `json:"matches"`
	Total   int     `json:"total"`
}
