package social

import "time"

// Engagement counters start at zero; nothing in the simulation updates them.
type Engagement struct {
	Likes    int `json:"likes"`
	Shares   int `json:"shares"`
	Comments int `json:"comments"`
}

type Post struct {
	ID         string     `json:"id"`
	Platform   string     `json:"platform"`
	Content    string     `json:"content"`
	ImageURL   *string    `json:"image_url,omitempty"`
	ProductID  *string    `json:"product_id,omitempty"`
	Engagement Engagement `json:"engagement"`
	CreatedAt  time.Time  `json:"created_at"`
}
