package reviews

import "time"

type Review struct {
	Id               string         `json:"id"`
	CafeId           string         `json:"cafeId"`
	UserId           string         `json:"userId"`
	User             string         `json:"user"`
	Rating           int            `json:"rating"`
	Text             string         `json:"text"`
	AttributeRatings map[string]int `json:"attributeRatings,omitempty"`
	Date             time.Time      `json:"date"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

type AddReviewRequest struct {
	Rating           int            `json:"rating"`
	Text             string         `json:"text"`
	AttributeRatings map[string]int `json:"attributeRatings,omitempty"`
}

type UpdateReviewRequest struct {
	Rating           int            `json:"rating"`
	Text             string         `json:"text"`
	AttributeRatings map[string]int `json:"attributeRatings,omitempty"`
}

type AllReviewsResponse struct {
	Reviews []Review `json:"reviews"`
}
