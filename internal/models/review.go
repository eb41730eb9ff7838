package models

// Review is customer feedback attached to a product. Creating, updating or
// deleting a review recomputes the parent product's rating aggregates.
type Review struct {
	ReviewID      string `json:"reviewID"`
	ProductID     string `json:"productID"`
	Title         string `json:"title"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	ReviewerName  string `json:"reviewerName"`
	ReviewerEmail string `json:"reviewerEmail"`
	Verified      bool   `json:"verified"`
	Helpful       int    `json:"helpful"`
	IsActive      bool   `json:"isActive"`
	Timestamps
}

// ReviewFilter narrows review listings. Nil fields are ignored.
// Rating matches exactly; MinRating is a lower bound.
type ReviewFilter struct {
	ProductID *string
	Rating    *int
	MinRating *int
}
