package review

type CreateReviewRequest struct {
	Rating    int      `json:"rating" validate:"required,min=1,max=5"`
	Title     string   `json:"title,omitempty"`
	Content   string   `json:"content,omitempty"`
	Pros      []string `json:"pros,omitempty"`
	Cons      []string `json:"cons,omitempty"`
	Recommend bool     `json:"recommend"`
}
