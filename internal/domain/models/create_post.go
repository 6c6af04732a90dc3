package model

type CreatePostDTO struct {
	Author  string `json:"author"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
