package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"pinstack-blog-service/internal/domain/models"
	ports "pinstack-blog-service/internal/domain/ports/output"
)

type PostCreator interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
}

type CreatePostHandler struct {
	postService PostCreator
	renderer    *Renderer
	log         ports.Logger
}

func NewCreatePostHandler(postService PostCreator, renderer *Renderer, log ports.Logger) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		renderer:    renderer,
		log:         log,
	}
}

func (h *CreatePostHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, h.renderer, h.log, "add.html", pageData{Title: "Write a post"})
}

func (h *CreatePostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	author, title, content, err := postForm(r)
	if err != nil {
		renderError(w, h.renderer, h.log, err)
		return
	}

	created, err := h.postService.CreatePost(r.Context(), &model.CreatePostDTO{
		Author:  author,
		Title:   title,
		Content: content,
	})
	if err != nil {
		renderError(w, h.renderer, h.log, err)
		return
	}

	h.log.Debug("Post created, redirecting", slog.Int64("post_id", created.ID))
	http.Redirect(w, r, postURL(created.ID), http.StatusSeeOther)
}
