package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"pinstack-blog-service/internal/domain/models"
	ports "pinstack-blog-service/internal/domain/ports/output"
)

type PostUpdater interface {
	GetPost(ctx context.Context, id int64) (*model.Post, error)
	UpdatePost(ctx context.Context, id int64, post *model.UpdatePostDTO) (*model.Post, error)
}

type UpdatePostHandler struct {
	postService PostUpdater
	validate    *validator.Validate
	renderer    *Renderer
	log         ports.Logger
}

func NewUpdatePostHandler(postService PostUpdater, validate *validator.Validate, renderer *Renderer, log ports.Logger) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		validate:    validate,
		renderer:    renderer,
		log:         log,
	}
}

func (h *UpdatePostHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostID(r, h.validate)
	if err != nil {
		renderError(w, h.renderer, h.log, err)
		return
	}

	post, err := h.postService.GetPost(r.Context(), id)
	if err != nil {
		h.log.Debug("Error getting post for update form", slog.Int64("post_id", id), slog.String("error", err.Error()))
		renderError(w, h.renderer, h.log, err)
		return
	}

	renderPage(w, h.renderer, h.log, "update.html", pageData{Title: "Update " + postTitle(post), Post: post})
}

func (h *UpdatePostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostID(r, h.validate)
	if err != nil {
		renderError(w, h.renderer, h.log, err)
		return
	}

	author, title, content, err := postForm(r)
	if err != nil {
		renderError(w, h.renderer, h.log, err)
		return
	}

	updated, err := h.postService.UpdatePost(r.Context(), id, &model.UpdatePostDTO{
		Author:  author,
		Title:   title,
		Content: content,
	})
	if err != nil {
		h.log.Debug("Error updating post", slog.Int64("post_id", id), slog.String("error", err.Error()))
		renderError(w, h.renderer, h.log, err)
		return
	}

	http.Redirect(w, r, postURL(updated.ID), http.StatusSeeOther)
}
