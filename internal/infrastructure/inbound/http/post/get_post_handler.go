package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"pinstack-blog-service/internal/domain/models"
	ports "pinstack-blog-service/internal/domain/ports/output"
)

type PostGetter interface {
	GetPost(ctx context.Context, id int64) (*model.Post, error)
}

type GetPostHandler struct {
	postService PostGetter
	validate    *validator.Validate
	renderer    *Renderer
	log         ports.Logger
}

func NewGetPostHandler(postService PostGetter, validate *validator.Validate, renderer *Renderer, log ports.Logger) *GetPostHandler {
	return &GetPostHandler{
		postService: postService,
		validate:    validate,
		renderer:    renderer,
		log:         log,
	}
}

func (h *GetPostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostID(r, h.validate)
	if err != nil {
		h.log.Debug("Request validation failed", slog.String("id", r.PathValue("id")), slog.String("error", err.Error()))
		renderError(w, h.renderer, h.log, err)
		return
	}

	post, err := h.postService.GetPost(r.Context(), id)
	if err != nil {
		h.log.Debug("Error getting post", slog.Int64("post_id", id), slog.String("error", err.Error()))
		renderError(w, h.renderer, h.log, err)
		return
	}

	renderPage(w, h.renderer, h.log, "post.html", pageData{Title: postTitle(post), Post: post})
}
