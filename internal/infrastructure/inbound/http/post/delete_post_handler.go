package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	ports "pinstack-blog-service/internal/domain/ports/output"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, id int64) error
}

type DeletePostHandler struct {
	postService PostDeleter
	validate    *validator.Validate
	renderer    *Renderer
	log         ports.Logger
}

func NewDeletePostHandler(postService PostDeleter, validate *validator.Validate, renderer *Renderer, log ports.Logger) *DeletePostHandler {
	return &DeletePostHandler{
		postService: postService,
		validate:    validate,
		renderer:    renderer,
		log:         log,
	}
}

// DeletePost redirects to the index whether or not the post existed.
func (h *DeletePostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostID(r, h.validate)
	if err != nil {
		renderError(w, h.renderer, h.log, err)
		return
	}

	if err := h.postService.DeletePost(r.Context(), id); err != nil {
		h.log.Debug("Error deleting post", slog.Int64("post_id", id), slog.String("error", err.Error()))
		renderError(w, h.renderer, h.log, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
