package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"pinstack-blog-service/internal/domain/models"
	ports "pinstack-blog-service/internal/domain/ports/output"
)

type PostLister interface {
	ListPosts(ctx context.Context) (model.PostCollection, error)
}

type ListPostsHandler struct {
	postService PostLister
	renderer    *Renderer
	log         ports.Logger
}

func NewListPostsHandler(postService PostLister, renderer *Renderer, log ports.Logger) *ListPostsHandler {
	return &ListPostsHandler{
		postService: postService,
		renderer:    renderer,
		log:         log,
	}
}

func (h *ListPostsHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.ListPosts(r.Context())
	if err != nil {
		renderError(w, h.renderer, h.log, err)
		return
	}

	h.log.Debug("Listing posts", slog.Int("count", len(posts)))
	renderPage(w, h.renderer, h.log, "index.html", pageData{Title: "Blog", Posts: posts})
}
