package post_http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"pinstack-blog-service/internal/custom_errors"
	model "pinstack-blog-service/internal/domain/models"
	ports "pinstack-blog-service/internal/domain/ports/output"
)

type PostIDRequestInternal struct {
	ID int64 `validate:"required,gt=0"`
}

func parsePostID(r *http.Request, validate *validator.Validate) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: post id %q", custom_errors.ErrInvalidInput, raw)
	}
	if err := validate.Struct(&PostIDRequestInternal{ID: id}); err != nil {
		return 0, fmt.Errorf("%w: %w", custom_errors.ErrInvalidInput, err)
	}
	return id, nil
}

// postForm reads the submitted fields as-is. Missing fields become empty
// strings; nothing is validated.
func postForm(r *http.Request) (author, title, content string, err error) {
	if err := r.ParseForm(); err != nil {
		return "", "", "", fmt.Errorf("%w: %w", custom_errors.ErrInvalidInput, err)
	}
	return r.PostFormValue("author"), r.PostFormValue("title"), r.PostFormValue("content"), nil
}

func postURL(id int64) string {
	return "/post/" + strconv.FormatInt(id, 10)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, custom_errors.ErrPostNotFound):
		return http.StatusNotFound, "Post not found"
	case errors.Is(err, custom_errors.ErrInvalidInput):
		return http.StatusBadRequest, "Invalid request"
	default:
		return http.StatusInternalServerError, "Something went wrong"
	}
}

func renderError(w http.ResponseWriter, renderer *Renderer, log ports.Logger, err error) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("Request failed", slog.String("error", err.Error()))
	}
	if rerr := renderer.Render(w, status, "error.html", pageData{Title: message, Message: message}); rerr != nil {
		log.Error("Failed to render error page", slog.String("error", rerr.Error()))
		http.Error(w, message, status)
	}
}

func renderPage(w http.ResponseWriter, renderer *Renderer, log ports.Logger, page string, data pageData) {
	if err := renderer.Render(w, http.StatusOK, page, data); err != nil {
		log.Error("Failed to render page", slog.String("page", page), slog.String("error", err.Error()))
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
	}
}

func postTitle(post *model.Post) string {
	if post.Title == "" {
		return "Untitled"
	}
	return post.Title
}
