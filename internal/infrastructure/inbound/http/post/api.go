package post_http

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	post_service "pinstack-blog-service/internal/domain/ports/input/post"
	ports "pinstack-blog-service/internal/domain/ports/output"
)

var validate = validator.New()

type PostHTTPService struct {
	listPostsHandler  *ListPostsHandler
	getPostHandler    *GetPostHandler
	createPostHandler *CreatePostHandler
	updatePostHandler *UpdatePostHandler
	deletePostHandler *DeletePostHandler
}

func NewPostHTTPService(postService post_service.Service, log ports.Logger) (*PostHTTPService, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	return &PostHTTPService{
		listPostsHandler:  NewListPostsHandler(postService, renderer, log),
		getPostHandler:    NewGetPostHandler(postService, validate, renderer, log),
		createPostHandler: NewCreatePostHandler(postService, renderer, log),
		updatePostHandler: NewUpdatePostHandler(postService, validate, renderer, log),
		deletePostHandler: NewDeletePostHandler(postService, validate, renderer, log),
	}, nil
}

func (s *PostHTTPService) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.listPostsHandler.ListPosts)
	mux.HandleFunc("GET /add", s.createPostHandler.ShowForm)
	mux.HandleFunc("POST /add", s.createPostHandler.CreatePost)
	mux.HandleFunc("GET /post/{id}", s.getPostHandler.GetPost)
	mux.HandleFunc("GET /update/{id}", s.updatePostHandler.ShowForm)
	mux.HandleFunc("POST /update/{id}", s.updatePostHandler.UpdatePost)
	mux.HandleFunc("POST /delete/{id}", s.deletePostHandler.DeletePost)
	mux.HandleFunc("GET /delete/{id}", s.deletePostHandler.DeletePost)
}
