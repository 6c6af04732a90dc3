package post_service

import (
	"context"

	model "pinstack-blog-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/post --outpkg mocks --filename Service.go
type Service interface {
	ListPosts(ctx context.Context) (model.PostCollection, error)
	GetPost(ctx context.Context, id int64) (*model.Post, error)
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
	UpdatePost(ctx context.Context, id int64, post *model.UpdatePostDTO) (*model.Post, error)
	DeletePost(ctx context.Context, id int64) error
}
