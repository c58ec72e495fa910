package cli

import (
	"context"
	"strconv"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/repository/sqldb"
)

// PostCommand exposes the post data-access helpers, printing JSON
type PostCommand struct {
	app    *App
	mapper *domain.UserMapper
}

// NewPostCommand creates a new post command handler
func NewPostCommand(app *App) *PostCommand {
	return &PostCommand{app: app, mapper: domain.NewUserMapper()}
}

func (c *PostCommand) Create(ctx context.Context, title string, content *string, authorID *int64) error {
	return c.app.withRepository(func(repo sqldb.Repository) error {
		post, err := repo.CreatePost(ctx, title, content, authorID)
		if err != nil {
			return err
		}
		return c.app.writeJSON(c.mapper.PostFromDatabase(*post))
	})
}

func (c *PostCommand) Get(ctx context.Context, id int64) error {
	return c.app.withRepository(func(repo sqldb.Repository) error {
		post, err := repo.GetPostByID(ctx, id)
		if err != nil {
			return err
		}
		if post == nil {
			return errors.NewNotFoundError("post", strconv.FormatInt(id, 10))
		}
		return c.app.writeJSON(c.mapper.PostFromDatabase(*post))
	})
}

func (c *PostCommand) List(ctx context.Context) error {
	return c.app.withRepository(func(repo sqldb.Repository) error {
		posts, err := repo.ListPosts(ctx)
		if err != nil {
			return err
		}
		out := make([]domain.Post, len(posts))
		for i, p := range posts {
			out[i] = c.mapper.PostFromDatabase(*p)
		}
		return c.app.writeJSON(out)
	})
}

func (c *PostCommand) Publish(ctx context.Context, id int64) error {
	return c.app.withRepository(func(repo sqldb.Repository) error {
		post, err := repo.PublishPost(ctx, id)
		if err != nil {
			return err
		}
		return c.app.writeJSON(c.mapper.PostFromDatabase(*post))
	})
}

func (c *PostCommand) Update(ctx context.Context, id int64, patch sqldb.PostPatch) error {
	return c.app.withRepository(func(repo sqldb.Repository) error {
		post, err := repo.UpdatePost(ctx, id, patch)
		if err != nil {
			return err
		}
		return c.app.writeJSON(c.mapper.PostFromDatabase(*post))
	})
}

func (c *PostCommand) Delete(ctx context.Context, id int64) error {
	return c.app.withRepository(func(repo sqldb.Repository) error {
		return repo.DeletePost(ctx, id)
	})
}
