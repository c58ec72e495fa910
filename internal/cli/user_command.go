package cli

import (
	"context"
	"strconv"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/repository/sqldb"
)

// UserCommand exposes the user data-access helpers, printing JSON
type UserCommand struct {
	app    *App
	mapper *domain.UserMapper
}

// NewUserCommand creates a new user command handler
func NewUserCommand(app *App) *UserCommand {
	return &UserCommand{app: app, mapper: domain.NewUserMapper()}
}

func (c *UserCommand) Create(ctx context.Context, email string, name *string) error {
	return c.app.withRepository(func(repo sqldb.Repository) error {
		user, err := repo.CreateUser(ctx, email, name)
		if err != nil {
			return err
		}
		return c.app.writeJSON(c.mapper.FromDatabase(*user))
	})
}

func (c *UserCommand) Get(ctx context.Context, id int64) error {
	return c.app.withRepository(func(repo sqldb.Repository) error {
		user, err := repo.GetUserByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return errors.NewNotFoundError("user", strconv.FormatInt(id, 10))
		}
		return c.app.writeJSON(c.mapper.FromDatabase(*user))
	})
}

func (c *UserCommand) List(ctx context.Context) error {
	return c.app.withRepository(func(repo sqldb.Repository) error {
		users, err := repo.ListUsers(ctx)
		if err != nil {
			return err
		}
		out := make([]domain.User, len(users))
		for i, u := range users {
			out[i] = c.mapper.FromDatabase(*u)
		}
		return c.app.writeJSON(out)
	})
}

func (c *UserCommand) Update(ctx context.Context, id int64, patch sqldb.UserPatch) error {
	return c.app.withRepository(func(repo sqldb.Repository) error {
		user, err := repo.UpdateUser(ctx, id, patch)
		if err != nil {
			return err
		}
		return c.app.writeJSON(c.mapper.FromDatabase(*user))
	})
}

func (c *UserCommand) Delete(ctx context.Context, id int64) error {
	return c.app.withRepository(func(repo sqldb.Repository) error {
		return repo.DeleteUser(ctx, id)
	})
}
