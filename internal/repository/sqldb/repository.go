package sqldb

import (
	"context"
	"database/sql"
	"time"

	"taskboard/internal/repository/sqldb/migrations"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// TaskRepository persists tasks and their tag associations
type TaskRepository interface {
	ListTasks(ctx context.Context) ([]*Task, error)
	GetTask(ctx context.Context, id int64) (*Task, error)
	CreateTask(ctx context.Context, task *Task, tagIDs []int64) error
	UpdateTask(ctx context.Context, id int64, patch TaskPatch) error
	SetTaskCompleted(ctx context.Context, id int64, completed bool) error
	DeleteTask(ctx context.Context, id int64) error
}

// CategoryRepository persists categories
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	CreateCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, id int64) error
}

// TagRepository persists tags
type TagRepository interface {
	ListTags(ctx context.Context) ([]*Tag, error)
	CreateTag(ctx context.Context, tag *Tag) error
	DeleteTag(ctx context.Context, id int64) error
}

// StatsRepository computes aggregate counts
type StatsRepository interface {
	CountStats(ctx context.Context) (*StatsCounts, error)
}

// UserRepository is a thin pass-through over the users table.
// Errors come back from the driver untranslated.
type UserRepository interface {
	CreateUser(ctx context.Context, email string, name *string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateUser(ctx context.Context, id int64, patch UserPatch) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// PostRepository is a thin pass-through over the posts table
type PostRepository interface {
	CreatePost(ctx context.Context, title string, content *string, authorID *int64) (*Post, error)
	GetPostByID(ctx context.Context, id int64) (*Post, error)
	ListPosts(ctx context.Context) ([]*Post, error)
	PublishPost(ctx context.Context, id int64) (*Post, error)
	UpdatePost(ctx context.Context, id int64, patch PostPatch) (*Post, error)
	DeletePost(ctx context.Context, id int64) error
}

// Repository defines the interface for database operations
type Repository interface {
	TaskRepository
	CategoryRepository
	TagRepository
	StatsRepository
	UserRepository
	PostRepository

	// Utility
	Dialect() Dialect
	Close() error
}

// Options configures how a repository connects
type Options struct {
	Driver       string
	DSN          string
	QueryTimeout time.Duration
}

// SQLRepository implements the Repository interface on database/sql
type SQLRepository struct {
	db           *sql.DB
	dialect      Dialect
	queryTimeout time.Duration
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLRepository, error) {
	return Open(Options{Driver: "sqlite", DSN: dbPath})
}

// Open connects to the configured database and applies pending migrations
func Open(opts Options) (*SQLRepository, error) {
	dialect, err := ParseDialect(opts.Driver)
	if err != nil {
		return nil, HandleDatabaseError("open database", err)
	}

	dsn := opts.DSN
	if dialect == SQLite {
		dsn = sqliteDSN(dsn)
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, HandleDatabaseError("open database", err)
	}

	// Each connection to :memory: is its own database
	if dialect == SQLite && isMemoryDSN(opts.DSN) {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, HandleDatabaseError("connect database", err)
	}

	if err := migrations.RunMigrations(db, dialect.DriverName()); err != nil {
		db.Close()
		return nil, HandleDatabaseError("run migrations", err)
	}

	return &SQLRepository{db: db, dialect: dialect, queryTimeout: opts.QueryTimeout}, nil
}

// Dialect reports the SQL engine in use
func (r *SQLRepository) Dialect() Dialect {
	return r.dialect
}

// Close closes the database connection
func (r *SQLRepository) Close() error {
	return r.db.Close()
}

func (r *SQLRepository) rebind(query string) string {
	return r.dialect.Rebind(query)
}

// withTimeout bounds ctx by the configured query timeout, if any
func (r *SQLRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// withTx runs fn inside a transaction, rolling back when fn fails
func (r *SQLRepository) withTx(ctx context.Context, operation string, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin "+operation, err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit "+operation, err)
	}
	return nil
}
