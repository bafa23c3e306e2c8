package router

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"blog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// memDB 以記憶體模擬 users / blog_posts / comments 三張表，
// 依 store 套件送出的 SQL 分派，並回傳與 Postgres 相同的錯誤碼
type memDB struct {
	mu       sync.Mutex
	users    []model.User
	posts    []model.Post
	comments []model.Comment
	nextPost int
	nextCmt  int
}

func newMemDB() *memDB {
	return &memDB{}
}

var (
	errUnique = &pgconn.PgError{Code: "23505"}
	errFK     = &pgconn.PgError{Code: "23503"}
)

type memRow struct {
	vals []any
	err  error
}

func (r *memRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.vals)
}

type memRows struct {
	data [][]any
	idx  int
}

func (r *memRows) Close()                                       {}
func (r *memRows) Err() error                                   { return nil }
func (r *memRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *memRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *memRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *memRows) Scan(dest ...any) error {
	err := assign(dest, r.data[r.idx])
	r.idx++
	return err
}
func (r *memRows) Values() ([]any, error) { return nil, nil }
func (r *memRows) RawValues() [][]byte    { return nil }
func (r *memRows) Conn() *pgx.Conn        { return nil }

func assign(dest []any, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(vals))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int:
			*p = vals[i].(int)
		case *string:
			*p = vals[i].(string)
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

func (m *memDB) userByID(id int) *model.User {
	for i := range m.users {
		if m.users[i].ID == id {
			return &m.users[i]
		}
	}
	return nil
}

func (m *memDB) postIndex(id int) int {
	for i := range m.posts {
		if m.posts[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *memDB) titleTaken(title string, except int) bool {
	for _, p := range m.posts {
		if p.Title == title && p.ID != except {
			return true
		}
	}
	return false
}

func userVals(u *model.User) []any {
	return []any{u.ID, u.Email, u.PasswordHash, u.Name}
}

func (m *memDB) postVals(p model.Post) []any {
	return []any{p.ID, p.AuthorID, p.Title, p.Subtitle, p.Body, p.ImageURL, p.Date, m.userByID(p.AuthorID).Name}
}

func (m *memDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case strings.Contains(sql, "INSERT INTO users"):
		email := args[0].(string)
		for _, u := range m.users {
			if u.Email == email {
				return &memRow{err: errUnique}
			}
		}
		u := model.User{ID: len(m.users) + 1, Email: email, PasswordHash: args[1].(string), Name: args[2].(string)}
		m.users = append(m.users, u)
		return &memRow{vals: []any{u.ID}}

	case strings.Contains(sql, "FROM users WHERE email"):
		for i := range m.users {
			if m.users[i].Email == args[0].(string) {
				return &memRow{vals: userVals(&m.users[i])}
			}
		}
		return &memRow{err: pgx.ErrNoRows}

	case strings.Contains(sql, "FROM users WHERE id"):
		if u := m.userByID(args[0].(int)); u != nil {
			return &memRow{vals: userVals(u)}
		}
		return &memRow{err: pgx.ErrNoRows}

	case strings.Contains(sql, "INSERT INTO blog_posts"):
		if m.userByID(args[0].(int)) == nil {
			return &memRow{err: errFK}
		}
		if m.titleTaken(args[1].(string), 0) {
			return &memRow{err: errUnique}
		}
		m.nextPost++
		m.posts = append(m.posts, model.Post{
			ID:       m.nextPost,
			AuthorID: args[0].(int),
			Title:    args[1].(string),
			Subtitle: args[2].(string),
			Body:     args[3].(string),
			ImageURL: args[4].(string),
			Date:     args[5].(string),
		})
		return &memRow{vals: []any{m.nextPost}}

	case strings.Contains(sql, "FROM blog_posts p") && strings.Contains(sql, "WHERE p.id"):
		if i := m.postIndex(args[0].(int)); i >= 0 {
			return &memRow{vals: m.postVals(m.posts[i])}
		}
		return &memRow{err: pgx.ErrNoRows}

	case strings.Contains(sql, "INSERT INTO comments"):
		if m.postIndex(args[2].(int)) < 0 || m.userByID(args[1].(int)) == nil {
			return &memRow{err: errFK}
		}
		m.nextCmt++
		m.comments = append(m.comments, model.Comment{
			ID:       m.nextCmt,
			Text:     args[0].(string),
			AuthorID: args[1].(int),
			PostID:   args[2].(int),
		})
		return &memRow{vals: []any{m.nextCmt}}
	}
	return &memRow{err: fmt.Errorf("memDB: unexpected query %q", sql)}
}

func (m *memDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case strings.Contains(sql, "FROM blog_posts p"):
		posts := append([]model.Post(nil), m.posts...)
		sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
		rows := &memRows{}
		for _, p := range posts {
			rows.data = append(rows.data, m.postVals(p))
		}
		return rows, nil

	case strings.Contains(sql, "FROM comments c"):
		rows := &memRows{}
		for _, c := range m.comments {
			if c.PostID == args[0].(int) {
				u := m.userByID(c.AuthorID)
				rows.data = append(rows.data, []any{c.ID, c.Text, c.AuthorID, c.PostID, u.Name, u.Email})
			}
		}
		return rows, nil
	}
	return nil, fmt.Errorf("memDB: unexpected query %q", sql)
}

func (m *memDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case strings.Contains(sql, "UPDATE blog_posts"):
		id := args[4].(int)
		i := m.postIndex(id)
		if i < 0 {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		}
		if m.titleTaken(args[0].(string), id) {
			return pgconn.CommandTag{}, errUnique
		}
		p := &m.posts[i]
		p.Title, p.Subtitle, p.Body, p.ImageURL = args[0].(string), args[1].(string), args[2].(string), args[3].(string)
		return pgconn.NewCommandTag("UPDATE 1"), nil

	case strings.Contains(sql, "DELETE FROM blog_posts"):
		id := args[0].(int)
		i := m.postIndex(id)
		if i < 0 {
			return pgconn.NewCommandTag("DELETE 0"), nil
		}
		m.posts = append(m.posts[:i], m.posts[i+1:]...)
		kept := m.comments[:0]
		for _, c := range m.comments {
			if c.PostID != id {
				kept = append(kept, c)
			}
		}
		m.comments = kept
		return pgconn.NewCommandTag("DELETE 1"), nil
	}
	return pgconn.CommandTag{}, fmt.Errorf("memDB: unexpected exec %q", sql)
}

func (m *memDB) Ping(context.Context) error { return nil }
func (m *memDB) Close()                     {}

func (m *memDB) countUsers(email string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, u := range m.users {
		if u.Email == email {
			n++
		}
	}
	return n
}

func (m *memDB) snapshot() ([]model.Post, []model.Comment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Post(nil), m.posts...), append([]model.Comment(nil), m.comments...)
}
