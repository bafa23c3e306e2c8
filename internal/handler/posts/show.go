package posts

import (
	"errors"
	"fmt"
	"net/http"

	"blog/internal/access"
	"blog/internal/api"
	"blog/internal/database"
	"blog/internal/middleware"
	"blog/internal/model"
	"blog/internal/store"
	"blog/internal/view"

	"github.com/labstack/echo/v4"
)

// IndexHandler 列出所有文章
// @Summary     List posts
// @Tags        posts
// @Produce     html
// @Success     200 {string} string "index.html"
// @Failure     500 {object} api.ErrorResponse
// @Router      / [get]
func IndexHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		posts, err := listPosts(c.Request().Context(), db)
		if err != nil {
			c.Logger().Errorf("list posts: %v", err)
			return echo.ErrInternalServerError
		}
		return c.Render(http.StatusOK, "index.html", view.IndexPage{
			Page:  view.NewPage(c, middleware.CurrentIdentity(c)),
			Posts: posts,
		})
	}
}

// renderPost 讀取文章與留言後顯示，form 與 msg 用於留言表單回填
func renderPost(c echo.Context, db database.DB, code, id int, form api.CommentRequest, msg string) error {
	ctx := c.Request().Context()
	post, err := getPost(ctx, db, id)
	if errors.Is(err, store.ErrNotFound) {
		return errPostNotFound
	}
	if err != nil {
		c.Logger().Errorf("get post %d: %v", id, err)
		return echo.ErrInternalServerError
	}
	comments, err := listCommentsByPost(ctx, db, id)
	if err != nil {
		c.Logger().Errorf("list comments of post %d: %v", id, err)
		return echo.ErrInternalServerError
	}
	return c.Render(code, "post.html", view.PostPage{
		Page:     view.NewPage(c, middleware.CurrentIdentity(c)),
		Post:     *post,
		Comments: comments,
		Form:     form,
		Error:    msg,
	})
}

// ShowPostHandler 顯示單篇文章與留言
// @Summary     Show a post
// @Tags        posts
// @Produce     html
// @Param       id  path int true "文章 ID"
// @Success     200 {string} string "post.html"
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /post/{id} [get]
func ShowPostHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := postID(c)
		if err != nil {
			return err
		}
		return renderPost(c, db, http.StatusOK, id, api.CommentRequest{}, "")
	}
}

// CommentHandler 新增留言（需登入）
// @Summary     Comment on a post
// @Description 匿名使用者會帶提示導向登入頁，且不寫入任何留言
// @Tags        posts
// @Accept      application/x-www-form-urlencoded
// @Produce     html
// @Param       id   path     int    true "文章 ID"
// @Param       text formData string true "留言內容"
// @Param       csrf formData string true "CSRF token"
// @Success     303 "redirect to /post/{id}"
// @Failure     400 {string} string "post.html"
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /post/{id} [post]
func CommentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := postID(c)
		if err != nil {
			return err
		}
		me := middleware.CurrentIdentity(c)
		if err := access.RequireAuthenticated(me); err != nil {
			view.SetFlash(c, middleware.CommentLoginMessage)
			return c.Redirect(http.StatusSeeOther, "/login")
		}

		var req api.CommentRequest
		if err := c.Bind(&req); err != nil {
			return renderPost(c, db, http.StatusBadRequest, id, req, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return renderPost(c, db, http.StatusBadRequest, id, req, err.Error())
		}

		_, err = createComment(c.Request().Context(), db, &model.Comment{
			Text:     req.Text,
			AuthorID: me.User.ID,
			PostID:   id,
		})
		if errors.Is(err, store.ErrNotFound) {
			return errPostNotFound
		}
		if err != nil {
			c.Logger().Errorf("create comment: %v", err)
			return echo.ErrInternalServerError
		}
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/post/%d", id))
	}
}
