package posts

import (
	"errors"
	"fmt"
	"net/http"

	"blog/internal/api"
	"blog/internal/database"
	"blog/internal/middleware"
	"blog/internal/model"
	"blog/internal/store"
	"blog/internal/view"

	"github.com/labstack/echo/v4"
)

func renderPostForm(c echo.Context, code int, heading, action string, form api.PostRequest, msg string) error {
	return c.Render(code, "make-post.html", view.PostFormPage{
		Page:    view.NewPage(c, middleware.CurrentIdentity(c)),
		Heading: heading,
		Action:  action,
		Form:    form,
		Error:   msg,
	})
}

// NewPostPage 顯示新增文章表單（管理員）
// @Summary     New post form
// @Tags        posts
// @Produce     html
// @Success     200 {string} string "make-post.html"
// @Failure     403 {object} api.ErrorResponse
// @Router      /new-post [get]
func NewPostPage() echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := adminIdentity(c); err != nil {
			return err
		}
		return renderPostForm(c, http.StatusOK, "New Post", "/new-post", api.PostRequest{}, "")
	}
}

// CreatePostHandler 新增文章（管理員），作者為目前登入者，日期為今天
// @Summary     Create a post
// @Tags        posts
// @Accept      application/x-www-form-urlencoded
// @Produce     html
// @Param       title    formData string true "標題"
// @Param       subtitle formData string true "副標題"
// @Param       body     formData string true "內容 (HTML)"
// @Param       img_url  formData string true "圖片網址"
// @Param       csrf     formData string true "CSRF token"
// @Success     303 "redirect to /"
// @Failure     400 {string} string "make-post.html"
// @Failure     403 {object} api.ErrorResponse
// @Failure     409 {string} string "make-post.html"
// @Failure     500 {object} api.ErrorResponse
// @Router      /new-post [post]
func CreatePostHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		me, err := adminIdentity(c)
		if err != nil {
			return err
		}

		var req api.PostRequest
		if err := c.Bind(&req); err != nil {
			return renderPostForm(c, http.StatusBadRequest, "New Post", "/new-post", req, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return renderPostForm(c, http.StatusBadRequest, "New Post", "/new-post", req, err.Error())
		}

		_, err = createPost(c.Request().Context(), db, &model.Post{
			AuthorID: me.User.ID,
			Title:    req.Title,
			Subtitle: req.Subtitle,
			Body:     req.Body,
			ImageURL: req.ImageURL,
			Date:     timeNow().Format(model.DateLayout),
		})
		if errors.Is(err, store.ErrConflict) {
			return renderPostForm(c, http.StatusConflict, "New Post", "/new-post", req, DuplicateTitleMessage)
		}
		if err != nil {
			c.Logger().Errorf("create post: %v", err)
			return echo.ErrInternalServerError
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}
}

// EditPostPage 顯示預先填好的編輯表單（管理員）
// @Summary     Edit post form
// @Tags        posts
// @Produce     html
// @Param       id  path int true "文章 ID"
// @Success     200 {string} string "make-post.html"
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /edit-post/{id} [get]
func EditPostPage(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := adminIdentity(c); err != nil {
			return err
		}
		id, err := postID(c)
		if err != nil {
			return err
		}
		post, err := getPost(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return errPostNotFound
		}
		if err != nil {
			c.Logger().Errorf("get post %d: %v", id, err)
			return echo.ErrInternalServerError
		}
		form := api.PostRequest{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			Body:     post.Body,
			ImageURL: post.ImageURL,
		}
		return renderPostForm(c, http.StatusOK, "Edit Post", fmt.Sprintf("/edit-post/%d", id), form, "")
	}
}

// UpdatePostHandler 更新文章內容（管理員），作者與日期不變
// @Summary     Update a post
// @Tags        posts
// @Accept      application/x-www-form-urlencoded
// @Produce     html
// @Param       id       path     int    true "文章 ID"
// @Param       title    formData string true "標題"
// @Param       subtitle formData string true "副標題"
// @Param       body     formData string true "內容 (HTML)"
// @Param       img_url  formData string true "圖片網址"
// @Param       csrf     formData string true "CSRF token"
// @Success     303 "redirect to /post/{id}"
// @Failure     400 {string} string "make-post.html"
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {string} string "make-post.html"
// @Failure     500 {object} api.ErrorResponse
// @Router      /edit-post/{id} [post]
func UpdatePostHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := adminIdentity(c); err != nil {
			return err
		}
		id, err := postID(c)
		if err != nil {
			return err
		}
		// 文章不存在時不論表單內容一律 404
		if _, err := getPost(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return errPostNotFound
			}
			c.Logger().Errorf("get post %d: %v", id, err)
			return echo.ErrInternalServerError
		}
		action := fmt.Sprintf("/edit-post/%d", id)

		var req api.PostRequest
		if err := c.Bind(&req); err != nil {
			return renderPostForm(c, http.StatusBadRequest, "Edit Post", action, req, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return renderPostForm(c, http.StatusBadRequest, "Edit Post", action, req, err.Error())
		}

		err = updatePost(c.Request().Context(), db, &model.Post{
			ID:       id,
			Title:    req.Title,
			Subtitle: req.Subtitle,
			Body:     req.Body,
			ImageURL: req.ImageURL,
		})
		switch {
		case errors.Is(err, store.ErrNotFound):
			return errPostNotFound
		case errors.Is(err, store.ErrConflict):
			return renderPostForm(c, http.StatusConflict, "Edit Post", action, req, DuplicateTitleMessage)
		case err != nil:
			c.Logger().Errorf("update post %d: %v", id, err)
			return echo.ErrInternalServerError
		}
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/post/%d", id))
	}
}

// DeletePostHandler 刪除文章與其留言（管理員）
// @Summary     Delete a post
// @Tags        posts
// @Param       id  path int true "文章 ID"
// @Success     302 "redirect to /"
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /delete/{id} [get]
func DeletePostHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := adminIdentity(c); err != nil {
			return err
		}
		id, err := postID(c)
		if err != nil {
			return err
		}
		err = deletePost(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return errPostNotFound
		}
		if err != nil {
			c.Logger().Errorf("delete post %d: %v", id, err)
			return echo.ErrInternalServerError
		}
		return c.Redirect(http.StatusFound, "/")
	}
}
