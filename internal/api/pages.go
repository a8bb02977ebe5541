package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/resource-crud-api/internal/models"
)

const (
	userFormHTML = `
<div>
  <h1>Create a User</h1>
  <form action="/api/users" method="POST">
    Name: <input type="text" name="name" />
    <br />
    Username: <input type="text" name="username" />
    <br />
    Email: <input type="text" name="email" />
    <br />
    <input type="submit" value="Create User" />
  </form>
</div>
`

	commentFormHTML = `
<div>
  <h1>Post a Comment</h1>
  <form action="/api/comments" method="POST">
    Name: <input type="text" name="name" />
    <br />
    Comment: <textarea name="comment"></textarea>
    <br />
    <input type="submit" value="Post Comment" />
  </form>
</div>
`

	downloadPickerHTML = `
<div>
  <h1>Download Data</h1>
  <form action="/download/users.js">
    <button>Download Users data</button>
  </form>
  <form action="/download/posts.js">
    <button>Download Posts data</button>
  </form>
</div>
`
)

var (
	rootDocument = models.Links{Links: []models.Link{
		{Href: "/api", Rel: "api", Type: http.MethodGet},
	}}

	apiDocument = models.Links{Links: []models.Link{
		{Href: "api/users", Rel: "users", Type: http.MethodGet},
		{Href: "api/users", Rel: "users", Type: http.MethodPost},
		{Href: "api/posts", Rel: "posts", Type: http.MethodGet},
		{Href: "api/posts", Rel: "posts", Type: http.MethodPost},
		{Href: "api/comments", Rel: "comments", Type: http.MethodGet},
		{Href: "api/comments", Rel: "comments", Type: http.MethodPost},
	}}
)

// rootLinks handles GET /
func rootLinks(c *gin.Context) {
	c.JSON(http.StatusOK, rootDocument)
}

// apiLinks handles GET /api
func apiLinks(c *gin.Context) {
	c.JSON(http.StatusOK, apiDocument)
}

func newUserForm(c *gin.Context) {
	html(c, userFormHTML)
}

func newCommentForm(c *gin.Context) {
	html(c, commentFormHTML)
}

func downloadPicker(c *gin.Context) {
	html(c, downloadPickerHTML)
}

func html(c *gin.Context, body string) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
}
