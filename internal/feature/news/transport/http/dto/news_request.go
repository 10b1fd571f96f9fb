// Package dto defines the form payloads of the news feature.
package dto

// NewsForm is the create/edit post form.
type NewsForm struct {
	Title     string `form:"title" binding:"required,max=255"`
	Content   string `form:"content" binding:"required"`
	IsPrivate bool   `form:"is_private"`
}
