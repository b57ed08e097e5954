package rest

import "github.com/dmitrijs2005/taskify/internal/server/models"

type RegisterIn struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthOut is returned by both register and login: the public user view
// plus a fresh session token.
type AuthOut struct {
	User  models.PublicUser `json:"user"`
	Token string            `json:"token"`
}

type CreateTaskIn struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// PatchTaskIn distinguishes "field absent" (nil) from "field set to zero
// value", so a PATCH only touches what the client sent.
type PatchTaskIn struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Done        *bool   `json:"isDone,omitempty"`
}

func (in PatchTaskIn) Patch() models.TaskPatch {
	return models.TaskPatch{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Done:        in.Done,
	}
}
