// Package cli implements the interactive terminal client for Taskify.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/taskify/internal/client/api"
	"github.com/dmitrijs2005/taskify/internal/client/config"
	"github.com/dmitrijs2005/taskify/internal/server/models"
)

type App struct {
	config   *config.Config
	api      *api.Client
	userName string
	reader   *bufio.Reader

	// lastList holds the tasks printed by the most recent list command,
	// so done/rm can address them by their printed position.
	lastList []*models.Task
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerURL, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Taskify CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.api.LoggedIn()
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.userName
	}
	return "not logged in"
}
