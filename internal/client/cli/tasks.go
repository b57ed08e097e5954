package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/taskify/internal/server/models"
	"github.com/dmitrijs2005/taskify/internal/server/rest"
)

// List fetches and prints the user's tasks, newest first. A non-empty
// category restricts the listing. The printed positions are remembered so
// done/rm can refer to tasks as "1", "2", etc.
func (a *App) List(ctx context.Context, category string) error {
	tasks, err := a.api.ListTasks(ctx, category)
	if err != nil {
		return err
	}

	a.lastList = tasks

	if len(tasks) == 0 {
		printlnFn("No tasks")
		return nil
	}

	for i, task := range tasks {
		mark := " "
		if task.Done {
			mark = "x"
		}
		printlnFn(fmt.Sprintf("%3d. [%s] %-12s %s", i+1, mark, task.Category, task.Title))
	}
	return nil
}

// Add interactively prompts for a title, an optional multiline description
// and an optional category, then creates the task. An empty category is
// assigned by the server.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	description, err := GetMultiline(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	category, err := getSimpleText(a.reader,
		"Enter category (optional, e.g. "+strings.Join(models.KnownCategories, ", ")+")", os.Stdout)
	if err != nil {
		return err
	}

	task, err := a.api.CreateTask(ctx, title, description, category)
	if err != nil {
		return err
	}

	printlnFn("Added:", task.Title, "("+task.Category+")")
	return nil
}

// Done marks a task as completed. ref is either a position from the last
// list output or a task id.
func (a *App) Done(ctx context.Context, ref string) error {
	id, err := a.resolveRef(ref)
	if err != nil {
		return err
	}

	done := true
	task, err := a.api.UpdateTask(ctx, id, rest.PatchTaskIn{Done: &done})
	if err != nil {
		return err
	}

	printlnFn("Completed:", task.Title)
	return nil
}

// Remove deletes a task. ref is either a position from the last list output
// or a task id.
func (a *App) Remove(ctx context.Context, ref string) error {
	id, err := a.resolveRef(ref)
	if err != nil {
		return err
	}

	if err := a.api.DeleteTask(ctx, id); err != nil {
		return err
	}

	printlnFn("Deleted")
	return nil
}

// resolveRef maps a user-supplied task reference to a task id. A small
// integer is treated as a 1-based position in the last listing; anything
// else is assumed to already be an id.
func (a *App) resolveRef(ref string) (string, error) {
	n, err := strconv.Atoi(ref)
	if err != nil {
		return ref, nil
	}
	if n < 1 || n > len(a.lastList) {
		return "", fmt.Errorf("no task %d in the last listing, run 'list' first", n)
	}
	return a.lastList[n-1].ID, nil
}
