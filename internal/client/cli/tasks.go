package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var errNotLoggedIn = errors.New("please log in first")

func (a *App) requireLogin() error {
	if !a.api.IsLoggedIn() {
		a.printError(errNotLoggedIn)
		return errNotLoggedIn
	}
	return nil
}

// argOrPrompt joins args, or asks for the value when args are empty.
func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(strings.Join(args, " ")), nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) List(ctx context.Context, _ []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	items, err := a.api.ListTasks(ctx)
	if err != nil {
		a.printError(err)
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No tasks yet. Use 'add' to create one.")
		return nil
	}
	for _, item := range items {
		fmt.Fprintln(a.out, renderTask(item))
	}
	return nil
}

// Add creates a task from args, or from a prompt when no args are given.
func (a *App) Add(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	text, err := a.argOrPrompt(args, "Enter task text")
	if err != nil {
		return err
	}
	if text == "" {
		err := errors.New("task text cannot be empty")
		a.printError(err)
		return err
	}

	task, err := a.api.CreateTask(ctx, text)
	if err != nil {
		a.printError(err)
		return err
	}

	a.printSuccess("Task added")
	fmt.Fprintln(a.out, renderTask(*task))
	return nil
}

// Update replaces the text of task args[0]. The new text is taken from the
// remaining args or prompted for.
func (a *App) Update(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := a.argOrPrompt(args[:min(len(args), 1)], "Enter task id to update")
	if err != nil {
		return err
	}
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	text, err := a.argOrPrompt(rest, "Enter new text")
	if err != nil {
		return err
	}
	if text == "" {
		err := errors.New("task text cannot be empty")
		a.printError(err)
		return err
	}

	task, err := a.api.UpdateTask(ctx, id, text)
	if err != nil {
		a.printError(err)
		return err
	}

	a.printSuccess("Task updated successfully")
	if task != nil {
		fmt.Fprintln(a.out, renderTask(*task))
	}
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := a.argOrPrompt(args[:min(len(args), 1)], "Enter task id to delete")
	if err != nil {
		return err
	}

	if err := a.api.DeleteTask(ctx, id); err != nil {
		a.printError(err)
		return err
	}

	a.printSuccess("Task deleted")
	return nil
}
