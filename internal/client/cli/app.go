package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophtasks/internal/client/client"
	"github.com/dmitrijs2005/gophtasks/internal/client/config"
	"github.com/dmitrijs2005/gophtasks/internal/client/models"
)

// API is the server surface the CLI needs. *client.HTTPClient implements it.
type API interface {
	Ping(ctx context.Context) (string, error)
	Register(ctx context.Context, userName, password string) error
	Login(ctx context.Context, userName, password string) error
	Logout()
	IsLoggedIn() bool
	UserName() string
	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, text string) (*models.Task, error)
	UpdateTask(ctx context.Context, id, text string) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

type App struct {
	config *config.Config
	api    API
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, titleStyle.Render("gophtasks CLI")+" (type 'help' for commands)")
	_ = a.Status(ctx, nil)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.api.IsLoggedIn()
}

func (a *App) getStatus() string {
	if a.api.IsLoggedIn() {
		return fmt.Sprintf("(%s)", a.api.UserName())
	}
	return ""
}

// Status prints the server's reachability and storage status.
func (a *App) Status(ctx context.Context, _ []string) error {
	status, err := a.api.Ping(ctx)
	if err != nil {
		a.printError(fmt.Errorf("server %s unreachable: %w", a.config.ServerURL, err))
		return err
	}
	fmt.Fprintf(a.out, "Server %s is running, database: %s\n", a.config.ServerURL, status)
	return nil
}

func (a *App) printError(err error) {
	fmt.Fprintln(a.out, errorStyle.Render("Error: "+err.Error()))
}

func (a *App) printSuccess(msg string) {
	fmt.Fprintln(a.out, successStyle.Render(msg))
}
