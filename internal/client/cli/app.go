package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/filekeeper/internal/client/client"
	"github.com/dmitrijs2005/filekeeper/internal/client/config"
	"github.com/dmitrijs2005/filekeeper/internal/client/repositories/files"
	"github.com/dmitrijs2005/filekeeper/internal/client/services"
)

type App struct {
	config  *config.Config
	service services.FileService
	closers []io.Closer
	out     io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	if c.AccessToken == "" {
		token, err := GetSecret("Access token", os.Stdout)
		if err != nil {
			return nil, fmt.Errorf("read access token: %w", err)
		}
		c.AccessToken = token
	}

	db, err := client.InitDatabase(ctx, c.JournalPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing journal: %w", err)
	}

	apiClient, err := client.NewFileKeeperClient(c.ServerEndpointAddr, c.AccessToken)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	svc := services.NewFileService(apiClient, files.NewSQLiteRepository(db), &http.Client{Timeout: c.RequestTimeout})

	return &App{
		config:  c,
		service: svc,
		closers: []io.Closer{apiClient, db},
		out:     os.Stdout,
	}, nil
}

// withTimeout bounds one command by the configured request timeout.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		for _, c := range a.closers {
			_ = c.Close()
		}
	}()

	fmt.Fprintln(a.out, "filekeeper CLI (type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}
