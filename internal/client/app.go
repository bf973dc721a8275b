// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/peninsula/internal/adapter"
	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/models"
)

const usage = `usage: peninsula-client <command> [flags]

commands:
  health                                   show server status
  login   -u <username> -p <password>      obtain a token pair
  refresh -r <refresh token>               obtain a new access token
  check                                    compare the deployment with its remote
  apply                                    run the update script
  users list
  users create -u <username> -p <password> [-role admin|user]
  users update -id <id> [-p <password>] [-role admin|user]
  users delete -id <id>
`

var _ Client = (*App)(nil)

type command func(ctx context.Context, args []string) (any, error)

// App dispatches subcommands to the server adapter.
type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer
	errOut  io.Writer
	logger  *logger.Logger
}

// NewApp returns an App writing results to out and usage text to errOut.
func NewApp(serverAdapter adapter.ServerAdapter, out, errOut io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter: serverAdapter,
		out:     out,
		errOut:  errOut,
		logger:  logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.errOut, usage)
		return ErrUsage
	}

	cmd, rest, err := a.resolve(args)
	if err != nil {
		fmt.Fprint(a.errOut, usage)
		return err
	}

	result, err := cmd(ctx, rest)
	if errors.Is(err, ErrUsage) {
		fmt.Fprint(a.errOut, usage)
		return err
	}
	if err != nil {
		// the server's error body carries the update script diagnostics
		var apiErr *adapter.APIError
		if errors.As(err, &apiErr) {
			if printErr := a.print(apiErr.Response); printErr != nil {
				a.logger.Err(printErr).Msg("failed to print error response")
			}
		}
		return err
	}

	return a.print(result)
}

func (a *App) resolve(args []string) (command, []string, error) {
	commands := map[string]command{
		"health":  a.health,
		"login":   a.login,
		"refresh": a.refresh,
		"check":   a.admin(a.check),
		"apply":   a.admin(a.apply),
	}
	userCommands := map[string]command{
		"list":   a.admin(a.listUsers),
		"create": a.admin(a.createUser),
		"update": a.admin(a.updateUser),
		"delete": a.admin(a.deleteUser),
	}

	if args[0] == "users" {
		if len(args) < 2 {
			return nil, nil, fmt.Errorf("%w: users needs a subcommand", ErrUsage)
		}
		cmd, ok := userCommands[args[1]]
		if !ok {
			return nil, nil, fmt.Errorf("%w: unknown users subcommand %q", ErrUsage, args[1])
		}
		return cmd, args[2:], nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return nil, nil, fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return cmd, args[1:], nil
}

func (a *App) admin(next command) command {
	return func(ctx context.Context, args []string) (any, error) {
		if a.adapter.Token() == "" {
			return nil, ErrNoToken
		}
		return next(ctx, args)
	}
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUsage, fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %s: unexpected arguments %s", ErrUsage, fs.Name(), strings.Join(fs.Args(), " "))
	}
	return nil
}

func (a *App) health(ctx context.Context, args []string) (any, error) {
	if err := parseFlags(a.flagSet("health"), args); err != nil {
		return nil, err
	}
	return a.adapter.Health(ctx)
}

func (a *App) login(ctx context.Context, args []string) (any, error) {
	fs := a.flagSet("login")
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	pair, err := a.adapter.Login(ctx, models.LoginRequest{Username: *username, Password: *password})
	if err != nil {
		return nil, err
	}

	a.logger.Debug().Str("username", *username).Msg("logged in")
	return pair, nil
}

func (a *App) refresh(ctx context.Context, args []string) (any, error) {
	fs := a.flagSet("refresh")
	refreshToken := fs.String("r", "", "refresh token")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	accessToken, err := a.adapter.Refresh(ctx, *refreshToken)
	if err != nil {
		return nil, err
	}
	return models.AccessTokenResponse{AccessToken: accessToken}, nil
}

func (a *App) check(ctx context.Context, args []string) (any, error) {
	if err := parseFlags(a.flagSet("check"), args); err != nil {
		return nil, err
	}
	return a.adapter.CheckUpdate(ctx)
}

func (a *App) apply(ctx context.Context, args []string) (any, error) {
	if err := parseFlags(a.flagSet("apply"), args); err != nil {
		return nil, err
	}

	a.logger.Info().Msg("running update script, this may take a while")
	return a.adapter.ApplyUpdate(ctx)
}

func (a *App) listUsers(ctx context.Context, args []string) (any, error) {
	if err := parseFlags(a.flagSet("users list"), args); err != nil {
		return nil, err
	}

	users, err := a.adapter.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return models.UsersResponse{Users: users}, nil
}

func (a *App) createUser(ctx context.Context, args []string) (any, error) {
	fs := a.flagSet("users create")
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	role := fs.String("role", "", "role (admin or user)")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	user, err := a.adapter.CreateUser(ctx, models.CreateUserRequest{
		Username: *username,
		Password: *password,
		Role:     models.Role(*role),
	})
	if err != nil {
		return nil, err
	}
	return models.UserResponse{User: user}, nil
}

func (a *App) updateUser(ctx context.Context, args []string) (any, error) {
	fs := a.flagSet("users update")
	id := fs.Int64("id", 0, "user id")
	password := fs.String("p", "", "new password")
	role := fs.String("role", "", "new role (admin or user)")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	// only flags given on the command line are sent
	request := models.UpdateUserRequest{ID: *id}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			request.Password = password
		case "role":
			r := models.Role(*role)
			request.Role = &r
		}
	})

	user, err := a.adapter.UpdateUser(ctx, request)
	if err != nil {
		return nil, err
	}
	return models.UserResponse{User: user}, nil
}

func (a *App) deleteUser(ctx context.Context, args []string) (any, error) {
	fs := a.flagSet("users delete")
	id := fs.Int64("id", 0, "user id")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	if err := a.adapter.DeleteUser(ctx, models.DeleteUserRequest{ID: *id}); err != nil {
		return nil, err
	}
	return models.SuccessResponse{Success: true}, nil
}
