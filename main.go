package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"roomboard/core/config"
	"roomboard/core/database"
	"roomboard/core/logger"
	"roomboard/core/server"
	"roomboard/modules/user"

	"github.com/spf13/pflag"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: roomboard <server|adduser> [flags]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "server":
		if err := server.Run(cfg); err != nil {
			logger.Error("run server error", err)
			os.Exit(1)
		}
	case "adduser":
		if err := runAddUser(cfg, os.Args[2:], os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "adduser error:", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		os.Exit(1)
	}
}

// runAddUser provisions a display-client account. Values missing from the
// flags are read interactively, like the first version of this tool did.
func runAddUser(cfg *config.Config, args []string, in io.Reader, out io.Writer) error {
	flags := pflag.NewFlagSet("adduser", pflag.ContinueOnError)
	username := flags.StringP("username", "u", "", "name of the user")
	password := flags.StringP("password", "p", "", "password of the user")
	room := flags.StringP("room", "r", "", "room of the user")
	if err := flags.Parse(args); err != nil {
		return err
	}

	reader := bufio.NewReader(in)
	loginName, err := promptIfEmpty(reader, out, "username", *username)
	if err != nil {
		return err
	}
	pw, err := promptIfEmpty(reader, out, "password", *password)
	if err != nil {
		return err
	}
	roomNumber, err := promptIfEmpty(reader, out, "room", *room)
	if err != nil {
		return err
	}

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Bootstrap(ctx); err != nil {
		return err
	}

	userService := user.Init(db)
	created, appErr := userService.Create(ctx, loginName, pw, roomNumber)
	if appErr != nil {
		return appErr
	}

	fmt.Fprintf(out, "created user %s for room %s\n", created.LoginName, created.Room)
	return nil
}

func promptIfEmpty(reader *bufio.Reader, out io.Writer, label string, value string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Fprintf(out, "Please insert a %s\n", label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}
	return strings.TrimSpace(line), nil
}
