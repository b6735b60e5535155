package main

import (
	"context"
	"errors"
	"fmt"
	"travel/internal/config"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// userCommand groups account management subcommands.
func userCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manages user accounts",
	}
	cmd.AddCommand(userCreateCommand(cfg))

	return cmd
}

// userCreateCommand stores a new account and prints its ID, which can be
// used as the subject of the jwt command.
func userCreateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Creates a user and prints its ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			username, _ := cmd.Flags().GetString("username")
			email, _ := cmd.Flags().GetString("email")
			firstName, _ := cmd.Flags().GetString("first-name")
			lastName, _ := cmd.Flags().GetString("last-name")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			user, err := strg.StoreUser(ctx, domain.User{
				Username:  username,
				Email:     email,
				FirstName: firstName,
				LastName:  lastName,
			})
			if errors.Is(err, storage.ErrDuplicate) {
				logger.Error(ctx, "username is already taken", zap.String("username", username))

				return
			}
			if err != nil {
				logger.Fatal(ctx, "could not create user", zap.Error(err))
			}

			fmt.Println(user.ID) //nolint: forbidigo
		},
	}

	cmd.Flags().String("username", "", "Unique username")
	cmd.Flags().String("email", "", "E-mail address notifications are sent to")
	cmd.Flags().String("first-name", "", "First name")
	cmd.Flags().String("last-name", "", "Last name")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
