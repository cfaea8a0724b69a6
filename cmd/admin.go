package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"campaign-wizard/internal/adapter/http"
	"campaign-wizard/internal/adapter/system"
	"campaign-wizard/internal/core/domain"
	"campaign-wizard/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply PostgreSQL migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migration error: %w", err)
		}
		logger.Info("migrations applied successfully")
		return nil
	},
}

var seedEmail string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Add demo campaigns to a user's dashboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		kv, closeStore, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		session := httpadapter.IdentityID(seedEmail)
		n, err := db.Seed(cmd.Context(), kv, session, system.UUIDGenerator{}, system.Clock{}.Now())
		if err != nil {
			return err
		}
		logger.Info("demo campaigns seeded", "email", seedEmail, "session", session, "added", n)
		return nil
	},
}

var (
	tokenEmail string
	tokenName  string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a signed identity token for local testing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Auth.Validate(); err != nil {
			return err
		}
		auth := httpadapter.NewAuthenticator(cfg.Auth, system.Clock{})
		tok, err := auth.SignIdentity(domain.Identity{
			ID:    httpadapter.IdentityID(tokenEmail),
			Email: tokenEmail,
			Name:  tokenName,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedEmail, "email", "", "email address of the dashboard owner")
	_ = seedCmd.MarkFlagRequired("email")

	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email address placed in the token")
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "display name placed in the token")
	_ = tokenCmd.MarkFlagRequired("email")
}
