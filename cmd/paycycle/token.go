package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/paycycle/internal/auth"
)

func tokenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a member",
		Long: `Issue a signed bearer token identifying a member of the ledger.
The token is signed with auth.jwt_secret and lasts auth.token_ttl.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			memberID, _ := cmd.Flags().GetString("member")
			if a.cfg.Auth.JWTSecret == "" {
				return errors.New("auth.jwt_secret is not configured")
			}

			_, store, err := a.openLedger()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			member, err := store.GetMember(cmd.Context(), memberID)
			if err != nil {
				return err
			}

			token, err := auth.NewJWTManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL).Generate(member)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().String("member", "", "member ID")
	_ = cmd.MarkFlagRequired("member")
	return cmd
}
