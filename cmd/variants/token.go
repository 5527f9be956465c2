package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcos-nsantos/image-variants/internal/infrastructure/auth"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/config"
)

func tokenEntrypoint() *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token [subject]",
		Short: "Issue a bearer token for the upload API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadCLI()
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = cfg.JWT.AccessTokenTTL
			}

			return runToken(auth.NewJWTService(cfg.JWT.SecretKey, ttl), args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default from JWT_ACCESS_TOKEN_TTL)")

	return cmd
}

func runToken(jwtSvc *auth.JWTService, subject string, out io.Writer) error {
	if !jwtSvc.Enabled() {
		return fmt.Errorf("JWT_SECRET_KEY is not set, the API accepts unauthenticated uploads")
	}

	token, expiresAt, err := jwtSvc.GenerateAccessToken(subject)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, token)
	fmt.Fprintf(out, "# expires %s\n", expiresAt.Format(time.RFC3339))
	return nil
}
