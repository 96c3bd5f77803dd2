package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-qa-api/internal/config"
	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/authenticating"
)

func newTokenCmd(cfg *config.Config) *cobra.Command {
	var subject, role string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite um token de acesso à API",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := authenticating.NewService(cfg.Auth).IssueToken(subject, domain.Role(role))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Nome de quem usará o token (obrigatório)")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleOperator), "Papel: operator ou viewer")

	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
