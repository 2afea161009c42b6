package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-dashboard/pkg/jwt"
)

var (
	tokenSubject string
	tokenRole    string
	tokenMinutes int
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Emite un JWT firmado con JWT_SECRET (p. ej. para POST /api/dataset/reload)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cfg.JWT.Secret == "" {
			return errors.New("JWT_SECRET no configurado")
		}
		minutes := cfg.JWT.Expiration
		if cmd.Flags().Changed("minutes") {
			minutes = tokenMinutes
		}
		tok, err := jwt.Generate(cfg.JWT.Secret, tokenSubject, tokenRole, cfg.JWT.Issuer, minutes)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
		return err
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "cli", "subject del token")
	tokenCmd.Flags().StringVar(&tokenRole, "role", jwt.RoleAdmin, "rol del token")
	tokenCmd.Flags().IntVar(&tokenMinutes, "minutes", 0, "vigencia en minutos (por defecto JWT_EXPIRATION_MINUTES)")
}
