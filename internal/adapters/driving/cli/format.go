package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Itterum/ts-app/internal/core/domain"
)

func formatUser(u domain.User) string {
	password := "(none)"
	if u.Password != "" {
		password = maskSecret(u.Password)
	}
	return fmt.Sprintf("user %s: name=%q email=%q password=%s", u.ID, u.Name, u.Email, password)
}

func formatCar(c domain.Car) string {
	return fmt.Sprintf("car %s: brand=%q model=%q year=%d color=%q", c.ID, c.Brand, c.Model, c.Year, c.Color)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
