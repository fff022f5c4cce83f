package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/Itterum/ts-app/internal/core/domain"
	"github.com/Itterum/ts-app/internal/core/ports/driving"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through create, read, update and delete",
	Long: `Runs a user and a car through every gateway operation against
fresh stores and prints each result, finishing with a failing call.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	if svc == nil {
		return errors.New("services not initialised")
	}
	ctx := commandContext(cmd)

	user := domain.User{
		ID:       svc.IDGenerator.Generate(),
		Name:     "John",
		Email:    "john@example.com",
		Password: "passw0rd",
	}
	cmd.Println(headerStyle.Render("Users"))
	if err := demoEntity(ctx, cmd, svc.Users, user, domain.Patch{"name": "John Doe"}, formatUser); err != nil {
		return err
	}
	cmd.Println()

	car := domain.Car{
		ID:    svc.IDGenerator.Generate(),
		Brand: "Toyota",
		Model: "Corolla",
		Year:  2020,
		Color: "blue",
	}
	cmd.Println(headerStyle.Render("Cars"))
	return demoEntity(ctx, cmd, svc.Cars, car, domain.Patch{"color": "red", "year": 2021}, formatCar)
}

// demoEntity runs entity through the full lifecycle. Only an unexpected
// outcome is returned as an error; the expected failure at the end is printed.
func demoEntity[T domain.Entity](
	ctx context.Context,
	cmd *cobra.Command,
	gateway driving.EntityGateway[T],
	entity T,
	patch domain.Patch,
	format func(T) string,
) error {
	id := entity.GetID()

	conf, err := gateway.Create(ctx, entity)
	if err != nil {
		return err
	}
	cmd.Println(successStyle.Render(conf.String()))

	if err := demoRead(ctx, cmd, gateway, id, format); err != nil {
		return err
	}

	conf, err = gateway.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	cmd.Println(successStyle.Render(conf.String()))

	if err := demoRead(ctx, cmd, gateway, id, format); err != nil {
		return err
	}

	conf, err = gateway.Delete(ctx, id)
	if err != nil {
		return err
	}
	cmd.Println(successStyle.Render(conf.String()))

	if err := demoRead(ctx, cmd, gateway, id, format); err != nil {
		return err
	}

	if _, err := gateway.Delete(ctx, id); err != nil {
		cmd.Println(errorStyle.Render(err.Error()))
		return nil
	}
	return errors.New("deleting a removed entity unexpectedly succeeded")
}

func demoRead[T domain.Entity](
	ctx context.Context,
	cmd *cobra.Command,
	gateway driving.EntityGateway[T],
	id string,
	format func(T) string,
) error {
	entity, found, err := gateway.Read(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		cmd.Println(mutedStyle.Render("No entity with id " + id + "."))
		return nil
	}
	cmd.Println(format(entity))
	return nil
}
