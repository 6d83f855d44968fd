package cli

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/limbo/levelup/internal/service"
	"github.com/limbo/levelup/pkg/config"
	jwtservice "github.com/limbo/levelup/pkg/jwt_service"
	"github.com/spf13/cobra"
)

var userFlags struct {
	name    string
	country string
	city    string
}

func init() {
	f := usersAddCmd.Flags()
	f.StringVar(&userFlags.name, "name", "", "unique user name")
	f.StringVar(&userFlags.country, "country", "", "profile country")
	f.StringVar(&userFlags.city, "city", "", "profile city")
	usersAddCmd.MarkFlagRequired("name")
	usersCmd.AddCommand(usersAddCmd, usersTokenCmd)
	rootCmd.AddCommand(usersCmd)
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage progression profiles",
}

var usersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a profile with zero progression",
	Args:  cobra.NoArgs,
	RunE:  runUsersAdd,
}

var usersTokenCmd = &cobra.Command{
	Use:   "token <uid>",
	Short: "Sign an API token for a user with JWT_SECRET",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersToken,
}

func runUsersAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	user, err := a.Users.CreateProfile(cmd.Context(), &service.CreateProfileRequest{
		Name:    userFlags.name,
		Country: userFlags.country,
		City:    userFlags.city,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), user.ID)
	return nil
}

func runUsersToken(cmd *cobra.Command, args []string) error {
	uid, err := uuid.Parse(args[0])
	if err != nil {
		return errors.New("invalid uid: " + err.Error())
	}
	secret := config.New().GetString("JWT_SECRET")
	if secret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	token, err := jwtservice.New(secret).GenerateToken(uid)
	if err != nil {
		return errors.New("signing token error: " + err.Error())
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
