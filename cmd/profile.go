package cmd

import (
	"github.com/jsphweid/articulex/logger"
	"github.com/jsphweid/articulex/profile"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profilePushCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Shows or stores articulation profiles",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the active profile as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		data, err := profile.Marshal(p)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var profilePushCmd = &cobra.Command{
	Use:   "push <profile.yaml>",
	Short: "Writes a profile file to the DynamoDB profile table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profile.LoadFile(args[0])
		if err != nil {
			return err
		}
		store, err := newStore(cfg)
		if err != nil {
			return err
		}
		if err := store.SaveProfile(cmd.Context(), p); err != nil {
			return err
		}
		logger.ComponentLogger("profile").Infow("Pushed profile",
			logger.FieldProfile, p.Name,
			logger.FieldCount, p.Len())
		return nil
	},
}
