package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hoppxi/shades/pkg/operation"
)

func newGetCmd(a *app) *cobra.Command {
	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Retrieve the current brightness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.devicePath(cmd)
			if err != nil {
				return err
			}
			format, err := a.outputFormat(cmd)
			if err != nil {
				return err
			}
			r, err := a.runner(cmd, format)
			if err != nil {
				return err
			}
			return r.Run(operation.NewQuery(path))
		},
	}

	addPathFlag(getCmd)
	getCmd.Flags().StringP("output", "o", "", "Output format: text, json or yaml")
	return getCmd
}

func newSetCmd(a *app) *cobra.Command {
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Set the current brightness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.devicePath(cmd)
			if err != nil {
				return err
			}
			brightness, _ := cmd.Flags().GetString("brightness")
			r, err := a.runner(cmd, a.config.Output)
			if err != nil {
				return err
			}
			return r.Run(operation.NewApply(path, brightness))
		},
	}

	addPathFlag(setCmd)
	setCmd.Flags().String("brightness", "", "The new brightness value, between 0 and the maximum brightness")
	_ = setCmd.MarkFlagRequired("brightness")
	return setCmd
}
