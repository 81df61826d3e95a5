package cli

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vk/designfmt/internal/app"
)

type appFactory func() (*app.App, error)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported value types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range app.TypeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newFormatCmd(newApp appFactory) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:     "format --type TYPE VALUE",
		Aliases: []string{"normalize"},
		Short:   "Print the canonical attribute form of a value",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			out, err := a.Normalize(typeName, args[0])
			if err != nil {
				return failed(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&typeName, "type", "t", "", "Value type, see 'designfmt types'.")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newCheckCmd(newApp appFactory) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "check --type TYPE VALUE...",
		Short: "Check that values parse as the given type",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			failures, err := a.Check(typeName, args...)
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			for _, f := range failures {
				fmt.Fprintln(cmd.ErrOrStderr(), f)
			}
			if len(failures) > 0 {
				return &ExitError{Code: 1, Message: fmt.Sprintf("%d of %d values are invalid", len(failures), len(args))}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d values ok\n", len(args))
			return nil
		},
	}
	cmd.Flags().StringVarP(&typeName, "type", "t", "", "Value type, see 'designfmt types'.")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newAttrsCmd(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "attrs PATH",
		Short: "Print the attributes of HCL or YAML files in markup form",
		Long: `Print the attributes of an HCL or YAML file in markup form. When PATH is a
directory, every .hcl, .yaml and .yml file below it is printed, each under a
"# file" header.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			files, err := a.AttributeFiles(args[0])
			if err != nil {
				return failed(err)
			}

			out := cmd.OutOrStdout()
			for i, file := range files {
				attrs, err := a.Attributes(file)
				if err != nil {
					return failed(fmt.Errorf("%s: %w", file, err))
				}

				if len(files) > 1 {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "# %s\n", file)
				}
				names := lo.Keys(attrs)
				slices.Sort(names)
				for _, name := range names {
					fmt.Fprintf(out, "%s=%q\n", name, attrs[name])
				}
			}
			return nil
		},
	}
}
