package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-packaging-service/internal/domain/packaging"
	"github.com/jsamuelsen11/go-packaging-service/internal/ports"
)

type globalOptions struct {
	envFile   string
	configDir string
	verbose   bool
}

// serviceOpener resolves the workflow for one command run.
type serviceOpener func(cmd *cobra.Command, opts globalOptions) (ports.PackagingDebugService, func(), error)

func newRootCmd(open serviceOpener) *cobra.Command {
	var opts globalOptions

	root := &cobra.Command{
		Use:           "packagingctl",
		Short:         "Inspect and exercise packaging strategies",
		Long:          "packagingctl lists the registered packaging strategies, shows the selection form and applies a strategy to two sample products.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "optional dotenv file loaded before configuration")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "directory holding base.yaml and the profile YAML (default \"configs\")")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "write service logs to stderr")

	// withService opens the workflow, runs fn and releases resources.
	withService := func(fn func(cmd *cobra.Command, svc ports.PackagingDebugService, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := open(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()
			return fn(cmd, svc, args)
		}
	}

	root.AddCommand(
		newStrategiesCmd(withService),
		newFormCmd(withService),
		newApplyCmd(withService),
	)
	return root
}

type runner func(fn func(cmd *cobra.Command, svc ports.PackagingDebugService, args []string) error) func(*cobra.Command, []string) error

func newStrategiesCmd(with runner) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List registered strategies in registry order",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, svc ports.PackagingDebugService, _ []string) error {
			descriptors, err := svc.ListStrategies(cmd.Context())
			if err != nil {
				return err
			}
			return printDescriptors(cmd.OutOrStdout(), descriptors)
		}),
	}
}

func newFormCmd(with runner) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Show the strategy selection form",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, svc ports.PackagingDebugService, _ []string) error {
			form, err := svc.RenderSelectionForm(cmd.Context())
			if err != nil {
				return err
			}
			return printForm(cmd.OutOrStdout(), form)
		}),
	}
}

func newApplyCmd(with runner) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "apply <strategy-id>",
		Short: "Select a strategy and run it against two sample products",
		Long: "apply persists the strategy selection and runs the strategy against two empty sample products.\n" +
			"Unknown ids are rejected before anything is persisted unless --force is given.",
		Args: cobra.ExactArgs(1),
		RunE: with(func(cmd *cobra.Command, svc ports.PackagingDebugService, args []string) error {
			var (
				report *packaging.InvocationReport
				err    error
			)
			id := strings.TrimSpace(args[0])
			if force {
				report, err = svc.ApplySelection(cmd.Context(), id)
			} else {
				report, err = svc.SubmitSelection(cmd.Context(), ports.SelectionInput{StrategyID: id})
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n%s", report.AdminLabel, report.StrategyID, report.Dump)
			return err
		}),
	}
	cmd.Flags().BoolVar(&force, "force", false, "skip registry validation and persist the id as given")
	return cmd
}

func printDescriptors(w io.Writer, descriptors []packaging.Descriptor) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLABEL")
	for _, d := range descriptors {
		fmt.Fprintf(tw, "%s\t%s\n", d.ID, d.AdminLabel)
	}
	return tw.Flush()
}

func printForm(w io.Writer, form *packaging.SelectionForm) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", form.Title)
	if form.Empty {
		b.WriteString("  (no strategies available)\n")
	}
	for _, o := range form.Options {
		marker := " "
		if o.Value == form.Default {
			marker = "*"
		}
		fmt.Fprintf(&b, "  %s %s\t%s\n", marker, o.Value, o.Label)
	}
	if form.Stale {
		fmt.Fprintf(&b, "  ! saved strategy %q is no longer registered\n", form.Default)
	}
	fmt.Fprintf(&b, "\nOperations:\n%s", form.Operations)
	fmt.Fprintf(&b, "\n[%s]\n", form.SubmitLabel)

	_, err := io.WriteString(w, b.String())
	return err
}
