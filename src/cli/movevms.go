package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pdmove/src/category"
	"pdmove/src/config"
	"pdmove/src/migrate"
	"pdmove/src/safety"
)

func newMoveVMsCmd(stdout io.Writer) *cobra.Command {
	var keepGoing bool
	cmd := &cobra.Command{
		Use:   "move-vms <params.json>",
		Short: "Move the protection domain's VMs into the configured category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0], true)
			if err != nil {
				return err
			}
			cat, err := category.Parse(cfg.Category)
			if err != nil {
				return &config.Error{Path: args[0], Err: err}
			}

			client := connect(cfg)
			entities, err := client.ListProtectionDomainEntities(cfg.ProtectionDomain)
			if err != nil {
				return err
			}
			if len(entities) == 0 {
				fmt.Fprintf(stdout, "PD %s has no existing entities. Nothing to do.\n", cfg.ProtectionDomain)
				return nil
			}
			if len(entities) == 1 {
				fmt.Fprintln(stdout, "1 VM will be reconfigured.")
			} else {
				fmt.Fprintf(stdout, "%d VMs will be reconfigured.\n", len(entities))
			}

			opts := getSafetyOptions(cmd)
			if opts.DryRun {
				for _, e := range entities {
					fmt.Fprintf(stdout, "would move %s (%s) from PD %s to category %s\n",
						e.Name, e.UUID, cfg.ProtectionDomain, cat)
				}
				return nil
			}
			ok, err := safety.Confirm(opts, cmd.InOrStdin(), stdout,
				fmt.Sprintf("Move them from PD %s to category %s?", cfg.ProtectionDomain, cat))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(stdout, "Aborted.")
				return nil
			}

			_, err = migrate.Apply(client, entities, migrate.Options{
				Domain:        cfg.ProtectionDomain,
				CategoryKey:   cat.Key,
				CategoryValue: cat.Value,
				KeepGoing:     keepGoing,
			}, stdout)
			return err
		},
	}
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Attempt every VM and report per-VM failures instead of halting on the first error")
	return cmd
}
