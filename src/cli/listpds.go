package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pdmove/src/config"
	"pdmove/src/prismapi"
)

func newListPDsCmd(stdout io.Writer) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "listpds <params.json>",
		Short: "List the VMs that belong to the configured protection domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0], false)
			if err != nil {
				return err
			}
			client := connect(cfg)
			entities, err := client.ListProtectionDomainEntities(cfg.ProtectionDomain)
			if err != nil {
				return err
			}
			switch output {
			case "json":
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(entities)
			case "table", "":
				return renderEntities(stdout, entities)
			default:
				return fmt.Errorf("unsupported --output: %s", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table|json")
	return cmd
}

// renderEntities prints one row per VM in the order the API returned
// them. An empty domain prints nothing at all.
func renderEntities(w io.Writer, entities []prismapi.EntityRef) error {
	if len(entities) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tUUID")
	for _, e := range entities {
		fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.UUID)
	}
	return tw.Flush()
}
