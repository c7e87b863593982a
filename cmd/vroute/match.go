package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vroute/internal/demo"
	"github.com/vango-dev/vroute/internal/errors"
	"github.com/vango-dev/vroute/pkg/match"
	"github.com/vango-dev/vroute/pkg/routepath"
)

func matchCmd(g *globals) *cobra.Command {
	var (
		routesFile string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "match <path>",
		Short: "Resolve a route table against a path",
		Long: `Resolve a nested route table against a path the way nested Switches
would, and print the matched route at every level.

The table is a JSON or YAML list of entries with name, path, exact and
children fields. Without --routes the demo application's table is used.

Examples:
  vroute match /profile/settings
  vroute match --routes routes.yaml /users/42
  vroute match --json /about`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := demo.Table()
			if routesFile != "" {
				var err error
				if table, err = loadTable(routesFile); err != nil {
					return err
				}
			}
			if err := match.Validate(table); err != nil {
				return err
			}

			target, err := routepath.ValidateTarget(args[0])
			if err != nil {
				return errors.New("R004").WithSubject(args[0]).Wrap(err)
			}

			steps, err := match.Resolve(table, target)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if steps == nil {
					steps = []match.Step{}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(steps)
			}

			if len(steps) == 0 {
				fmt.Fprintf(out, "no route matches %s\n", target)
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DEPTH\tNAME\tPATTERN\tREALPATH\tPARAMS")
			for i, s := range steps {
				fmt.Fprintf(tw, "%d\t%s\t%q\t/%s\t%s\n", i+1, s.Name, s.Pattern, s.Realpath, formatParams(s.Params))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&routesFile, "routes", "r", "", "Route table file (.json, .yaml or .yml)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the matches as JSON")

	return cmd
}

// loadTable reads a route table, choosing the decoder by file extension.
func loadTable(path string) ([]match.TableEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("R005").WithSubject(path).Wrap(err)
	}

	var table []match.TableEntry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &table)
	default:
		err = json.Unmarshal(data, &table)
	}
	if err != nil {
		return nil, errors.New("R005").WithSubject(path).Wrap(err)
	}
	return table, nil
}

func formatParams(params map[string]string) string {
	if len(params) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + params[k]
	}
	return strings.Join(parts, " ")
}
