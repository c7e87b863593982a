package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vroute/internal/demo"
	"github.com/vango-dev/vroute/internal/errors"
	"github.com/vango-dev/vroute/pkg/history"
	"github.com/vango-dev/vroute/pkg/render"
	"github.com/vango-dev/vroute/pkg/routepath"
	"github.com/vango-dev/vroute/pkg/router"
	"github.com/vango-dev/vroute/pkg/vdom"
)

func demoCmd(g *globals) *cobra.Command {
	var (
		showHTML bool
		back     int
	)

	cmd := &cobra.Command{
		Use:   "demo [path...]",
		Short: "Navigate the demo application",
		Long: `Mount the demo application at the configured initial path, then
navigate to each path in turn within the same tree. After every step the
visible views and the number of component renders so far are printed.

Examples:
  vroute demo /about /profile/settings /profile/settings/delete
  vroute demo --back 1 /about /users/7
  vroute demo --html /users/7?tab=likes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := make([]string, len(args))
			for i, a := range args {
				t, err := routepath.ValidateTarget(a)
				if err != nil {
					return errors.New("R004").WithSubject(a).Wrap(err)
				}
				targets[i] = t
			}

			h := history.NewMemoryHistory(g.cfg.InitialPath)
			src, err := history.New(h, history.WithLogger(g.logger))
			if err != nil {
				return err
			}
			defer src.Close()

			r := router.NewRouter(src, router.WithLogger(g.logger))
			root := router.BrowserRouter(r, demo.App())
			tree := render.Mount(vdom.Static(func() *vdom.VNode { return root }), render.WithLogger(g.logger))
			defer tree.Unmount()

			out := cmd.OutOrStdout()
			report := func(label string) error {
				fmt.Fprintf(out, "%-8s %-28s %-50s renders=%d\n", label, src.Location(), strings.Join(visibleViews(tree), " > "), tree.Renders())
				if showHTML {
					if err := tree.WriteHTML(out, render.RendererConfig{Pretty: true, Indent: "  "}); err != nil {
						return err
					}
					fmt.Fprintln(out)
				}
				return nil
			}

			if err := report("mount"); err != nil {
				return err
			}
			for _, t := range targets {
				r.Navigate(t)
				if err := report("push"); err != nil {
					return err
				}
			}
			for i := 0; i < back && h.Back(); i++ {
				if err := report("back"); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showHTML, "html", false, "Print the rendered HTML after every step")
	cmd.Flags().IntVar(&back, "back", 0, "Go back this many entries after the last navigation")

	return cmd
}

func visibleViews(tree *render.Tree) []string {
	nodes := tree.FindAll(func(n *vdom.VNode) bool {
		_, ok := n.Props["data-view"]
		return ok
	})
	if len(nodes) == 0 {
		return []string{"(no match)"}
	}
	views := make([]string, len(nodes))
	for i, n := range nodes {
		views[i] = fmt.Sprint(n.Props["data-view"])
	}
	return views
}
