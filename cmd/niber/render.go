package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/niber/internal/errors"
	"github.com/vango-dev/niber/pkg/render"
)

func renderCmd(configPath *string) *cobra.Command {
	var (
		clicks []string
		event  string
		pretty bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "render <tree-file>",
		Short: "Render a tree file",
		Long: `Render a tree file through the runtime and print the result.

Each --click is a dot-separated child index path from the container
root, dispatched in order after the initial render. The output is the
committed HTML, or the instance tree when --format=json.

Examples:
  niber render app.yaml
  niber render app.json --click 0.2 --click 0.2
  niber render app.yaml --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Render.Pretty = pretty
			}

			desc, err := loadTree(args[0])
			if err != nil {
				return err
			}

			s := newSession(cfg, cmd.ErrOrStderr())
			if err := s.runtime.Render(desc, s.container); err != nil {
				return err
			}

			for _, click := range clicks {
				path, err := parsePath(click)
				if err != nil {
					return err
				}
				node, err := s.container.Root().At(path)
				if err != nil {
					return err
				}
				if !node.Dispatch(event, nil) {
					s.logger.Warn("event not handled", "path", click, "event", event)
				}
			}

			out := cmd.OutOrStdout()
			switch format {
			case "html":
				r := render.NewRenderer(render.Config{Pretty: cfg.Render.Pretty, Indent: cfg.Render.Indent})
				html, err := r.RenderContainer(s.container)
				if err != nil {
					return err
				}
				fmt.Fprint(out, html)
				if !cfg.Render.Pretty {
					fmt.Fprintln(out)
				}
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(s.runtime.Snapshot())
			default:
				return errors.Newf(errors.CategoryCLI, "unknown format %q", format).
					WithSuggestion("Use --format html or --format json.")
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&clicks, "click", nil, "Dispatch an event at a child index path, e.g. 0.1 (repeatable)")
	cmd.Flags().StringVar(&event, "event", "click", "Event type dispatched by --click")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print HTML (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "html", "Output format: html or json")

	return cmd
}

// parsePath parses a dot-separated index path. The empty string is the
// container root.
func parsePath(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ".")
	path := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, errors.Newf(errors.CategoryCLI, "invalid node path %q", s).
				WithSuggestion("Paths are dot-separated child indexes, e.g. 0.1.")
		}
		path[i] = n
	}
	return path, nil
}
