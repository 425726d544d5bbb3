package main

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/samplecafe/cafe/internal/content"
	"github.com/samplecafe/cafe/internal/errors"
	"github.com/samplecafe/cafe/internal/pages"
	"github.com/samplecafe/cafe/internal/routes"
	"github.com/samplecafe/cafe/pkg/dom"
	"github.com/samplecafe/cafe/pkg/render"
)

func renderCmd(opts *globalOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render <path>",
		Short: "Render a public page to HTML",
		Long: `Render a public page to HTML without starting the server.

The page is rendered from the content store exactly as the server would
serve it. Output goes to stdout unless --out is given.

Examples:
  cafe render /
  cafe render /access --out=access.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return errors.Newf(errors.CategoryCLI, "could not create %s", out).Wrap(err)
				}
				defer f.Close()
				w = f
			}
			return renderPath(w, store, args[0])
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the page to this file")

	return cmd
}

// renderPath writes the document for path to w.
func renderPath(w io.Writer, store *content.Store, path string) error {
	canon, _, err := routes.Canonicalize(path)
	if err != nil {
		return errors.New("C501").WithDetail(err.Error())
	}
	if _, ok := routes.Lookup(canon); !ok || routes.RequiresAuth(canon) || canon == routes.AdminLogin {
		return errors.New("C501").WithSuggestion("Known pages: / /access /reservations /gallery /about /highlights")
	}

	snap, err := store.Snapshot()
	if err != nil {
		return err
	}

	title := routes.Title(canon)
	site := pages.Site{Path: canon, Snapshot: snap, OnTitle: func(t string) { title = t }}

	container := dom.MustElement("div")
	root := render.CreateRoot(container)
	defer root.Unmount()
	if err := root.Render(site.Element()); err != nil {
		return errors.New("C500").Wrap(err)
	}

	bw := bufio.NewWriter(w)
	if err := render.WritePage(bw, pages.Document(title, container)); err != nil {
		return err
	}
	return bw.Flush()
}
