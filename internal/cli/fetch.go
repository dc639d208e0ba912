package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/joeblew999/plat-googlefonts/internal/svc"
	pathcfg "github.com/joeblew999/plat-googlefonts/pkg/config"
	"github.com/joeblew999/plat-googlefonts/pkg/db"
	"github.com/joeblew999/plat-googlefonts/pkg/fetch"
	"github.com/joeblew999/plat-googlefonts/pkg/font"
	"github.com/joeblew999/plat-googlefonts/pkg/queue"
	"github.com/spf13/cobra"
)

// fetchQueueName must match the queue the server's fetch engine consumes.
const fetchQueueName = "font-fetch"

func (c *CLI) googleClient() *font.GoogleClient {
	return font.NewGoogleClient(c.opts.apiKey, c.googleOpts...)
}

// fetchCatalogCommand creates the "fetch-catalog" command.
func (c *CLI) fetchCatalogCommand() *cobra.Command {
	var limit int
	var families []string

	cmd := &cobra.Command{
		Use:   "fetch-catalog",
		Short: "Download the font catalog from the Google Fonts Developer API",
		Long:  `Download the font catalog from the Google Fonts Developer API and write it to fonts/fonts.json in the bundle. Requires an API key.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			entries, err := c.googleClient().FetchCatalog(cmd.Context())
			if err != nil {
				return err
			}
			entries = filterCatalog(entries, families, limit)

			if err := font.WriteCatalog(c.opts.bundleDir, entries); err != nil {
				return err
			}

			c.printSuccess("Wrote %d fonts (%s)", len(entries), time.Since(start).Round(time.Millisecond))
			c.printDetail("Catalog: %s", font.CatalogFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&c.opts.apiKey, "api-key", pathcfg.GetGoogleAPIKey(), "Google Fonts Developer API key")
	cmd.Flags().IntVar(&limit, "limit", 0, "keep only the N most popular fonts")
	cmd.Flags().StringSliceVar(&families, "family", nil, "keep only these families (repeatable)")
	return cmd
}

// fetchCommand creates the "fetch" command.
func (c *CLI) fetchCommand() *cobra.Command {
	var queued bool

	cmd := &cobra.Command{
		Use:   "fetch font-id...",
		Short: "Download font files and embed rules into the bundle",
		Long:  `Download the font files of catalog fonts into the site's public font directory and write their embed rules into the bundle. With --queue the fonts are queued for the server's fetch workers instead.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plugin, closeStore, err := c.openPlugin()
			if err != nil {
				return err
			}
			defer closeStore()

			if queued {
				return c.enqueueFetches(cmd, plugin, args)
			}

			fetchConfig, err := svc.FetchConfig(c.config())
			if err != nil {
				return err
			}

			engine := fetch.NewEngine(nil, plugin, c.googleClient(), fetchConfig)
			for _, id := range args {
				start := time.Now()
				rules, err := engine.FetchNow(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("fetch %s: %w", id, err)
				}
				c.printSuccess("Fetched %s: %d rules (%s)", id, len(rules), time.Since(start).Round(time.Millisecond))
				c.printDetail("Embed: %s", font.EmbedFilePath(id))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&queued, "queue", false, "queue the fetches for the server instead of fetching now")
	return cmd
}

func (c *CLI) enqueueFetches(cmd *cobra.Command, plugin *font.Plugin, ids []string) error {
	catalog, err := plugin.ListFonts()
	if err != nil {
		return err
	}
	if unknown := font.Unknown(ids, catalog); len(unknown) > 0 {
		return fmt.Errorf("%w: %s", font.ErrUnknownFont, strings.Join(unknown, ", "))
	}

	d, err := db.Open(c.opts.dbPath)
	if err != nil {
		return err
	}
	defer d.Close()

	q, err := queue.NewQueue(d.DB, d.SqlConn(), fetchQueueName)
	if err != nil {
		return err
	}
	defer q.Events.Flush()

	for _, id := range ids {
		jobID, err := q.Enqueue(cmd.Context(), queue.FetchJob{FontID: id})
		if err != nil {
			return fmt.Errorf("queue %s: %w", id, err)
		}
		c.printSuccess("Queued %s", id)
		c.printDetail("Job: %s", jobID)
	}
	return nil
}

// filterCatalog keeps the named families, then the first limit entries.
func filterCatalog(entries []font.CatalogEntry, families []string, limit int) []font.CatalogEntry {
	if len(families) > 0 {
		want := make(map[string]bool, len(families))
		for _, f := range families {
			want[font.FontID(f)] = true
		}
		kept := entries[:0]
		for _, e := range entries {
			if want[e.ID] {
				kept = append(kept, e)
			}
		}
		entries = kept
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
