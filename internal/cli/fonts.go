package cli

import (
	"fmt"

	"github.com/joeblew999/plat-googlefonts/pkg/font"
	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/jsonx"
)

// listCommand creates the "list" command printing the catalog.
func (c *CLI) listCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the fonts in the bundled catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plugin, closeStore, err := c.openPlugin()
			if err != nil {
				return err
			}
			defer closeStore()

			catalog, err := plugin.ListFonts()
			if err != nil {
				return err
			}
			if asJSON {
				return c.printJSON(catalog)
			}

			c.printTitle("%d fonts", len(catalog))
			for _, f := range catalog {
				c.printRow(f.ID, f.Family, f.Category, f.Variants)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalog as JSON")
	return cmd
}

// enabledCommand creates the "enabled" command printing a context's fonts.
func (c *CLI) enabledCommand() *cobra.Command {
	var contextID int64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "enabled",
		Short: "List the fonts enabled for a site or journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plugin, closeStore, err := c.openPlugin()
			if err != nil {
				return err
			}
			defer closeStore()

			enabled := plugin.ResolveEnabledFonts(cmd.Context(), contextID)
			if asJSON {
				return c.printJSON(enabled)
			}

			if len(enabled) == 0 {
				c.printInfo("No fonts enabled for %s", contextName(contextID))
				return nil
			}
			c.printTitle("%d fonts enabled for %s", len(enabled), contextName(contextID))
			for _, f := range enabled {
				c.printRow(f.ID, f.Family, f.Category, f.Variants)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&contextID, "context", font.ContextIDNone, "journal id, 0 for the whole site")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the fonts as JSON")
	return cmd
}

// enableCommand creates the "enable" command replacing a context's fonts.
func (c *CLI) enableCommand() *cobra.Command {
	var contextID int64

	cmd := &cobra.Command{
		Use:   "enable [font-id...]",
		Short: "Replace the fonts enabled for a site or journal",
		Long:  `Replace the fonts enabled for a site or journal. The fonts are loaded in the order given; no ids disables every font.`,
		Example: `  googlefonts enable --context 1 roboto open-sans
  googlefonts enable --context 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			plugin, closeStore, err := c.openPlugin()
			if err != nil {
				return err
			}
			defer closeStore()

			if err := plugin.SaveEnabledFonts(cmd.Context(), contextID, args); err != nil {
				return err
			}

			enabled := plugin.ResolveEnabledFonts(cmd.Context(), contextID)
			c.printSuccess("Enabled %d fonts for %s", len(enabled), contextName(contextID))
			for _, f := range enabled {
				c.printDetail("%s (%s)", f.Family, f.ID)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&contextID, "context", font.ContextIDNone, "journal id, 0 for the whole site")
	return cmd
}

// cssCommand creates the "css" command printing a context's @font-face CSS.
func (c *CLI) cssCommand() *cobra.Command {
	var contextID int64

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the @font-face CSS injected into the pages of a site or journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plugin, closeStore, err := c.openPlugin()
			if err != nil {
				return err
			}
			defer closeStore()

			css, err := plugin.BuildFontFaceCSS(cmd.Context(), contextID)
			if err != nil {
				return err
			}
			if css == "" {
				c.Logger.Warn("No fonts enabled", "context", contextID)
				return nil
			}
			_, err = fmt.Fprintln(c.out, css)
			return err
		},
	}

	cmd.Flags().Int64Var(&contextID, "context", font.ContextIDNone, "journal id, 0 for the whole site")
	return cmd
}

func (c *CLI) printJSON(v any) error {
	s, err := jsonx.MarshalToString(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, s)
	return err
}

func contextName(contextID int64) string {
	if contextID == font.ContextIDNone {
		return "the site"
	}
	return fmt.Sprintf("journal %d", contextID)
}
