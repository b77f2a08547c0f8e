package main

import (
	"github.com/spf13/cobra"

	"artgallery/internal/logging"
	"artgallery/internal/ui"
)

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive catalog browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, ctx)
		},
	}
}

func runBrowse(cmd *cobra.Command, ctx *commandContext) error {
	// The terminal belongs to the browser, so logs go to the file only.
	sess, err := ctx.openSession(cmd, logging.FileOnly)
	if err != nil {
		return err
	}
	logger := logging.NewComponentLogger(sess.logger, "cli")
	logger.Info("browser starting",
		logging.String(logging.FieldEventType, "browser_start"),
		logging.String("catalog_url", sess.cfg.Catalog.URL),
	)

	model := ui.NewModel(cmd.Context(), sess.store, sess.resolver, sess.logger)
	err = ui.Run(cmd.Context(), model, ui.RunOptions{
		AltScreen: sess.cfg.UI.AltScreen,
		Mouse:     sess.cfg.UI.Mouse,
	})
	if err != nil {
		logging.ErrorWithContext(logger, "browser exited with error", "browser_failed", logging.Error(err))
		return err
	}
	logger.Info("browser closed", logging.String(logging.FieldEventType, "browser_stop"))
	return nil
}
