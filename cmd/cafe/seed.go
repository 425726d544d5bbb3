package main

import (
	"github.com/spf13/cobra"
)

func seedCmd(opts *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the content store with the default copy",
		Long: `Fill the content store with the default café copy.

Missing sections are always added. The gallery, highlights and
announcements are only filled when empty, unless --force clears them
first. The admin account is never touched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Seed(force); err != nil {
				return err
			}
			stats, err := store.Stats()
			if err != nil {
				return err
			}
			success("Seeded %s", cfg.Data.Path)
			info("%d gallery images, %d highlights, %d announcements",
				stats.GalleryCount, stats.FeatureCount, stats.AnnouncementCount)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace existing gallery, highlights and announcements")

	return cmd
}
