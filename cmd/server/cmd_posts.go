package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	post_store "pinstack-blog-service/internal/application/store/post"
	model "pinstack-blog-service/internal/domain/models"
	"pinstack-blog-service/internal/infrastructure/config"
	"pinstack-blog-service/internal/infrastructure/logger"
	prometheus_metrics "pinstack-blog-service/internal/infrastructure/outbound/metrics/prometheus"
)

const contentMaxWidth = 60

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Inspect the stored posts",
}

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every post in display order",
	Args:  cobra.NoArgs,
	RunE:  runPostsList,
}

func init() {
	postsCmd.AddCommand(postsListCmd)
}

func runPostsList(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(rootFlags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.NewWithWriter(cfg.Env, cmd.ErrOrStderr())
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	postStorage, closeStorage, err := newPostStorage(cmd.Context(), cfg, log, metrics)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer closeStorage()

	posts, err := post_store.NewStore(postStorage, log, metrics).LoadAll(cmd.Context())
	if err != nil {
		return err
	}
	renderPostsTable(cmd.OutOrStdout(), posts)
	return nil
}

func renderPostsTable(w io.Writer, posts model.PostCollection) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Author", "Title", "Content"})
	for _, p := range posts {
		t.AppendRow(table.Row{p.ID, p.Author, p.Title, p.Content})
	}
	t.AppendFooter(table.Row{"", "", "Total", len(posts)})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, WidthMax: contentMaxWidth},
	})
	t.Render()
}
