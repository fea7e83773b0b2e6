package bracecheck

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/bracecheck/bracecheck/internal/audit"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func init() {
	var root string
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show runs recorded with --audit, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			abs, err := filepath.Abs(root)
			if err != nil {
				return err
			}
			records, err := audit.NewLog(abs).LoadHistory()
			if err != nil {
				return err
			}
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}
			out := cmd.OutOrStdout()
			if flagJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}
			table := tablewriter.NewWriter(out)
			table.Header("#", "When", "Command", "Mode", "Violations", "New", "Files", "Duration")
			for i, r := range records {
				row := []string{
					strconv.Itoa(i),
					r.Timestamp.Format("2006-01-02 15:04:05"),
					r.Command,
					r.Mode,
					strconv.Itoa(r.TotalViolations),
					strconv.Itoa(r.NewViolations),
					strconv.Itoa(r.FilesScanned),
					r.Duration,
				}
				if err := table.Append(row); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
	cmd.PersistentFlags().StringVarP(&root, "path", "p", ".", "project root")
	cmd.Flags().IntVar(&limit, "limit", 20, "show at most this many runs (0 = all)")

	del := &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete one run from the history (index as shown by history)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			abs, err := filepath.Abs(root)
			if err != nil {
				return err
			}
			if err := audit.NewLog(abs).DeleteRecord(idx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted run", idx)
			return nil
		},
	}
	cmd.AddCommand(del)
	rootCmd.AddCommand(cmd)
}
