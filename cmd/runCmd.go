package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// runCmd executes one arbitrary command line on every node (or the --nodes
// subset) concurrently and prints a per-node transcript. With --out the
// transcript also lands in a file; with --sudo the command runs elevated
// through each node's stored credentials.
var runCmd = &cobra.Command{
	Use:   "run <command>",
	Short: "Run an arbitrary command on every node",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		command := strings.TrimSpace(args[0])
		if command == "" {
			return errors.New("command must not be empty")
		}
		c, err := openCluster()
		if err != nil {
			return err
		}
		defer c.Close()

		results := c.Run(cmd.Context(), command, cfgSudo)

		if cfgOutPath != "" {
			// Prepare output file (create dirs if needed)
			if err := os.MkdirAll(filepath.Dir(cfgOutPath), 0o755); err != nil {
				return fmt.Errorf("failed to create output dir: %w", err)
			}
			outFile, err := os.Create(cfgOutPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			writeHeader(outFile, command, len(results))
			for _, r := range results {
				if err := writeNodeSection(outFile, r.Node.Name(), r.Value, r.Err); err != nil {
					_ = outFile.Close()
					return fmt.Errorf("failed writing output: %w", err)
				}
			}
			if err := outFile.Close(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(os.Stderr, "Transcript written to %s\n", cfgOutPath)
		}

		return reportNodeResults(cmd.OutOrStdout(), results)
	},
}

func init() {
	runCmd.Flags().BoolVar(&cfgSudo, "sudo", false, "Run the command elevated")
	runCmd.Flags().StringVarP(&cfgOutPath, "out", "o", "", "Also write the transcript to this path")
}
