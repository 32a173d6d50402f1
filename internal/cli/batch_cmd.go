package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"

	"github.com/ensargok/numerix/internal/batch"
)

var batchCmd = &cobra.Command{
	Use:   "batch <script-file>",
	Short: "Run a batch script: one method call per line.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failFast, _ := cmd.Flags().GetBool("fail-fast")

		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		var lines []string
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return err
		}

		results, errs := batch.RunScript(lines, failFast)
		failures := 0
		for i, result := range results {
			if errs[i] != nil {
				log.WithField("line", i+1).WithField("reason", errs[i].Error()).Error("batch line failed")
				failures++
				continue
			}
			fmt.Println(result)
		}
		if failures > 0 {
			return fmt.Errorf("%d batch line(s) failed", failures)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().Bool("fail-fast", false, "stop at the first failing line instead of continuing")
}
