package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrMatrix1729/qoi/qoi"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <input.qoi[.zst]>",
	Short: "Print the header fields of a QOI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadInput(args[0])
		if err != nil {
			return err
		}

		h, payload, err := qoi.ParseHeader(data)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(),
			"name: %s, width: %d, height: %d, channels: %d, colorspace: %d, data: %d\n",
			args[0], h.Width, h.Height, h.Channels, h.Colorspace, len(payload))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
