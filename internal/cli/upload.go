package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newUploadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a document (resume, logo, license)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRoles(); err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			result, err := a.uploads.Upload(cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return a.backendErr(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded: %s\n", result.URL)
			return nil
		},
	}
}
