package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"jobify-backend/internal/client"
	"jobify-backend/internal/domain"
	"jobify-backend/pkg/logger"

	"github.com/spf13/cobra"
)

var errNotConfirmed = errors.New("refusing to delete without --yes")

var cvsCmd = &cobra.Command{
	Use:   "cvs",
	Short: "Manage CV versions",
}

var (
	cvName        string
	cvDescription string
	cvTags        []string
	cvActive      bool
	cvSearch      string
	cvOut         string
	confirmCV     bool
)

var cvsUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a PDF, DOC or DOCX and record it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		result, err := current.api.UploadCV(ctx, args[0], client.UploadMeta{
			Name:        cvName,
			Description: cvDescription,
			Tags:        cvTags,
			IsActive:    cvActive,
		})
		if err != nil {
			return err
		}

		cv, err := current.cvUC.RegisterCV(ctx, domain.CVInput{
			Name:           result.Metadata.Name,
			FileName:       result.File.OriginalName,
			FilePath:       result.File.FilePath,
			FileSize:       result.File.Size,
			ServerFilename: result.File.Filename,
			IsActive:       result.Metadata.IsActive,
			Tags:           result.Metadata.Tags,
			Description:    result.Metadata.Description,
		})
		if err != nil {
			if delErr := current.api.DeleteFile(ctx, result.File.Filename); delErr != nil {
				logger.Log.Warn("Uploaded file left on server", "filename", result.File.Filename, "error", delErr)
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s as %s (%s)\n", cv.FileName, cv.Name, cv.ID)
		return nil
	},
}

var cvsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List CVs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cvs := current.cvUC.ListCVs(cmd.Context(), cvSearch)
		out := cmd.OutOrStdout()
		if len(cvs) == 0 {
			fmt.Fprintln(out, "No CVs found.")
			return nil
		}

		tw := newTable(out, "ID", "NAME", "FILE", "SIZE", "ACTIVE", "TAGS", "UPDATED")
		for _, cv := range cvs {
			active := ""
			if cv.IsActive {
				active = "*"
			}
			row(tw, cv.ID, cv.Name, cv.FileName, cv.FileSize, active,
				orDash(strings.Join(cv.Tags, ",")), cv.LastModified.Format(domain.DateLayout))
		}
		return tw.Flush()
	},
}

var cvsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one CV record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cv, err := current.cvUC.GetCV(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		cv.FileContent = "" // can be megabytes of base64
		return printJSON(cmd.OutOrStdout(), cv)
	},
}

var cvsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit CV metadata; only the given flags change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		existing, err := current.cvUC.GetCV(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		update := domain.CVUpdate{
			Name:        existing.Name,
			Description: existing.Description,
			Tags:        existing.Tags,
			IsActive:    existing.IsActive,
		}
		flags := cmd.Flags()
		if flags.Changed("name") {
			update.Name = cvName
		}
		if flags.Changed("description") {
			update.Description = cvDescription
		}
		if flags.Changed("tags") {
			update.Tags = cvTags
		}
		if flags.Changed("active") {
			update.IsActive = cvActive
		}

		cv, err := current.cvUC.UpdateCV(cmd.Context(), existing.ID, update)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", cv.Name)
		return nil
	},
}

var cvsActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Make a CV the active one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := current.cvUC.SetActive(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Active CV updated.")
		return nil
	},
}

var cvsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a CV record and its stored file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmCV {
			return errNotConfirmed
		}
		outcome, err := current.cvUC.DeleteCV(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if outcome.Orphaned() {
			fmt.Fprintf(out, "Warning: the stored file could not be deleted: %s\n", outcome.FileError)
		}
		fmt.Fprintln(out, "CV deleted.")
		return nil
	},
}

var cvsDownloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Save a CV file locally",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cv, err := current.cvUC.GetCV(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		target := cvOut
		if target == "" {
			target = filepath.Base(cv.FileName)
			if target == "." || target == string(filepath.Separator) || target == "" {
				target = cv.ID
			}
		}

		f, err := os.Create(target)
		if err != nil {
			return err
		}
		n, err := downloadCV(cmd.Context(), *cv, current.api, f)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(target)
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d bytes)\n", target, n)
		return nil
	},
}

var cvsFilesCmd = &cobra.Command{
	Use:   "files",
	Short: "List files stored on the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		files, err := current.api.ListFiles(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(files) == 0 {
			fmt.Fprintln(out, "No files stored.")
			return nil
		}
		tw := newTable(out, "FILENAME", "SIZE", "MODIFIED")
		for _, f := range files {
			row(tw, f.Filename, f.Size, f.Modified.Format("2006-01-02 15:04"))
		}
		return tw.Flush()
	},
}

type fileDownloader interface {
	Download(ctx context.Context, filename string, w io.Writer) (int64, error)
}

// downloadCV writes the CV binary to w: from the server when the record has a
// server filename, otherwise from the inline base64 payload.
func downloadCV(ctx context.Context, cv domain.CV, dl fileDownloader, w io.Writer) (int64, error) {
	if cv.ServerFilename != "" {
		return dl.Download(ctx, cv.ServerFilename, w)
	}

	if cv.FileContent != "" {
		payload := cv.FileContent
		if strings.HasPrefix(payload, "data:") {
			if i := strings.Index(payload, ","); i >= 0 {
				payload = payload[i+1:]
			}
		}
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return 0, fmt.Errorf("stored file content is corrupt: %w", err)
		}
		n, err := w.Write(data)
		return int64(n), err
	}

	return 0, fmt.Errorf("no file available for %q (recorded path: %s)", cv.Name, orDash(cv.FilePath))
}

func init() {
	cvsUploadCmd.Flags().StringVar(&cvName, "name", "", "Display name (default: file name)")
	cvsUploadCmd.Flags().StringVar(&cvDescription, "description", "", "Description")
	cvsUploadCmd.Flags().StringSliceVar(&cvTags, "tags", nil, "Comma separated tags")
	cvsUploadCmd.Flags().BoolVar(&cvActive, "active", false, "Make this the active CV")

	cvsEditCmd.Flags().StringVar(&cvName, "name", "", "Display name")
	cvsEditCmd.Flags().StringVar(&cvDescription, "description", "", "Description")
	cvsEditCmd.Flags().StringSliceVar(&cvTags, "tags", nil, "Comma separated tags")
	cvsEditCmd.Flags().BoolVar(&cvActive, "active", false, "Active flag")

	cvsListCmd.Flags().StringVarP(&cvSearch, "search", "s", "", "Match name, file name, description or tags")
	cvsDownloadCmd.Flags().StringVarP(&cvOut, "out", "o", "", "Output file (default: original file name)")
	cvsDeleteCmd.Flags().BoolVarP(&confirmCV, "yes", "y", false, "Confirm the deletion")

	cvsCmd.AddCommand(cvsUploadCmd, cvsListCmd, cvsShowCmd, cvsEditCmd, cvsActivateCmd,
		cvsDeleteCmd, cvsDownloadCmd, cvsFilesCmd)
	rootCmd.AddCommand(cvsCmd)
}
