package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/killallgit/minutes-api/internal/models"
	"github.com/killallgit/minutes-api/internal/services/transcription"
	"github.com/killallgit/minutes-api/internal/services/workspace"
	"github.com/killallgit/minutes-api/pkg/transcript"
)

// transcribeOptions are the flags of the transcribe command
type transcribeOptions struct {
	APIKey      string
	Model       string
	Speakers    string
	Format      string
	Output      string
	MimeType    string
	Summary     bool
	Keywords    bool
	ActionItems bool
}

var transcribeOpts transcribeOptions

// transcribeCmd runs one transcription without starting the server
var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe an audio file",
	Long: `Transcribe an audio file into speaker-labelled utterances and write
the transcript in CSV, Markdown or plain text.

The summary, keywords and action items can be generated from the transcript
in the same run; they are printed to standard output.

Example:
  minutes-api transcribe meeting.mp3
  minutes-api transcribe meeting.m4a --speakers 3 --format markdown
  minutes-api transcribe meeting.wav --output - --summary --action-items`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApplication(appConfig, logger)
		if err != nil {
			return err
		}
		defer app.Close()

		return runTranscribe(cmd.Context(), app.workspaces, args[0], transcribeOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(transcribeCmd)

	f := transcribeCmd.Flags()
	f.StringVar(&transcribeOpts.APIKey, "api-key", "", "Gemini API key (defaults to gemini.api_key)")
	f.StringVarP(&transcribeOpts.Model, "model", "m", "", "model id (defaults to models.default)")
	f.StringVar(&transcribeOpts.Speakers, "speakers", "", "number of speakers in the recording")
	f.StringVarP(&transcribeOpts.Format, "format", "f", string(transcript.FormatCSV), "transcript format: csv, markdown or text")
	f.StringVarP(&transcribeOpts.Output, "output", "o", "", "output file, - for stdout (default transcription_<timestamp>.<ext>)")
	f.StringVar(&transcribeOpts.MimeType, "mime", "", "audio MIME type (detected from the extension when empty)")
	f.BoolVar(&transcribeOpts.Summary, "summary", false, "also generate a Markdown summary")
	f.BoolVar(&transcribeOpts.Keywords, "keywords", false, "also extract keywords")
	f.BoolVar(&transcribeOpts.ActionItems, "action-items", false, "also extract action items")
}

// runTranscribe drives a workspace synchronously through upload, transcription,
// the requested enrichments and export
func runTranscribe(ctx context.Context, svc workspace.Service, path string, opts transcribeOptions, stdout, stderr io.Writer) error {
	format, err := transcript.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read audio file: %w", err)
	}
	mimeType := opts.MimeType
	if mimeType == "" {
		mimeType = transcription.MimeTypeFor(path)
	}

	patch := workspace.SettingsPatch{}
	if opts.APIKey != "" {
		patch.APIKey = &opts.APIKey
	}
	if opts.Model != "" {
		patch.ModelID = &opts.Model
	}
	if opts.Speakers != "" {
		patch.SpeakerCount = &opts.Speakers
	}

	view, err := svc.Create(ctx, patch)
	if err != nil {
		return err
	}
	id := view.ID
	defer func() { _ = svc.Delete(context.WithoutCancel(ctx), id) }()

	if _, err := svc.SetAudio(ctx, id, workspace.Audio{
		Data:     data,
		MimeType: mimeType,
		Filename: filepath.Base(path),
	}); err != nil {
		return err
	}

	logger.Info("transcribing",
		zap.String("file", path),
		zap.String("mime_type", mimeType),
		zap.String("model", view.Settings.ModelID))

	view, err = svc.StartTranscription(ctx, id, workspace.RunSync)
	if err != nil {
		return err
	}
	if view.Transcription.Error != nil {
		return view.Transcription.Error
	}
	logger.Info("transcription completed", zap.Int("rows", len(view.Rows)))

	download, err := svc.Export(ctx, id, format)
	if err != nil {
		return err
	}
	if err := writeOutput(opts.Output, download, stdout); err != nil {
		return err
	}
	if opts.Output != "-" {
		fmt.Fprintf(stderr, "transcript written to %s\n", outputPath(opts.Output, download))
	}

	kinds := make([]workspace.Kind, 0, 3)
	if opts.Summary {
		kinds = append(kinds, workspace.KindSummary)
	}
	if opts.Keywords {
		kinds = append(kinds, workspace.KindKeywords)
	}
	if opts.ActionItems {
		kinds = append(kinds, workspace.KindActionItems)
	}

	for _, kind := range kinds {
		view, err := svc.StartEnrichment(ctx, id, kind, workspace.RunSync)
		if err != nil {
			return err
		}
		if err := printEnrichment(stdout, kind, view); err != nil {
			return err
		}
	}
	return nil
}

func outputPath(output string, download *workspace.Download) string {
	if output == "" {
		return download.Filename
	}
	return output
}

func writeOutput(output string, download *workspace.Download, stdout io.Writer) error {
	if output == "-" {
		_, err := stdout.Write(download.Data)
		return err
	}
	if err := os.WriteFile(outputPath(output, download), download.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}

// printEnrichment writes one enrichment result, or returns its error
func printEnrichment(w io.Writer, kind workspace.Kind, view *workspace.View) error {
	switch kind {
	case workspace.KindSummary:
		if view.Summary.Error != nil {
			return view.Summary.Error
		}
		fmt.Fprintf(w, "\n## 要約\n\n%s\n", view.Summary.Result)
	case workspace.KindKeywords:
		if view.Keywords.Error != nil {
			return view.Keywords.Error
		}
		fmt.Fprintln(w, "\n## キーワード")
		fmt.Fprintln(w)
		for _, k := range view.Keywords.Result {
			fmt.Fprintf(w, "- %s\n", k)
		}
	case workspace.KindActionItems:
		if view.ActionItems.Error != nil {
			return view.ActionItems.Error
		}
		fmt.Fprintln(w, "\n## アクションアイテム")
		fmt.Fprintln(w)
		for _, item := range view.ActionItems.Result {
			fmt.Fprintln(w, formatActionItem(item))
		}
	}
	return nil
}

func formatActionItem(item models.ActionItem) string {
	var b strings.Builder
	b.WriteString("- ")
	b.WriteString(item.Task)
	if item.Assignee != nil && *item.Assignee != "" {
		fmt.Fprintf(&b, " (担当: %s)", *item.Assignee)
	}
	if item.DueDate != nil && *item.DueDate != "" {
		fmt.Fprintf(&b, " [期限: %s]", *item.DueDate)
	}
	return b.String()
}
