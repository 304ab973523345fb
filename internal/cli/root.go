package cli

import (
	"context"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sharath018/temple-donation-docs/config"
	"github.com/sharath018/temple-donation-docs/internal/archive"
	"github.com/sharath018/temple-donation-docs/internal/pdfdoc"
)

// rootOpts are the flags shared by every command.
type rootOpts struct {
	verbose   bool
	outputDir string
	themeFile string
	fontDir   string
	s3Bucket  string
	s3Prefix  string
	region    string
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// settings builds renderer settings from the flags.
func (o *rootOpts) settings() (pdfdoc.Settings, error) {
	s := pdfdoc.DefaultSettings()
	s.FontDir = o.fontDir
	if o.themeFile != "" {
		theme, err := config.LoadTheme(o.themeFile)
		if err != nil {
			return pdfdoc.Settings{}, err
		}
		s.Theme = theme
	}
	return s, nil
}

// saver writes into the output directory, or uploads to S3 when a bucket
// is given.
func (o *rootOpts) saver(ctx context.Context) (pdfdoc.Saver, error) {
	if o.s3Bucket == "" {
		return pdfdoc.DirSaver{Dir: o.outputDir}, nil
	}
	return archive.NewS3Saver(ctx, o.region, o.s3Bucket, o.s3Prefix)
}

// location is where a saved document ended up, for printing.
func (o *rootOpts) location(name string) string {
	if o.s3Bucket == "" {
		return filepath.Join(o.outputDir, name)
	}
	s := archive.S3Saver{Bucket: o.s3Bucket, Prefix: o.s3Prefix}
	return "s3://" + o.s3Bucket + "/" + s.Key(name)
}

// NewRootCommand builds the docgen command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(runConfirm)
}

func newRootCommand(confirm confirmFunc) *cobra.Command {
	opts := &rootOpts{}

	root := &cobra.Command{
		Use:          "docgen",
		Short:        "Render donation receipts and donor reports",
		Long:         `docgen renders temple donation receipts and donor summary reports as PDF (or Excel for reports) from JSON input.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVarP(&opts.outputDir, "output", "o", envOr("OUTPUT_DIR", "."), "directory documents are saved to")
	flags.StringVar(&opts.themeFile, "theme", os.Getenv("THEME_FILE"), "TOML file overriding the document branding")
	flags.StringVar(&opts.fontDir, "font-dir", os.Getenv("FONT_DIR"), "directory holding DejaVuSans.ttf and DejaVuSans-Bold.ttf")
	flags.StringVar(&opts.s3Bucket, "s3-bucket", "", "upload documents to this S3 bucket instead of --output")
	flags.StringVar(&opts.s3Prefix, "s3-prefix", envOr("DOCUMENTS_PREFIX", "donation-documents"), "key prefix for S3 uploads")
	flags.StringVar(&opts.region, "region", envOr("AWS_REGION", "ap-south-1"), "AWS region for S3 uploads")

	root.AddCommand(newReceiptCmd(opts))
	root.AddCommand(newReportCmd(opts))
	root.AddCommand(newPreviewCmd(opts, confirm))

	return root
}

// Execute runs the docgen CLI.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
