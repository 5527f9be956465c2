package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcos-nsantos/image-variants/internal/domain/valueobject"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/config"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/observability"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/storage"
	"github.com/marcos-nsantos/image-variants/internal/usecase/upload"
)

type uploadFlags struct {
	dimensions []string
	mode       string
	token      string
	dest       string
	move       bool
}

func uploadEntrypoint() *cobra.Command {
	var flags uploadFlags

	cmd := &cobra.Command{
		Use:   "upload [file]",
		Short: "Store a file, writing one resized variant per dimension for images",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadCLI()
			if err != nil {
				return err
			}

			logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer logger.Sync()

			fileStorage, err := storage.NewFileStorage(cfg.Storage, cfg.S3)
			if err != nil {
				return err
			}

			svc := upload.NewService(fileStorage, storage.NewImageProcessor(storage.WithMaxSide(cfg.Upload.MaxSide)), nil, observability.NewNoopMetrics(), logger)

			return runUpload(cmd.Context(), svc, cfg.Upload, flags, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringSliceVarP(&flags.dimensions, "dimensions", "d", nil, "comma separated WxH sizes, or none to store the file as-is (default from UPLOAD_DIMENSIONS)")
	cmd.Flags().StringVarP(&flags.mode, "mode", "m", "", "resize mode: width, height or both (default from UPLOAD_RESIZE_MODE)")
	cmd.Flags().StringVarP(&flags.token, "token", "t", "", "unique token appended to every name")
	cmd.Flags().StringVar(&flags.dest, "dest", "", "destination directory (default from UPLOAD_PATH)")
	cmd.Flags().BoolVar(&flags.move, "move", false, "relocate the source file instead of copying it first")

	return cmd
}

func runUpload(ctx context.Context, svc *upload.Service, defaults config.UploadConfig, flags uploadFlags, file string, out io.Writer) error {
	opts := upload.Options{
		UniqueToken: defaults.UniqueToken,
		Dimensions:  defaults.Dimensions,
		UploadPath:  defaults.Path,
		Extensions:  defaults.Extensions,
		Resize:      valueobject.ResizeMode(defaults.ResizeMode),
	}
	switch {
	case len(flags.dimensions) == 1 && strings.EqualFold(flags.dimensions[0], "none"):
		opts.Dimensions = nil
	case len(flags.dimensions) > 0:
		opts.Dimensions = flags.dimensions
	}
	if flags.mode != "" {
		opts.Resize = valueobject.ResizeMode(flags.mode)
	}
	if flags.token != "" {
		opts.UniqueToken = flags.token
	}
	if flags.dest != "" {
		opts.UploadPath = flags.dest
	}

	source := file
	if !flags.move {
		tmp, err := copyToTemp(file)
		if err != nil {
			return err
		}
		defer os.Remove(tmp)
		source = tmp
	}

	result, err := svc.Upload(ctx, upload.UploadInput{
		OriginalName: filepath.Base(file),
		SourcePath:   source,
	}, opts)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Token    string            `json:"token"`
		BaseName string            `json:"base_name"`
		Files    map[string]string `json:"files"`
		URLs     map[string]string `json:"urls"`
	}{result.Token, result.BaseName, result.Files, result.URLs})
}

func copyToTemp(file string) (string, error) {
	src, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "variants-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("copying %s: %w", file, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
