package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/searchplatform/searchadmin/client"
	"github.com/searchplatform/searchadmin/internal/config"
	"github.com/searchplatform/searchadmin/internal/logger"
)

const commandTimeout = 30 * time.Second

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	backendURL string
	clusterURL string
	envFile    string
	output     string
	debug      bool

	cfg *config.Config
}

var opts rootOptions

func main() {
	if err := execute(NewRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs root and logs a failure exactly once.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		log.Error().Err(err).Int("status", client.StatusCode(err)).Msg("command failed")
	}
	return err
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	opts = rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "searchadminctl",
		Short:         "Manage search platform sources, objects and cluster indices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Logger = logger.Console(cmd.ErrOrStderr(), zerolog.TraceLevel)

			cfg, err := config.Load(opts.envFile)
			if err != nil {
				return err
			}
			if opts.backendURL != "" {
				cfg.BackendURL = opts.backendURL
			}
			if opts.clusterURL != "" {
				cfg.ClusterURL = opts.clusterURL
			}
			if opts.debug {
				cfg.Debug = true
				cfg.LogLevel = "debug"
			}
			level, err := config.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(level)
			log.Debug().Str("backend_url", cfg.BackendURL).Str("cluster_url", cfg.ClusterURL).Msg("debug logging enabled")

			switch opts.output {
			case "json", "yaml":
			default:
				return fmt.Errorf("unsupported output format %q (json|yaml)", opts.output)
			}
			opts.cfg = cfg
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.backendURL, "backend-url", "", "Base URL of the config admin backend (default $SEARCHADMIN_BACKEND_URL)")
	pf.StringVar(&opts.clusterURL, "cluster-url", "", "Base URL of the search cluster (default $SEARCHADMIN_CLUSTER_URL)")
	pf.StringVar(&opts.envFile, "env-file", ".env", "Optional dotenv file read before the environment")
	pf.StringVarP(&opts.output, "output", "o", "json", "Output format: json|yaml")
	pf.BoolVarP(&opts.debug, "debug", "d", false, "Enable verbose debug output, including HTTP dumps")

	rootCmd.AddCommand(newSourcesCmd())
	rootCmd.AddCommand(newObjectsCmd())
	rootCmd.AddCommand(newClusterCmd())
	rootCmd.AddCommand(newMappingCmd())
	rootCmd.AddCommand(newServeFakeCmd())

	return rootCmd
}

// newClient builds an SDK client from the resolved configuration.
func newClient() (*client.Client, error) {
	return opts.cfg.NewClient()
}

// withClient runs fn with a fresh client and a bounded context. Failures are
// returned, not logged; main reports them once.
func withClient(cmd *cobra.Command, op string, fn func(ctx context.Context, c *client.Client) error) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	start := time.Now()
	err = fn(ctx, c)
	log.Debug().Str("op", op).Bool("ok", err == nil).Dur("elapsed", time.Since(start)).Msg(op + " finished")
	return err
}

// printResult writes v to the command's output in the selected format.
func printResult(cmd *cobra.Command, v any) error {
	out := cmd.OutOrStdout()
	if opts.output == "yaml" {
		// Round-trip through JSON so yaml keys follow the wire names.
		var generic any
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(b, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(generic)
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}

// readPayload decodes a JSON or YAML document from path ("-" reads stdin)
// into v. Files ending in .json, or starting with '{' or '[', are JSON.
func readPayload(cmd *cobra.Command, path string, v any) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}
	trimmed := strings.TrimSpace(string(data))
	if strings.EqualFold(filepath.Ext(path), ".json") || strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parse %s as JSON: %w", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s as YAML: %w", path, err)
	}
	return nil
}
