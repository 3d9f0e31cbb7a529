package main

import (
	"fmt"
	"io"
	"strings"

	"evalterm/internal/api"
	"evalterm/internal/config"
	"evalterm/internal/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// rootArgs 保存所有子命令共享的全局参数。
type rootArgs struct {
	cfgPath   string
	overrides []string
	url       string
	logLevel  string
	logFile   string
	inline    bool

	logCloser io.Closer
}

func newRootCmd() *cobra.Command {
	args := &rootArgs{}
	cmd := &cobra.Command{
		Use:   "evalterm",
		Short: "Terminal front end for a remote expression evaluator",
		Long: `evalterm sends expressions to an evaluation service and shows the replies
in a scrolling transcript with a typewriter reveal. F3 opens the command history,
F2 dumps the server variables, Ctrl+L clears the transcript.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return args.setupLogging(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			args.closeLog()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, args)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&args.cfgPath, "config", "", "Path to config file (default ~/.evalterm/config.toml)")
	flags.StringArrayVarP(&args.overrides, "config-override", "c", nil, "Override config value key=value (repeatable)")
	flags.StringVar(&args.url, "url", "", "Evaluation service URL (overrides config and $"+config.URLEnv+")")
	flags.StringVar(&args.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&args.logFile, "log-file", logger.DefaultLogPath, "Log file path; empty discards logs")
	cmd.Flags().BoolVar(&args.inline, "inline", false, "Render inline instead of the alternate screen (disables mouse)")

	cmd.AddCommand(
		newExecCmd(args),
		newVarsCmd(args),
		newHistoryCmd(args),
		newClearHistoryCmd(args),
		newPingCmd(args),
		newConfigCmd(args),
	)
	return cmd
}

func (a *rootArgs) setupLogging(stderr io.Writer) error {
	if err := logger.SetLevel(a.logLevel); err != nil {
		return err
	}
	if strings.TrimSpace(a.logFile) == "" {
		logger.Discard()
		return nil
	}
	closer, _, err := logger.SetupFile(a.logFile)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "warning: log file disabled: %v\n", err)
		logger.Discard()
		return nil
	}
	a.logCloser = closer
	return nil
}

func (a *rootArgs) closeLog() {
	if a.logCloser != nil {
		_ = a.logCloser.Close()
		a.logCloser = nil
	}
}

// loadConfig 依次叠加配置文件、环境变量、-c 覆盖与显式参数。
func (a *rootArgs) loadConfig() (config.Config, error) {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	cfg = config.ApplyKVOverrides(cfg, a.overrides)
	if u := strings.TrimSpace(a.url); u != "" {
		cfg.URL = u
	}
	if a.inline {
		cfg.AltScreen = false
	}
	return cfg, nil
}

// newClient 构造求值服务客户端，请求指标注册在 reg 上。
func (a *rootArgs) newClient(reg prometheus.Registerer) (*api.Client, config.Config, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	client, err := api.New(api.Options{
		BaseURL: cfg.URL,
		Timeout: cfg.Timeout(),
		Logger:  logger.NewHTTPLogger(logger.Root()),
		Metrics: api.NewMetrics(reg),
	})
	if err != nil {
		return nil, cfg, err
	}
	return client, cfg, nil
}
