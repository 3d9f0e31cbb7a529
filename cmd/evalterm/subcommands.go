package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"evalterm/internal/config"
	"evalterm/internal/transcript"

	"github.com/spf13/cobra"
)

// remoteError 是服务端返回的求值错误，原样输出给用户。
type remoteError string

func (e remoteError) Error() string { return string(e) }

func newExecCmd(args *rootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <input...>",
		Short: "Evaluate one input and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			input := strings.Join(argv, " ")
			if strings.TrimSpace(input) == "" {
				return errors.New("input is empty")
			}
			client, _, err := args.newClient(nil)
			if err != nil {
				return err
			}
			out, err := client.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}
			if msg, failed := out.Failure(); failed {
				return remoteError(msg)
			}
			var value any = transcript.Undefined
			if !out.Undefined() {
				value, _ = out.Result()
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), transcript.Format(value))
			return err
		},
	}
}

func newVarsCmd(args *rootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "vars",
		Short: "Print the server variables as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := args.newClient(nil)
			if err != nil {
				return err
			}
			vars, err := client.Variables(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), transcript.Format(vars))
			return err
		},
	}
}

func newHistoryCmd(args *rootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Print the server command history, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := args.newClient(nil)
			if err != nil {
				return err
			}
			items, err := client.History(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i := len(items) - 1; i >= 0; i-- {
				if _, err := fmt.Fprintln(w, items[i]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newClearHistoryCmd(args *rootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-history",
		Short: "Delete the server command history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := args.newClient(nil)
			if err != nil {
				return err
			}
			if err := client.ClearHistory(cmd.Context()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
			return err
		},
	}
}

func newPingCmd(args *rootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the evaluation service is healthy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := args.newClient(nil)
			if err != nil {
				return err
			}
			if err := client.Health(cmd.Context()); err != nil {
				return fmt.Errorf("ping %s: %w", client.BaseURL(), err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", client.BaseURL())
			return err
		},
	}
}

func newConfigCmd(args *rootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := args.cfgPath
			if path == "" {
				path = config.DefaultPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(path, config.Default()); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)
	return cmd
}
