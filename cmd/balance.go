package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	statusadapter "github.com/bnema/currency-gateway/internal/adapters/render/status"
	"github.com/bnema/currency-gateway/internal/adapters/rpc/moneyserver"
	"github.com/bnema/currency-gateway/internal/application"
	"github.com/bnema/currency-gateway/internal/config"
	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/spf13/cobra"
)

var errBalanceUnavailable = errors.New("balance unavailable")

type balanceOptions struct {
	endpoint        string
	accounts        []string
	sessionID       string
	secureSessionID string
	jsonOutput      bool
	noSpinner       bool
}

type balanceOutput struct {
	Source     string               `json:"source"`
	CapturedAt string               `json:"captured_at"`
	Accounts   []balanceEntryOutput `json:"accounts"`
}

type balanceEntryOutput struct {
	Account string `json:"account"`
	Balance int32  `json:"balance"`
	OK      bool   `json:"ok"`
}

func newBalanceCmd(app *app) *cobra.Command {
	opts := balanceOptions{}

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Query balances through a running gateway",
		Long:  "Calls the gateway's GetBalance method for each account. The session tokens must match the live session the simulator registered for that account.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBalance(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.endpoint, "endpoint", "", "Gateway XML-RPC URL (default: $GW_ENDPOINT or http://<server.listen><server.rpc_path>)")
	cmd.Flags().StringSliceVar(&opts.accounts, "account", nil, "Account UUID (repeatable)")
	cmd.Flags().StringVar(&opts.sessionID, "session", "", "Client session id")
	cmd.Flags().StringVar(&opts.secureSessionID, "secure-session", "", "Client secure session id")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output JSON")
	cmd.Flags().BoolVar(&opts.noSpinner, "no-spinner", false, "Disable the progress spinner")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func runBalance(cmd *cobra.Command, app *app, opts balanceOptions) error {
	ids := make([]domain.AccountID, 0, len(opts.accounts))
	for _, raw := range opts.accounts {
		id, err := domain.ParseAccountID(raw)
		if err != nil {
			return fmt.Errorf("parse --account: %w", err)
		}
		ids = append(ids, id)
	}

	cfg, err := app.loadConfig()
	if err != nil {
		return err
	}

	endpoint := resolveEndpoint(opts.endpoint, app.endpoint, cfg)
	client := moneyserver.NewClient(endpoint, cfg.Ledger.RequestTimeout, nil)

	fetch := func(ctx context.Context, id domain.AccountID) application.BalanceEntry {
		return fetchBalance(ctx, client, id, opts)
	}

	var report application.BalanceReport
	if opts.jsonOutput || opts.noSpinner {
		report = collectBalances(cmd.Context(), client.URL(), ids, fetch, app.now)
	} else {
		report, err = runBalanceProgress(cmd.Context(), cmd.ErrOrStderr(), client.URL(), ids, fetch, app.now)
		if err != nil {
			return fmt.Errorf("query balance: %w", err)
		}
	}

	if err := writeBalanceOutput(cmd.OutOrStdout(), app, report, opts.jsonOutput); err != nil {
		return err
	}

	for _, entry := range report.Entries {
		if !entry.OK {
			return fmt.Errorf("%s: %w", entry.AccountID, errBalanceUnavailable)
		}
	}

	return nil
}

func resolveEndpoint(flagValue, envValue string, cfg config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue != "" {
		return envValue
	}

	listen := cfg.Server.Listen
	if strings.HasPrefix(listen, ":") {
		listen = "127.0.0.1" + listen
	}

	return "http://" + listen + cfg.Server.RPCPath
}

func collectBalances(ctx context.Context, source string, ids []domain.AccountID, fetch fetchBalanceFunc, now func() time.Time) application.BalanceReport {
	report := application.BalanceReport{Source: source}
	for _, id := range ids {
		report.Entries = append(report.Entries, fetch(ctx, id))
	}

	report.CapturedAt = now()
	return report
}

func fetchBalance(ctx context.Context, client *moneyserver.Client, id domain.AccountID, opts balanceOptions) application.BalanceEntry {
	req := moneyserver.ClientRequest{
		ClientUUID:            id.String(),
		ClientSessionID:       opts.sessionID,
		ClientSecureSessionID: opts.secureSessionID,
	}
	reply := client.Call(ctx, moneyserver.MethodGetBalance, req.Params())

	entry := application.BalanceEntry{AccountID: id, Balance: -1}
	if reply.Success() {
		if balance, ok := moneyserver.Amount(reply.Fields(), "balance"); ok {
			entry.Balance = balance
			entry.OK = true
		}
	}

	return entry
}

func writeBalanceOutput(w io.Writer, app *app, report application.BalanceReport, jsonOutput bool) error {
	if jsonOutput {
		out := balanceOutput{
			Source:     report.Source,
			CapturedAt: report.CapturedAt.UTC().Format(time.RFC3339),
			Accounts:   make([]balanceEntryOutput, 0, len(report.Entries)),
		}
		for _, entry := range report.Entries {
			out.Accounts = append(out.Accounts, balanceEntryOutput{
				Account: entry.AccountID.String(),
				Balance: entry.Balance,
				OK:      entry.OK,
			})
		}

		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			return fmt.Errorf("encode balance output: %w", err)
		}
		return nil
	}

	rendered, err := app.balanceRenderer(report, statusadapter.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render balance output: %w", err)
	}

	_, err = fmt.Fprintln(w, rendered)
	return err
}
