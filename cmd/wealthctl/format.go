package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"wealthtrack/internal/fx"
	"wealthtrack/internal/portfolio"
	"wealthtrack/internal/services"
)

type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case outputText, outputJSON, outputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (use text, json or yaml)", s)
	}
}

// formatEUR renders a reporting-currency amount, e.g. €1,234.56.
func formatEUR(amount decimal.Decimal) string {
	cur := money.GetCurrency(portfolio.ReportingCurrency)
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, portfolio.ReportingCurrency).Display()
}

type holdingView struct {
	Name       string `json:"name" yaml:"name"`
	Kind       string `json:"kind" yaml:"kind"`
	Symbol     string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Quantity   string `json:"quantity" yaml:"quantity"`
	TotalValue string `json:"total_value" yaml:"total_value"`
	CostBasis  string `json:"cost_basis" yaml:"cost_basis"`
	Priced     bool   `json:"priced" yaml:"priced"`
}

type statsView struct {
	EvaluatedAt           time.Time     `json:"evaluated_at" yaml:"evaluated_at"`
	TotalValue            string        `json:"total_value" yaml:"total_value"`
	TotalCostBasis        string        `json:"total_cost_basis" yaml:"total_cost_basis"`
	TotalReturn           string        `json:"total_return" yaml:"total_return"`
	TotalReturnPercentage string        `json:"total_return_percentage" yaml:"total_return_percentage"`
	Unpriced              int           `json:"unpriced" yaml:"unpriced"`
	Holdings              []holdingView `json:"holdings" yaml:"holdings"`
	Profit                profitView    `json:"profit" yaml:"profit"`
}

type profitView struct {
	Daily   string `json:"daily" yaml:"daily"`
	Weekly  string `json:"weekly" yaml:"weekly"`
	Monthly string `json:"monthly" yaml:"monthly"`
	Annual  string `json:"annual" yaml:"annual"`
}

func newStatsView(report *services.StatisticsReport, rates *portfolio.ProfitRates) statsView {
	s := report.Statistics
	view := statsView{
		EvaluatedAt:           report.EvaluatedAt,
		TotalValue:            s.TotalValue.StringFixed(2),
		TotalCostBasis:        s.TotalCostBasis.StringFixed(2),
		TotalReturn:           s.TotalReturn.StringFixed(2),
		TotalReturnPercentage: s.TotalReturnPercentage.StringFixed(2),
		Unpriced:              s.Unpriced,
		Holdings:              make([]holdingView, 0, len(report.Holdings)),
		Profit: profitView{
			Daily:   rates.Daily.StringFixed(2),
			Weekly:  rates.Weekly.StringFixed(2),
			Monthly: rates.Monthly.StringFixed(2),
			Annual:  rates.Annual.StringFixed(2),
		},
	}
	for _, h := range report.Holdings {
		view.Holdings = append(view.Holdings, holdingView{
			Name:       h.Name,
			Kind:       string(h.Kind),
			Symbol:     h.Symbol,
			Quantity:   h.Quantity.String(),
			TotalValue: h.TotalValue.StringFixed(2),
			CostBasis:  h.CostBasis.StringFixed(2),
			Priced:     h.Priced,
		})
	}
	return view
}

func renderStats(w io.Writer, format outputFormat, report *services.StatisticsReport, rates *portfolio.ProfitRates) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newStatsView(report, rates))
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newStatsView(report, rates)); err != nil {
			return err
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tSYMBOL\tQUANTITY\tVALUE\tCOST")
	for _, h := range report.Holdings {
		value := formatEUR(h.TotalValue)
		if !h.Priced {
			value += " (unpriced)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", h.Name, h.Kind, h.Symbol, h.Quantity, value, formatEUR(h.CostBasis))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := report.Statistics
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total value:   %s\n", formatEUR(s.TotalValue))
	fmt.Fprintf(w, "Cost basis:    %s\n", formatEUR(s.TotalCostBasis))
	fmt.Fprintf(w, "Total return:  %s (%s%%)\n", formatEUR(s.TotalReturn), s.TotalReturnPercentage.StringFixed(2))

	kinds := make([]string, 0, len(s.ByKind))
	for k := range s.ByKind {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		ks := s.ByKind[portfolio.Kind(k)]
		fmt.Fprintf(w, "  %-15s %s (%d)\n", k, formatEUR(ks.Value), ks.Count)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Projected profit: %s/day  %s/week  %s/month  %s/year\n",
		formatEUR(rates.Daily), formatEUR(rates.Weekly), formatEUR(rates.Monthly), formatEUR(rates.Annual))
	return nil
}

func renderSnapshotResult(w io.Writer, result *services.SnapshotResult) error {
	if result.Snapshot == nil {
		msg := result.Message
		if msg == "" {
			msg = result.Status
		}
		_, err := fmt.Fprintln(w, msg)
		return err
	}
	_, err := fmt.Fprintf(w, "Snapshot %s recorded: %s\n",
		result.Snapshot.Date.UTC().Format("2006-01-02"), formatEUR(result.Snapshot.TotalValue))
	return err
}

func renderConversion(w io.Writer, amount, converted decimal.Decimal, rate fx.ExchangeRate) error {
	_, err := fmt.Fprintf(w, "%s USD = %s (rate %s, %s, %s)\n",
		amount.StringFixed(2), formatEUR(converted), rate.Rate.String(), rate.Source, rate.ObservedAt.UTC().Format("2006-01-02"))
	return err
}

func renderDeposit(w io.Writer, value decimal.Decimal, days int, at time.Time) error {
	_, err := fmt.Fprintf(w, "Value on %s: %s (%d days)\n", at.UTC().Format("2006-01-02"), formatEUR(value), days)
	return err
}
