package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/rockstardevs/ofx"
)

const (
	formatYAML    = "yaml"
	formatSummary = "summary"
)

type options struct {
	format   string
	timezone string
}

// newRootCmd returns the ofxdump command. Go flags in goFlags, glog's among them, are
// exposed as persistent flags.
func newRootCmd(goFlags *flag.FlagSet) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "ofxdump [flags] FILE...",
		Short:         "Print the contents of OFX 1.6 files",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := opts.parser()
			if err != nil {
				return err
			}
			for _, path := range args {
				if err := dumpFile(cmd.OutOrStdout(), parser, path, opts.format); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatYAML, "output format: yaml or summary")
	cmd.Flags().StringVar(&opts.timezone, "tz", "UTC", "location of dates without a gmt offset")
	cmd.Flags().SetNormalizeFunc(normalizeFlag)
	if goFlags != nil {
		cmd.PersistentFlags().AddGoFlagSet(goFlags)
	}
	return cmd
}

func (o *options) parser() (*ofx.Parser, error) {
	if o.format != formatYAML && o.format != formatSummary {
		return nil, fmt.Errorf("unknown format %q", o.format)
	}
	loc, err := time.LoadLocation(o.timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid --tz: %w", err)
	}
	return ofx.NewParser(ofx.WithLocation(loc)), nil
}

func dumpFile(w io.Writer, parser *ofx.Parser, path, format string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	document, err := parser.NewDocument(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	glog.V(1).Infof("%s: %s", path, document)
	if format == formatSummary {
		return writeSummary(w, path, document)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document); err != nil {
		return err
	}
	return enc.Close()
}

func writeSummary(w io.Writer, path string, document *ofx.Document) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "# %s\n", path)
	for _, stmt := range document.Statements() {
		fmt.Fprintf(tw, "account\t%s\t%s\t%s\n", stmt.Account.Kind, stmt.Account.ID, stmt.Currency)
		if stmt.Ledger != nil {
			fmt.Fprintf(tw, "ledger\t%s\t%s\n", stmt.Ledger.Amount, stmt.Ledger.AsOf.Format(time.RFC3339))
		}
		if stmt.Transactions == nil {
			continue
		}
		for _, txn := range stmt.Transactions.Transactions {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				txn.Posted.Format("2006-01-02"), txn.Type, txn.Amount, describe(txn))
		}
	}
	return tw.Flush()
}

// describe returns the most specific description a transaction carries.
func describe(txn ofx.Transaction) string {
	switch {
	case txn.Payee != nil:
		return txn.Payee.Name
	case txn.Name != nil:
		return *txn.Name
	case txn.Memo != nil:
		return *txn.Memo
	}
	return ""
}

// flagAliases maps alternative spellings to flag names.
var flagAliases = map[string]string{
	"timezone": "tz",
	"output":   "format",
}

func normalizeFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if alias, found := flagAliases[name]; found {
		name = alias
	}
	return pflag.NormalizedName(name)
}
