package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gicbank-dev/gicbank/internal/config"
	"github.com/gicbank-dev/gicbank/internal/interest"
	"github.com/gicbank-dev/gicbank/internal/ledger"
	"github.com/gicbank-dev/gicbank/internal/model"
	"github.com/gicbank-dev/gicbank/internal/statement"
	"github.com/gicbank-dev/gicbank/internal/store"
)

func newSessionCommand() *cobra.Command {
	var configPath string
	var exportDir string

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Start an interactive banking session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			st, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			sess := NewSession(cfg, st, os.Stdin, os.Stdout)
			sess.ExportDir = exportDir
			return sess.Run()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "gicbank.yaml", "config file path")
	cmd.Flags().StringVar(&exportDir, "export", "", "directory to export printed statements as CSV")

	return cmd
}

// loadConfig reads the config file, falling back to defaults when the file
// does not exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default("AwesomeGIC Bank"), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore builds the configured Store. The returned func releases it.
func openStore(cfg *config.Config) (store.Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		path := cfg.Storage.Path
		if path == "" {
			path = "gicbank.db"
		}
		st, err := store.OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { st.Close() }, nil
	case config.DriverMemory, "":
		return store.NewMemory(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Session is the interactive menu loop. Input and output are injected so
// the whole dialogue is testable.
type Session struct {
	// ExportDir, when set, receives a CSV copy of every printed statement.
	ExportDir string

	in         *bufio.Scanner
	out        io.Writer
	bank       string
	ledger     *ledger.Service
	rules      *interest.Table
	statements *statement.Builder
}

// NewSession wires the core services over a single store and binds them to
// an input/output pair.
func NewSession(cfg *config.Config, st store.Store, in io.Reader, out io.Writer) *Session {
	ledgerSvc := ledger.NewService(st)
	table := interest.NewTable(st)
	engine := interest.NewEngine(table, cfg.Interest.DayCountBasis)
	return &Session{
		in:         bufio.NewScanner(in),
		out:        out,
		bank:       cfg.Bank.Name,
		ledger:     ledgerSvc,
		rules:      table,
		statements: statement.NewBuilder(ledgerSvc, engine),
	}
}

// Run shows the main menu until the user quits or input ends.
func (s *Session) Run() error {
	for {
		fmt.Fprintf(s.out, "Welcome to %s! What would you like to do?\n", s.bank)
		fmt.Fprintln(s.out, "[T] Input transactions")
		fmt.Fprintln(s.out, "[I] Define interest rules")
		fmt.Fprintln(s.out, "[P] Print statement")
		fmt.Fprintln(s.out, "[Q] Quit")
		fmt.Fprint(s.out, "> ")

		line, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}

		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "":
			continue
		case "T":
			s.inputTransactions()
		case "I":
			s.defineInterestRules()
		case "P":
			s.printStatement()
		case "Q":
			fmt.Fprintf(s.out, "Thank you for banking with %s.\n", s.bank)
			fmt.Fprintln(s.out, "Have a nice day!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid input. Please try again.")
		}
	}
}

func (s *Session) inputTransactions() {
	for {
		fmt.Fprintln(s.out, "Please enter transaction details in <Date> <Account> <Type> <Amount> format")
		fmt.Fprintln(s.out, "(or enter blank to go back to the main menu):")
		fmt.Fprint(s.out, "> ")

		line, ok := s.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return
		}

		in, err := parseTransactionInput(line)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}

		if _, err := s.ledger.Record(in.AccountID, in.Date, in.Type, in.Amount); err != nil {
			fmt.Fprintln(s.out, recordErrorMessage(err))
			continue
		}
		fmt.Fprintln(s.out, "Transaction recorded successfully.")
	}
}

func (s *Session) defineInterestRules() {
	fmt.Fprintln(s.out, "Please enter interest rule details in <Date> <RuleId> <Rate in %> format")
	fmt.Fprintln(s.out, "(or enter blank to go back to the main menu):")
	fmt.Fprint(s.out, "> ")

	line, ok := s.readLine()
	if !ok || strings.TrimSpace(line) == "" {
		return
	}

	in, err := parseRuleInput(line)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}

	if _, err := s.rules.Upsert(in.EffectiveDate, in.RuleID, in.Rate); err != nil {
		if errors.Is(err, model.ErrInvalidRate) {
			fmt.Fprintln(s.out, "Invalid interest rate. Rate should be greater than 0 and less than 100.")
		} else {
			fmt.Fprintln(s.out, err)
		}
		return
	}

	rules, err := s.rules.AllRulesOrdered()
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	fmt.Fprint(s.out, statement.RenderRules(rules))
}

func (s *Session) printStatement() {
	fmt.Fprintln(s.out, "Please enter account and month to generate the statement <Account> <Year><Month>")
	fmt.Fprintln(s.out, "(or enter blank to go back to the main menu):")
	fmt.Fprint(s.out, "> ")

	line, ok := s.readLine()
	if !ok || strings.TrimSpace(line) == "" {
		return
	}

	in, err := parseStatementInput(line)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}

	st, err := s.statements.Build(in.AccountID, in.Year, in.Month)
	if err != nil {
		if errors.Is(err, model.ErrInvalidPeriod) {
			fmt.Fprintln(s.out, "Invalid year and month. Please use YYYYMM format.")
		} else {
			fmt.Fprintln(s.out, err)
		}
		return
	}
	fmt.Fprint(s.out, statement.Render(st))

	if s.ExportDir != "" {
		if err := s.exportStatement(st); err != nil {
			fmt.Fprintln(s.out, err)
		}
	}
}

func (s *Session) exportStatement(st model.Statement) error {
	name := fmt.Sprintf("%s-%04d%02d.csv", st.AccountID, st.Year, int(st.Month))
	path := filepath.Join(s.ExportDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("exporting statement: %w", err)
	}
	defer f.Close()

	if err := statement.WriteCSV(f, st); err != nil {
		return fmt.Errorf("exporting statement: %w", err)
	}
	fmt.Fprintf(s.out, "Exported %s\n", path)
	return nil
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func recordErrorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidAmount):
		return "Invalid amount. Please enter a positive number with up to 2 decimal places."
	case errors.Is(err, model.ErrFirstTransactionWithdrawal):
		return "The first transaction on an account cannot be a withdrawal."
	case errors.Is(err, model.ErrInsufficientFunds):
		return "Insufficient balance."
	default:
		return err.Error()
	}
}
