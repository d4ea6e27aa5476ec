// Command fieldtrackctl holds operator tasks that run outside the servers:
// schema migration, metric recomputation, compliance checks, PDV labels and test tokens.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fieldtrack/config"
	"fieldtrack/internal/domain/entity"
	"fieldtrack/internal/infra/auth"
	"fieldtrack/internal/infra/cache"
	logs "fieldtrack/internal/infra/log"
	"fieldtrack/internal/infra/persistence/postgres"
	"fieldtrack/internal/infra/pubsub"
	"fieldtrack/internal/infra/qrcode"
	"fieldtrack/internal/usecase"
	"fieldtrack/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fieldtrackctl",
		Short:         "Field tracking operator tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newMigrateCmd())
	root.AddCommand(newRecomputeCmd())
	root.AddCommand(newScoreCmd())
	root.AddCommand(newPDVLabelCmd())
	root.AddCommand(newTokenCmd())

	return root
}

// app is the subset of the server wiring the CLI needs, built by hand instead of through fx.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
}

func loadApp(withDB bool) (*app, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger}
	if withDB {
		if a.db, err = postgres.Open(cfg, logger); err != nil {
			return nil, err
		}
	}

	return a, nil
}

func (a *app) close() {
	if a.db == nil {
		return
	}
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// sessionUsecase never publishes: events from operator runs would double-count in the worker.
func (a *app) sessionUsecase(ctx context.Context) (usecase.SessionUsecase, error) {
	publisher, err := pubsub.NewPublisherFromConfig(ctx, nil, a.logger)
	if err != nil {
		return nil, err
	}

	return impl.NewSessionService(impl.SessionServiceParams{
		TxManager:      postgres.NewTransactionManager(a.db),
		SessionRepo:    postgres.NewSessionRepository(a.db),
		SampleRepo:     postgres.NewLocationSampleRepository(a.db),
		VisitRepo:      postgres.NewVisitRepository(a.db),
		EventPublisher: publisher,
		Config:         a.cfg,
		Logger:         a.logger,
	}), nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and partial indexes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(true)
			if err != nil {
				return err
			}
			defer a.close()

			if err := postgres.Migrate(cmd.Context(), a.db); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")

			return nil
		},
	}
}

func newRecomputeCmd() *cobra.Command {
	var sessionID string
	var limit int

	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Recompute working-session metrics",
		Long:  "Recompute one session with --session, or sweep up to --limit stale sessions.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(true)
			if err != nil {
				return err
			}
			defer a.close()

			sessions, err := a.sessionUsecase(cmd.Context())
			if err != nil {
				return err
			}

			if sessionID == "" {
				done, err := sessions.RecomputeStale(cmd.Context(), limit)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recomputed %d stale sessions\n", done)

				return nil
			}

			id, err := uuid.Parse(sessionID)
			if err != nil {
				return errors.Wrap(err, "invalid --session")
			}
			session, err := sessions.RecomputeMetrics(cmd.Context(), id)
			if err != nil {
				return err
			}

			return printJSON(cmd, session)
		},
	}
	cmd.Flags().StringVar(&sessionID, "session", "", "session id (omit to sweep stale sessions)")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum stale sessions per sweep")

	return cmd
}

func newScoreCmd() *cobra.Command {
	var userID, routeID, from, to string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute a user's visit compliance on a route",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(true)
			if err != nil {
				return err
			}
			defer a.close()

			uid, err := uuid.Parse(userID)
			if err != nil {
				return errors.Wrap(err, "invalid --user")
			}
			rid, err := uuid.Parse(routeID)
			if err != nil {
				return errors.Wrap(err, "invalid --route")
			}

			// Operators bypass the cache so a stale entry cannot hide a data fix.
			scorer, err := impl.NewComplianceService(impl.ComplianceServiceParams{
				ScheduleRepo:  postgres.NewScheduleRepository(a.db),
				HierarchyRepo: postgres.NewHierarchyRepository(a.db),
				VisitRepo:     postgres.NewVisitRepository(a.db),
				Cache:         cache.NewNoopComplianceCache(),
				Config:        a.cfg,
				Logger:        a.logger,
			})
			if err != nil {
				return err
			}

			operator := usecase.Actor{Roles: entity.Roles{entity.RoleSupervisor}}
			score, err := scorer.Score(cmd.Context(), operator, &usecase.ScoreInput{
				UserID:   uid,
				RouteID:  rid,
				DateFrom: from,
				DateTo:   to,
			})
			if err != nil {
				return err
			}

			return printJSON(cmd, score)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "agent user id")
	cmd.Flags().StringVar(&routeID, "route", "", "route id")
	cmd.Flags().StringVar(&from, "from", "", "first date, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "last date, YYYY-MM-DD")
	for _, name := range []string{"user", "route", "from", "to"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newPDVLabelCmd() *cobra.Command {
	var code, out string

	cmd := &cobra.Command{
		Use:   "pdv-qr",
		Short: "Render the check-in QR label of a PDV code to a PNG file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(false)
			if err != nil {
				return err
			}

			png, err := qrcode.NewQRCodeService(a.cfg.QRCode.Size, a.cfg.QRCode.ErrorCorrectionLevel).GeneratePDVLabel(code)
			if err != nil {
				return err
			}
			if out == "" {
				out = code + ".png"
			}
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return errors.WithStack(err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)

			return nil
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "PDV code printed on the label")
	cmd.Flags().StringVar(&out, "out", "", "output file (default <code>.png)")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}

func newTokenCmd() *cobra.Command {
	var userID, roles string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign an access token for local testing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(false)
			if err != nil {
				return err
			}

			tokens, err := auth.NewJWTService(a.cfg)
			if err != nil {
				return err
			}

			uid := uuid.New()
			if userID != "" {
				if uid, err = uuid.Parse(userID); err != nil {
					return errors.Wrap(err, "invalid --user")
				}
			}

			names := strings.Split(roles, ",")
			for i := range names {
				names[i] = strings.TrimSpace(names[i])
			}
			parsed := entity.RolesFromStrings(names)
			if len(parsed) == 0 {
				return errors.Errorf("no valid role in %q", roles)
			}

			token, err := tokens.GenerateToken(uid, parsed.ToStrings(), ttl)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id (random when omitted)")
	cmd.Flags().StringVar(&roles, "roles", "agent", "comma separated roles: agent,supervisor")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")

	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}
