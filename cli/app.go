// cli/app.go
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/medicore-hms/hmsctl/audit"
	"github.com/medicore-hms/hmsctl/client"
	"github.com/medicore-hms/hmsctl/config"
	hms_errors "github.com/medicore-hms/hmsctl/errors"
	"github.com/medicore-hms/hmsctl/gateway"
	logger "github.com/medicore-hms/hmsctl/logging"
	"github.com/medicore-hms/hmsctl/session"
	"github.com/medicore-hms/hmsctl/store"
	"github.com/medicore-hms/hmsctl/util"
)

// App wires the whole client together: configuration, session storage, the
// request gateway, the session manager, the typed API clients and the audit
// trail. Commands only ever talk to App.
type App struct {
	cfg     *config.Configuration
	store   store.Store
	bus     *util.EventBus
	gateway *gateway.Gateway
	session *session.Manager
	audit   audit.Service

	auth        *client.AuthClient
	patients    *client.PatientClient
	users       *client.UserClient
	departments *client.DepartmentClient
	clinical    *client.ClinicalClient
	billing     *client.BillingClient
	hospital    *client.HospitalClient
}

func newApp(ctx context.Context) (*App, error) {
	if err := config.InitConfig(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger.InitLogger(config.GetString("log.dir"))
	cfg := config.GetConfig()

	st, err := buildStore(cfg)
	if err != nil {
		return nil, err
	}

	bus := util.NewEventBus()
	bus.Start(ctx)

	notifier := util.NewNotificationService()
	for _, event := range []string{
		util.EventSessionLogin, util.EventSessionLogout,
		util.EventSessionExpired, util.EventSessionRevalidated,
	} {
		event := event
		bus.Subscribe(event, func(ctx context.Context, e util.Event) error {
			email, _ := e.Payload.(string)
			return notifier.NotifySessionChange(ctx, event, email)
		})
	}

	gw := gateway.New(cfg.API.BaseURL, cfg.API.TenantID, st, bus)
	validator := util.NewValidationUtil()
	authClient := client.NewAuthClient(gw, validator)

	auditSvc, err := buildAudit(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:         cfg,
		store:       st,
		bus:         bus,
		gateway:     gw,
		session:     session.NewManager(st, authClient, bus),
		audit:       auditSvc,
		auth:        authClient,
		patients:    client.NewPatientClient(gw, validator),
		users:       client.NewUserClient(gw, validator),
		departments: client.NewDepartmentClient(gw, validator),
		clinical:    client.NewClinicalClient(gw, validator),
		billing:     client.NewBillingClient(gw, validator),
		hospital:    client.NewHospitalClient(gw),
	}
	return app, nil
}

func buildStore(cfg *config.Configuration) (store.Store, error) {
	switch cfg.Storage.Backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return store.NewRedisStore(rdb, cfg.Storage.Seat, cfg.Redis.EncryptionKey)
	default:
		return store.NewFileStore(cfg.Storage.Path), nil
	}
}

func buildAudit(cfg *config.Configuration) (audit.Service, error) {
	switch cfg.Audit.Backend {
	case "elasticsearch":
		repo, err := audit.NewElasticsearchRepository(cfg.Elasticsearch.URL)
		if err != nil {
			return nil, fmt.Errorf("audit backend: %w", err)
		}
		return audit.NewService(repo), nil
	default:
		return audit.NewService(audit.NewFileRepository(cfg.Audit.Path)), nil
	}
}

// requireSession restores the persisted session and fails the command when
// nobody is logged in.
func (a *App) requireSession(ctx context.Context) error {
	a.session.Initialize(ctx)
	if !a.session.IsAuthenticated() {
		return hms_errors.ErrNotAuthenticated
	}
	return nil
}

// authorize checks the seated user's role grants before a command touches
// the backend. Denials land in the audit trail.
func (a *App) authorize(ctx context.Context, permission, action, resource string) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}
	if !a.session.HasPermission(permission) {
		user := a.session.CurrentUser()
		a.audit.Record(ctx, user.Email, user.RoleName(), action, resource, audit.OutcomeDenied,
			map[string]string{"permission": permission})
		logger.Warn("Permission denied",
			zap.String("email", user.Email), zap.String("permission", permission))
		return fmt.Errorf("%w: %s", hms_errors.ErrPermissionDenied, permission)
	}
	return nil
}

// record writes an audit entry for the seated user, tolerating the
// pre-login case where there is none.
func (a *App) record(ctx context.Context, action, resource, outcome string, detail interface{}) {
	email, role := "", ""
	if user := a.session.CurrentUser(); user != nil {
		email, role = user.Email, user.RoleName()
	}
	a.audit.Record(ctx, email, role, action, resource, outcome, detail)
}

// printJSON renders a command result on stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
