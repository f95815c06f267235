// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	notificationstore "github.com/volunhub/volunhub/internal/app/store/notifications"
	userstore "github.com/volunhub/volunhub/internal/app/store/users"
	"github.com/volunhub/volunhub/internal/app/system/auth"
	"github.com/volunhub/volunhub/internal/app/system/workers"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// cleanupWorker runs for the lifetime of the process; Shutdown stops it.
var cleanupWorker *workers.NotificationCleanup

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// VolunHub uses it to guarantee a Government reviewer exists: every
// registered account starts Pending, so without at least one approved
// Government user nobody could ever approve an NGO.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.GovernmentEmail == "" {
		logger.Warn("no government_email configured; NGO approvals require an existing Government account")
	} else if err := ensureGovernmentAccount(ctx, deps, appCfg, logger); err != nil {
		return err
	}

	cleanupWorker = workers.NewNotificationCleanup(
		notificationstore.New(deps.VolunHubMongoDatabase),
		logger,
		time.Hour,
		appCfg.NotificationRetention,
	)
	cleanupWorker.Start()

	return nil
}

// ensureGovernmentAccount creates an approved Government user with the
// configured credentials if no user with that email exists yet. An
// existing account is left untouched, whatever its role: startup never
// rewrites credentials or promotes other users.
func ensureGovernmentAccount(ctx context.Context, deps DBDeps, appCfg AppConfig, logger *zap.Logger) error {
	users := userstore.New(deps.VolunHubMongoDatabase)

	existing, err := users.GetByEmail(ctx, appCfg.GovernmentEmail)
	if err == nil {
		if existing.Role != models.RoleGovernment {
			logger.Warn("configured government_email belongs to a non-Government account; leaving it alone",
				zap.String("email", appCfg.GovernmentEmail),
				zap.String("role", existing.Role))
		}
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("lookup government account: %w", err)
	}

	passwords := auth.NewPasswordServiceWithCost(appCfg.BcryptCost)
	hash, err := passwords.Hash(appCfg.GovernmentPassword)
	if err != nil {
		return fmt.Errorf("hash government password: %w", err)
	}

	created, err := users.Create(ctx, models.User{
		Name:           appCfg.GovernmentName,
		Email:          appCfg.GovernmentEmail,
		Password:       hash,
		Role:           models.RoleGovernment,
		ApprovalStatus: models.ApprovalApproved,
	})
	if err != nil {
		// A concurrent replica may have created it between the lookup
		// and the insert.
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			return nil
		}
		return fmt.Errorf("create government account: %w", err)
	}

	logger.Info("created bootstrap Government account",
		zap.String("email", created.Email),
		zap.String("user_id", created.ID.Hex()))
	return nil
}
