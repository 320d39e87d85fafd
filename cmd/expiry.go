package cmd

import (
	"fmt"
	"time"

	"pantry-manager/core/config"
	"pantry-manager/core/database"
	"pantry-manager/core/expiry"
	"pantry-manager/core/logger"
	invmodels "pantry-manager/feature/inventory/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the expiry report command
	expiryOwner    string
	expiryShowGood bool
)

// expiryCmd reports the expiration status of an owner's inventory.
var expiryCmd = &cobra.Command{
	Use:   "expiry",
	Short: "Report the expiration status of an owner's inventory",
	Long: `Classifies every inventory item of one owner into expired,
expiring-soon (within 7 days) and good, and prints the breakdown.

Examples:
  # Report expired and expiring-soon items
  expiry --owner alice

  # Include items that are still good
  expiry --owner alice --all`,
	RunE: runExpiryReport,
}

func init() {
	expiryCmd.Flags().StringVar(&expiryOwner, "owner", "", "Owner whose inventory to report (required)")
	expiryCmd.Flags().BoolVar(&expiryShowGood, "all", false, "Also list items that are still good")
	_ = expiryCmd.MarkFlagRequired("owner")

	RootCmd.AddCommand(expiryCmd)
}

func runExpiryReport(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	var items []invmodels.InventoryItem
	err = db.Where("owner = ?", expiryOwner).Order("expiration, id").Find(&items).Error
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	today := time.Now()
	var summary invmodels.StatusSummary
	for _, item := range items {
		status := expiry.Classify(item.Expiration, today)
		switch status {
		case expiry.StatusExpired:
			summary.Expired++
		case expiry.StatusExpiringSoon:
			summary.ExpiringSoon++
		default:
			summary.Good++
			if !expiryShowGood {
				continue
			}
		}

		l.Info("Inventory item",
			zap.String("name", item.Name),
			zap.String("unit", item.Unit),
			zap.Float64("quantity", item.Quantity),
			zap.String("expiration", item.Expiration.Format("2006-01-02")),
			zap.Int("days_left", expiry.DaysUntil(item.Expiration, today)),
			zap.String("status", status.Label()),
		)
	}

	l.Info("Expiry report",
		zap.String("owner", expiryOwner),
		zap.Int("total_items", len(items)),
		zap.Int("expired", summary.Expired),
		zap.Int("expiring_soon", summary.ExpiringSoon),
		zap.Int("good", summary.Good),
	)
	return nil
}
