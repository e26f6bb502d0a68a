package services

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"

	"tailor-service/internal/models"

	"gorm.io/gorm"
)

const defaultArchiveDays = 120

// TransactionArchiveService moves aged ledger rows to the archive table so
// the hot transactions table stays small.
type TransactionArchiveService struct {
	DB *gorm.DB
}

func NewTransactionArchiveService(db *gorm.DB) *TransactionArchiveService {
	return &TransactionArchiveService{DB: db}
}

// archiveDays reads TRX_ARCHIVE_DAYS, defaulting to 120 days.
func archiveDays() int {
	raw := os.Getenv("TRX_ARCHIVE_DAYS")
	if raw == "" {
		return defaultArchiveDays
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		log.Printf("Invalid TRX_ARCHIVE_DAYS %q, using %d", raw, defaultArchiveDays)
		return defaultArchiveDays
	}
	return days
}

// ArchiveTransactions copies transactions older than the cutoff into
// archived_transactions and deletes the originals, atomically.
func (s *TransactionArchiveService) ArchiveTransactions() {
	log.Println("Starting transaction archive process...")

	cutoff := time.Now().AddDate(0, 0, -archiveDays())

	var oldTransactions []models.Transaction
	if err := s.DB.Where("created_at < ?", cutoff).Find(&oldTransactions).Error; err != nil {
		log.Printf("Error finding old transactions: %v", err)
		return
	}

	if len(oldTransactions) == 0 {
		log.Println("No transactions to archive")
		return
	}

	log.Printf("Found %d transactions to archive", len(oldTransactions))

	var archivedData []models.ArchivedTransaction
	for _, trx := range oldTransactions {
		archivedData = append(archivedData, models.ArchivedTransaction{
			StaffID:       trx.StaffID,
			StaffName:     trx.StaffName,
			TransactionNo: trx.TransactionNo,
			Amount:        trx.Amount,
			Direction:     trx.Direction,
			Bucket:        trx.Bucket,
			Description:   trx.Description,
			Balance:       trx.Balance,
			CreatedAt:     trx.CreatedAt,
			UpdatedAt:     trx.UpdatedAt,
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&archivedData).Error; err != nil {
			return err
		}

		ids := make([]int, len(oldTransactions))
		for i, t := range oldTransactions {
			ids[i] = t.ID
		}
		return tx.Delete(&models.Transaction{}, ids).Error
	})

	if err != nil {
		log.Printf("Error during transaction archiving: %v", err)
	} else {
		log.Printf("Archived and removed %d transactions.", len(oldTransactions))
	}
}

// StartScheduler runs the archive job daily at midnight.
func (s *TransactionArchiveService) StartScheduler() {
	c := cron.New()
	_, err := c.AddFunc("0 0 * * *", func() {
		log.Println("Running scheduled transaction archive task...")
		s.ArchiveTransactions()
	})
	if err != nil {
		log.Printf("Error scheduling archive task: %v", err)
		return
	}
	c.Start()
	log.Println("Transaction Archive Scheduler started (Daily at 00:00)")
}
