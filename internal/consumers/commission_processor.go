package consumers

import (
	"log"

	"tailor-service/internal/models"
	"tailor-service/internal/services"
)

// CommissionProcessor runs commission distributions pulled off the queue.
type CommissionProcessor struct {
	Commissions *services.CommissionService
}

func NewCommissionProcessor(commissions *services.CommissionService) *CommissionProcessor {
	return &CommissionProcessor{Commissions: commissions}
}

// --- DTOs ---

type CommissionJobDTO struct {
	OrderID string            `json:"order_id"`
	StaffID string            `json:"staff_id"`
	Stage   models.Department `json:"stage"`
}

// --- Methods ---

func (p *CommissionProcessor) ProcessDistribution(data CommissionJobDTO) error {
	log.Printf("Processing Commission Distribution: order=%s staff=%s stage=%s",
		data.OrderID, data.StaffID, data.Stage)
	if err := p.Commissions.DistributeCommission(data.OrderID, data.StaffID, data.Stage); err != nil {
		log.Printf("Commission distribution failed for order %s: %v", data.OrderID, err)
		return err
	}
	return nil
}
