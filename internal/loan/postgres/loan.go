package postgres

import (
	"errors"
	"time"

	loanDatamodel "github.com/dagimg/loan-management/internal/core/datamodel/loan"
	"github.com/dagimg/loan-management/internal/loan"
	"gorm.io/gorm"
)

// LoanRepository implements the loan.Repository interface using GORM.
type LoanRepository struct {
	db *gorm.DB
}

func NewLoanRepository(db *gorm.DB) loan.Repository {
	return &LoanRepository{db: db}
}

// CreateWithQueueNumber inserts the request and assigns the next queue
// number in one transaction. The counter bump is a single atomic upsert,
// so concurrent submissions always draw distinct consecutive numbers.
func (r *LoanRepository) CreateWithQueueNumber(lr *loan.LoanRequest) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var queueNumber int64
		err := tx.Raw(`
			INSERT INTO loan_counters (name, value)
			VALUES (?, 1)
			ON CONFLICT (name) DO UPDATE SET value = loan_counters.value + 1
			RETURNING value`, loan.QueueCounterName).Scan(&queueNumber).Error
		if err != nil {
			return err
		}

		model := loan.ToDataModel(lr)
		model.QueueNumber = queueNumber
		if err := tx.Create(model).Error; err != nil {
			return err
		}

		lr.ID = model.ID
		lr.QueueNumber = model.QueueNumber
		lr.CreatedAt = model.CreatedAt
		lr.UpdatedAt = model.UpdatedAt
		return nil
	})
}

func (r *LoanRepository) GetByID(id int64) (*loan.LoanRequest, error) {
	var model loanDatamodel.LoanRequest
	err := r.db.Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrLoanNotFound
		}
		return nil, err
	}
	return loan.FromDataModel(&model), nil
}

func (r *LoanRepository) GetByEmployeeID(employeeID int64) ([]*loan.LoanRequest, error) {
	var models []loanDatamodel.LoanRequest
	err := r.db.Where("employee_id = ?", employeeID).
		Order("submitted_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	loans := make([]*loan.LoanRequest, 0, len(models))
	for i := range models {
		loans = append(loans, loan.FromDataModel(&models[i]))
	}
	return loans, nil
}

type loanWithEmployeeRow struct {
	loanDatamodel.LoanRequest
	EmployeeName string `gorm:"column:employee_name"`
	Department   string `gorm:"column:department"`
	GrossSalary  int64  `gorm:"column:gross_salary"`
}

func (r *LoanRepository) GetAll() ([]*loan.LoanWithEmployee, error) {
	var rows []loanWithEmployeeRow
	err := r.db.Raw(`
		SELECT lr.*, ep.full_name AS employee_name, ep.department, ep.gross_salary
		FROM loan_requests lr
		JOIN employee_profiles ep ON ep.user_id = lr.employee_id
		ORDER BY lr.submitted_at DESC`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	loans := make([]*loan.LoanWithEmployee, 0, len(rows))
	for i := range rows {
		loans = append(loans, &loan.LoanWithEmployee{
			LoanRequest:  *loan.FromDataModel(&rows[i].LoanRequest),
			EmployeeName: rows[i].EmployeeName,
			Department:   rows[i].Department,
			GrossSalary:  rows[i].GrossSalary,
		})
	}
	return loans, nil
}

func (r *LoanRepository) TotalApproved(employeeID int64) (int64, error) {
	var total int64
	err := r.db.Model(&loanDatamodel.LoanRequest{}).
		Where("employee_id = ? AND status = ?", employeeID, loan.StatusApproved).
		Select("COALESCE(SUM(approved_amount), 0)").
		Scan(&total).Error
	return total, err
}

// Recommend is a compare-and-swap PENDING -> REVIEWED. Returns false with
// no mutation when the request was not PENDING.
func (r *LoanRepository) Recommend(id, reviewerID int64) (bool, error) {
	now := time.Now()
	result := r.db.Model(&loanDatamodel.LoanRequest{}).
		Where("id = ? AND status = ?", id, loan.StatusPending).
		Updates(map[string]interface{}{
			"status":      loan.StatusReviewed,
			"reviewed_by": reviewerID,
			"reviewed_at": now,
			"updated_at":  now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Approve carries the whole finalization guard in one conditional UPDATE:
// the request must still be REVIEWED and the amount must still fit under
// the ceiling minus the employee's approved total. Two concurrent
// approvals therefore cannot jointly overrun the ceiling; the loser sees
// zero rows affected.
func (r *LoanRepository) Approve(id, employeeID, approverID, amount, ceiling int64, contractPath string) (bool, error) {
	now := time.Now()
	result := r.db.Exec(`
		UPDATE loan_requests
		SET status = ?, approved_amount = ?, approved_by = ?, approved_at = ?, contract_path = ?, updated_at = ?
		WHERE id = ? AND status = ?
		  AND ? <= ? - (
			SELECT COALESCE(SUM(approved_amount), 0)
			FROM loan_requests
			WHERE employee_id = ? AND status = ?
		  )`,
		loan.StatusApproved, amount, approverID, now, contractPath, now,
		id, loan.StatusReviewed,
		amount, ceiling, employeeID, loan.StatusApproved)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Reject is a compare-and-swap REVIEWED -> REJECTED with a zero approved
// amount.
func (r *LoanRepository) Reject(id, approverID int64) (bool, error) {
	now := time.Now()
	result := r.db.Model(&loanDatamodel.LoanRequest{}).
		Where("id = ? AND status = ?", id, loan.StatusReviewed).
		Updates(map[string]interface{}{
			"status":          loan.StatusRejected,
			"approved_amount": 0,
			"approved_by":     approverID,
			"approved_at":     now,
			"updated_at":      now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
