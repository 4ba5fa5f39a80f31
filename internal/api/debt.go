package api

import (
	"errors"   // Error category checks
	"net/http" // HTTP status codes
	"time"     // Due date parsing

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library

	"debt_tracker/internal/domain"
	"debt_tracker/internal/ledger"
	"debt_tracker/internal/middleware"
)

// currentUser returns the identity the auth middleware resolved for this request
func currentUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get(middleware.CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}

// CreateDebtRequest is the payload for debt creation
type CreateDebtRequest struct {
	DebtType    domain.DebtType `json:"debt_type" binding:"required,oneof=i_owe they_owe"`
	PersonName  string          `json:"person_name" binding:"required"`
	Amount      float64         `json:"amount" binding:"required,gt=0"`
	Currency    domain.Currency `json:"currency" binding:"required,oneof=TRY USD EUR"`
	Description string          `json:"description" binding:"required"`
	Category    domain.Category `json:"category" binding:"required,oneof=personal_loan rent shared_expense business_loan education other"`
	DueDate     *time.Time      `json:"due_date"` // Optional
}

// UpdateDebtRequest is a partial update; absent fields stay untouched
type UpdateDebtRequest struct {
	PersonName  *string          `json:"person_name"`
	Amount      *float64         `json:"amount" binding:"omitempty,gt=0"`
	Currency    *domain.Currency `json:"currency" binding:"omitempty,oneof=TRY USD EUR"`
	Description *string          `json:"description"`
	Category    *domain.Category `json:"category" binding:"omitempty,oneof=personal_loan rent shared_expense business_loan education other"`
	DueDate     *time.Time       `json:"due_date"`
}

// writeLedgerError maps service errors to HTTP responses
func writeLedgerError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	default:
		logrus.WithField("error", err.Error()).Error("Ledger operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// CreateDebtHandler records a new debt for the authenticated user
func CreateDebtHandler(led *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreateDebtRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		debt, err := led.Create(c.Request.Context(), user.ID, ledger.CreateInput{
			Type:        req.DebtType,
			PersonName:  req.PersonName,
			Amount:      req.Amount,
			Currency:    req.Currency,
			Description: req.Description,
			Category:    req.Category,
			DueDate:     req.DueDate,
		})
		if err != nil {
			writeLedgerError(c, err)
			return
		}
		// Log the mutation
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,
			"debt_id":   debt.ID,
			"debt_type": debt.Type,
			"amount":    debt.Amount,
			"currency":  debt.Currency,
		}).Info("Debt created")
		c.JSON(http.StatusOK, debt)
	}
}

// ListDebtsHandler returns all debts of the authenticated user
func ListDebtsHandler(led *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		debts, err := led.List(c.Request.Context(), user.ID)
		if err != nil {
			writeLedgerError(c, err)
			return
		}
		if debts == nil {
			debts = []domain.Debt{} // Empty list, not null
		}
		c.JSON(http.StatusOK, debts)
	}
}

// GetDebtHandler returns a single debt of the authenticated user
func GetDebtHandler(led *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		debt, err := led.Get(c.Request.Context(), user.ID, c.Param("id"))
		if err != nil {
			writeLedgerError(c, err)
			return
		}
		c.JSON(http.StatusOK, debt)
	}
}

// UpdateDebtHandler applies a partial update to a debt
func UpdateDebtHandler(led *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req UpdateDebtRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		debt, err := led.Update(c.Request.Context(), user.ID, c.Param("id"), ledger.UpdateInput{
			PersonName:  req.PersonName,
			Amount:      req.Amount,
			Currency:    req.Currency,
			Description: req.Description,
			Category:    req.Category,
			DueDate:     req.DueDate,
		})
		if err != nil {
			writeLedgerError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"debt_id": debt.ID,
		}).Info("Debt updated")
		c.JSON(http.StatusOK, debt)
	}
}

// DeleteDebtHandler removes a debt
func DeleteDebtHandler(led *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err := led.Delete(c.Request.Context(), user.ID, c.Param("id")); err != nil {
			writeLedgerError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"debt_id": c.Param("id"),
		}).Info("Debt deleted")
		c.JSON(http.StatusOK, gin.H{"message": "Debt deleted successfully"})
	}
}

// MarkPaidHandler marks a debt as paid
func MarkPaidHandler(led *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		debt, err := led.SetPaid(c.Request.Context(), user.ID, c.Param("id"))
		if err != nil {
			writeLedgerError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"debt_id": debt.ID,
		}).Info("Debt marked as paid")
		c.JSON(http.StatusOK, debt)
	}
}

// MarkUnpaidHandler reverts a debt to active
func MarkUnpaidHandler(led *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		debt, err := led.SetUnpaid(c.Request.Context(), user.ID, c.Param("id"))
		if err != nil {
			writeLedgerError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"debt_id": debt.ID,
		}).Info("Debt marked as unpaid")
		c.JSON(http.StatusOK, debt)
	}
}
