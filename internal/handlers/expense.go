package handlers

import (
	"errors"
	"net/http"

	"github.com/Luisi123/budget-tracking-test/db"
	"github.com/Luisi123/budget-tracking-test/internal/models"
	"github.com/Luisi123/budget-tracking-test/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateExpenseRequest struct {
	ProjectID   string  `json:"projectId"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// UpdateExpenseRequest uses pointers throughout: a key that is present is
// applied even when its value is 0 or "", and an absent key is a no-op.
type UpdateExpenseRequest struct {
	Amount      *float64 `json:"amount"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
}

// findOwnedExpense loads the expense and verifies, through its project, that
// it belongs to userID. There is no user id on the expense itself; ownership
// is transitive, and a foreign expense reads the same as a missing one.
func findOwnedExpense(id string, userID uint) (models.Expense, error) {
	var expense models.Expense

	if err := db.DB.Where("id = ?", id).First(&expense).Error; err != nil {
		return expense, err
	}

	var project models.Project
	if err := db.DB.Where("id = ? AND user_id = ?", expense.ProjectID, userID).First(&project).Error; err != nil {
		return expense, err
	}

	return expense, nil
}

func CreateExpense(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateExpenseRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondInvalidBody(ctx)
		return
	}

	if body.ProjectID == "" || body.Amount == 0 {
		respondInvalidBody(ctx)
		return
	}

	if _, err := findOwnedProject(body.ProjectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx)
		} else {
			respondServerError(ctx, err)
		}
		return
	}

	category := body.Category
	if category == "" {
		category = models.DefaultCategory
	}

	expense := models.Expense{
		ProjectID:   body.ProjectID,
		Amount:      body.Amount,
		Category:    category,
		Description: body.Description,
	}

	if err := db.DB.Create(&expense).Error; err != nil {
		respondServerError(ctx, err)
		return
	}

	respondData(ctx, expense)
}

func ListExpensesByProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID := ctx.Param("projectId")

	if _, err := findOwnedProject(projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx)
		} else {
			respondServerError(ctx, err)
		}
		return
	}

	var expenses []models.Expense

	if err := db.DB.Where("project_id = ?", projectID).Order("date DESC").Find(&expenses).Error; err != nil {
		respondServerError(ctx, err)
		return
	}

	if expenses == nil {
		expenses = []models.Expense{}
	}

	respondData(ctx, expenses)
}

func GetExpense(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	expense, err := findOwnedExpense(ctx.Param("id"), userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx)
		} else {
			respondServerError(ctx, err)
		}
		return
	}

	respondData(ctx, expense)
}

func UpdateExpense(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body UpdateExpenseRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondInvalidBody(ctx)
		return
	}

	expense, err := findOwnedExpense(ctx.Param("id"), userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx)
		} else {
			respondServerError(ctx, err)
		}
		return
	}

	if body.Amount != nil {
		expense.Amount = *body.Amount
	}
	if body.Category != nil {
		expense.Category = *body.Category
	}
	if body.Description != nil {
		expense.Description = *body.Description
	}

	if err := db.DB.Save(&expense).Error; err != nil {
		respondServerError(ctx, err)
		return
	}

	respondData(ctx, expense)
}

func DeleteExpense(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	expense, err := findOwnedExpense(ctx.Param("id"), userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx)
		} else {
			respondServerError(ctx, err)
		}
		return
	}

	if err := db.DB.Delete(&expense).Error; err != nil {
		respondServerError(ctx, err)
		return
	}

	respondOK(ctx)
}
