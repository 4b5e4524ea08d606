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

type CreateProjectRequest struct {
	Name   string  `json:"name"`
	Budget float64 `json:"budget"`
}

// UpdateProjectRequest distinguishes absent fields from zero values: Budget is
// a pointer so an explicit 0 is applied, while Name follows the looser rule
// that only a non-empty value overwrites.
type UpdateProjectRequest struct {
	Name   string   `json:"name"`
	Budget *float64 `json:"budget"`
}

// findOwnedProject loads the project only if it belongs to userID. A project
// owned by someone else is indistinguishable from a missing one.
func findOwnedProject(id string, userID uint) (models.Project, error) {
	var project models.Project
	err := db.DB.Where("id = ? AND user_id = ?", id, userID).First(&project).Error
	return project, err
}

func CreateProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondInvalidBody(ctx)
		return
	}

	if body.Name == "" || body.Budget == 0 {
		respondInvalidBody(ctx)
		return
	}

	project := models.Project{
		Name:   body.Name,
		Budget: body.Budget,
		UserID: userID,
	}

	if err := db.DB.Create(&project).Error; err != nil {
		respondServerError(ctx, err)
		return
	}

	respondData(ctx, project)
}

func ListProjects(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var projects []models.Project

	if err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&projects).Error; err != nil {
		respondServerError(ctx, err)
		return
	}

	if projects == nil {
		projects = []models.Project{}
	}

	respondData(ctx, projects)
}

func GetProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	project, err := findOwnedProject(ctx.Param("id"), userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx)
		} else {
			respondServerError(ctx, err)
		}
		return
	}

	respondData(ctx, project)
}

func UpdateProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body UpdateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		respondInvalidBody(ctx)
		return
	}

	project, err := findOwnedProject(ctx.Param("id"), userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx)
		} else {
			respondServerError(ctx, err)
		}
		return
	}

	if body.Name != "" {
		project.Name = body.Name
	}
	if body.Budget != nil {
		project.Budget = *body.Budget
	}

	if err := db.DB.Save(&project).Error; err != nil {
		respondServerError(ctx, err)
		return
	}

	respondData(ctx, project)
}

func DeleteProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	project, err := findOwnedProject(ctx.Param("id"), userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(ctx)
		} else {
			respondServerError(ctx, err)
		}
		return
	}

	// The cascade is application-enforced; wrap both deletes in one
	// transaction so a failure cannot leave orphaned expenses.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Expense{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})

	if err != nil {
		respondServerError(ctx, err)
		return
	}

	respondOK(ctx)
}
