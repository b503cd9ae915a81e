// File: /controllers/opportunity_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"volunteerhub-api/models"
	"volunteerhub-api/registry"
	"volunteerhub-api/services"
	"volunteerhub-api/utils"
)

type OpportunityController struct {
	db           *gorm.DB
	registry     *registry.Registry
	emailService *services.EmailService
	log          *logrus.Logger
}

func NewOpportunityController(db *gorm.DB, reg *registry.Registry, emailService *services.EmailService, log *logrus.Logger) *OpportunityController {
	return &OpportunityController{
		db:           db,
		registry:     reg,
		emailService: emailService,
		log:          log,
	}
}

type CreateOpportunityRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventBegin  time.Time `json:"event_begin"`
	EventEnd    time.Time `json:"event_end"`
	ZipCode     int       `json:"zip_code"`
}

type UpdateOpportunityRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	EventBegin  *time.Time `json:"event_begin"`
	EventEnd    *time.Time `json:"event_end"`
	ZipCode     *int       `json:"zip_code"`
}

// GetOpportunities lists the registry snapshot, with the optional zipcode
// filter applied before the optional title sort, matching the home page
// query order.
func (oc *OpportunityController) GetOpportunities(c *gin.Context) {
	opportunities := oc.registry.All()

	if zipQuery := c.Query("zipcode"); zipQuery != "" {
		zip, err := strconv.Atoi(zipQuery)
		if err != nil {
			utils.SendValidationError(c, "zipcode must be numeric")
			return
		}
		opportunities = oc.registry.Filtered(zip, opportunities)
	}

	if sortQuery := c.Query("sort"); sortQuery != "" {
		opportunities = oc.registry.Sorted(sortQuery == "true", opportunities)
	}

	c.JSON(http.StatusOK, gin.H{"opportunities": opportunities})
}

func (oc *OpportunityController) GetOpportunity(c *gin.Context) {
	opportunity, ok := oc.registry.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found"})
		return
	}

	c.JSON(http.StatusOK, opportunity)
}

func (oc *OpportunityController) CreateOpportunity(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !req.EventBegin.IsZero() && !req.EventEnd.IsZero() && !utils.IsValidEventWindow(req.EventBegin, req.EventEnd) {
		utils.SendValidationError(c, "Event end must be after event begin")
		return
	}

	if req.ZipCode != 0 && !utils.IsValidZipCode(req.ZipCode) {
		utils.SendValidationError(c, "Zip code must be a five-digit US zip code")
		return
	}

	var creator models.User
	if err := oc.db.First(&creator, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	opportunity := models.NewOpportunity(
		req.Title,
		req.Description,
		req.EventBegin,
		req.EventEnd,
		[]string{creator.DisplayName()},
		"",
		req.ZipCode,
	)
	opportunity.CreatedBy = userID

	created, err := oc.registry.Add(opportunity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create opportunity"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (oc *OpportunityController) UpdateOpportunity(c *gin.Context) {
	userID := c.GetString("user_id")
	opportunityID := c.Param("id")

	existing, ok := oc.registry.Get(opportunityID)
	if !ok || existing.CreatedBy != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found or access denied"})
		return
	}

	var req UpdateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Validate the event window as it would look after the patch
	begin := existing.EventBegin
	end := existing.EventEnd
	if req.EventBegin != nil {
		begin = *req.EventBegin
	}
	if req.EventEnd != nil {
		end = *req.EventEnd
	}
	if !utils.IsValidEventWindow(begin, end) {
		utils.SendValidationError(c, "Event end must be after event begin")
		return
	}

	patch := map[string]interface{}{}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.EventBegin != nil {
		patch["event_begin"] = *req.EventBegin
	}
	if req.EventEnd != nil {
		patch["event_end"] = *req.EventEnd
	}
	if req.ZipCode != nil {
		if !utils.IsValidZipCode(*req.ZipCode) {
			utils.SendValidationError(c, "Zip code must be a five-digit US zip code")
			return
		}
		patch["zip_code"] = *req.ZipCode
	}

	updated, err := oc.registry.Update(opportunityID, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update opportunity"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteOpportunity removes an opportunity the caller organizes. A backing
// store failure is logged inside the registry and not surfaced here.
func (oc *OpportunityController) DeleteOpportunity(c *gin.Context) {
	userID := c.GetString("user_id")
	opportunityID := c.Param("id")

	existing, ok := oc.registry.Get(opportunityID)
	if !ok || existing.CreatedBy != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found or access denied"})
		return
	}

	oc.registry.Remove(opportunityID)

	c.JSON(http.StatusOK, gin.H{"message": "Opportunity deleted"})
}

// JoinOpportunity adds the opportunity to the caller's joined-events list.
// Joining twice is a silent no-op.
func (oc *OpportunityController) JoinOpportunity(c *gin.Context) {
	userID := c.GetString("user_id")
	opportunityID := c.Param("id")

	opportunity, ok := oc.registry.Get(opportunityID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found"})
		return
	}

	var user models.User
	if err := oc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.JoinEvent(opportunityID) {
		if err := oc.db.Model(&user).Update("joined_events", user.JoinedEvents).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join opportunity"})
			return
		}

		go func() {
			if err := oc.emailService.SendJoinConfirmation(&user, opportunity); err != nil {
				oc.log.WithError(err).Warn("opportunity: join confirmation email failed")
			}
		}()
	}

	c.JSON(http.StatusOK, gin.H{"message": "Joined opportunity"})
}

// LeaveOpportunity removes the opportunity from the caller's joined-events
// list. Leaving an opportunity that was never joined is a silent no-op.
func (oc *OpportunityController) LeaveOpportunity(c *gin.Context) {
	userID := c.GetString("user_id")
	opportunityID := c.Param("id")

	var user models.User
	if err := oc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.LeaveEvent(opportunityID) {
		if err := oc.db.Model(&user).Update("joined_events", user.JoinedEvents).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave opportunity"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left opportunity"})
}

// GetDashboard returns the caller's joined opportunities split into upcoming
// and expired, each section optionally sorted by title, plus the full
// snapshot annotated with the per-viewer joined flag.
func (oc *OpportunityController) GetDashboard(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := oc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	joined := oc.registry.Joined(&user)

	upcoming := make([]models.Opportunity, 0)
	expired := make([]models.Opportunity, 0)
	for _, o := range joined {
		if o.IsExpired() {
			expired = append(expired, o)
		} else {
			upcoming = append(upcoming, o)
		}
	}

	if sortQuery := c.Query("sortupcoming"); sortQuery != "" {
		upcoming = oc.registry.Sorted(sortQuery == "true", upcoming)
	}
	if sortQuery := c.Query("sortexpired"); sortQuery != "" {
		expired = oc.registry.Sorted(sortQuery == "true", expired)
	}

	c.JSON(http.StatusOK, gin.H{
		"upcoming":      upcoming,
		"expired":       expired,
		"opportunities": oc.registry.Annotate(&user, oc.registry.All()),
	})
}

// UploadImage attaches a Cloudinary-hosted image to an opportunity the
// caller organizes.
func (oc *OpportunityController) UploadImage(c *gin.Context) {
	userID := c.GetString("user_id")
	opportunityID := c.Param("id")

	existing, ok := oc.registry.Get(opportunityID)
	if !ok || existing.CreatedBy != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Opportunity not found or access denied"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open file"})
		return
	}
	defer file.Close()

	imageURL, err := utils.UploadOpportunityImage(file, fileHeader)
	if err != nil {
		oc.log.WithError(err).Error("opportunity: image upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
		return
	}

	updated, err := oc.registry.Update(opportunityID, map[string]interface{}{"image_url": imageURL})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image URL"})
		return
	}

	c.JSON(http.StatusOK, updated)
}
